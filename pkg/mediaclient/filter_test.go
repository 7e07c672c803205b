package mediaclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRecords() []Media {
	location := "Jordan"
	return []Media{
		{ID: 1, Title: "Dune", Type: "MOVIE", Director: "Denis Villeneuve", Location: &location},
		{ID: 2, Title: "Severance", Type: "TV_SHOW", Director: "Ben Stiller"},
		{ID: 3, Title: "Oppenheimer", Type: "MOVIE", Director: "Christopher Nolan"},
	}
}

func TestMatchesSearchIsCaseInsensitive(t *testing.T) {
	records := sampleRecords()

	require.True(t, MatchesSearch(records[0], "dune"))
	require.True(t, MatchesSearch(records[0], "VILLENEUVE"))
	require.True(t, MatchesSearch(records[0], "jordan"))
	require.False(t, MatchesSearch(records[0], "nolan"))
}

func TestMatchesSearchEmptyTermMatchesAll(t *testing.T) {
	for _, record := range sampleRecords() {
		require.True(t, MatchesSearch(record, ""))
		require.True(t, MatchesSearch(record, "   "))
	}
}

func TestMatchesTypeWildcard(t *testing.T) {
	record := sampleRecords()[1]

	require.True(t, MatchesType(record, ""))
	require.True(t, MatchesType(record, TypeFilterAll))
	require.True(t, MatchesType(record, "tv_show"))
	require.False(t, MatchesType(record, "MOVIE"))
}

func TestFilterCombinesPredicates(t *testing.T) {
	records := sampleRecords()

	movies := Filter(records, "", "MOVIE")
	require.Len(t, movies, 2)

	nolanMovies := Filter(records, "nolan", "MOVIE")
	require.Len(t, nolanMovies, 1)
	require.Equal(t, "Oppenheimer", nolanMovies[0].Title)

	require.Empty(t, Filter(records, "nolan", "TV_SHOW"))
}

func TestFormatBudget(t *testing.T) {
	amount := 165.0
	fraction := 1.5
	lower := "million"
	upper := "Billion"
	custom := "rupees"

	require.Equal(t, "165 Million", FormatBudget(&amount, nil))
	require.Equal(t, "165 Million", FormatBudget(&amount, &lower))
	require.Equal(t, "165 Billion", FormatBudget(&amount, &upper))
	require.Equal(t, "165 rupees", FormatBudget(&amount, &custom))
	require.Equal(t, "1.5 Million", FormatBudget(&fraction, nil))
	require.Equal(t, "? Billion", FormatBudget(nil, &upper))
	require.Equal(t, "-", FormatBudget(nil, nil))
}

func TestDurationSummary(t *testing.T) {
	minutes := 155
	require.Equal(t, "155 min", DurationSummary(Media{DurationMin: &minutes}))
	require.Equal(t, "-", DurationSummary(Media{}))
}
