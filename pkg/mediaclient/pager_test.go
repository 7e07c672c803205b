package mediaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPagerLoadsPagesIncrementally(t *testing.T) {
	client, fake := newTestClient(t)
	fake.seed(seedTitles(5)...)

	pager := NewPager(client, 2)
	require.True(t, pager.HasNext())

	require.NoError(t, pager.LoadMore(context.Background()))
	require.Len(t, pager.Items(), 2)
	require.EqualValues(t, 5, pager.Total())
	require.True(t, pager.HasNext())

	require.NoError(t, pager.LoadMore(context.Background()))
	require.Len(t, pager.Items(), 4)
	require.True(t, pager.HasNext())

	require.NoError(t, pager.LoadMore(context.Background()))
	require.Len(t, pager.Items(), 5)
	require.False(t, pager.HasNext())

	// Exhausted pager stays a no-op.
	calls := fake.listCalls
	require.NoError(t, pager.LoadMore(context.Background()))
	require.Equal(t, calls, fake.listCalls)
}

func TestPagerItemsKeepPageOrder(t *testing.T) {
	client, fake := newTestClient(t)
	fake.seed(seedTitles(4)...)

	pager := NewPager(client, 2)
	require.NoError(t, pager.LoadMore(context.Background()))
	require.NoError(t, pager.LoadMore(context.Background()))

	items := pager.Items()
	require.Len(t, items, 4)
	require.Equal(t, "Film 4", items[0].Title)
	require.Equal(t, "Film 1", items[3].Title)
}

func TestPagerRefreshDropsCache(t *testing.T) {
	client, fake := newTestClient(t)
	fake.seed(seedTitles(3)...)

	pager := NewPager(client, 2)
	require.NoError(t, pager.LoadMore(context.Background()))
	require.NoError(t, pager.LoadMore(context.Background()))
	require.Len(t, pager.Items(), 3)

	fake.seed("Late Arrival")

	require.NoError(t, pager.Refresh(context.Background()))
	items := pager.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Late Arrival", items[0].Title)
	require.EqualValues(t, 4, pager.Total())
}

func TestPagerMutationsInvalidateCache(t *testing.T) {
	client, fake := newTestClient(t)
	fake.seed(seedTitles(2)...)

	pager := NewPager(client, 10)
	require.NoError(t, pager.LoadMore(context.Background()))
	require.Len(t, pager.Items(), 2)

	created, err := pager.Create(context.Background(), CreateMediaRequest{
		Title:    "Fresh",
		Type:     "MOVIE",
		Director: "Someone",
	})
	require.NoError(t, err)
	require.Len(t, pager.Items(), 3)
	require.Equal(t, "Fresh", pager.Items()[0].Title)

	title := "Fresher"
	_, err = pager.Update(context.Background(), created.ID, UpdateMediaRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Fresher", pager.Items()[0].Title)

	require.NoError(t, pager.Delete(context.Background(), created.ID))
	require.Len(t, pager.Items(), 2)
	require.EqualValues(t, 2, pager.Total())
}

func TestPagerRefreshSupersedesInFlightFetch(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		if call == 1 {
			// Hold the pre-mutation response until after the Refresh.
			<-release
			json.NewEncoder(w).Encode(ListResult{
				Page: 1, Limit: 10, Total: 1,
				Items: []Media{{ID: 1, Title: "Before Mutation"}},
			})
			return
		}
		json.NewEncoder(w).Encode(ListResult{
			Page: 1, Limit: 10, Total: 1,
			Items: []Media{{ID: 2, Title: "After Mutation"}},
		})
	}))
	t.Cleanup(srv.Close)

	pager := NewPager(New(srv.URL), 10)

	loadDone := make(chan error, 1)
	go func() {
		loadDone <- pager.LoadMore(context.Background())
	}()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 1
	}, time.Second, 5*time.Millisecond, "first fetch never reached the server")

	// The mutation's Refresh must not be gated on the stalled fetch.
	require.NoError(t, pager.Refresh(context.Background()))

	close(release)
	require.NoError(t, <-loadDone)

	items := pager.Items()
	require.Len(t, items, 1)
	require.Equal(t, "After Mutation", items[0].Title, "pre-mutation page must not survive the refresh")
	require.EqualValues(t, 1, pager.Total())
	require.False(t, pager.HasNext())
}

func TestPagerDeleteMissingDoesNotInvalidate(t *testing.T) {
	client, fake := newTestClient(t)
	fake.seed(seedTitles(2)...)

	pager := NewPager(client, 10)
	require.NoError(t, pager.LoadMore(context.Background()))

	calls := fake.listCalls
	err := pager.Delete(context.Background(), 999)
	require.True(t, IsNotFound(err))
	require.Equal(t, calls, fake.listCalls, "failed mutation must not refetch")
	require.Len(t, pager.Items(), 2)
}
