package mediaclient

import "strings"

// TypeFilterAll matches every record regardless of type.
const TypeFilterAll = "all"

// MatchesSearch reports whether the record's title, director, or location
// contains the term, case-insensitively. An empty term matches everything.
func MatchesSearch(record Media, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	fields := []string{record.Title, record.Director}
	if record.Location != nil {
		fields = append(fields, *record.Location)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// MatchesType reports whether the record has the given type. An empty
// filter or TypeFilterAll matches everything.
func MatchesType(record Media, mediaType string) bool {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" || strings.EqualFold(mediaType, TypeFilterAll) {
		return true
	}
	return strings.EqualFold(record.Type, mediaType)
}

// Filter keeps the records matching both the search term and the type
// filter, preserving order.
func Filter(records []Media, term, mediaType string) []Media {
	filtered := make([]Media, 0, len(records))
	for _, record := range records {
		if MatchesSearch(record, term) && MatchesType(record, mediaType) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
