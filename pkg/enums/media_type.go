package enums

import "fmt"

// MediaType distinguishes the two kinds of tracked records.
type MediaType string

const (
	MediaTypeMovie  MediaType = "MOVIE"
	MediaTypeTVShow MediaType = "TV_SHOW"
)

var validMediaTypes = []MediaType{
	MediaTypeMovie,
	MediaTypeTVShow,
}

// String implements fmt.Stringer.
func (m MediaType) String() string {
	return string(m)
}

// IsValid reports whether the media type is recognized.
func (m MediaType) IsValid() bool {
	for _, candidate := range validMediaTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMediaType converts a raw string into a MediaType.
func ParseMediaType(value string) (MediaType, error) {
	for _, candidate := range validMediaTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid media type %q", value)
}
