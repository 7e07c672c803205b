package enums

import "testing"

func TestParseMediaType(t *testing.T) {
	for _, raw := range []string{"MOVIE", "TV_SHOW"} {
		parsed, err := ParseMediaType(raw)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
		if parsed.String() != raw {
			t.Fatalf("expected %q, got %q", raw, parsed)
		}
		if !parsed.IsValid() {
			t.Fatalf("expected %q to be valid", raw)
		}
	}

	for _, raw := range []string{"", "movie", "SHOW", "DOCUMENTARY"} {
		if _, err := ParseMediaType(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}

	if MediaType("movie").IsValid() {
		t.Fatal("media type comparison must be case sensitive")
	}
}
