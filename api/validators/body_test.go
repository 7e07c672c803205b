package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/watchloghq/watchlog/pkg/errors"
)

type samplePayload struct {
	Title     string  `json:"title" validate:"required"`
	PosterURL *string `json:"posterUrl,omitempty" validate:"omitempty,url"`
}

func (p *samplePayload) Normalize() {
	if p.PosterURL != nil && strings.TrimSpace(*p.PosterURL) == "" {
		p.PosterURL = nil
	}
}

func decodeSample(t *testing.T, body string) (*samplePayload, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	return &dest, err
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decodeSample(t, `{"title":"x","bogus":true}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyNamesMissingField(t *testing.T) {
	_, err := decodeSample(t, `{}`)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["title"] != "is required" {
		t.Fatalf("expected title to be named, got %v", details)
	}
}

func TestDecodeJSONBodyNormalizesEmptyURL(t *testing.T) {
	dest, err := decodeSample(t, `{"title":"x","posterUrl":""}`)
	if err != nil {
		t.Fatalf("empty poster URL must not fail validation: %v", err)
	}
	if dest.PosterURL != nil {
		t.Fatalf("expected empty URL to normalize to absent, got %q", *dest.PosterURL)
	}
}

func TestDecodeJSONBodyRejectsMalformedURL(t *testing.T) {
	_, err := decodeSample(t, `{"title":"x","posterUrl":"not a url"}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad URL, got %v", err)
	}
}

func TestQueryIntFallsBackSilently(t *testing.T) {
	req := httptest.NewRequest("GET", "/?page=abc&limit=7", nil)

	if got := QueryInt(req, "page", 1); got != 1 {
		t.Fatalf("non-numeric page should fall back, got %d", got)
	}
	if got := QueryInt(req, "limit", 20); got != 7 {
		t.Fatalf("numeric limit should parse, got %d", got)
	}
	if got := QueryInt(req, "missing", 4); got != 4 {
		t.Fatalf("missing key should fall back, got %d", got)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("expected trim, got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncation, got %q", got)
	}
}
