package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := map[Code]int{
		CodeValidation: http.StatusBadRequest,
		CodeNotFound:   http.StatusNotFound,
		CodeInternal:   http.StatusInternalServerError,
		CodeDependency: http.StatusServiceUnavailable,
	}
	for code, status := range cases {
		if got := MetadataFor(code).HTTPStatus; got != status {
			t.Fatalf("expected %s to map to %d, got %d", code, status, got)
		}
	}

	if got := MetadataFor(Code("UNKNOWN")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("unknown code should fall back to 500, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk on fire")
	err := Wrap(CodeInternal, cause, "persistence failed")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to match cause via errors.Is")
	}
	if err.Error() != "INTERNAL_ERROR: persistence failed" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsUnwrapsThroughFmtErrors(t *testing.T) {
	typed := New(CodeNotFound, "media not found")
	wrapped := fmt.Errorf("handler: %w", typed)

	got := As(wrapped)
	if got == nil {
		t.Fatal("expected typed error to be recovered")
	}
	if got.Code() != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", got.Code())
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors must not convert")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").
		WithDetails(map[string]string{"title": "is required"})

	details, ok := err.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details type %T", err.Details())
	}
	if details["title"] != "is required" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("root")
	err := Wrap(CodeInternal, cause, "wrapped")

	d := Dump(err)
	if d.Code != CodeInternal {
		t.Fatalf("expected code in dump, got %q", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}
