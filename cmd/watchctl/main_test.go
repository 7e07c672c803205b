package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/watchloghq/watchlog/pkg/mediaclient"
)

func newListServer(t *testing.T, records []mediaclient.Media) *mediaclient.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		start := (page - 1) * limit
		end := start + limit
		if start > len(records) {
			start = len(records)
		}
		if end > len(records) {
			end = len(records)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mediaclient.ListResult{
			Page: page, Limit: limit, Total: int64(len(records)),
			Items: records[start:end],
		})
	}))
	t.Cleanup(srv.Close)
	return mediaclient.New(srv.URL)
}

func TestFindTitleWalksPages(t *testing.T) {
	records := make([]mediaclient.Media, 0, 150)
	for i := 150; i >= 1; i-- {
		records = append(records, mediaclient.Media{ID: int64(i), Title: "Film " + strconv.Itoa(i)})
	}
	client := newListServer(t, records)

	// Record 3 sits on the second page at the pager's limit of 100.
	title, err := findTitle(context.Background(), client, 3)
	if err != nil {
		t.Fatalf("expected lookup to succeed: %v", err)
	}
	if title != "Film 3" {
		t.Fatalf("expected %q, got %q", "Film 3", title)
	}
}

func TestFindTitleMissingID(t *testing.T) {
	client := newListServer(t, []mediaclient.Media{{ID: 1, Title: "Only"}})

	if _, err := findTitle(context.Background(), client, 999); err == nil {
		t.Fatal("expected missing id to error")
	}
}
