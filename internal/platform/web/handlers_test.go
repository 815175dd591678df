package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/subkiller/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func serve(t *testing.T, store *storage.Store, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(store, log.New(io.Discard))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(t, nil, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestResultsAPI(t *testing.T) {
	store := newTestStore(t)
	for _, r := range []storage.Result{
		{Player: "alice", Hits: 10, Misses: 15, Charges: 25, Accuracy: 0.4},
		{Player: "bob", Hits: 20, Misses: 5, Charges: 25, Accuracy: 0.8},
		{Player: "carol", Hits: 15, Misses: 10, Charges: 25, Accuracy: 0.6},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	rec := serve(t, store, "/api/results?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp resultsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, expected 3", resp.Total)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Player != "bob" || resp.Results[1].Player != "carol" {
		t.Errorf("results out of order: %+v", resp.Results)
	}
}

func TestResultsAPIWithoutStore(t *testing.T) {
	rec := serve(t, nil, "/api/results")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, expected 503", rec.Code)
	}
}

func TestLeaderboardPage(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveResult(storage.Result{Player: "<script>", Hits: 7, Misses: 18, Accuracy: 0.28}); err != nil {
		t.Fatalf("SaveResult() error: %v", err)
	}

	rec := serve(t, store, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "28.0%") {
		t.Error("page should show the accuracy")
	}
	if strings.Contains(body, "<script>") {
		t.Error("player names must be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped player name missing")
	}
}

func TestLeaderboardPageEmpty(t *testing.T) {
	rec := serve(t, nil, "/")
	if !strings.Contains(rec.Body.String(), "No games finished yet") {
		t.Error("empty page should say so")
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", defaultLimit},
		{"abc", defaultLimit},
		{"0", defaultLimit},
		{"-3", defaultLimit},
		{"5", 5},
		{"1000", maxLimit},
	}

	for _, tt := range tests {
		if got := parseLimit(tt.in); got != tt.expected {
			t.Errorf("parseLimit(%q) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestResultRow(t *testing.T) {
	var b strings.Builder
	err := resultRow(3, storage.Result{Hits: 12, Misses: 13, Accuracy: 0.48}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	row := b.String()
	for _, want := range []string{"<td>3</td>", "anonymous", "<td>12</td>", "<td>13</td>", "48.0%"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestLeaderboardRanksInOrder(t *testing.T) {
	var b strings.Builder
	results := []storage.Result{{Player: "bob", Hits: 20}, {Player: "alice", Hits: 10}}
	if err := leaderboard(results).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html := b.String()
	bob, alice := strings.Index(html, "bob"), strings.Index(html, "alice")
	if bob < 0 || alice < 0 || bob > alice {
		t.Errorf("bob should be listed before alice: %q", html)
	}
}
