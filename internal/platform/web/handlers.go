package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/subkiller/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ResultsHandler serves the ledger over HTTP.
type ResultsHandler struct {
	store *storage.Store
}

func NewResultsHandler(store *storage.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

func (h *ResultsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/healthz", h.healthz)
	r.Get("/api/results", h.results)
}

// resultJSON is the wire form of a finished game.
type resultJSON struct {
	ID        int64     `json:"id"`
	Player    string    `json:"player"`
	Hits      int       `json:"hits"`
	Misses    int       `json:"misses"`
	Charges   int       `json:"charges"`
	Accuracy  float64   `json:"accuracy"`
	CreatedAt time.Time `json:"created_at"`
}

type resultsResponse struct {
	Total   int          `json:"total"`
	Results []resultJSON `json:"results"`
}

func (h *ResultsHandler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (h *ResultsHandler) results(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "results are disabled", http.StatusServiceUnavailable)
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"))
	top, err := h.store.TopResults(limit)
	if err != nil {
		http.Error(w, "failed to load results", http.StatusInternalServerError)
		return
	}
	total, err := h.store.Count()
	if err != nil {
		http.Error(w, "failed to count results", http.StatusInternalServerError)
		return
	}

	resp := resultsResponse{Total: total, Results: make([]resultJSON, 0, len(top))}
	for _, res := range top {
		resp.Results = append(resp.Results, resultJSON{
			ID:        res.ID,
			Player:    res.Player,
			Hits:      res.Hits,
			Misses:    res.Misses,
			Charges:   res.Charges,
			Accuracy:  res.Accuracy,
			CreatedAt: res.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *ResultsHandler) home(w http.ResponseWriter, r *http.Request) {
	var top []storage.Result
	if h.store != nil {
		var err error
		top, err = h.store.TopResults(defaultLimit)
		if err != nil {
			http.Error(w, "failed to load results", http.StatusInternalServerError)
			return
		}
	}
	render(w, r, LeaderboardPage(top))
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

func parseLimit(value string) int {
	if value == "" {
		return defaultLimit
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return defaultLimit
	}
	return min(parsed, maxLimit)
}
