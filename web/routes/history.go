package routes

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const defaultHistoryLimit = 100

type HistoryItem struct {
	Outcome    string    `json:"outcome"`
	Direction  string    `json:"direction"`
	DX         int32     `json:"dx"`
	DY         int32     `json:"dy"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"ts"`
}

// HistoryHandle serves the most recent gestures, newest last.
func (s *ServerHandler) HistoryHandle(w http.ResponseWriter, r *http.Request) {
	slog.Info("Handling history request")

	limit := defaultHistoryLimit

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)

			return
		}

		limit = parsed
	}

	all, err := s.Storage.AllIterator()
	if err != nil {
		slog.Error("Failed to get history", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	// TODO: push the limit into the query once history files get big enough
	// for the full scan to hurt.
	items := make([]HistoryItem, 0)

	for g := range all {
		items = append(items, HistoryItem{
			Outcome:    g.Outcome.String(),
			Direction:  g.Direction.String(),
			DX:         g.DX,
			DY:         g.DY,
			DurationMs: g.Duration.Milliseconds(),
			Timestamp:  g.Timestamp,
		})
	}

	if len(items) > limit {
		items = items[len(items)-limit:]
	}

	writeJSON(w, items)
}
