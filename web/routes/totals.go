package routes

import (
	"log/slog"
	"net/http"
)

type TotalItem struct {
	Outcome   string `json:"outcome"`
	Direction string `json:"direction"`
	Count     int    `json:"count"`
}

// TotalsHandle serves per-outcome gesture counts.
func (s *ServerHandler) TotalsHandle(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Handling totals request")

	totals, err := s.Storage.Totals()
	if err != nil {
		slog.Error("Failed to get totals", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	items := make([]TotalItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, TotalItem{
			Outcome:   t.Outcome.String(),
			Direction: t.Direction.String(),
			Count:     t.Count,
		})
	}

	writeJSON(w, items)
}
