package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/swipe/db"
	"github.com/dasdy/swipe/logging"
	"github.com/dasdy/swipe/web/routes"
)

// StartServer serves the gesture history interface until the listener dies.
func StartServer(port int, storage db.Storage) error {
	handler := routes.ServerHandler{Storage: storage}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.IndexHandle)
	mux.HandleFunc("/api/totals", handler.TotalsHandle)
	mux.HandleFunc("/api/history", handler.HistoryHandle)

	addr := fmt.Sprintf(":%d", port)
	slog.InfoContext(logging.PackageCtx("web"), "Starting server", "addr", addr)

	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("serving on %s: %w", addr, err)
	}

	return nil
}
