package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dasdy/swipe/db"
)

// ServerHandler holds what the route handlers need. Storage is an interface
// so the handlers can be tested against a mock.
type ServerHandler struct {
	Storage db.Storage
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Could not encode response", "error", err)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>swipe</title></head>
<body>
<h1>swipe</h1>
<p>Gesture history: <a href="/api/totals">totals</a>, <a href="/api/history">recent</a>.</p>
</body>
</html>
`

// IndexHandle serves a minimal landing page pointing at the JSON endpoints.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := w.Write([]byte(indexPage)); err != nil {
		slog.Error("Could not render index", "error", err)
	}
}
