// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Datasets
	mux.HandleFunc("GET /datasets", h.listDatasets)
	mux.HandleFunc("POST /datasets/load", h.loadDataset)
	mux.HandleFunc("POST /datasets/import", h.importDataset)
	mux.HandleFunc("GET /rows/{rowIndex}", h.getRow)

	// Current session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/answers", h.submitAnswer)
	mux.HandleFunc("POST /session/bookmarks/{rowIndex}", h.toggleBookmark)
	mux.HandleFunc("POST /session/navigate", h.navigate)
	mux.HandleFunc("POST /session/position", h.setPosition)
	mux.HandleFunc("POST /session/new", h.newSession)
	mux.HandleFunc("POST /session/load", h.loadSession)

	// Session history
	mux.HandleFunc("GET /sessions", h.listSessions)

	// Exports
	mux.HandleFunc("GET /export/session", h.exportSessionJSON)
	mux.HandleFunc("GET /export/session.csv", h.exportSessionCSV)
}
