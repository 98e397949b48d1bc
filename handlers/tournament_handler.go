package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hastma/hastma-cup/models"
	"github.com/hastma/hastma-cup/services"
)

type TournamentHandler struct {
	tournaments services.TournamentService
	snapshots   services.SnapshotService
}

func NewTournamentHandler(ts services.TournamentService, ss services.SnapshotService) *TournamentHandler {
	return &TournamentHandler{
		tournaments: ts,
		snapshots:   ss,
	}
}

// GetDocumentHandler handles GET /tournament: the whole document, or
// null when none exists.
func (h *TournamentHandler) GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	doc := h.tournaments.Document(r.Context())
	if err := writeJSON(w, http.StatusOK, doc, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReplaceDocumentHandler handles POST /tournament: wholesale document
// replacement, stamping metadata.lastUpdated.
func (h *TournamentHandler) ReplaceDocumentHandler(w http.ResponseWriter, r *http.Request) {
	var doc models.Tournament
	if err := readJSON(w, r, &doc); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stamp, err := h.tournaments.ReplaceDocument(r.Context(), &doc)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "timestamp": stamp}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler handles GET /standings/{group}.
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	rows := h.tournaments.Standings(r.Context(), group)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": group, "standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LogsHandler handles GET /logs: the audit ring buffer, newest first.
func (h *TournamentHandler) LogsHandler(w http.ResponseWriter, r *http.Request) {
	logs := h.tournaments.Logs(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"logs": logs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportSnapshotHandler handles POST /snapshots: upload a dated JSON
// copy of the document to the object store.
func (h *TournamentHandler) ExportSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.snapshots.Export(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"key": result.Key, "location": result.Location}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
