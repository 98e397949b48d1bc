package handlers

import (
	"net/http"

	"github.com/hastma/hastma-cup/models"
	"github.com/hastma/hastma-cup/services"
)

type PredictionHandler struct {
	predictions services.PredictionService
}

func NewPredictionHandler(ps services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictions: ps}
}

func (h *PredictionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.predictions.List(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, predictions, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PredictionHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var prediction models.Prediction
	if err := readJSON(w, r, &prediction); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	total, err := h.predictions.Submit(r.Context(), prediction)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "totalPredictions": total}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PredictionHandler) ClearHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.predictions.Clear(r.Context()); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "message": "all predictions cleared"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
