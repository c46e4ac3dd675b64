package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/pkg/convert"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Hello, World!")
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeText(w, "OK")
}

func (h *Handler) handleCoin(w http.ResponseWriter, r *http.Request) {
	writeText(w, h.rng.FlipCoin())
}

func (h *Handler) handleRandomNumber(w http.ResponseWriter, r *http.Request) {
	writeText(w, strconv.Itoa(h.rng.Number()))
}

func (h *Handler) handleRandomColour(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rng.Colour())
}

func (h *Handler) handleUnit(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseFloat(chi.URLParam(r, "n"), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		writeErrorMessage(w, http.StatusBadRequest, domain.MsgInvalidUnitInput)
		return
	}

	writeJSON(w, http.StatusOK, convert.All(n))
}
