package handlers

import (
	"net/http"
	"strconv"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/pkg/models"
)

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !h.dayService.HistoryEnabled() {
		writeError(w, r, domain.ErrHistoryDisabled)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	lookups, err := h.dayService.History(limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewHistoryResponse(lookups))
}
