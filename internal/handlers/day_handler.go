package handlers

import (
	"net/http"

	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.handleDay(w, r, entity.ModeNext)
}

func (h *Handler) handleThis(w http.ResponseWriter, r *http.Request) {
	h.handleDay(w, r, entity.ModeThis)
}

// handleDay serves /next/{day} and /this/{day}. A missing tz query parameter
// selects the default timezone, and so does an empty one: ?tz= is answered
// in the default zone rather than rejected with 400.
func (h *Handler) handleDay(w http.ResponseWriter, r *http.Request, mode entity.Mode) {
	req := entity.DayRequest{
		Weekday:  chi.URLParam(r, "day"),
		Timezone: r.URL.Query().Get("tz"),
		Mode:     mode,
		Now:      h.now(),
	}

	ts, err := h.dayService.Compute(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ts)
}
