package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/diegoclair/weekday-api/pkg/models"
	"github.com/diegoclair/weekday-api/pkg/random"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	dayService contract.DayService
	rng        *random.Generator
	now        func() time.Time
	slack      *SlackHandler
}

type Option func(*Handler)

// WithClock replaces time.Now as the reference instant for weekday lookups.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func WithRandom(g *random.Generator) Option {
	return func(h *Handler) {
		h.rng = g
	}
}

// WithSlack enables POST /slack/commands. An empty secret leaves it disabled.
func WithSlack(signingSecret string) Option {
	return func(h *Handler) {
		if signingSecret == "" {
			return
		}
		h.slack = NewSlackHandler(h.dayService, signingSecret, func() time.Time { return h.now() })
	}
}

func New(dayService contract.DayService, opts ...Option) *Handler {
	h := &Handler{
		dayService: dayService,
		rng:        random.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the complete HTTP surface wrapped in the middleware chain.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(Stack(Recover, RequestID, Logging))

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Get("/coin", h.handleCoin)
	r.Get("/random_number", h.handleRandomNumber)
	r.Get("/random_colour", h.handleRandomColour)
	r.Get("/unit/{n}", h.handleUnit)
	r.Get("/next/{day}", h.handleNext)
	r.Get("/this/{day}", h.handleThis)
	r.Get("/history", h.handleHistory)

	if h.slack != nil {
		r.Post("/slack/commands", h.slack.HandleSlashCommand)
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, text)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	entry := log.WithFields(log.Fields{
		"request_id": RequestIDFrom(r.Context()),
		"path":       r.URL.Path,
	}).WithError(err)

	switch {
	case errors.Is(err, domain.ErrInvalidWeekday):
		writeErrorMessage(w, http.StatusBadRequest, domain.MsgInvalidWeekday)
	case errors.Is(err, domain.ErrInvalidTimezone):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnresolvableLocalTime):
		entry.Error("could not build local time")
		writeErrorMessage(w, http.StatusInternalServerError, domain.MsgUnresolvableLocal)
	case errors.Is(err, domain.ErrHistoryDisabled):
		writeErrorMessage(w, http.StatusNotFound, domain.MsgHistoryUnavailable)
	default:
		entry.Error("request failed")
		writeErrorMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
