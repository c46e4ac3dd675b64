package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	slackcmd "github.com/diegoclair/weekday-api/internal/domain/slack"
	"github.com/slack-go/slack"
	log "github.com/sirupsen/logrus"
)

type SlackHandler struct {
	dayService    contract.DayService
	signingSecret string
	now           func() time.Time
}

func NewSlackHandler(dayService contract.DayService, signingSecret string, now func() time.Time) *SlackHandler {
	if now == nil {
		now = time.Now
	}
	return &SlackHandler{
		dayService:    dayService,
		signingSecret: signingSecret,
		now:           now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.WithField("request_id", RequestIDFrom(r.Context())).Warn("rejected slack request with bad signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, fmt.Sprintf("%s. Try `%s help`.", err.Error(), s.Command))
		return
	}

	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdLookup:
		return h.handleLookup(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleLookup(cmd *slackcmd.Command) *slack.Msg {
	ts, err := h.dayService.Compute(entity.DayRequest{
		Weekday:  cmd.Weekday,
		Timezone: cmd.Timezone,
		Mode:     cmd.Mode,
		Now:      h.now(),
	})
	if err != nil {
		return h.createErrorResponse(slackErrorMessage(cmd, err))
	}

	var text strings.Builder
	label := "Next"
	if ts.Input.Mode == entity.ModeThis {
		label = "This"
	}
	fmt.Fprintf(&text, "*%s %s* in %s\n", label, ts.Input.Day, ts.Input.Timezone)
	fmt.Fprintf(&text, "• Local: `%s`\n", ts.Local.RFC2822)
	fmt.Fprintf(&text, "• UTC: `%s`\n", ts.UTC.RFC3339)
	fmt.Fprintf(&text, "• Unix: `%d`", ts.Epoch.Seconds)
	if ts.UsedMidnightFallback {
		text.WriteString("\n_The current time of day does not exist once on that date, so midnight was used._")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func slackErrorMessage(cmd *slackcmd.Command, err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidWeekday):
		return fmt.Sprintf("`%s` is not a weekday. Try `friday`, `fri` or `f`.", cmd.Weekday)
	case errors.Is(err, domain.ErrInvalidTimezone):
		return fmt.Sprintf("`%s` is not a known timezone. Use an IANA name like `America/New_York`.", cmd.Timezone)
	case errors.Is(err, domain.ErrUnresolvableLocalTime):
		return domain.MsgUnresolvableLocal
	default:
		log.WithError(err).Error("slack lookup failed")
		return "Something went wrong, please try again"
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
