package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/weekday-api/internal/handlers"
	"github.com/diegoclair/weekday-api/mocks"
	"github.com/diegoclair/weekday-api/pkg/random"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

// FixedNow is Wednesday 2025-08-13 06:00 in Canada/Mountain.
var FixedNow = time.Date(2025, time.August, 13, 12, 0, 0, 0, time.UTC)

type ServiceMocks struct {
	DayServiceMock *mocks.MockDayService
}

// GetHandlerTest returns the full route table backed by a mocked DayService.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		DayServiceMock: mocks.NewMockDayService(ctrl),
	}

	handler = handlers.New(m.DayServiceMock,
		handlers.WithClock(func() time.Time { return FixedNow }),
		handlers.WithRandom(random.NewSeeded(1, 2)),
		handlers.WithSlack(SigningSecret),
	).Routes()

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"test-channel"},
		"user_id":      {"U123456789"},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
