package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/diegoclair/weekday-api/internal/domain/service"
	"github.com/diegoclair/weekday-api/internal/handlers"
	"github.com/diegoclair/weekday-api/internal/handlers/test"
	"github.com/diegoclair/weekday-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Day(t *testing.T) {
	sample := &entity.Timestamps{
		Input: entity.Input{Weekday: "saturday", Day: "Saturday", Mode: entity.ModeNext, Timezone: "Canada/Mountain"},
		Local: entity.LocalTimestamps{RFC3339: "2025-08-16T06:00:00-06:00"},
		UTC:   entity.UTCTimestamps{RFC3339: "2025-08-16T12:00:00Z"},
		Epoch: entity.EpochTimestamps{Seconds: 1755345600},
	}

	tests := []struct {
		name          string
		url           string
		buildMocks    func(m test.ServiceMocks)
		wantStatus    int
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should return timestamps for next weekday",
			url:  "/next/saturday",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().
					Compute(entity.DayRequest{Weekday: "saturday", Mode: entity.ModeNext, Now: test.FixedNow}).
					Return(sample, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				var got entity.Timestamps
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
				assert.Equal(t, *sample, got)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
			},
		},
		{
			name: "Should pass the tz query parameter and this mode",
			url:  "/this/fri?tz=america/new_york",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().
					Compute(entity.DayRequest{Weekday: "fri", Timezone: "america/new_york", Mode: entity.ModeThis, Now: test.FixedNow}).
					Return(sample, nil).Times(1)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Should map invalid weekday to 400",
			url:  "/next/funday",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().Compute(gomock.Any()).Return(nil, domain.ErrInvalidWeekday).Times(1)
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assertErrorBody(t, resp, domain.MsgInvalidWeekday)
			},
		},
		{
			name: "Should map invalid timezone to 400 with the reason",
			url:  "/next/saturday?tz=Not/AZone",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().Compute(gomock.Any()).
					Return(nil, fmt.Errorf("%w: unknown time zone Not/AZone", domain.ErrInvalidTimezone)).Times(1)
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assertErrorBody(t, resp, "invalid tz: unknown time zone Not/AZone")
			},
		},
		{
			name: "Should map unresolvable local time to 500",
			url:  "/next/sunday?tz=America/Havana",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().Compute(gomock.Any()).
					Return(nil, fmt.Errorf("%w: 2025-03-09 00:30:00 in America/Havana", domain.ErrUnresolvableLocalTime)).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assertErrorBody(t, resp, domain.MsgUnresolvableLocal)
			},
		},
		{
			name: "Should hide unexpected errors",
			url:  "/next/saturday",
			buildMocks: func(m test.ServiceMocks) {
				m.DayServiceMock.EXPECT().Compute(gomock.Any()).Return(nil, errors.New("boom")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assertErrorBody(t, resp, "Internal Server Error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestHandler_Day_MethodNotAllowed(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/next/saturday", nil)
	resp := test.CreateTestRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

// End to end through the real service, without history.
func TestHandler_Day_RealService(t *testing.T) {
	instance, err := service.NewInstance(nil, &config.Config{DefaultTimezone: "Canada/Mountain"})
	require.NoError(t, err)
	require.Nil(t, instance.Pruner)

	handler := handlers.New(instance.Day, handlers.WithClock(func() time.Time { return test.FixedNow })).Routes()

	tests := []struct {
		url        string
		wantStatus int
		wantUTC    string
		wantError  string
	}{
		{url: "/next/saturday", wantStatus: http.StatusOK, wantUTC: "2025-08-16T12:00:00Z"},
		{url: "/next/SATURDAY?tz=", wantStatus: http.StatusOK, wantUTC: "2025-08-16T12:00:00Z"},
		{url: "/this/wed", wantStatus: http.StatusOK, wantUTC: "2025-08-13T12:00:00Z"},
		{url: "/next/wed", wantStatus: http.StatusOK, wantUTC: "2025-08-20T12:00:00Z"},
		{url: "/next/sat?tz=Asia/Tokyo", wantStatus: http.StatusOK, wantUTC: "2025-08-15T12:00:00Z"},
		{url: "/next/sat?tz=america/port-au-prince", wantStatus: http.StatusOK, wantUTC: "2025-08-16T12:00:00Z"},
		{url: "/next/xyz", wantStatus: http.StatusBadRequest, wantError: domain.MsgInvalidWeekday},
		{url: "/next/xyz?tz=Not/AZone", wantStatus: http.StatusBadRequest, wantError: domain.MsgInvalidWeekday},
		{url: "/next/saturday?tz=xyz", wantStatus: http.StatusBadRequest, wantError: "invalid tz: unknown time zone xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantError != "" {
				assertErrorBody(t, resp, tt.wantError)
				return
			}

			var got entity.Timestamps
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, tt.wantUTC, got.UTC.RFC3339)
		})
	}
}

func assertErrorBody(t *testing.T, resp *httptest.ResponseRecorder, want string) {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, want, body.Error)
}
