package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/handlers/test"
	"github.com/diegoclair/weekday-api/pkg/convert"
	"github.com/diegoclair/weekday-api/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, handler http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp := test.CreateTestRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestHandler_Root(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	resp := get(t, handler, "/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Hello, World!", resp.Body.String())

	resp = get(t, handler, "/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())

	resp = get(t, handler, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Coin(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	for i := 0; i < 20; i++ {
		resp := get(t, handler, "/coin")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, []string{"Heads", "Tails"}, resp.Body.String())
	}
}

func TestHandler_RandomNumber(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	for i := 0; i < 50; i++ {
		resp := get(t, handler, "/random_number")
		require.Equal(t, http.StatusOK, resp.Code)

		n, err := strconv.Atoi(resp.Body.String())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, random.MinNumber)
		assert.LessOrEqual(t, n, random.MaxNumber)
	}
}

func TestHandler_RandomColour(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	resp := get(t, handler, "/random_colour")
	require.Equal(t, http.StatusOK, resp.Code)

	var colour random.Colour
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &colour))
	assert.Regexp(t, `^#[0-9a-f]{6}$`, colour.Hex)
}

func TestHandler_Unit(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
		want       *convert.Conversions
	}{
		{name: "Should convert an integer", url: "/unit/42", wantStatus: http.StatusOK, want: ptr(convert.All(42))},
		{name: "Should convert a negative decimal", url: "/unit/-3.5", wantStatus: http.StatusOK, want: ptr(convert.All(-3.5))},
		{name: "Should reject text", url: "/unit/abc", wantStatus: http.StatusBadRequest},
		{name: "Should reject NaN", url: "/unit/NaN", wantStatus: http.StatusBadRequest},
		{name: "Should reject infinity", url: "/unit/Inf", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			resp := get(t, handler, tt.url)
			require.Equal(t, tt.wantStatus, resp.Code)

			if tt.want == nil {
				assertErrorBody(t, resp, domain.MsgInvalidUnitInput)
				return
			}

			var got convert.Conversions
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, *tt.want, got)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
