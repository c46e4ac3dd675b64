package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/weekday-api/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var calls []string
	mark := func(name string) handlers.Middleware {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next(w, r)
			}
		}
	}

	h := handlers.Chain(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "handler")
	}, mark("first"), mark("second"))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := handlers.RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen = handlers.RequestIDFrom(r.Context())
	})

	// generated
	resp := httptest.NewRecorder()
	h(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header().Get(handlers.RequestIDHeader))

	// propagated
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(handlers.RequestIDHeader, "abc-123")
	resp = httptest.NewRecorder()
	h(resp, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", resp.Header().Get(handlers.RequestIDHeader))
}

func TestRecover(t *testing.T) {
	h := handlers.Chain(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}, handlers.Recover, handlers.Logging)

	resp := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assertErrorBody(t, resp, "Internal Server Error")
}

func TestStack_WrapsHandler(t *testing.T) {
	var seen string
	h := handlers.Stack(handlers.RequestID)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = handlers.RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(handlers.RequestIDHeader, "req-1")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusTeapot, resp.Code)
	assert.Equal(t, "req-1", seen)
}
