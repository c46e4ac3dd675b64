package handlers

import (
	"context"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// Middleware receives and returns an http.HandlerFunc
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Stack adapts a chain of middlewares to the func(http.Handler) http.Handler
// shape routers expect.
func Stack(middlewares ...Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return Chain(next.ServeHTTP, middlewares...)
	}
}

// Chain wraps handler so that the first middleware runs outermost.
func Chain(handler http.HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	middlewares = slices.Clone(middlewares)
	slices.Reverse(middlewares)

	result := handler
	for _, m := range middlewares {
		result = m(result)
	}
	return result
}

// RequestID propagates the caller's X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(RequestIDHeader, RequestIDFrom(r.Context()))
		next(w, r)
	})).ServeHTTP
}

func RequestIDFrom(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// Logging logs one line per request
func Logging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapper, r)

		log.WithFields(log.Fields{
			"request_id": RequestIDFrom(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"query":      r.URL.RawQuery,
			"status":     wrapper.statusCode,
			"duration":   time.Since(start).String(),
		}).Info("HTTP request")
	}
}

func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"panic": rec,
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("recovered from panic")
				writeErrorMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()
		next(w, r)
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
