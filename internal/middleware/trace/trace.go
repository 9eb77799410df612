package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	applog "vefa/internal/log"
)

// ContextKey type for context keys
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"

	// HeaderRequestID echoes the request id back to the client.
	HeaderRequestID = "X-Request-ID"
)

type routeKey struct{}

type routeHolder struct{ pattern string }

// Observer receives the outcome of each request. route is the matched
// ServeMux pattern, or "unmatched".
type Observer func(method, route string, status int, elapsed time.Duration)

// Middleware handles request tracing and logging
type Middleware struct {
	extractIP func(*http.Request) string
	logger    *applog.StructuredLogger
	observe   Observer
}

// NewMiddleware creates a new trace middleware. observe may be nil.
func NewMiddleware(extractIP func(*http.Request) string, logger *applog.StructuredLogger, observe Observer) *Middleware {
	return &Middleware{
		extractIP: extractIP,
		logger:    logger,
		observe:   observe,
	}
}

// Middleware returns HTTP middleware for request tracing
func (m *Middleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := ""
		if m.extractIP != nil {
			clientIP = m.extractIP(r)
		}

		requestID := GenerateRequestID()
		route := &routeHolder{}
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = context.WithValue(ctx, routeKey{}, route)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		if m.logger != nil {
			m.logger.LogHTTPStart(ctx, r, clientIP)
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		if m.logger != nil {
			m.logger.LogHTTPEnd(ctx, r, rw.statusCode, elapsed.Milliseconds(), clientIP)
		}
		if m.observe != nil {
			pattern := route.pattern
			if pattern == "" {
				// set when the mux is the direct next handler
				pattern = r.Pattern
			}
			if pattern == "" {
				pattern = "unmatched"
			}
			m.observe(r.Method, pattern, rw.statusCode, elapsed)
		}
	})
}

// Routed records the ServeMux pattern that matched r for the enclosing
// trace middleware. Wrap handlers with it when other middleware sits between
// the tracer and the mux.
func Routed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := r.Context().Value(routeKey{}).(*routeHolder); ok {
			h.pattern = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// GenerateRequestID creates a unique request ID for tracing
func GenerateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestIDFromRequest adapts GetRequestID for applog.RequestIDMiddleware.
func RequestIDFromRequest(r *http.Request) string {
	return GetRequestID(r.Context())
}
