package http

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"vefa/internal/cache"
	applog "vefa/internal/log"
	"vefa/internal/metrics"
	"vefa/internal/middleware/ratelimit"
	"vefa/internal/middleware/security"
	"vefa/internal/middleware/trace"
	"vefa/internal/services"
	appweb "vefa/web"
)

// ReadinessCheck reports whether the server's dependencies are usable.
type ReadinessCheck func(ctx context.Context) error

// Server is the dashboard HTTP server.
type Server struct {
	http.Server
	tracker      *services.TrackerService
	templates    *template.Template
	logger       *slog.Logger
	clientIP     *security.ClientIP
	limiter      *ratelimit.Limiter
	cacheManager *cache.Manager
	ready        ReadinessCheck
	shutdownOnce sync.Once
}

// Options configures optional server collaborators.
type Options struct {
	Logger *slog.Logger
	// MutationsPerMinute limits POST/DELETE requests per session.
	MutationsPerMinute int
	// CacheManager is stopped on shutdown; it runs session expiry.
	CacheManager *cache.Manager
	Ready        ReadinessCheck
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, tracker *services.TrackerService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		tracker:      tracker,
		logger:       opts.Logger,
		clientIP:     security.NewClientIP(),
		limiter:      ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.MutationsPerMinute}),
		cacheManager: opts.CacheManager,
		ready:        opts.Ready,
	}

	t, err := parseTemplates()
	if err != nil {
		s.logger.Warn("Failed parsing templates",
			applog.FieldComponent, applog.ComponentTemplate,
			applog.FieldError, err)
	}
	s.templates = t

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.middleware(s.routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, trace.Routed(h))
	}

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", trace.Routed(security.StaticAssetMiddleware(3600)(static)))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	handle("GET /healthz", handleHealth)
	handle("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", trace.Routed(metrics.Handler()))

	handle("GET /{$}", s.handleOverview)

	handle("GET /etapes", s.handleSteps)
	handle("POST /etapes/{id}/toggle", s.handleToggleStep)
	handle("POST /etapes/{id}/documents/{docID}/toggle", s.handleToggleStepDocument)

	handle("GET /documents", s.handleDocuments)
	handle("GET /ui/documents", s.handleDocumentsPartial)
	handle("POST /documents/{id}/delete", s.handleRemoveDocument)
	handle("DELETE /documents/{id}/delete", s.handleRemoveDocument)
	handle("POST /documents/new", s.handleAddDocument)

	handle("GET /echeancier", s.handleSchedule)
	handle("POST /echeancier/{id}/toggle", s.handleTogglePayment)

	handle("GET /contacts", s.handleContacts)
	handle("GET /ui/contacts", s.handleContactsPartial)
	handle("POST /contacts/{id}/delete", s.handleRemoveContact)
	handle("DELETE /contacts/{id}/delete", s.handleRemoveContact)
	handle("POST /contacts/new", s.handleAddContact)
	handle("POST /contacts/{id}/edit", s.handleEditContact)

	handle("GET /finances", s.handleFinances)
	handle("POST /finances/expenses/{id}/toggle", s.handleToggleExpense)

	return mux
}

// middleware wraps the mux, outermost first: tracing, request-scoped
// logger, security headers, mutation rate limiting.
func (s *Server) middleware(next http.Handler) http.Handler {
	httpLogger := applog.FromSlog(s.logger, applog.ComponentHTTP)
	tracer := trace.NewMiddleware(s.clientIP.Extract, applog.NewStructuredLogger(httpLogger.WithComponent(applog.ComponentTrace)),
		func(method, route string, status int, elapsed time.Duration) {
			metrics.RecordHTTP(method, route, status, elapsed.Seconds())
		})
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	limit := s.limiter.Middleware(s.sessionKey, isMutation, s.onRateLimited)

	h := limit(next)
	h = headers.Middleware(h)
	h = applog.RequestIDMiddleware(trace.RequestIDFromRequest)(h)
	h = applog.Middleware(httpLogger)(h)
	return tracer.Middleware(h)
}

func isMutation(r *http.Request) bool {
	return r.Method == http.MethodPost || r.Method == http.MethodDelete
}

func (s *Server) onRateLimited(w http.ResponseWriter, r *http.Request) {
	applog.FromContext(r.Context()).WarnContext(r.Context(), "Rate limit exceeded",
		applog.FieldClientIP, s.clientIP.Extract(r),
		applog.FieldMethod, r.Method,
		applog.FieldPath, r.URL.Path)
	ErrorResponse(http.StatusTooManyRequests, "Trop de requêtes, réessayez dans une minute.").
		Header("Retry-After", "60").
		TriggerNotification(NotificationError, "Trop de requêtes", toastLong).
		Write(w)
}

// Shutdown stops background cleanup and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		if s.cacheManager != nil {
			s.cacheManager.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// ListenAndServe runs the server until Shutdown; http.ErrServerClosed is
// not reported as an error.
func (s *Server) ListenAndServe() error {
	if err := s.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusServiceUnavailable)
		return
	}
	if s.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.ready(ctx); err != nil {
			s.logger.WarnContext(ctx, "Readiness check failed", applog.FieldError, err)
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
