package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/drop"
	"github.com/osse101/CardHeist_Go/internal/forge"
	"github.com/osse101/CardHeist_Go/internal/handler"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/sse"
	"github.com/osse101/CardHeist_Go/internal/theft"
	"github.com/osse101/CardHeist_Go/internal/user"
	"github.com/osse101/CardHeist_Go/internal/vault"
)

// Config holds the HTTP listener settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Services are the handlers' collaborators
type Services struct {
	Users    user.Service
	Cards    ledger.Service
	Forge    forge.Service
	Vault    vault.Service
	Drops    drop.Service
	Thefts   theft.Service
	TheftLog theft.Log
	Catalog  *catalog.Catalog
	Health   handler.HealthChecker
	Events   *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + strconv.Itoa(cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: DefaultReadHeaderLimit,
			IdleTimeout:       DefaultIdleTimeout,
			// no WriteTimeout: /me/events streams indefinitely
		},
	}
}

// NewRouter builds the middleware stack and every route
func NewRouter(cfg Config, svc Services) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	proxies := NewTrustedProxies(cfg.TrustedProxies)
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, proxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Health))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/users", handler.HandleRegisterUser(svc.Users))

	r.Route("/cards", func(r chi.Router) {
		r.Get("/", handler.HandleListCatalog(svc.Catalog))
		r.Get("/{rarity}", handler.HandleListCatalogByRarity(svc.Catalog))
	})

	r.Route("/me", func(r chi.Router) {
		r.Use(handler.RequireUser)

		r.Get("/", handler.HandleGetProfile(svc.Users))
		r.Delete("/", handler.HandleDeleteUser(svc.Users))
		r.Post("/connections", handler.HandleRecordConnection(svc.Users))
		r.Get("/cards", handler.HandleListFree(svc.Cards))

		r.Route("/forge", func(r chi.Router) {
			r.Get("/", handler.HandleGetForge(svc.Forge))
			r.Post("/commit", handler.HandleForgeCommit(svc.Forge))
			r.Post("/release", handler.HandleForgeRelease(svc.Forge))
			r.Post("/execute", handler.HandleForgeExecute(svc.Forge))
		})

		r.Route("/vault", func(r chi.Router) {
			r.Get("/", handler.HandleListVault(svc.Vault))
			r.Post("/", handler.HandleVaultStore(svc.Vault))
			r.Delete("/{rarity}", handler.HandleVaultRelease(svc.Vault))
		})

		r.Get("/drop", handler.HandleDropStatus(svc.Drops))
		r.Post("/drop", handler.HandleDrop(svc.Drops))

		r.Post("/thefts", handler.HandleTheft(svc.Thefts))
		r.Get("/notifications", handler.HandleListNotifications(svc.TheftLog))
		r.Delete("/notifications/{id}", handler.HandleDeleteNotification(svc.TheftLog))

		if svc.Events != nil {
			r.Get("/events", sse.Handler(svc.Events, handler.UserIDFromRequest))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware assigns a request id (reusing a client-sent X-Request-ID),
// echoes it back and logs the request with secrets redacted
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Stop; http.ErrServerClosed is not an error
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
