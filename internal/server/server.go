package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ChainBot_Go/internal/agent"
	"github.com/osse101/ChainBot_Go/internal/analysis"
	"github.com/osse101/ChainBot_Go/internal/chat"
	"github.com/osse101/ChainBot_Go/internal/database"
	"github.com/osse101/ChainBot_Go/internal/handler"
	"github.com/osse101/ChainBot_Go/internal/logger"
	"github.com/osse101/ChainBot_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	CORSOrigin      string
	RateLimit       int
	RateLimitWindow time.Duration
	MaxRequestBytes int64
}

// Dependencies are the services the routes call. DBPool and Chats are nil
// when chat tracking is disabled.
type Dependencies struct {
	DBPool   database.Pool
	Analysis analysis.Service
	Chats    chat.Service
	Agent    *agent.Handle
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	limiter := NewRateLimiter(opts.RateLimit, opts.RateLimitWindow, DefaultRateLimitClients)

	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if opts.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}

	r := chi.NewRouter()

	// Outermost first
	r.Use(recoverMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSOrigin))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, limiter))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health routes (unversioned)
	r.Get("/health", handler.HandleHealth())
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool, deps.Agent))
	r.Get("/version", handler.HandleVersion())

	r.Handle("/metrics", promhttp.Handler())

	analyze := handler.HandleAnalyze(deps.Analysis, deps.Chats)

	// Unversioned path kept for existing chat front-ends
	r.Post("/analyze", analyze)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", analyze)
		r.Get("/chats/{chatID}", handler.HandleGetChat(deps.Chats))
		r.Get("/ws", handler.HandleWebSocket(deps.Analysis, deps.Chats, handler.NewUpgrader(opts.CORSOrigin)))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
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

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

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

// recoverMiddleware turns a panic in any later handler into a logged 500
// with the usual JSON error body
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error(LogMsgPanicRecovered,
				"panic", fmt.Sprint(rec),
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()))

			writeError(w, http.StatusInternalServerError, ErrMsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, handler.ErrorResponse{Error: message})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
