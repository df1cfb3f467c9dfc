package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/InventoryApp_Go/docs"
	"github.com/osse101/InventoryApp_Go/internal/catalog"
	"github.com/osse101/InventoryApp_Go/internal/handler"
	"github.com/osse101/InventoryApp_Go/internal/ledger"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/rates"
	"github.com/osse101/InventoryApp_Go/internal/user"
)

// Options holds the transport settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RequestLimit   int
}

// Services are the application services the routes call into
type Services struct {
	// DB decides readiness; nil means always ready
	DB      handler.Pinger
	Users   user.Service
	Ledger  ledger.Service
	Catalog catalog.Service
	Rates   rates.Provider
}

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the full route tree. Exposed separately so tests can drive
// it without a listener.
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	if opts.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}
	detector := NewSuspiciousActivityDetector(WithRequestLimit(opts.RequestLimit, 0))

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(requestIDMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	players := handler.NewPlayerHandler(svc.Users, svc.Ledger)
	items := handler.NewCatalogHandler(svc.Catalog)
	economy := handler.NewLedgerHandler(svc.Ledger, svc.Rates)
	admin := handler.NewAdminHandler(svc.Users, svc.Ledger, svc.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/register", players.HandleRegister)
			r.Post("/signin", players.HandleSignIn)
			r.Get("/{name}", players.HandleGetPlayer)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", items.HandleListItems)
			r.Get("/{name}", items.HandleGetItem)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Post("/buy", economy.HandleBuy)
			r.Post("/sell", economy.HandleSell)
			r.Post("/grind", economy.HandleGrind)
			r.Post("/exchange", economy.HandleExchange)
		})

		r.Get("/rates/gem", economy.HandleGetGemRate)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/balance", admin.HandleSetBalance)
			r.Post("/items", admin.HandleCreateItem)
			r.Post("/grant", admin.HandleGrantAdmin)
		})
	})

	// API documentation generated from the handler annotations
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// requestIDMiddleware puts a request ID into the context and echoes it back.
// A client supplied ID is kept when it is a valid UUID.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(r.Context())

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
