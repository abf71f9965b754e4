// Package httpserver exposes the storefront over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "github.com/Lenon69/MegJoniShop/internal/middleware"
	"github.com/Lenon69/MegJoniShop/internal/metrics"
	"github.com/Lenon69/MegJoniShop/internal/observability"
	"github.com/Lenon69/MegJoniShop/internal/router"
	"github.com/Lenon69/MegJoniShop/internal/storefront"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Renderer turns a request path into a document.
type Renderer interface {
	Render(path string) storefront.Rendered
}

// Config holds runtime options for the storefront HTTP server.
type Config struct {
	Address        string
	Renderer       Renderer
	Logger         *zap.Logger
	Assets         *custommw.Assets
	Recorder       metrics.Recorder
	MetricsHandler http.Handler
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// New constructs the HTTP server with its middleware stack.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
	}
}

// NewHandler builds the chi router serving pages, assets, health and metrics.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	r := chi.NewRouter()
	r.Use(observability.InjectLoggerMiddleware(logger))
	r.Use(observability.RequestIDMiddleware)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.TraceMiddleware)
	r.Use(observability.RequestLoggerMiddleware)
	r.Use(observability.RecoveryMiddleware(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))
	r.Use(chimw.GetHead)
	if cfg.Assets != nil {
		r.Use(cfg.Assets.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.Renderer != nil {
		r.Get("/*", pageHandler(cfg.Renderer, recorder))
	}
	return r
}

func pageHandler(sf Renderer, rec metrics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		res := sf.Render(r.URL.Path)
		status := http.StatusOK
		if res.Kind == router.Fallback {
			status = http.StatusNotFound
		}
		templ.Handler(res.Document.Component(), templ.WithStatus(status)).ServeHTTP(w, r)
		rec.ObserveRender(res.Route, res.Kind.String(), time.Since(start))

		observability.FromContext(r.Context()).Debug("page rendered",
			zap.String("route", res.Route),
			zap.String("match", res.Kind.String()),
		)
	}
}

// Run serves srv until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	return Serve(ctx, srv, ln, logger)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	logger.Info("web shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
