package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/vitals/internal/service"
	"github.com/limbo/vitals/pkg/cleanup"
)

const (
	defaultRequestTimeout = 15 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx               *chi.Mux
	analyticsService service.AnalyticsServiceI
	jwtService       JWTServiceI
	requestTimeout   time.Duration
}

type ServicesList struct {
	AnalyticsService service.AnalyticsServiceI
	JwtService       JWTServiceI
	// Zero means defaultRequestTimeout
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		analyticsService: servicesOptions.AnalyticsService,
		jwtService:       servicesOptions.JwtService,
		requestTimeout:   servicesOptions.RequestTimeout,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.RealIP, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware, middleware.Recoverer)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/analytics", s.GetAnalytics)
		r.Get("/analytics/summary", s.GetSummary)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down and runs cleanup jobs.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	defer cleanup.CleanUp()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.New("server shutdown error: " + err.Error())
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
