package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hyperapp/internal/api/handlers/http/admin"
	"hyperapp/internal/api/handlers/http/alerts"
	"hyperapp/internal/api/handlers/http/system"
	"hyperapp/internal/api/handlers/http/zones"
	"hyperapp/internal/config"
	"hyperapp/internal/metrics"
	"hyperapp/internal/middleware"
	"hyperapp/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, collector *metrics.Collector, checks ...system.Check) *Server {
	zoneHandler := zones.NewHandler(logger, svc.Zones, svc, svc.Monitor, svc.Events)
	alertHandler := alerts.NewHandler(logger, svc.Alerts, svc.Relevance)
	adminHandler := admin.NewHandler(logger, svc.Stats, svc.Lifecycle)
	systemHandler := system.NewHandler(logger, checks...)

	r := InitRouter(cfg, zoneHandler, alertHandler, adminHandler, systemHandler, collector, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	zoneHandler *zones.Handler,
	alertHandler *alerts.Handler,
	adminHandler *admin.Handler,
	systemHandler *system.Handler,
	collector *metrics.Collector,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(collector.InstrumentHandler)

	r.Route("/api/v1", func(api chi.Router) {
		// ZONES: reads are open, mutations need the key
		api.Route("/geofences", func(gr chi.Router) {
			gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			gr.Get("/", zoneHandler.ZoneList)
			gr.Get("/events", zoneHandler.ZoneEvents)

			gr.Group(func(mr chi.Router) {
				mr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
				mr.Post("/", zoneHandler.ZoneCreate)
				mr.Put("/{id}", zoneHandler.ZoneUpdate)
				mr.Delete("/{id}", zoneHandler.ZoneDelete)
			})
		})

		// Position ingest carries the heaviest traffic, widest bucket.
		api.Route("/location", func(lr chi.Router) {
			lr.Use(middleware.Limit(30, 60, 5*time.Minute, logger))
			lr.Post("/update", zoneHandler.LocationUpdate)
		})

		// ALERTS
		api.Route("/alerts", func(ar chi.Router) {
			ar.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			ar.Post("/", alertHandler.AlertCreate)
			ar.Post("/sos", alertHandler.SOSTrigger)
			ar.Get("/nearby", alertHandler.AlertsNearby)

			ar.Route("/{id}", func(ir chi.Router) {
				ir.Post("/resolve", alertHandler.AlertResolve)
				ir.Post("/respond", alertHandler.AlertRespond)
			})
		})

		api.Route("/vibes", func(vr chi.Router) {
			vr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			vr.Get("/nearby", alertHandler.VibesNearby)
			vr.Get("/neighborhoods", alertHandler.VibeNeighborhoods)
			vr.Get("/score", alertHandler.VibeScore)
		})

		// ADMIN
		api.Route("/admin", func(adr chi.Router) {
			adr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			adr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			adr.Get("/stats", adminHandler.AdminStats)
			adr.Post("/lifecycle/sweep", adminHandler.AdminSweep)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	r.Get("/health", systemHandler.SystemHealth)
	r.Handle("/metrics", collector.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
