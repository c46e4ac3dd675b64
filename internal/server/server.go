package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/database"
	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/diegoclair/weekday-api/internal/domain/service"
	"github.com/diegoclair/weekday-api/internal/handlers"
	"github.com/diegoclair/weekday-api/migrator/sqlite"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	var dm contract.DataManager

	if cfg.HistoryEnabled() {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		log.Info("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed successfully")

		dm = database.NewInstance(db)
	} else {
		log.Warn("DATABASE_PATH is empty, lookup history disabled")
	}

	services, err := service.NewInstance(dm, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if services.Pruner != nil {
		services.Pruner.Start()
		defer services.Pruner.Stop()
	}

	if cfg.SlackSigningSecret == "" {
		log.Info("SLACK_SIGNING_SECRET not set, /slack/commands disabled")
	}

	handler := handlers.New(services.Day, handlers.WithSlack(cfg.SlackSigningSecret))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       (30 + 1) * time.Second,
		MaxHeaderBytes:    1 << 14,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":             cfg.Port,
			"default_timezone": cfg.DefaultTimezone,
		}).Info("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
