package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/logging"
	"github.com/diegoclair/weekday-api/internal/server"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
