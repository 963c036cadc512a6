package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sports-arena/event-service/app"
	"github.com/sports-arena/event-service/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}
