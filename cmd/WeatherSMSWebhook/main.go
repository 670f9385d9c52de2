package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/app"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/config"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-sms-webhook/pkg/logger"
	"github.com/joho/godotenv"
)

// @title Weather SMS Webhook
// @version 1.0
// @description Replies to inbound SMS with a weather forecast for the coordinates in the message
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, cfg.ServiceName)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(*cfg, l, metrics.NewMetrics(cfg.ServiceName))

	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed to run")
	}
}
