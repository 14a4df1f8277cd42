package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratefeed/internal/app/events"
	ratesapp "ratefeed/internal/app/handlers/rates"
	"ratefeed/internal/app/queries"
	"ratefeed/internal/infra/broker/kafka"
	"ratefeed/internal/infra/config"
	ginserver "ratefeed/internal/infra/http/gin"
	"ratefeed/internal/infra/obs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		obs.NewLogger("dev").Error("configuration load failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	queryBus := queries.NewInMemoryBus()
	losHandler := &ratesapp.ComputeLOSRatesHandler{MaxRelevantLOS: cfg.MaxRelevantLOS}
	queries.RegisterHandler(queryBus, ratesapp.ComputeLOSRatesQuery{}.Key(), losHandler)
	nightlyHandler := &ratesapp.ComputeNightlyRatesHandler{HorizonYears: cfg.HorizonYears}
	queries.RegisterHandler(queryBus, ratesapp.ComputeNightlyRatesQuery{}.Key(), nightlyHandler)

	notifier := &events.Notifier{TopicPrefix: cfg.KafkaTopicPrefix, Logger: logger}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Error("kafka producer init failed", "brokers", cfg.KafkaBrokers, "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		notifier.Publisher = producer
		logger.Info("rates event publishing enabled", "brokers", cfg.KafkaBrokers)
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, ginserver.Handlers{
		Rates: ginserver.RatesHandler{Queries: queryBus, Notifier: notifier},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}
