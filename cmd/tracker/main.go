package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/catalog-cart/internal/analytics"
	"github.com/example/catalog-cart/internal/config"
	"github.com/example/catalog-cart/internal/infrastructure/kafka"
	"github.com/example/catalog-cart/internal/logging"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.Named("tracker")

	brokers := cfg.KafkaBrokers
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	logger.Info("Analytics tracker starting",
		zap.Strings("kafka_brokers", brokers),
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group", cfg.KafkaGroup),
	)

	tracker := analytics.NewTracker(logger.Named("analytics"))

	consumer := kafka.NewConsumer(brokers, cfg.KafkaTopic, cfg.KafkaGroup, logger)
	defer consumer.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Starting event consumer...")
		if err := consumer.Consume(ctx, tracker.HandleMessage); err != nil && ctx.Err() == nil {
			logger.Error("Consumer error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down...")
	cancel()
	<-done
}
