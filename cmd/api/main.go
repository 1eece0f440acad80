package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/catalog-cart/internal/analytics"
	"github.com/example/catalog-cart/internal/api"
	"github.com/example/catalog-cart/internal/auth"
	"github.com/example/catalog-cart/internal/command"
	"github.com/example/catalog-cart/internal/config"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/example/catalog-cart/internal/infrastructure/kafka"
	"github.com/example/catalog-cart/internal/infrastructure/store"
	"github.com/example/catalog-cart/internal/logging"
	"github.com/example/catalog-cart/internal/query"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.Named("api")

	if err := cfg.ValidateSession(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Catalog/cart demo starting",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("tax_rate", cfg.TaxRate.String()),
		zap.String("currency", cfg.Currency),
		zap.Strings("kafka_brokers", cfg.KafkaBrokers),
		zap.String("kafka_topic", cfg.KafkaTopic),
	)

	// Stores
	catalog := store.NewCatalogStore(product.SampleCatalog()...)
	carts := store.NewCartStore(cfg.TaxRate)

	// Analytics: always logged, published only when brokers are configured
	tracker := analytics.NewTracker(logger.Named("analytics"))
	var publisher command.EventPublisher
	if cfg.PublishEnabled() {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = analytics.NewPublisher(producer)
		logger.Info("Publishing analytics events to Kafka")
	} else {
		logger.Info("KAFKA_BROKERS not set, analytics events are only logged")
	}

	tokens := auth.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)
	logger.Info("Session tokens ready", zap.Duration("ttl", tokens.Expiry()))

	cmdHandler := command.NewHandler(catalog, carts, tracker, publisher, logger)
	queryHandler := query.NewHandler(catalog, carts, cfg.Currency)

	router := api.NewRouter(api.RouterConfig{
		Handlers:        api.NewHandlers(cmdHandler, queryHandler, logger),
		SessionHandlers: api.NewSessionHandlers(tokens, logger),
		Tokens:          tokens,
		Logger:          logger.Named("http"),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down...", zap.Int("cart_sessions", carts.Sessions()))
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Graceful shutdown failed", zap.Error(err))
	}
}
