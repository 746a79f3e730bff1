package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tienda/internal/auth"
	"tienda/internal/category"
	"tienda/internal/commons"
	"tienda/internal/config"
	"tienda/internal/events"
	"tienda/internal/infrastructure/logger"
	"tienda/internal/infrastructure/mysql"
	"tienda/internal/metrics"
	"tienda/internal/order"
	"tienda/internal/product"
	"tienda/internal/server"
	"tienda/internal/user"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if cfg.Auth.Secret == "" {
		log.Fatal("AUTH_SECRET must be set")
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Brokers != "" {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		zapLogger.Info("kafka publisher enabled", zap.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	serverMetrics := metrics.NewServerMetrics()

	orderCtrl := order.NewModule(db, publisher, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	categoryCtrl := category.NewModule(db, zapLogger)
	userCtrl := user.NewModule(db, tokens, zapLogger)

	router := server.NewRouter(orderCtrl, productCtrl, categoryCtrl, userCtrl, tokens, serverMetrics, db, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfigFile(path)
	}
	return config.Load()
}
