// cmd/app/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pocketmart/pocketmart-data/internal/config"
	"github.com/pocketmart/pocketmart-data/internal/database"
	"github.com/pocketmart/pocketmart-data/internal/services"
	"github.com/pocketmart/pocketmart-data/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg.Log)

	// Initialize the store
	db, err := database.Initialize(cfg.Store)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize store")
	}
	defer database.Close(db)

	// Run store migrations
	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	// Wire the data layer: one service registry and one empty session,
	// both owned here and handed to the embedding presentation layer.
	sess := session.New()
	registry := services.NewRegistry(db)

	catalog, err := registry.Products.List(services.ListParams{})
	if err != nil {
		logrus.WithError(err).Fatal("store sanity read failed")
	}

	logrus.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"products":      len(catalog),
		"authenticated": sess.IsAuthenticated(),
	}).Info("data layer ready")

	// Wait for interrupt to shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")
}

func setupLogging(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
