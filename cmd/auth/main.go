package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/config"
	"bus-depot-backend/internal/notifier"
	"bus-depot-backend/internal/routes"
)

// Auth service: login, role-gated dashboards and the emergency alert feed.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	logrus.Info("database connected")

	var mailer *notifier.Mailer
	if cfg.SMTPHost != "" && cfg.AlertMailTo != "" {
		mailer = notifier.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.AlertMailTo)
		logrus.WithField("to", cfg.AlertMailTo).Info("alert mail notification enabled")
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, db, cfg.JWTSecret)
	routes.SetupAlertRoutes(app, db, mailer)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("shutting down auth service")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%d", cfg.AuthPort)
	logrus.WithField("addr", addr).Info("auth service listening")
	// Not fatal: the pool below still has to be released.
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Error("server stopped")
	}

	if err := config.CloseDB(db); err != nil {
		logrus.WithError(err).Error("closing database failed")
	}
}
