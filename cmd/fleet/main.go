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
	"bus-depot-backend/internal/routes"
)

// Fleet service: attendance ledger, driver registry and route catalog.
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
		// Serving without storage would only hide the outage.
		logrus.WithError(err).Fatal("database connection failed")
	}
	logrus.Info("database connected")

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAttendanceRoutes(app, db, cfg.Location)
	routes.SetupDriverRoutes(app, db)
	routes.SetupRouteRoutes(app, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("shutting down fleet service")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%d", cfg.FleetPort)
	logrus.WithField("addr", addr).Info("fleet service listening")
	// Not fatal: the pool below still has to be released.
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Error("server stopped")
	}

	if err := config.CloseDB(db); err != nil {
		logrus.WithError(err).Error("closing database failed")
	}
}
