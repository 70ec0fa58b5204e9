package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/config"
	"bus-depot-backend/internal/database"
)

func main() {
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
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logrus.WithError(err).Error("closing database failed")
		}
	}()

	logrus.Info("seeding database")
	database.SeedAll(db)
	logrus.Info("seeding done")
}
