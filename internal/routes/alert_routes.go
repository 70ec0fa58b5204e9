package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/notifier"
	"bus-depot-backend/internal/repository"
)

func SetupAlertRoutes(app *fiber.App, db *gorm.DB, mailer *notifier.Mailer) {
	hdl := handler.NewAlertHandler(repository.NewAlertRepository(db), mailer)

	api := app.Group("/api/alerts")

	api.Post("/", hdl.PostAlert)
	api.Get("/", hdl.GetAlerts)
}
