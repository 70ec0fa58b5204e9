package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/repository"
)

func SetupDriverRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewDriverHandler(repository.NewDriverRepository(db))

	api := app.Group("/api/drivers")

	api.Get("/", hdl.GetDrivers)
	api.Get("/:id", hdl.GetDriver)
}
