package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/repository"
)

func SetupRouteRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewRouteHandler(repository.NewRouteRepository(db))

	api := app.Group("/api/routes")

	api.Get("/", hdl.GetRoutes)
	api.Get("/search", hdl.SearchRoutes)
}
