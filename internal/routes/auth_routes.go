package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/middleware"
	"bus-depot-backend/internal/repository"
	"bus-depot-backend/internal/usecase"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(db), jwtSecret)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/login", hdl.Login)

	app.Get("/driver-dashboard",
		middleware.Auth(jwtSecret), middleware.Role("driver"),
		handler.DriverDashboard)
	app.Get("/depo-master-dashboard",
		middleware.Auth(jwtSecret), middleware.Role("depo-master"),
		handler.DepoMasterDashboard)
}
