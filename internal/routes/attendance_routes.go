package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/repository"
	"bus-depot-backend/internal/usecase"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, loc *time.Location) {
	repo := repository.NewAttendanceRepository(db)
	uc := usecase.NewAttendanceUsecase(repo, loc)
	hdl := handler.NewAttendanceHandler(uc)

	api := app.Group("/api/attendance")

	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Post("/replace", hdl.Replace)
	api.Put("/migrate", hdl.Migrate)
}
