package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bus-depot-backend/internal/handler"
	"bus-depot-backend/internal/repository"
	"bus-depot-backend/internal/service"
)

// SetupBusRoutes wires the depot service surface and returns the schedule
// service so main can hang the daily task off it.
func SetupBusRoutes(app *fiber.App, db *gorm.DB, loc *time.Location) *service.ScheduleService {
	busRepo := repository.NewBusRepository(db)
	schedRepo := repository.NewScheduleRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	svc := service.NewScheduleService(busRepo, schedRepo, routeRepo, loc)
	hdl := handler.NewBusHandler(busRepo, alertRepo, svc, loc)

	api := app.Group("/api")

	api.Get("/buses", hdl.GetBuses)
	api.Post("/updateAvailability", hdl.UpdateAvailability)
	api.Get("/schedule", hdl.GetSchedule)
	api.Get("/alerts", hdl.GetDepotAlerts)

	return svc
}
