package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/repository"
	"bus-depot-backend/internal/service"
)

type BusHandler struct {
	buses    repository.BusRepository
	alerts   repository.AlertRepository
	schedule *service.ScheduleService
	loc      *time.Location
}

func NewBusHandler(buses repository.BusRepository, alerts repository.AlertRepository, schedule *service.ScheduleService, loc *time.Location) *BusHandler {
	return &BusHandler{buses: buses, alerts: alerts, schedule: schedule, loc: loc}
}

func (h *BusHandler) today() string {
	return time.Now().In(h.loc).Format(model.DateLayout)
}

// GetBuses lists every bus with today's availability, defaulting missing
// rows to "Yes" first.
func (h *BusHandler) GetBuses(c *fiber.Ctx) error {
	date := h.today()
	if err := h.buses.EnsureAvailability(date); err != nil {
		logrus.WithError(err).Error("defaulting availability failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	statuses, err := h.buses.GetStatuses(date)
	if err != nil {
		logrus.WithError(err).Error("fetching availability failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if statuses == nil {
		statuses = []repository.BusStatus{}
	}
	return c.JSON(statuses)
}

type AvailabilityRequest struct {
	BusID     uint   `json:"bus_id"`
	Available string `json:"available"`
}

func (h *BusHandler) UpdateAvailability(c *fiber.Ctx) error {
	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.BusID == 0 || (req.Available != "Yes" && req.Available != "No") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": `Invalid input. Provide bus_id and available ("Yes" or "No").`,
		})
	}

	if err := h.buses.UpsertAvailability(req.BusID, h.today(), req.Available); err != nil {
		logrus.WithError(err).WithField("bus_id", req.BusID).Error("updating availability failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Availability updated successfully"})
}

// GetSchedule generates today's board (idempotent) and flags buses that
// raised an alert today.
func (h *BusHandler) GetSchedule(c *fiber.Ctx) error {
	entries, err := h.schedule.GenerateToday()
	if err != nil {
		logrus.WithError(err).Error("schedule generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	alerts, err := h.alerts.GetByDate(h.today())
	if err != nil {
		logrus.WithError(err).Error("fetching alerts failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	service.AnnotateAlerts(entries, alerts)

	return c.JSON(fiber.Map{
		"message":  "Schedule generated successfully.",
		"schedule": entries,
	})
}

// GetDepotAlerts serves today's alert feed for the depot board.
func (h *BusHandler) GetDepotAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.GetByDate(h.today())
	if err != nil {
		logrus.WithError(err).Error("fetching alerts failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if alerts == nil {
		alerts = []model.Alert{}
	}
	return c.JSON(fiber.Map{"alerts": alerts})
}
