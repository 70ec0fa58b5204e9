package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/notifier"
	"bus-depot-backend/internal/repository"
)

type AlertHandler struct {
	repo   repository.AlertRepository
	mailer *notifier.Mailer // nil when SMTP is not configured
}

func NewAlertHandler(repo repository.AlertRepository, mailer *notifier.Mailer) *AlertHandler {
	return &AlertHandler{repo: repo, mailer: mailer}
}

type AlertRequest struct {
	BusNo       string `json:"busNo"`
	Route       string `json:"route"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
	Location    string `json:"location"`
	Time        string `json:"time"`
}

// missingFields names every absent mandatory field so the driver can fix
// the whole form in one go.
func (r *AlertRequest) missingFields() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"busNo", r.BusNo},
		{"route", r.Route},
		{"source", r.Source},
		{"destination", r.Destination},
		{"message", r.Message},
		{"location", r.Location},
		{"time", r.Time},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func (h *AlertHandler) PostAlert(c *fiber.Ctx) error {
	var req AlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if missing := req.missingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	alert := model.Alert{
		BusNo:       req.BusNo,
		Route:       req.Route,
		Source:      req.Source,
		Destination: req.Destination,
		Message:     req.Message,
		Location:    req.Location,
		Time:        req.Time,
	}
	if err := h.repo.Create(&alert); err != nil {
		logrus.WithError(err).WithField("bus_no", req.BusNo).Error("storing alert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if h.mailer != nil {
		go h.mailer.SendAlert(&alert)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Alert created",
		"id":      alert.ID,
	})
}

func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.repo.GetAllDesc()
	if err != nil {
		logrus.WithError(err).Error("fetching alerts failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if alerts == nil {
		alerts = []model.Alert{}
	}
	return c.JSON(alerts)
}
