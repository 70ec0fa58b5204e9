package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/usecase"
)

type AttendanceHandler struct {
	uc *usecase.AttendanceUsecase
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type AttendanceRequest struct {
	DriverID string `json:"driver_id"`
}

type ReplaceRequest struct {
	OriginalDriverID    string `json:"originalDriverId"`
	ReplacementDriverID string `json:"replacementDriverId"`
}

type MigrateRequest struct {
	OldDriverID string `json:"oldDriverId"`
	NewDriverID string `json:"newDriverId"`
	Date        string `json:"date"`
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DriverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "driver_id is required"})
	}

	result, err := h.uc.CheckIn(req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyCheckedIn):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver has already checked in today"})
		case errors.Is(err, usecase.ErrDuplicateSlot):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attendance record already exists for today"})
		default:
			logrus.WithError(err).WithField("driver_id", req.DriverID).Error("check-in failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message":       "Check-in successful",
		"attendance_id": result.AttendanceID,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DriverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "driver_id is required"})
	}

	result, err := h.uc.CheckOut(req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotCheckedIn):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver has not checked in today"})
		case errors.Is(err, usecase.ErrAlreadyCheckedOut):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver has already checked out today"})
		default:
			logrus.WithError(err).WithField("driver_id", req.DriverID).Error("check-out failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
	}

	return c.JSON(fiber.Map{
		"message":       "Check-out successful",
		"attendance_id": result.AttendanceID,
	})
}

func (h *AttendanceHandler) Replace(c *fiber.Ctx) error {
	var req ReplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OriginalDriverID == "" || req.ReplacementDriverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "originalDriverId and replacementDriverId are required"})
	}

	result, err := h.uc.Replace(req.OriginalDriverID, req.ReplacementDriverID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCannotReplaceAfterCheckIn):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver has already checked in and cannot be replaced"})
		case errors.Is(err, usecase.ErrDuplicateSlot):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attendance record already exists for today"})
		default:
			logrus.WithError(err).WithFields(logrus.Fields{
				"original_driver_id":    req.OriginalDriverID,
				"replacement_driver_id": req.ReplacementDriverID,
			}).Error("replacement failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message":       "Replacement successful",
		"attendance_id": result.AttendanceID,
	})
}

func (h *AttendanceHandler) Migrate(c *fiber.Ctx) error {
	var req MigrateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OldDriverID == "" || req.NewDriverID == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "oldDriverId, newDriverId and date are required"})
	}

	affected, err := h.uc.Migrate(req.OldDriverID, req.NewDriverID, req.Date)
	if err != nil {
		logrus.WithError(err).WithField("date", req.Date).Error("migration failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message":      "Migration successful",
		"affectedRows": affected,
	})
}
