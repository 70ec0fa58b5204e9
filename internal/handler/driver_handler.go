package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bus-depot-backend/internal/repository"
)

type DriverHandler struct {
	repo repository.DriverRepository
}

func NewDriverHandler(repo repository.DriverRepository) *DriverHandler {
	return &DriverHandler{repo: repo}
}

// GetDrivers lists the regular roster; spare drivers only appear through
// the replacement flow.
func (h *DriverHandler) GetDrivers(c *fiber.Ctx) error {
	drivers, err := h.repo.GetRegular()
	if err != nil {
		logrus.WithError(err).Error("fetching drivers failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(drivers)
}

func (h *DriverHandler) GetDriver(c *fiber.Ctx) error {
	driver, err := h.repo.GetByID(c.Params("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	if err != nil {
		logrus.WithError(err).WithField("driver_id", c.Params("id")).Error("fetching driver failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(driver)
}
