package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/usecase"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username and password are required"})
	}

	token, role, err := h.uc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		logrus.WithError(err).WithField("username", req.Username).Error("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  role,
	})
}

// DriverDashboard and DepoMasterDashboard sit behind Auth + Role; the
// payloads are what the login page redirects into.
func DriverDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to Driver Dashboard!"})
}

func DepoMasterDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to Depo Master Dashboard!"})
}
