package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
)

type profileService interface {
	GetProfile(ctx context.Context) (models.AthleteProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.AthleteProfile, error)
	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type ProfileHandler struct {
	service profileService
}

func NewProfileHandler(service profileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(fiber.Map{"profile": profile.Sanitized()})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var update models.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.UpdateProfile(c.Context(), update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{"profile": profile.Sanitized()})
}

func (h *ProfileHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.service.GetTheme(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch theme"})
	}
	return c.JSON(fiber.Map{"theme": theme})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (h *ProfileHandler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Theme != "light" && req.Theme != "dark" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid theme"})
	}

	if err := h.service.SetTheme(c.Context(), req.Theme); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save theme"})
	}
	return c.JSON(fiber.Map{"theme": req.Theme})
}
