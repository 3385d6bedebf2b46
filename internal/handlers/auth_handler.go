package handlers

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/mujahidul282/Athlete360/internal/services"
	"github.com/mujahidul282/Athlete360/pkg/utils"
)

type authService interface {
	Register(ctx context.Context, profile models.AthleteProfile, password string) (models.AthleteProfile, error)
	Login(ctx context.Context, email, password string) (models.AthleteProfile, error)
	GetProfile(ctx context.Context) (models.AthleteProfile, error)
}

type AuthHandler struct {
	service   authService
	jwtSecret string
}

func NewAuthHandler(service authService, jwtSecret string) *AuthHandler {
	return &AuthHandler{service: service, jwtSecret: jwtSecret}
}

type registerRequest struct {
	Email         string                `json:"email"`
	Password      string                `json:"password"`
	Name          string                `json:"name"`
	Sport         string                `json:"sport"`
	Age           int                   `json:"age"`
	HeightCm      float64               `json:"heightCm"`
	WeightKg      float64               `json:"weightKg"`
	Role          models.UserRole       `json:"role"`
	AvatarURL     string                `json:"avatarUrl"`
	Bio           string                `json:"bio"`
	Medical       *models.MedicalInfo   `json:"medical"`
	DeviceMetrics *models.DeviceMetrics `json:"deviceMetrics"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	// Stored as typed; login compares case-insensitively.
	req.Email = parsedEmail.Address
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if req.Role == "" {
		req.Role = models.RoleAthlete
	}
	switch req.Role {
	case models.RoleAthlete, models.RoleCoach, models.RolePhysio:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	profile, err := h.service.Register(c.Context(), models.AthleteProfile{
		Email:         req.Email,
		Name:          req.Name,
		Sport:         req.Sport,
		Age:           req.Age,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Role:          req.Role,
		AvatarURL:     req.AvatarURL,
		Bio:           req.Bio,
		Medical:       req.Medical,
		DeviceMetrics: req.DeviceMetrics,
	}, req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to register profile"})
	}

	token, err := utils.GenerateToken(profile.ID, string(profile.Role), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"profile": profile.Sanitized(),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to lookup profile"})
	}

	token, err := utils.GenerateToken(profile.ID, string(profile.Role), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"profile": profile.Sanitized(),
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(fiber.Map{"profile": profile.Sanitized()})
}
