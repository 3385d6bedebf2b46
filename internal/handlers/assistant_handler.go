package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
)

type assistantService interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) string
	AnalyzeDiet(ctx context.Context, logs []models.DietLog) models.DietAnalysis
	GenerateTrainingPlan(ctx context.Context, sport string) []models.TrainingSession
	AnalyzeFinances(ctx context.Context, records []models.FinancialRecord) string
}

type assistantDataService interface {
	GetProfile(ctx context.Context) (models.AthleteProfile, error)
	GetDietLogs(ctx context.Context) ([]models.DietLog, error)
	GetFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error)
}

type AssistantHandler struct {
	assistant assistantService
	data      assistantDataService
}

func NewAssistantHandler(assistant assistantService, data assistantDataService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, data: data}
}

type chatRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	reply := h.assistant.Chat(c.Context(), req.History, req.Message)
	return c.JSON(fiber.Map{"reply": reply})
}

func (h *AssistantHandler) DietAnalysis(c *fiber.Ctx) error {
	logs, err := h.data.GetDietLogs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch diet logs"})
	}
	return c.JSON(fiber.Map{"analysis": h.assistant.AnalyzeDiet(c.Context(), logs)})
}

type trainingPlanRequest struct {
	Sport string `json:"sport"`
}

func (h *AssistantHandler) TrainingPlan(c *fiber.Ctx) error {
	var req trainingPlanRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		profile, err := h.data.GetProfile(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to fetch profile"})
		}
		sport = profile.Sport
	}

	return c.JSON(fiber.Map{"plan": h.assistant.GenerateTrainingPlan(c.Context(), sport)})
}

func (h *AssistantHandler) FinancialAdvice(c *fiber.Ctx) error {
	records, err := h.data.GetFinancialRecords(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch financial records"})
	}
	return c.JSON(fiber.Map{"advice": h.assistant.AnalyzeFinances(c.Context(), records)})
}
