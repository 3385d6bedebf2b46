package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/mujahidul282/Athlete360/internal/services"
)

type riskDataService interface {
	GetPerformanceLogs(ctx context.Context) ([]models.PerformanceLog, error)
	GetInjuryHistory(ctx context.Context) ([]models.InjuryRecord, error)
}

type riskExplainer interface {
	ExplainInjuryRisk(ctx context.Context, score float64, factors []string, logs []models.PerformanceLog) string
}

type RiskHandler struct {
	data      riskDataService
	explainer riskExplainer
}

func NewRiskHandler(data riskDataService, explainer riskExplainer) *RiskHandler {
	return &RiskHandler{data: data, explainer: explainer}
}

// GetAssessment runs the risk heuristic over current logs and injuries,
// bands the score and attaches the assistant's explanation.
func (h *RiskHandler) GetAssessment(c *fiber.Ctx) error {
	logs, err := h.data.GetPerformanceLogs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch performance logs"})
	}
	injuries, err := h.data.GetInjuryHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch injury history"})
	}

	prediction := services.PredictInjuryRisk(logs, injuries)
	assessment := models.InjuryRiskAssessment{
		RiskScore:   prediction.Score,
		RiskLevel:   services.RiskLevelFor(prediction.Score),
		Factors:     prediction.Factors,
		Explanation: h.explainer.ExplainInjuryRisk(c.Context(), prediction.Score, prediction.Factors, logs),
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

// GetExplanation serves only the narrative part of the assessment, for
// clients that already hold the score and just want it rephrased.
func (h *RiskHandler) GetExplanation(c *fiber.Ctx) error {
	logs, err := h.data.GetPerformanceLogs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch performance logs"})
	}
	injuries, err := h.data.GetInjuryHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch injury history"})
	}

	prediction := services.PredictInjuryRisk(logs, injuries)
	explanation := h.explainer.ExplainInjuryRisk(c.Context(), prediction.Score, prediction.Factors, logs)
	return c.JSON(fiber.Map{"explanation": explanation})
}
