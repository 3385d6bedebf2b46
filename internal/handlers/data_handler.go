package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
)

type dataService interface {
	GetPerformanceLogs(ctx context.Context) ([]models.PerformanceLog, error)
	GetDietLogs(ctx context.Context) ([]models.DietLog, error)
	GetInjuryHistory(ctx context.Context) ([]models.InjuryRecord, error)
	GetJobs(ctx context.Context) ([]models.JobOpportunity, error)
	GetTournaments(ctx context.Context) ([]models.Tournament, error)
	GetCoachingGigs(ctx context.Context) ([]models.CoachingGig, error)
	GetFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error)
	GetCareerGoals(ctx context.Context) ([]models.CareerGoal, error)
	GetMedicalReports(ctx context.Context) ([]models.MedicalReport, error)
	AddMedicalReport(ctx context.Context, report models.MedicalReport) (models.MedicalReport, error)
}

// DataHandler serves the per-domain accessors. Each read either returns the
// cached collection or triggers generation in the service layer; the handler
// itself is a thin boundary.
type DataHandler struct {
	service dataService
}

func NewDataHandler(service dataService) *DataHandler {
	return &DataHandler{service: service}
}

func (h *DataHandler) GetPerformanceLogs(c *fiber.Ctx) error {
	logs, err := h.service.GetPerformanceLogs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch performance logs"})
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (h *DataHandler) GetDietLogs(c *fiber.Ctx) error {
	logs, err := h.service.GetDietLogs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch diet logs"})
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (h *DataHandler) GetInjuryHistory(c *fiber.Ctx) error {
	injuries, err := h.service.GetInjuryHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch injury history"})
	}
	return c.JSON(fiber.Map{"injuries": injuries})
}

func (h *DataHandler) GetJobs(c *fiber.Ctx) error {
	jobs, err := h.service.GetJobs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch jobs"})
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

func (h *DataHandler) GetTournaments(c *fiber.Ctx) error {
	tournaments, err := h.service.GetTournaments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch tournaments"})
	}
	return c.JSON(fiber.Map{"tournaments": tournaments})
}

func (h *DataHandler) GetCoachingGigs(c *fiber.Ctx) error {
	gigs, err := h.service.GetCoachingGigs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch coaching gigs"})
	}
	return c.JSON(fiber.Map{"gigs": gigs})
}

func (h *DataHandler) GetFinancialRecords(c *fiber.Ctx) error {
	records, err := h.service.GetFinancialRecords(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch financial records"})
	}
	return c.JSON(fiber.Map{"records": records})
}

func (h *DataHandler) GetCareerGoals(c *fiber.Ctx) error {
	goals, err := h.service.GetCareerGoals(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch career goals"})
	}
	return c.JSON(fiber.Map{"goals": goals})
}

func (h *DataHandler) GetMedicalReports(c *fiber.Ctx) error {
	reports, err := h.service.GetMedicalReports(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch medical reports"})
	}
	return c.JSON(fiber.Map{"reports": reports})
}

func (h *DataHandler) AddMedicalReport(c *fiber.Ctx) error {
	var report models.MedicalReport
	if err := c.BodyParser(&report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(report.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	saved, err := h.service.AddMedicalReport(c.Context(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save medical report"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": saved})
}
