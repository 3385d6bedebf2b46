package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
)

type stubRiskData struct {
	logs     []models.PerformanceLog
	injuries []models.InjuryRecord
	err      error
}

func (s *stubRiskData) GetPerformanceLogs(_ context.Context) ([]models.PerformanceLog, error) {
	return s.logs, s.err
}

func (s *stubRiskData) GetInjuryHistory(_ context.Context) ([]models.InjuryRecord, error) {
	return s.injuries, s.err
}

type stubExplainer struct {
	explanation string
	lastScore   float64
	lastFactors []string
}

func (s *stubExplainer) ExplainInjuryRisk(_ context.Context, score float64, factors []string, _ []models.PerformanceLog) string {
	s.lastScore = score
	s.lastFactors = factors
	return s.explanation
}

func TestGetAssessmentComposesScoreBandAndExplanation(t *testing.T) {
	data := &stubRiskData{
		logs: []models.PerformanceLog{
			{Strain: 9}, {Strain: 9}, {Strain: 9}, {Strain: 9}, {Strain: 9},
		},
		injuries: []models.InjuryRecord{{Status: models.InjuryResolved}},
	}
	explainer := &stubExplainer{explanation: "Five high-strain days in a row."}
	handler := NewRiskHandler(data, explainer)

	app := fiber.New()
	app.Get("/api/v1/injury-risk", handler.GetAssessment)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/injury-risk", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Assessment models.InjuryRiskAssessment `json:"assessment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	// avg strain 9 with no unresolved injuries: 0.2 + 0.4 = 0.6
	if body.Assessment.RiskScore < 0.59 || body.Assessment.RiskScore > 0.61 {
		t.Fatalf("unexpected score: %v", body.Assessment.RiskScore)
	}
	if body.Assessment.RiskLevel != models.RiskModerate {
		t.Fatalf("expected Moderate band, got %s", body.Assessment.RiskLevel)
	}
	if body.Assessment.Explanation != "Five high-strain days in a row." {
		t.Fatalf("unexpected explanation: %q", body.Assessment.Explanation)
	}
	if explainer.lastScore != body.Assessment.RiskScore {
		t.Fatalf("explainer saw score %v, response carries %v", explainer.lastScore, body.Assessment.RiskScore)
	}
	if len(explainer.lastFactors) == 0 {
		t.Fatalf("expected factors forwarded to explainer")
	}
}

func TestGetExplanationReturnsNarrativeOnly(t *testing.T) {
	data := &stubRiskData{
		logs: []models.PerformanceLog{{Strain: 7}, {Strain: 7}, {Strain: 7}},
	}
	explainer := &stubExplainer{explanation: "Load is steady, keep the current rhythm."}
	handler := NewRiskHandler(data, explainer)

	app := fiber.New()
	app.Get("/api/v1/assistant/injury-explanation", handler.GetExplanation)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assistant/injury-explanation", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Explanation string `json:"explanation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Explanation != "Load is steady, keep the current rhythm." {
		t.Fatalf("unexpected explanation: %q", body.Explanation)
	}
	// avg strain 7 with no injuries: 0.2 + 0.1 = 0.3
	if explainer.lastScore < 0.29 || explainer.lastScore > 0.31 {
		t.Fatalf("unexpected score forwarded: %v", explainer.lastScore)
	}
}

func TestGetAssessmentWithNoLogsReportsInsufficientData(t *testing.T) {
	handler := NewRiskHandler(&stubRiskData{}, &stubExplainer{explanation: "Not enough data yet."})

	app := fiber.New()
	app.Get("/api/v1/injury-risk", handler.GetAssessment)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/injury-risk", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Assessment models.InjuryRiskAssessment `json:"assessment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Assessment.RiskScore != 0.1 || body.Assessment.RiskLevel != models.RiskLow {
		t.Fatalf("unexpected assessment: %+v", body.Assessment)
	}
	if len(body.Assessment.Factors) != 1 || body.Assessment.Factors[0] != "Insufficient Data" {
		t.Fatalf("unexpected factors: %v", body.Assessment.Factors)
	}
}
