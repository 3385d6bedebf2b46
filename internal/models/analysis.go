package models

// RiskPrediction is the raw heuristic output before banding.
type RiskPrediction struct {
	Score   float64  `json:"score"`
	Factors []string `json:"factors"`
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

type InjuryRiskAssessment struct {
	RiskScore   float64   `json:"riskScore"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	Factors     []string  `json:"factors"`
	Explanation string    `json:"explanation"`
}

type DietAnalysis struct {
	Status          string   `json:"status" jsonschema:"enum=Optimal,enum=Needs Improvement,enum=Poor"`
	MacroBalance    string   `json:"macroBalance"`
	Recommendations []string `json:"recommendations"`
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
