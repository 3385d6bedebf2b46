package models

type PerformanceLog struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Strain      int     `json:"strain"`
	DurationMin int     `json:"durationMin"`
}

type InjurySeverity string

const (
	SeverityLow    InjurySeverity = "Low"
	SeverityMedium InjurySeverity = "Medium"
	SeverityHigh   InjurySeverity = "High"
)

type InjuryStatus string

const (
	InjuryActive     InjuryStatus = "Active"
	InjuryRecovering InjuryStatus = "Recovering"
	InjuryResolved   InjuryStatus = "Resolved"
)

type InjuryRecord struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	Area      string         `json:"area"`
	Severity  InjurySeverity `json:"severity"`
	Status    InjuryStatus   `json:"status"`
	PainLevel int            `json:"painLevel"`
}

type DietLog struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Meal        string `json:"meal"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fats        int    `json:"fats"`
	Description string `json:"description"`
}
