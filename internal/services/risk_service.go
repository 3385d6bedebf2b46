package services

import (
	"math"

	"github.com/mujahidul282/Athlete360/internal/models"
)

// PredictInjuryRisk combines recent training strain with active injury count
// into a heuristic score. It looks at the last five logs of the
// chronologically ordered sequence (or all of them when fewer exist).
func PredictInjuryRisk(logs []models.PerformanceLog, injuries []models.InjuryRecord) models.RiskPrediction {
	recent := logs
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	if len(recent) == 0 {
		return models.RiskPrediction{Score: 0.1, Factors: []string{"Insufficient Data"}}
	}

	totalStrain := 0
	for _, entry := range recent {
		totalStrain += entry.Strain
	}
	avgStrain := float64(totalStrain) / float64(len(recent))

	strainRisk := 0.1
	if avgStrain > 8 {
		strainRisk = 0.4
	}

	activeInjuries := 0
	for _, injury := range injuries {
		if injury.Status != models.InjuryResolved {
			activeInjuries++
		}
	}

	score := math.Min(0.2+strainRisk+float64(activeInjuries)*0.25, 0.99)

	strainFactor := "Moderate Training Load"
	if avgStrain > 7.5 {
		strainFactor = "High Recent Strain"
	}
	injuryFactor := "No Active Injuries"
	if activeInjuries > 0 {
		injuryFactor = "Active Recovery in Progress"
	}

	return models.RiskPrediction{
		Score:   score,
		Factors: []string{strainFactor, injuryFactor, "Load Monotony Detected"},
	}
}

// RiskLevelFor bands a score into Low/Moderate/High. The thresholds are a
// contract shared with the UI.
func RiskLevelFor(score float64) models.RiskLevel {
	switch {
	case score > 0.7:
		return models.RiskHigh
	case score > 0.4:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
