package generator

import (
	"log"
	"sync"

	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/mujahidul282/Athlete360/pkg/utils"
)

// SeedPassword is the demo credential accepted until a profile is registered.
const SeedPassword = "password"

const SeedEmail = "demo@athlete360.com"

var (
	seedHashOnce sync.Once
	seedHash     string
)

func seedPasswordHash() string {
	seedHashOnce.Do(func() {
		hash, err := utils.HashPassword(SeedPassword)
		if err != nil {
			log.Panicf("hash seed password: %v", err)
		}
		seedHash = hash
	})
	return seedHash
}

// SeedProfile is the fallback identity used only when no profile has been
// registered yet.
func SeedProfile() models.AthleteProfile {
	return models.AthleteProfile{
		ID:           "a1",
		Email:        SeedEmail,
		PasswordHash: seedPasswordHash(),
		Name:         "Rohan Gupta",
		Sport:        "Athletics (Sprints)",
		Age:          22,
		HeightCm:     178,
		WeightKg:     72,
		Role:         models.RoleAthlete,
		AvatarURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		Medical: &models.MedicalInfo{
			Allergies:   "None",
			Conditions:  "None",
			BloodGroup:  "O+",
			LastCheckup: "2023-08-15",
		},
		DeviceMetrics: &models.DeviceMetrics{
			HeartRateResting:     52,
			HeartRateVariability: 65,
			SpO2:                 98,
			SleepHours:           7.5,
			SleepQuality:         85,
			VO2Max:               58,
			Steps:                12500,
			CaloriesBurned:       2800,
			StressLevel:          "Moderate",
		},
	}
}

// SeedInjuries is the minimal history a fresh identity starts with: one
// resolved low-severity record, so risk scoring has no active injuries.
func SeedInjuries() []models.InjuryRecord {
	return []models.InjuryRecord{
		{
			ID:        "i1",
			Date:      "2023-11-15",
			Area:      "General Fatigue",
			Severity:  models.SeverityLow,
			Status:    models.InjuryResolved,
			PainLevel: 1,
		},
	}
}

func SeedGigs() []models.CoachingGig {
	return []models.CoachingGig{
		{
			ID:          "g1",
			ClientName:  "Local Club",
			Location:    "City Stadium",
			Rate:        "₹1000/hr",
			Requirement: "Assistant for Junior Team.",
		},
	}
}

// FinancialRecords and CareerGoals are static collections: they are not
// profile-derived and are served without being cached.
func FinancialRecords() []models.FinancialRecord {
	return []models.FinancialRecord{
		{ID: "f1", Date: "2023-10-01", Type: "Income", Category: "Sponsorship", Amount: 25000, Description: "Brand Deal"},
		{ID: "f2", Date: "2023-10-05", Type: "Expense", Category: "Equipment", Amount: 8000, Description: "Gear Upgrade"},
	}
}

func CareerGoals() []models.CareerGoal {
	return []models.CareerGoal{
		{ID: "c1", Title: "Qualify for Nationals", TargetDate: "2024-12-01", Status: "In Progress"},
	}
}
