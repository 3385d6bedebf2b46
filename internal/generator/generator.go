// Package generator derives plausible per-domain records from the current
// athlete profile. Generators are pure given a rand source and a clock, so
// tests can pin both.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mujahidul282/Athlete360/internal/models"
)

type sportCategory struct {
	keywords []string
	metric   string
	unit     string
	baseVal  float64
}

// sportCategories is an ordered dispatch table: the first category whose
// keyword appears in the profile's sport string wins, so the order here is
// load-bearing.
var sportCategories = []sportCategory{
	{keywords: []string{"cricket"}, metric: "Batting Session (Runs)", unit: "runs", baseVal: 45},
	{keywords: []string{"sprint", "athletic"}, metric: "100m Sprint", unit: "s", baseVal: 11.5},
	{keywords: []string{"football", "soccer"}, metric: "Distance Covered", unit: "km", baseVal: 9.0},
	{keywords: []string{"badminton", "tennis"}, metric: "Rally Duration", unit: "mins", baseVal: 40},
	{keywords: []string{"weight", "lift"}, metric: "Deadlift 1RM", unit: "kg", baseVal: 140},
}

var defaultCategory = sportCategory{metric: "Workout Intensity", unit: "cal", baseVal: 500}

func categoryForSport(sport string) sportCategory {
	lowered := strings.ToLower(sport)
	for _, category := range sportCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return category
			}
		}
	}
	return defaultCategory
}

// PerformanceLogs produces exactly 7 records, oldest first, one per day
// ending on now's date. Values vary up to ±7.5% around the sport's baseline;
// sprint times are floored at 9.5s since lower is better there and a sub-9.5
// hundred is not a plausible training number.
func PerformanceLogs(profile models.AthleteProfile, now time.Time, rng *rand.Rand) []models.PerformanceLog {
	category := categoryForSport(profile.Sport)

	logs := make([]models.PerformanceLog, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -(6 - i))

		variance := (rng.Float64() - 0.5) * (category.baseVal * 0.15)
		value := category.baseVal + variance
		if category.unit == "s" {
			value = math.Max(9.5, value)
		}

		logs = append(logs, models.PerformanceLog{
			ID:          uuid.NewString(),
			Date:        date.Format("2006-01-02"),
			Metric:      category.metric,
			Value:       math.Round(value*100) / 100,
			Unit:        category.unit,
			Strain:      6 + rng.Intn(5),
			DurationMin: 45 + rng.Intn(60),
		})
	}
	return logs
}

// DietLogs builds one record per meal slot for today. Target calories are a
// rough maintenance estimate plus an athlete surplus, split evenly per meal.
// Protein is the full daily target repeated on each meal, mirroring the
// source data model.
func DietLogs(profile models.AthleteProfile, now time.Time) []models.DietLog {
	weight := profile.WeightKg
	if weight <= 0 {
		weight = 70
	}
	maintenance := weight * 30
	target := maintenance + 300
	perMeal := target / 4
	date := now.Format("2006-01-02")

	meals := []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	logs := make([]models.DietLog, 0, len(meals))
	for _, meal := range meals {
		logs = append(logs, models.DietLog{
			ID:          uuid.NewString(),
			Date:        date,
			Meal:        meal,
			Calories:    int(math.Floor(perMeal)),
			Protein:     int(math.Floor(weight * 0.5)),
			Carbs:       int(math.Floor(perMeal / 4)),
			Fats:        int(math.Floor(perMeal / 9)),
			Description: fmt.Sprintf("Healthy %s specific %s", profile.Sport, strings.ToLower(meal)),
		})
	}
	return logs
}

// Jobs interpolates the profile's sport into a fixed set of openings.
func Jobs(profile models.AthleteProfile) []models.JobOpportunity {
	sport := profile.Sport
	return []models.JobOpportunity{
		{
			ID:           "j1",
			Title:        fmt.Sprintf("%s Coach", sport),
			Organization: "Sports Authority of India",
			Type:         "Government",
			Location:     "New Delhi",
			SalaryRange:  "₹45,000 - ₹80,000",
			Eligibility:  "National Level Participation",
			Deadline:     "2024-05-01",
		},
		{
			ID:           "j2",
			Title:        "Sports Quota Officer",
			Organization: "Indian Railways",
			Type:         "Government",
			Location:     "Mumbai",
			SalaryRange:  "₹50,000+",
			Eligibility:  "State Medalist",
			Deadline:     "2024-04-15",
		},
		{
			ID:           "j3",
			Title:        "Head Coach",
			Organization: "Private Academy",
			Type:         "Private",
			Location:     "Bangalore",
			SalaryRange:  "₹60,000/mo",
			Eligibility:  "Certified Coach",
			Deadline:     "2024-03-30",
		},
	}
}

// Tournaments interpolates the profile's sport into a fixed event list.
func Tournaments(profile models.AthleteProfile) []models.Tournament {
	sport := profile.Sport
	return []models.Tournament{
		{
			ID:                   "t1",
			Name:                 fmt.Sprintf("National %s Championship", sport),
			Date:                 "2024-06-10",
			Location:             "Pune Balewadi Stadium",
			PrizePool:            "₹10,00,000",
			EntryFee:             "₹1000",
			RegistrationDeadline: "2024-05-20",
		},
		{
			ID:                   "t2",
			Name:                 fmt.Sprintf("State Level %s Meet", sport),
			Date:                 "2024-04-05",
			Location:             "Local Sports Complex",
			PrizePool:            "₹50,000",
			EntryFee:             "₹200",
			RegistrationDeadline: "2024-03-25",
		},
	}
}
