package models

type TrainingDrill struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"` // Tactical, Physical or Technical
	DurationMin  int    `json:"durationMin"`
	Reps         string `json:"reps,omitempty"`
	ImageURL     string `json:"imageUrl"`
	Instructions string `json:"instructions"`
}

type TrainingSession struct {
	Day               string          `json:"day"`
	Focus             string          `json:"focus"`
	Drills            []TrainingDrill `json:"drills"`
	EstimatedDuration int             `json:"estimatedDuration"`
}
