package models

type UserRole string

const (
	RoleAthlete UserRole = "ATHLETE"
	RoleCoach   UserRole = "COACH"
	RolePhysio  UserRole = "PHYSIO"
)

type MedicalInfo struct {
	Allergies   string `json:"allergies"`
	Conditions  string `json:"conditions"`
	BloodGroup  string `json:"bloodGroup"`
	LastCheckup string `json:"lastCheckup"`
}

type DeviceMetrics struct {
	HeartRateResting     int     `json:"heartRateResting"`
	HeartRateVariability int     `json:"heartRateVariability"`
	SpO2                 int     `json:"spO2"`
	SleepHours           float64 `json:"sleepHours"`
	SleepQuality         int     `json:"sleepQuality"`
	VO2Max               int     `json:"vo2Max"`
	Steps                int     `json:"steps"`
	CaloriesBurned       int     `json:"caloriesBurned"`
	StressLevel          string  `json:"stressLevel"`
}

// AthleteProfile is the single identity record the whole store hangs off.
// Exactly one profile exists at a time; every generated domain derives from it.
type AthleteProfile struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"passwordHash,omitempty"`
	Name          string         `json:"name"`
	Sport         string         `json:"sport"`
	Age           int            `json:"age"`
	HeightCm      float64        `json:"heightCm"`
	WeightKg      float64        `json:"weightKg"`
	Role          UserRole       `json:"role"`
	AvatarURL     string         `json:"avatarUrl"`
	Bio           string         `json:"bio,omitempty"`
	Medical       *MedicalInfo   `json:"medical,omitempty"`
	DeviceMetrics *DeviceMetrics `json:"deviceMetrics,omitempty"`
}

// Sanitized returns a copy safe to put on the wire.
func (p AthleteProfile) Sanitized() AthleteProfile {
	p.PasswordHash = ""
	return p
}

// ProfileUpdate is a shallow-merge patch: nil fields are left untouched,
// non-nil fields replace the stored value wholesale. Nested Medical and
// DeviceMetrics records are never deep-merged.
type ProfileUpdate struct {
	Email         *string        `json:"email"`
	Password      *string        `json:"password"`
	Name          *string        `json:"name"`
	Sport         *string        `json:"sport"`
	Age           *int           `json:"age"`
	HeightCm      *float64       `json:"heightCm"`
	WeightKg      *float64       `json:"weightKg"`
	Role          *UserRole      `json:"role"`
	AvatarURL     *string        `json:"avatarUrl"`
	Bio           *string        `json:"bio"`
	Medical       *MedicalInfo   `json:"medical"`
	DeviceMetrics *DeviceMetrics `json:"deviceMetrics"`
}
