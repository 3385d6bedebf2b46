package models

type DoctorProfile struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Contact   string `json:"contact"`
}

// MedicalReport is an append-only, user-attached record. RecoveryPlan is an
// ordered list of steps.
type MedicalReport struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Title        string        `json:"title"`
	Doctor       DoctorProfile `json:"doctor"`
	Diagnosis    string        `json:"diagnosis"`
	FileURL      string        `json:"fileUrl,omitempty"`
	RecoveryPlan []string      `json:"recoveryPlan,omitempty"`
}
