package store

// Logical keys of the persisted state. One key per data domain, plus the
// profile and the UI theme preference.
const (
	KeyProfile        = "athlete_profile"
	KeyPerformance    = "logs_performance"
	KeyDiet           = "logs_diet"
	KeyJobs           = "jobs"
	KeyTournaments    = "tournaments"
	KeyInjuries       = "logs_injury"
	KeyMedicalReports = "medical_reports"
	KeyGigs           = "gigs"
	KeyTheme          = "theme_preference"
)

// DomainKeys is the full clear-list applied on registration. Every cached
// domain must appear here: a missing entry leaks the previous identity's
// data to the new profile. The profile itself and the theme preference are
// deliberately excluded.
var DomainKeys = []string{
	KeyPerformance,
	KeyDiet,
	KeyJobs,
	KeyTournaments,
	KeyInjuries,
	KeyMedicalReports,
	KeyGigs,
}
