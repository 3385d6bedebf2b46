package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mujahidul282/Athlete360/internal/generator"
	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/mujahidul282/Athlete360/internal/store"
	"github.com/mujahidul282/Athlete360/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AthleteService owns the generate-or-read policy for every data domain:
// read the domain key, and on a miss derive fresh records from the current
// profile and cache them. Cached domains are only ever reset by Register;
// profile updates do not retroactively regenerate them.
type AthleteService struct {
	store store.Store
	now   func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewAthleteService(s store.Store) *AthleteService {
	return &AthleteService{
		store: s,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *AthleteService) profileOrSeed(ctx context.Context) (models.AthleteProfile, error) {
	profile, err := store.GetJSON[models.AthleteProfile](ctx, s.store, store.KeyProfile)
	if errors.Is(err, store.ErrNotFound) {
		return generator.SeedProfile(), nil
	}
	if err != nil {
		return models.AthleteProfile{}, err
	}
	return profile, nil
}

// GetProfile returns the stored profile, or the seed profile when nothing
// has been registered yet. The seed is never written back on read.
func (s *AthleteService) GetProfile(ctx context.Context) (models.AthleteProfile, error) {
	return s.profileOrSeed(ctx)
}

// Login checks credentials against the single stored profile (or the seed
// default). The email comparison is case-insensitive so the casing used at
// registration never locks anyone out. Any mismatch, including the
// no-profile case, is ErrInvalidCredentials.
func (s *AthleteService) Login(ctx context.Context, email, password string) (models.AthleteProfile, error) {
	profile, err := s.profileOrSeed(ctx)
	if err != nil {
		return models.AthleteProfile{}, err
	}
	if !strings.EqualFold(profile.Email, strings.TrimSpace(email)) ||
		!utils.CheckPassword(password, profile.PasswordHash) {
		return models.AthleteProfile{}, ErrInvalidCredentials
	}
	return profile, nil
}

// Register replaces the stored profile and clears every domain cache so the
// next read of any domain regenerates against the new identity. Skipping a
// key here would serve the previous profile's data to the new one.
func (s *AthleteService) Register(ctx context.Context, profile models.AthleteProfile, password string) (models.AthleteProfile, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.AthleteProfile{}, err
	}
	profile.PasswordHash = hash
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	if err := store.SetJSON(ctx, s.store, store.KeyProfile, profile); err != nil {
		return models.AthleteProfile{}, err
	}
	for _, key := range store.DomainKeys {
		if err := s.store.Delete(ctx, key); err != nil {
			return models.AthleteProfile{}, fmt.Errorf("clear %q: %w", key, err)
		}
	}
	return profile, nil
}

// UpdateProfile applies a shallow merge: only non-nil fields of the patch
// replace the stored value, and nested records are replaced wholesale. No
// field validation is performed.
func (s *AthleteService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.AthleteProfile, error) {
	profile, err := s.profileOrSeed(ctx)
	if err != nil {
		return models.AthleteProfile{}, err
	}

	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.AthleteProfile{}, err
		}
		profile.PasswordHash = hash
	}
	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Sport != nil {
		profile.Sport = *update.Sport
	}
	if update.Age != nil {
		profile.Age = *update.Age
	}
	if update.HeightCm != nil {
		profile.HeightCm = *update.HeightCm
	}
	if update.WeightKg != nil {
		profile.WeightKg = *update.WeightKg
	}
	if update.Role != nil {
		profile.Role = *update.Role
	}
	if update.AvatarURL != nil {
		profile.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Medical != nil {
		profile.Medical = update.Medical
	}
	if update.DeviceMetrics != nil {
		profile.DeviceMetrics = update.DeviceMetrics
	}

	if err := store.SetJSON(ctx, s.store, store.KeyProfile, profile); err != nil {
		return models.AthleteProfile{}, err
	}
	return profile, nil
}

// domainRecords implements generate-once-cache-until-cleared for one domain.
func domainRecords[T any](ctx context.Context, s *AthleteService, key string, generate func(models.AthleteProfile) []T) ([]T, error) {
	records, err := store.GetJSON[[]T](ctx, s.store, key)
	if err == nil {
		return records, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	profile, err := s.profileOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	records = generate(profile)
	if err := store.SetJSON(ctx, s.store, key, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *AthleteService) GetPerformanceLogs(ctx context.Context) ([]models.PerformanceLog, error) {
	return domainRecords(ctx, s, store.KeyPerformance, func(profile models.AthleteProfile) []models.PerformanceLog {
		s.mu.Lock()
		defer s.mu.Unlock()
		return generator.PerformanceLogs(profile, s.now(), s.rng)
	})
}

func (s *AthleteService) GetDietLogs(ctx context.Context) ([]models.DietLog, error) {
	return domainRecords(ctx, s, store.KeyDiet, func(profile models.AthleteProfile) []models.DietLog {
		return generator.DietLogs(profile, s.now())
	})
}

func (s *AthleteService) GetJobs(ctx context.Context) ([]models.JobOpportunity, error) {
	return domainRecords(ctx, s, store.KeyJobs, generator.Jobs)
}

func (s *AthleteService) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	return domainRecords(ctx, s, store.KeyTournaments, generator.Tournaments)
}

func (s *AthleteService) GetInjuryHistory(ctx context.Context) ([]models.InjuryRecord, error) {
	return domainRecords(ctx, s, store.KeyInjuries, func(models.AthleteProfile) []models.InjuryRecord {
		return generator.SeedInjuries()
	})
}

func (s *AthleteService) GetCoachingGigs(ctx context.Context) ([]models.CoachingGig, error) {
	return domainRecords(ctx, s, store.KeyGigs, func(models.AthleteProfile) []models.CoachingGig {
		return generator.SeedGigs()
	})
}

// GetMedicalReports returns the stored collection or an empty one. Unlike
// the generated domains, an empty collection is not written back: the key
// only exists once a report has been attached.
func (s *AthleteService) GetMedicalReports(ctx context.Context) ([]models.MedicalReport, error) {
	reports, err := store.GetJSON[[]models.MedicalReport](ctx, s.store, store.KeyMedicalReports)
	if errors.Is(err, store.ErrNotFound) {
		return []models.MedicalReport{}, nil
	}
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *AthleteService) AddMedicalReport(ctx context.Context, report models.MedicalReport) (models.MedicalReport, error) {
	reports, err := s.GetMedicalReports(ctx)
	if err != nil {
		return models.MedicalReport{}, err
	}
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	reports = append(reports, report)
	if err := store.SetJSON(ctx, s.store, store.KeyMedicalReports, reports); err != nil {
		return models.MedicalReport{}, err
	}
	return report, nil
}

// Finance and career goals are static collections, served without caching.
func (s *AthleteService) GetFinancialRecords(_ context.Context) ([]models.FinancialRecord, error) {
	return generator.FinancialRecords(), nil
}

func (s *AthleteService) GetCareerGoals(_ context.Context) ([]models.CareerGoal, error) {
	return generator.CareerGoals(), nil
}

func (s *AthleteService) GetTheme(ctx context.Context) (string, error) {
	theme, err := store.GetJSON[string](ctx, s.store, store.KeyTheme)
	if errors.Is(err, store.ErrNotFound) {
		return "light", nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

func (s *AthleteService) SetTheme(ctx context.Context, theme string) error {
	return store.SetJSON(ctx, s.store, store.KeyTheme, theme)
}
