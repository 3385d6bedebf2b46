package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/mujahidul282/Athlete360/internal/services"
)

type stubAuthService struct {
	registerResult models.AthleteProfile
	registerErr    error
	loginResult    models.AthleteProfile
	loginErr       error
	profileResult  models.AthleteProfile
	profileErr     error

	lastRegistered models.AthleteProfile
	lastPassword   string
	lastEmail      string
}

func (s *stubAuthService) Register(_ context.Context, profile models.AthleteProfile, password string) (models.AthleteProfile, error) {
	s.lastRegistered = profile
	s.lastPassword = password
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (models.AthleteProfile, error) {
	s.lastEmail = email
	s.lastPassword = password
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) GetProfile(_ context.Context) (models.AthleteProfile, error) {
	return s.profileResult, s.profileErr
}

func newAuthApp(service *stubAuthService) *fiber.App {
	handler := NewAuthHandler(service, "test-secret")
	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	app.Get("/api/auth/me", handler.Me)
	return app
}

func TestRegisterReturnsTokenAndSanitizedProfile(t *testing.T) {
	service := &stubAuthService{
		registerResult: models.AthleteProfile{
			ID:           "p1",
			Email:        "new@athlete360.com",
			Name:         "New Athlete",
			Role:         models.RoleAthlete,
			PasswordHash: "$2a$10$hash",
		},
	}
	app := newAuthApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{
		"email": "New@Athlete360.com",
		"password": "longenough",
		"name": "New Athlete",
		"sport": "Cricket"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastRegistered.Email != "New@Athlete360.com" {
		t.Fatalf("expected email stored as typed, got %q", service.lastRegistered.Email)
	}
	if service.lastRegistered.Role != models.RoleAthlete {
		t.Fatalf("expected default athlete role, got %q", service.lastRegistered.Role)
	}

	var body struct {
		Token   string                 `json:"token"`
		Profile map[string]interface{} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected token in response")
	}
	if _, ok := body.Profile["passwordHash"]; ok {
		t.Fatalf("password hash leaked in response: %v", body.Profile)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"email": "not-an-email", "password": "longenough"}`},
		{"short password", `{"email": "a@b.com", "password": "short"}`},
		{"unknown role", `{"email": "a@b.com", "password": "longenough", "role": "MANAGER"}`},
	}
	for _, tc := range cases {
		app := newAuthApp(&stubAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
	}
}

func TestLoginInvalidCredentialsReturns401(t *testing.T) {
	service := &stubAuthService{loginErr: services.ErrInvalidCredentials}
	app := newAuthApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{
		"email": "demo@athlete360.com",
		"password": "wrong"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if service.lastEmail != "demo@athlete360.com" {
		t.Fatalf("expected email forwarded, got %q", service.lastEmail)
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	service := &stubAuthService{
		loginResult: models.AthleteProfile{ID: "a1", Role: models.RoleAthlete, Email: "demo@athlete360.com"},
	}
	app := newAuthApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{
		"email": "demo@athlete360.com",
		"password": "password"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected token in response")
	}
}

func TestMeReturnsCurrentProfile(t *testing.T) {
	service := &stubAuthService{
		profileResult: models.AthleteProfile{ID: "a1", Name: "Rohan Gupta", PasswordHash: "$2a$10$hash"},
	}
	app := newAuthApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Profile map[string]interface{} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Profile["name"] != "Rohan Gupta" {
		t.Fatalf("unexpected profile: %v", body.Profile)
	}
	if _, ok := body.Profile["passwordHash"]; ok {
		t.Fatalf("password hash leaked in response")
	}
}
