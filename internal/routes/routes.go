package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/internal/config"
	"github.com/mujahidul282/Athlete360/internal/handlers"
	"github.com/mujahidul282/Athlete360/internal/middleware"
	"github.com/mujahidul282/Athlete360/internal/services"
	"github.com/mujahidul282/Athlete360/internal/store"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, st store.Store) {
	athleteService := services.NewAthleteService(st)
	assistantService := services.NewAssistantService(
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		cfg.AssistantTimeout,
	)

	authHandler := handlers.NewAuthHandler(athleteService, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(athleteService)
	dataHandler := handlers.NewDataHandler(athleteService)
	riskHandler := handlers.NewRiskHandler(athleteService, assistantService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, athleteService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	v1 := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	v1.Get("/profile", profileHandler.GetProfile)
	v1.Put("/profile", profileHandler.UpdateProfile)
	v1.Get("/preferences/theme", profileHandler.GetTheme)
	v1.Put("/preferences/theme", profileHandler.SetTheme)

	v1.Get("/performance", dataHandler.GetPerformanceLogs)
	v1.Get("/diet", dataHandler.GetDietLogs)
	v1.Get("/injuries", dataHandler.GetInjuryHistory)
	v1.Get("/jobs", dataHandler.GetJobs)
	v1.Get("/tournaments", dataHandler.GetTournaments)
	v1.Get("/gigs", dataHandler.GetCoachingGigs)
	v1.Get("/finance", dataHandler.GetFinancialRecords)
	v1.Get("/goals", dataHandler.GetCareerGoals)
	v1.Get("/medical-reports", dataHandler.GetMedicalReports)
	v1.Post("/medical-reports", dataHandler.AddMedicalReport)

	v1.Get("/injury-risk", riskHandler.GetAssessment)

	assistant := v1.Group("/assistant")
	assistant.Post("/chat", assistantHandler.Chat)
	assistant.Get("/diet-analysis", assistantHandler.DietAnalysis)
	assistant.Get("/injury-explanation", riskHandler.GetExplanation)
	assistant.Post("/training-plan", assistantHandler.TrainingPlan)
	assistant.Get("/financial-advice", assistantHandler.FinancialAdvice)
}
