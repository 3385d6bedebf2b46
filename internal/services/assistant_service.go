package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// ChatFallback is returned whenever the model call fails or comes back
// empty. Callers never see an error from the chat path.
const ChatFallback = "I'm focusing on the game right now, ask me later."

const riskExplanationFallback = "Analysis unavailable."

const assistantPersona = `You are the Athlete360 Assistant, a sports science
advisor inside an athlete management dashboard. Answer questions about
training, diet and recovery. Be concise and practical.`

type completionCaller interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// AssistantService is the one true external I/O boundary: a fallible, slow
// remote call. Every method degrades to a fixed fallback instead of
// surfacing an error, and every call runs under its own timeout.
type AssistantService struct {
	completions completionCaller
	model       string
	timeout     time.Duration
}

func NewAssistantService(apiKey, baseURL, model string, timeout time.Duration) *AssistantService {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &AssistantService{
		completions: &client.Chat.Completions,
		model:       model,
		timeout:     timeout,
	}
}

func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

func (s *AssistantService) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params.Model = s.model
	chat, err := s.completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return chat.Choices[0].Message.Content, nil
}

// Chat answers a user message given the running conversation history.
func (s *AssistantService) Chat(ctx context.Context, history []models.ChatMessage, message string) string {
	messages := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(assistantPersona)}
	for _, entry := range history {
		switch entry.Role {
		case models.ChatRoleUser:
			messages = append(messages, openai.UserMessage(entry.Text))
		case models.ChatRoleModel:
			messages = append(messages, openai.AssistantMessage(entry.Text))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	content, err := s.complete(ctx, openai.ChatCompletionNewParams{Messages: messages})
	if err != nil {
		log.Printf("assistant: chat call failed: %v", err)
		return ChatFallback
	}
	if strings.TrimSpace(content) == "" {
		return ChatFallback
	}
	return content
}

var dietAnalysisSchema = generateSchema[models.DietAnalysis]()

// AnalyzeDiet asks the model for a structured verdict on the day's intake.
func (s *AssistantService) AnalyzeDiet(ctx context.Context, logs []models.DietLog) models.DietAnalysis {
	fallback := models.DietAnalysis{
		Status:       "Needs Improvement",
		MacroBalance: "Macro breakdown unavailable right now.",
		Recommendations: []string{
			"Keep protein close to 2g per kg of body weight.",
			"Hydrate before and after sessions.",
		},
	}

	payload, err := json.Marshal(logs)
	if err != nil {
		log.Printf("assistant: encode diet logs: %v", err)
		return fallback
	}

	content, err := s.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(`You are a sports nutritionist. Evaluate the athlete's
meal log and return a structured verdict on macro balance.`),
			openai.UserMessage(string(payload)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "diet_analysis",
					Description: openai.String("Verdict on the athlete's meal log"),
					Schema:      dietAnalysisSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		log.Printf("assistant: diet analysis failed: %v", err)
		return fallback
	}

	var analysis models.DietAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		log.Printf("assistant: decode diet analysis: %v", err)
		return fallback
	}
	return analysis
}

type riskExplanation struct {
	Explanation string `json:"explanation"`
}

var riskExplanationSchema = generateSchema[riskExplanation]()

// ExplainInjuryRisk turns the heuristic score and factors into a short
// human explanation.
func (s *AssistantService) ExplainInjuryRisk(ctx context.Context, score float64, factors []string, logs []models.PerformanceLog) string {
	payload, err := json.Marshal(map[string]any{
		"score":   score,
		"factors": factors,
		"logs":    logs,
	})
	if err != nil {
		log.Printf("assistant: encode risk context: %v", err)
		return riskExplanationFallback
	}

	content, err := s.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(`You are a sports physiotherapist. Given an injury risk
score between 0 and 1, its contributing factors and the recent training log,
explain the assessment to the athlete in two or three sentences.`),
			openai.UserMessage(string(payload)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "risk_explanation",
					Description: openai.String("Explanation of the injury risk assessment"),
					Schema:      riskExplanationSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		log.Printf("assistant: risk explanation failed: %v", err)
		return riskExplanationFallback
	}

	var explanation riskExplanation
	if err := json.Unmarshal([]byte(content), &explanation); err != nil {
		log.Printf("assistant: decode risk explanation: %v", err)
		return riskExplanationFallback
	}
	if strings.TrimSpace(explanation.Explanation) == "" {
		return riskExplanationFallback
	}
	return explanation.Explanation
}

type trainingPlan struct {
	Sessions []models.TrainingSession `json:"sessions"`
}

var trainingPlanSchema = generateSchema[trainingPlan]()

// GenerateTrainingPlan builds a weekly session plan for the sport. On
// failure it falls back to a generic three-day template so the training
// page always has something to render.
func (s *AssistantService) GenerateTrainingPlan(ctx context.Context, sport string) []models.TrainingSession {
	content, err := s.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(`You are a professional coach. Produce a weekly training
plan of 3 to 5 sessions. Each session has a day, a focus, an estimated
duration in minutes and 2 to 4 drills with category Tactical, Physical or
Technical.`),
			openai.UserMessage(fmt.Sprintf("Sport: %s", sport)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "training_plan",
					Description: openai.String("Weekly training plan"),
					Schema:      trainingPlanSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		log.Printf("assistant: training plan failed: %v", err)
		return fallbackTrainingPlan(sport)
	}

	var plan trainingPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil || len(plan.Sessions) == 0 {
		log.Printf("assistant: decode training plan: %v", err)
		return fallbackTrainingPlan(sport)
	}
	return plan.Sessions
}

// AnalyzeFinances returns short textual advice over the financial records.
// The empty string is the documented fallback.
func (s *AssistantService) AnalyzeFinances(ctx context.Context, records []models.FinancialRecord) string {
	payload, err := json.Marshal(records)
	if err != nil {
		log.Printf("assistant: encode financial records: %v", err)
		return ""
	}

	content, err := s.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(`You are a financial advisor for athletes. Given income
and expense records, give two sentences of practical advice.`),
			openai.UserMessage(string(payload)),
		},
	})
	if err != nil {
		log.Printf("assistant: financial advice failed: %v", err)
		return ""
	}
	return content
}

func fallbackTrainingPlan(sport string) []models.TrainingSession {
	drill := func(id, name, category string, duration int, instructions string) models.TrainingDrill {
		return models.TrainingDrill{
			ID:           id,
			Name:         name,
			Category:     category,
			DurationMin:  duration,
			ImageURL:     "https://placehold.co/400x300",
			Instructions: instructions,
		}
	}
	return []models.TrainingSession{
		{
			Day:               "Monday",
			Focus:             fmt.Sprintf("%s Fundamentals", sport),
			EstimatedDuration: 60,
			Drills: []models.TrainingDrill{
				drill("fd1", "Dynamic Warmup", "Physical", 15, "Mobility circuit and activation."),
				drill("fd2", "Technique Blocks", "Technical", 30, "Slow, controlled repetitions of core movements."),
				drill("fd3", "Cooldown Stretch", "Physical", 15, "Static stretching, full body."),
			},
		},
		{
			Day:               "Wednesday",
			Focus:             "Conditioning",
			EstimatedDuration: 50,
			Drills: []models.TrainingDrill{
				drill("fd4", "Interval Runs", "Physical", 25, "8 rounds of 30s hard, 90s easy."),
				drill("fd5", "Core Circuit", "Physical", 25, "Plank variations, 3 sets."),
			},
		},
		{
			Day:               "Friday",
			Focus:             "Game Preparation",
			EstimatedDuration: 60,
			Drills: []models.TrainingDrill{
				drill("fd6", "Scenario Practice", "Tactical", 40, "Simulated competition situations."),
				drill("fd7", "Recovery Work", "Physical", 20, "Foam rolling and light aerobic flush."),
			},
		},
	}
}
