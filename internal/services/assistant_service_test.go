package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mujahidul282/Athlete360/internal/models"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

type stubCompletions struct {
	content  string
	err      error
	noChoice bool

	lastParams openai.ChatCompletionNewParams
}

func (s *stubCompletions) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	s.lastParams = body
	if s.err != nil {
		return nil, s.err
	}
	if s.noChoice {
		return &openai.ChatCompletion{}, nil
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func newStubAssistant(stub *stubCompletions) *AssistantService {
	return &AssistantService{
		completions: stub,
		model:       "gpt-4o-mini",
		timeout:     time.Second,
	}
}

func TestChatReturnsModelContent(t *testing.T) {
	stub := &stubCompletions{content: "Rest at least one day between sprint sessions."}
	service := newStubAssistant(stub)

	history := []models.ChatMessage{
		{Role: models.ChatRoleUser, Text: "How often should I sprint?"},
		{Role: models.ChatRoleModel, Text: "Two or three quality sessions a week."},
	}
	reply := service.Chat(context.Background(), history, "And recovery?")

	if reply != "Rest at least one day between sprint sessions." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	// system persona + 2 history turns + the new message
	if len(stub.lastParams.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(stub.lastParams.Messages))
	}
	if stub.lastParams.Model != "gpt-4o-mini" {
		t.Fatalf("expected model set on request, got %q", stub.lastParams.Model)
	}
}

func TestChatFallsBackOnError(t *testing.T) {
	service := newStubAssistant(&stubCompletions{err: errors.New("upstream unavailable")})

	if reply := service.Chat(context.Background(), nil, "hello"); reply != ChatFallback {
		t.Fatalf("expected fallback, got %q", reply)
	}
}

func TestChatFallsBackOnEmptyCompletion(t *testing.T) {
	cases := []*stubCompletions{
		{noChoice: true},
		{content: "   "},
	}
	for _, stub := range cases {
		service := newStubAssistant(stub)
		if reply := service.Chat(context.Background(), nil, "hello"); reply != ChatFallback {
			t.Fatalf("expected fallback, got %q", reply)
		}
	}
}

func TestAnalyzeDietDecodesStructuredVerdict(t *testing.T) {
	stub := &stubCompletions{content: `{
		"status": "Optimal",
		"macroBalance": "Protein and carbs are well matched to training load.",
		"recommendations": ["Add a post-session snack."]
	}`}
	service := newStubAssistant(stub)

	analysis := service.AnalyzeDiet(context.Background(), []models.DietLog{{Meal: "Lunch", Calories: 615}})

	if analysis.Status != "Optimal" {
		t.Fatalf("unexpected status: %q", analysis.Status)
	}
	if len(analysis.Recommendations) != 1 {
		t.Fatalf("unexpected recommendations: %v", analysis.Recommendations)
	}
	if stub.lastParams.ResponseFormat.OfJSONSchema == nil {
		t.Fatalf("expected structured output request")
	}
}

func TestAnalyzeDietFallsBack(t *testing.T) {
	for _, stub := range []*stubCompletions{
		{err: errors.New("timeout")},
		{content: "not json"},
	} {
		service := newStubAssistant(stub)
		analysis := service.AnalyzeDiet(context.Background(), nil)
		if analysis.Status != "Needs Improvement" || len(analysis.Recommendations) == 0 {
			t.Fatalf("expected canned fallback, got %+v", analysis)
		}
	}
}

func TestExplainInjuryRisk(t *testing.T) {
	stub := &stubCompletions{content: `{"explanation": "Your strain has been high for five straight days."}`}
	service := newStubAssistant(stub)

	explanation := service.ExplainInjuryRisk(context.Background(), 0.6, []string{"High Recent Strain"}, nil)
	if explanation != "Your strain has been high for five straight days." {
		t.Fatalf("unexpected explanation: %q", explanation)
	}

	for _, failing := range []*stubCompletions{
		{err: errors.New("timeout")},
		{content: `{"explanation": ""}`},
	} {
		service = newStubAssistant(failing)
		if got := service.ExplainInjuryRisk(context.Background(), 0.6, nil, nil); got != "Analysis unavailable." {
			t.Fatalf("expected fallback, got %q", got)
		}
	}
}

func TestGenerateTrainingPlanDecodesSessions(t *testing.T) {
	stub := &stubCompletions{content: `{"sessions": [
		{"day": "Tuesday", "focus": "Speed", "estimatedDuration": 45, "drills": [
			{"id": "d1", "name": "Flying 30s", "category": "Physical", "durationMin": 20, "instructions": "Build up then 30m at top speed."}
		]}
	]}`}
	service := newStubAssistant(stub)

	sessions := service.GenerateTrainingPlan(context.Background(), "Athletics (Sprints)")
	if len(sessions) != 1 || sessions[0].Day != "Tuesday" {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
	if len(sessions[0].Drills) != 1 || sessions[0].Drills[0].Category != "Physical" {
		t.Fatalf("unexpected drills: %+v", sessions[0].Drills)
	}
}

func TestGenerateTrainingPlanFallsBackToTemplate(t *testing.T) {
	for _, stub := range []*stubCompletions{
		{err: errors.New("timeout")},
		{content: `{"sessions": []}`},
	} {
		service := newStubAssistant(stub)
		sessions := service.GenerateTrainingPlan(context.Background(), "Football")
		if len(sessions) != 3 {
			t.Fatalf("expected 3 fallback sessions, got %d", len(sessions))
		}
		if sessions[0].Focus != "Football Fundamentals" {
			t.Fatalf("expected sport interpolated into fallback, got %q", sessions[0].Focus)
		}
	}
}

func TestAnalyzeFinances(t *testing.T) {
	stub := &stubCompletions{content: "Set aside 20% of sponsorship income for taxes."}
	service := newStubAssistant(stub)

	advice := service.AnalyzeFinances(context.Background(), []models.FinancialRecord{{Type: "Income", Amount: 25000}})
	if advice != "Set aside 20% of sponsorship income for taxes." {
		t.Fatalf("unexpected advice: %q", advice)
	}

	service = newStubAssistant(&stubCompletions{err: errors.New("timeout")})
	if advice := service.AnalyzeFinances(context.Background(), nil); advice != "" {
		t.Fatalf("expected empty fallback, got %q", advice)
	}
}
