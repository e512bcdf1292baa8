package assess

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/tutee/internal/llm"
)

func TestAdminister_GradesReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answers": [
			{"question_number": 1, "selected_answer": "C", "reasoning": "it labels products"},
			{"question_number": 2, "selected_answer": "A", "reasoning": "numbers mean continuous"}
		]}`),
	})
	admin := NewAdministrator(mock)

	result, err := admin.Administer(context.Background(), Administration{
		Phase:     "pre-test",
		Persona:   "You are a student.",
		Questions: sampleQuestions(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ScorePercentage != 50 {
		t.Errorf("score = %v, want 50", result.ScorePercentage)
	}
	if !result.Questions[1].HitTrap {
		t.Error("expected trap hit on question 2")
	}

	// The request carries the persona and no schema.
	call := mock.LastCall()
	if call.System != "You are a student." {
		t.Errorf("system = %q", call.System)
	}
	if call.Schema != nil {
		t.Error("administration must not constrain the reply with a schema")
	}
	if !strings.Contains(call.Messages[0].Content, "1. What type is ProductID?") {
		t.Error("prompt missing question text")
	}
}

func TestAdminister_PreamblePrecedesQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answers": []}`),
	})
	admin := NewAdministrator(mock)

	_, err := admin.Administer(context.Background(), Administration{
		Phase:     "post-test",
		Persona:   "persona",
		Preamble:  "IMPORTANT: apply what you were taught.",
		Questions: sampleQuestions(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	preIdx := strings.Index(prompt, "IMPORTANT: apply what you were taught.")
	qIdx := strings.Index(prompt, "Questions:")
	if preIdx < 0 || qIdx < 0 || preIdx > qIdx {
		t.Error("preamble must precede the question block")
	}
}

func TestAdminister_EmptyQuestionsSkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	admin := NewAdministrator(mock)

	result, err := admin.Administer(context.Background(), Administration{
		Phase:   "pre-test",
		Persona: "persona",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ScorePercentage != 0 || len(result.Questions) != 0 {
		t.Errorf("expected empty zero-score result, got %+v", result)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no model call, got %d", mock.CallCount())
	}
}

func TestAdminister_TransportErrorNamesPhase(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	admin := NewAdministrator(mock)

	_, err := admin.Administer(context.Background(), Administration{
		Phase:     "pre-test",
		Persona:   "persona",
		Questions: sampleQuestions(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "pre-test") {
		t.Errorf("error does not name the phase: %v", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestAdminister_MalformedReplyCarriesRawText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I refuse to answer in JSON.`),
	})
	admin := NewAdministrator(mock)

	_, err := admin.Administer(context.Background(), Administration{
		Phase:     "post-test",
		Persona:   "persona",
		Questions: sampleQuestions(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if raw := RawReply(err); raw != "I refuse to answer in JSON." {
		t.Errorf("RawReply = %q", raw)
	}
}
