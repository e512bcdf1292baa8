package teaching

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/llm"
)

func TestStudentReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  So ProductID is really a label, not a number?  "),
	})
	student := NewStudent(mock, 0.7)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "(Policy reminder: withhold solution) ProductID identifies products, it isn't a quantity."},
	}
	reply, err := student.Reply(context.Background(), "persona text", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "So ProductID is really a label, not a number?" {
		t.Errorf("reply = %q", reply)
	}

	call := mock.LastCall()
	if call.System != "persona text" {
		t.Errorf("system = %q", call.System)
	}
	if len(call.Messages) != 1 {
		t.Errorf("history len = %d, want 1", len(call.Messages))
	}
}

func TestFormatTeacherTurn(t *testing.T) {
	got := FormatTeacherTurn("Try thinking about what the numbers identify.", "withhold_solution")
	want := "(Policy reminder: withhold solution) Try thinking about what the numbers identify."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Empty teacher text still carries the reminder, without trailing space.
	got = FormatTeacherTurn("", "guided_steps")
	if got != "(Policy reminder: guided steps)" {
		t.Errorf("got %q", got)
	}
}

func TestIntroContextRender(t *testing.T) {
	ctx := IntroContext{
		Description:   "Learn to classify data types before charting.",
		ScenarioFocus: "Classify each column in the sales dataset",
		Confusion:     "ids are numbers",
	}
	rendered := ctx.Render()

	for _, want := range []string{
		"You are the AI student beginning a tutoring session.",
		"Your learning goal: Learn to classify data types before charting.",
		"The teacher plans to discuss: Classify each column in the sales dataset",
		"You feel unsure about ids are numbers.",
		"Ask only ONE question.",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("intro missing %q", want)
		}
	}

	// Optional fields drop out cleanly.
	minimal := IntroContext{}.Render()
	if strings.Contains(minimal, "learning goal") {
		t.Error("empty description should not render a learning goal line")
	}
}

func TestQuestionFocusContext(t *testing.T) {
	wrong := assess.QuestionResult{
		QuestionNumber: 2,
		Question:       "Likert scales are?",
		SelectedAnswer: "A",
		IsCorrect:      false,
		Reasoning:      "numbers mean continuous",
	}
	rendered := QuestionFocusContext(wrong)
	for _, want := range []string{
		"question 2 WRONG",
		"'Likert scales are?'",
		"You selected A, which was incorrect.",
		"Your reasoning was: numbers mean continuous",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("wrong-answer context missing %q", want)
		}
	}

	correct := assess.QuestionResult{
		QuestionNumber: 3,
		Question:       "Which is continuous?",
		SelectedAnswer: "B",
		IsCorrect:      true,
	}
	rendered = QuestionFocusContext(correct)
	if !strings.Contains(rendered, "question 3 CORRECT") {
		t.Errorf("correct-answer context wrong: %q", rendered)
	}
	if !strings.Contains(rendered, "deepen your understanding") {
		t.Errorf("correct-answer context missing follow-up prompt")
	}
}
