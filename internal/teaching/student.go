package teaching

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/llm"
)

// policyHintTemplate prefixes every teacher turn so the student keeps the
// release-answers policy in view without it drifting out of the context
// window.
const policyHintTemplate = "(Policy reminder: %s) "

// Student generates in-character replies from the simulated student. The
// persona string carries all of the misconception scripting; this type
// only moves messages.
type Student struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewStudent creates a Student backed by the given provider.
func NewStudent(provider llm.Provider, temperature float64) *Student {
	return &Student{
		provider:    provider,
		maxTokens:   800,
		temperature: temperature,
	}
}

// Reply generates the student's next turn given the persona and the full
// running conversation.
func (s *Student) Reply(ctx context.Context, persona string, history []llm.Message) (string, error) {
	ctx = llm.WithPurpose(ctx, "student-chat")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      persona,
		Messages:    history,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("student reply: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// FormatTeacherTurn prefixes a teacher message with the policy reminder.
func FormatTeacherTurn(text, policy string) string {
	prefix := fmt.Sprintf(policyHintTemplate, strings.ReplaceAll(policy, "_", " "))
	if text == "" {
		return strings.TrimRight(prefix, " ")
	}
	return prefix + text
}

// IntroContext carries the scenario facts the opening student turn is
// built from.
type IntroContext struct {
	Description   string
	ScenarioFocus string
	Confusion     string
}

// Render builds the instruction that makes the student open the session
// with a single clarifying question.
func (c IntroContext) Render() string {
	lines := []string{
		"You are the AI student beginning a tutoring session.",
		"Speak in the first person about what you do and do not understand.",
	}
	if c.Description != "" {
		lines = append(lines, fmt.Sprintf("Your learning goal: %s", c.Description))
	}
	if c.ScenarioFocus != "" {
		lines = append(lines, fmt.Sprintf("The teacher plans to discuss: %s", c.ScenarioFocus))
	}
	if c.Confusion != "" {
		lines = append(lines, fmt.Sprintf("You feel unsure about %s.", c.Confusion))
	}
	lines = append(lines,
		"Open with ONE concise clarifying question about what confuses you right now.",
		"IMPORTANT: Ask only ONE question. Do not ask multiple questions.",
		"Ask for specific guidance tied to the scenario, and avoid referring to 'students' in the third person.",
	)
	return strings.Join(lines, " ")
}

// QuestionFocusContext builds the instruction that points the student at
// one pre-test question, so the teaching loop works the test question by
// question.
func QuestionFocusContext(result assess.QuestionResult) string {
	if result.IsCorrect {
		lines := []string{
			"You are working through the pre-test results with your teacher.",
			fmt.Sprintf("You got question %d CORRECT in the pre-test.", result.QuestionNumber),
			fmt.Sprintf("The question was: '%s'", result.Question),
			fmt.Sprintf("You selected %s, which was correct.", result.SelectedAnswer),
			"However, your teacher wants to make sure you truly understand this topic.",
			"Ask ONE specific question about this topic to deepen your understanding or confirm your reasoning.",
		}
		return strings.Join(lines, " ")
	}

	lines := []string{
		"You are working through the pre-test results with your teacher.",
		fmt.Sprintf("You got question %d WRONG in the pre-test.", result.QuestionNumber),
		fmt.Sprintf("The question was: '%s'", result.Question),
		fmt.Sprintf("You selected %s, which was incorrect.", result.SelectedAnswer),
		fmt.Sprintf("Your reasoning was: %s", result.Reasoning),
		"Ask your teacher ONE specific question to understand where you went wrong and learn the correct approach.",
	}
	return strings.Join(lines, " ")
}

// ReadyForPostTestContext is sent once every question has been worked
// through, prompting the student to close the teaching phase.
func ReadyForPostTestContext() string {
	return "You have worked through all the pre-test questions with your teacher. " +
		"You feel much more confident now. " +
		"Thank your teacher for the tutoring session and tell them you're ready to take the test again with your new knowledge. " +
		"Express that you'd like to see how much you've improved."
}
