package assess

import (
	"strings"

	"github.com/abhisek/tutee/internal/bank"
)

// NotAnswered is recorded as the selected answer when the reply has no
// entry for a question.
const NotAnswered = "NOT ANSWERED"

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	QuestionNumber int               `json:"question_number"`
	Question       string            `json:"question"`
	Options        map[string]string `json:"options,omitempty"`
	CorrectAnswer  string            `json:"correct_answer"`
	SelectedAnswer string            `json:"selected_answer"`
	IsCorrect      bool              `json:"is_correct"`
	TrapAnswer     string            `json:"trap_answer,omitempty"`
	// HitTrap reports whether the selected answer is the question's trap
	// answer. Authoring analytics only; grading never consults it.
	HitTrap     bool   `json:"hit_trap"`
	Reasoning   string `json:"reasoning"`
	Explanation string `json:"explanation"`
}

// TestResult is one graded administration, pre-test or post-test.
// Created fresh per administration and never mutated afterwards.
type TestResult struct {
	Questions       []QuestionResult `json:"questions"`
	ScorePercentage float64          `json:"score_percentage"`
}

// CorrectCount returns the number of correctly answered questions.
func (r *TestResult) CorrectCount() int {
	n := 0
	for _, q := range r.Questions {
		if q.IsCorrect {
			n++
		}
	}
	return n
}

// Grade scores an answer sheet against the question list. Pure: no network,
// no state. Option labels are compared case-insensitively; questions with
// no matching answer entry are recorded as NOT ANSWERED rather than
// failing the whole grade.
func Grade(questions []bank.Question, sheet *AnswerSheet) TestResult {
	result := TestResult{Questions: make([]QuestionResult, 0, len(questions))}
	correct := 0

	for _, q := range questions {
		answer := findAnswer(sheet, q.Number)
		if answer == nil {
			result.Questions = append(result.Questions, QuestionResult{
				QuestionNumber: q.Number,
				Question:       q.Text,
				CorrectAnswer:  normalizeLabel(q.CorrectAnswer),
				SelectedAnswer: NotAnswered,
				IsCorrect:      false,
				TrapAnswer:     normalizeLabel(q.TrapAnswer),
				Reasoning:      "No answer provided",
				Explanation:    q.Explanation,
			})
			continue
		}

		selected := normalizeLabel(answer.SelectedAnswer)
		correctLabel := normalizeLabel(q.CorrectAnswer)
		trapLabel := normalizeLabel(q.TrapAnswer)
		isCorrect := selected == correctLabel
		if isCorrect {
			correct++
		}

		result.Questions = append(result.Questions, QuestionResult{
			QuestionNumber: q.Number,
			Question:       q.Text,
			Options:        q.Options,
			CorrectAnswer:  correctLabel,
			SelectedAnswer: selected,
			IsCorrect:      isCorrect,
			TrapAnswer:     trapLabel,
			HitTrap:        trapLabel != "" && selected == trapLabel,
			Reasoning:      answer.Reasoning,
			Explanation:    q.Explanation,
		})
	}

	if len(questions) > 0 {
		result.ScorePercentage = float64(correct) / float64(len(questions)) * 100
	}
	return result
}

func findAnswer(sheet *AnswerSheet, number int) *Answer {
	if sheet == nil {
		return nil
	}
	for i := range sheet.Answers {
		if sheet.Answers[i].QuestionNumber == number {
			return &sheet.Answers[i]
		}
	}
	return nil
}

func normalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
