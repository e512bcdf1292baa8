package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/teaching"
)

// Phase is the current stage of a learning-by-teaching session. The
// machine only moves forward: pre-test → teaching → post-test → done.
type Phase int

const (
	PhasePreTest Phase = iota
	PhaseTeaching
	PhasePostTest
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePreTest:
		return "pre-test"
	case PhaseTeaching:
		return "teaching"
	case PhasePostTest:
		return "post-test"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrWrongPhase is returned when an operation is attempted outside its
// phase.
var ErrWrongPhase = errors.New("operation not allowed in current phase")

// State is the single source of truth for one session run. Scoped to one
// process run; nothing here crosses session boundaries.
type State struct {
	RunID    string
	Scenario string
	Level    string

	// Questions is the fixed question set for this run.
	Questions []bank.Question

	// PreTest and PostTest are set exactly once each, in their phases.
	PreTest  *assess.TestResult
	PostTest *assess.TestResult

	// Taught maps question number to its latest learning summary.
	// Re-teaching a question replaces the entry; there is never more
	// than one summary per question.
	Taught map[int]teaching.Summary

	StartedAt time.Time

	phase Phase
}

// New creates a session in the pre-test phase with a fresh run ID.
func New(scenario, level string, questions []bank.Question) *State {
	return &State{
		RunID:     uuid.NewString(),
		Scenario:  scenario,
		Level:     level,
		Questions: questions,
		Taught:    make(map[int]teaching.Summary),
		StartedAt: time.Now().UTC(),
		phase:     PhasePreTest,
	}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// RecordPreTest stores the pre-test result and opens the teaching phase.
func (s *State) RecordPreTest(result *assess.TestResult) error {
	if s.phase != PhasePreTest {
		return fmt.Errorf("record pre-test in %s phase: %w", s.phase, ErrWrongPhase)
	}
	s.PreTest = result
	s.phase = PhaseTeaching
	return nil
}

// RecordSummary stores (or replaces) the learning summary for a question.
// Teaching-phase only; the question must belong to this run's set.
func (s *State) RecordSummary(summary teaching.Summary) error {
	if s.phase != PhaseTeaching {
		return fmt.Errorf("record summary in %s phase: %w", s.phase, ErrWrongPhase)
	}
	if !s.hasQuestion(summary.QuestionNumber) {
		return fmt.Errorf("record summary: question %d not in this run", summary.QuestionNumber)
	}
	s.Taught[summary.QuestionNumber] = summary
	return nil
}

// BeginPostTest closes the teaching phase. Valid with any number of
// taught questions, including none.
func (s *State) BeginPostTest() error {
	if s.phase != PhaseTeaching {
		return fmt.Errorf("begin post-test in %s phase: %w", s.phase, ErrWrongPhase)
	}
	s.phase = PhasePostTest
	return nil
}

// RecordPostTest stores the post-test result and completes the session.
func (s *State) RecordPostTest(result *assess.TestResult) error {
	if s.phase != PhasePostTest {
		return fmt.Errorf("record post-test in %s phase: %w", s.phase, ErrWrongPhase)
	}
	s.PostTest = result
	s.phase = PhaseDone
	return nil
}

// Untaught returns the question numbers with no learning summary,
// ascending. Always computed from the question set minus the taught
// keys, never stored.
func (s *State) Untaught() []int {
	var nums []int
	for _, q := range s.Questions {
		if _, ok := s.Taught[q.Number]; !ok {
			nums = append(nums, q.Number)
		}
	}
	return nums
}

// TaughtNumbers returns the taught question numbers, ascending.
func (s *State) TaughtNumbers() []int {
	var nums []int
	for _, q := range s.Questions {
		if _, ok := s.Taught[q.Number]; ok {
			nums = append(nums, q.Number)
		}
	}
	return nums
}

func (s *State) hasQuestion(number int) bool {
	for _, q := range s.Questions {
		if q.Number == number {
			return true
		}
	}
	return false
}

// RunSummary is the serializable outcome of a completed session.
type RunSummary struct {
	RunID           string                   `json:"run_id"`
	Scenario        string                   `json:"scenario"`
	Level           string                   `json:"level"`
	Model           string                   `json:"model"`
	Improvement     assess.Improvement       `json:"improvement"`
	QuestionsTotal  int                      `json:"questions_total"`
	QuestionsTaught []int                    `json:"questions_taught"`
	Summaries       map[int]teaching.Summary `json:"summaries"`
	StartedAt       time.Time                `json:"started_at"`
	FinishedAt      time.Time                `json:"finished_at"`
}

// Summarize assembles the run summary. Only valid once the session is
// done.
func (s *State) Summarize(model string) (*RunSummary, error) {
	if s.phase != PhaseDone {
		return nil, fmt.Errorf("summarize in %s phase: %w", s.phase, ErrWrongPhase)
	}
	taughtNums := s.TaughtNumbers()
	if taughtNums == nil {
		taughtNums = []int{}
	}
	return &RunSummary{
		RunID:           s.RunID,
		Scenario:        s.Scenario,
		Level:           s.Level,
		Model:           model,
		Improvement:     assess.CalculateImprovement(s.PreTest.ScorePercentage, s.PostTest.ScorePercentage),
		QuestionsTotal:  len(s.Questions),
		QuestionsTaught: taughtNums,
		Summaries:       s.Taught,
		StartedAt:       s.StartedAt,
		FinishedAt:      time.Now().UTC(),
	}, nil
}
