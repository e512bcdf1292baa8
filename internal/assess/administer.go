package assess

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/llm"
)

// Administration describes one test to run against the simulated student.
type Administration struct {
	// Phase labels this administration ("pre-test", "post-test") for
	// event logging and error messages.
	Phase string

	// Persona is the fully rendered system prompt defining the student.
	// Opaque: the administrator never inspects it.
	Persona string

	// Preamble, when non-empty, precedes the question block. The post-test
	// composer uses it to inject taught summaries and untaught-misconception
	// instructions.
	Preamble string

	Questions []bank.Question
}

// Administrator turns a question set into a generation request, parses the
// free-form reply, and grades it. It deliberately sends no response schema:
// the reply is plain text and the parse ladder is the contract, mirroring
// how an unconstrained student would answer.
type Administrator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewAdministrator creates an Administrator using the given provider.
func NewAdministrator(provider llm.Provider) *Administrator {
	return &Administrator{
		provider:    provider,
		maxTokens:   1500,
		temperature: 0.7,
	}
}

// Administer runs the full pipeline: format prompt, call the model, parse,
// grade. An empty question set grades trivially to an empty zero-score
// result without a model call.
//
// Failures propagate as typed errors wrapped with the phase name. There is
// no retry here: a failed administration aborts its phase, and the caller
// decides what to do with the session.
func (a *Administrator) Administer(ctx context.Context, adm Administration) (*TestResult, error) {
	if len(adm.Questions) == 0 {
		return &TestResult{}, nil
	}

	prompt := FormatRequest(adm.Questions)
	if adm.Preamble != "" {
		prompt = adm.Preamble + "\n\n" + prompt
	}

	ctx = llm.WithPurpose(ctx, adm.Phase)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      adm.Persona,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", adm.Phase, err)
	}

	sheet, err := ParseReply(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", adm.Phase, err)
	}

	result := Grade(adm.Questions, sheet)
	return &result, nil
}

// RawReply extracts the raw model text from a parse failure, or "" when
// the error carries none.
func RawReply(err error) string {
	var malformed *ErrMalformedResponse
	if errors.As(err, &malformed) {
		return malformed.Raw
	}
	var grading *ErrGrading
	if errors.As(err, &grading) {
		return grading.Raw
	}
	return ""
}
