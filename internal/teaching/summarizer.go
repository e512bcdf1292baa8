package teaching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/llm"
)

// NoTeachingText is the fixed summary for a question whose segment holds
// no messages. Produced without a model call.
const NoTeachingText = "No teaching occurred for this question. The student received no instruction and keeps their original belief."

// Summary is the durable record of what one question's teaching segment
// actually contained. Faithful, not idealized: it may report that the
// teaching was vague, wrong, or absent.
type Summary struct {
	QuestionNumber int    `json:"question_number"`
	Text           string `json:"summary"`

	// Degraded marks summaries produced from a failed model call. The
	// text then embeds the error instead of teaching content.
	Degraded bool `json:"degraded,omitempty"`
}

// summarySchema constrains the summarizer reply to a single summary
// string.
var summarySchema = &llm.Schema{
	Name:        "learning-summary",
	Description: "A faithful summary of what was taught about one question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Short account of what was actually said about this question",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

// Summarizer condenses a teaching segment into a Summary. It never
// returns an error: one question's failed summarization must not cost the
// rest of the session, so failures degrade to a placeholder summary that
// embeds the error.
type Summarizer struct {
	provider  llm.Provider
	maxTokens int
}

// NewSummarizer creates a Summarizer backed by the given provider.
func NewSummarizer(provider llm.Provider) *Summarizer {
	return &Summarizer{provider: provider, maxTokens: 400}
}

// Summarize produces the summary for one question's segment. An empty
// segment short-circuits to NoTeachingText without a model call.
func (s *Summarizer) Summarize(ctx context.Context, q bank.Question, seg Segment) Summary {
	if seg.Empty() {
		return Summary{QuestionNumber: q.Number, Text: NoTeachingText}
	}

	ctx = llm.WithPurpose(ctx, "learning-summary")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      summarizerPersona,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: summaryInstruction(q, seg)}},
		Schema:      summarySchema,
		MaxTokens:   s.maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return degradedSummary(q.Number, err)
	}

	var payload struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return degradedSummary(q.Number, err)
	}
	text := strings.TrimSpace(payload.Summary)
	if text == "" {
		return degradedSummary(q.Number, fmt.Errorf("model returned an empty summary"))
	}

	return Summary{QuestionNumber: q.Number, Text: text}
}

func degradedSummary(number int, err error) Summary {
	return Summary{
		QuestionNumber: number,
		Text:           fmt.Sprintf("Summarization failed (%v). No reliable record of what was taught for this question exists.", err),
		Degraded:       true,
	}
}

const summarizerPersona = "You are a meticulous note-taker recording what happened in a tutoring conversation. " +
	"You report only what was actually said. You never fill gaps with your own knowledge, " +
	"and you never correct mistakes the conversation left uncorrected."

// summaryInstruction builds the summarizer prompt. The three numbered
// rules are the contract: the summary must be grounded in the transcript,
// must not silently fix bad teaching, and must not invent instruction
// where there was none.
func summaryInstruction(q bank.Question, seg Segment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A teacher and a student just discussed this test question:\n\n")
	fmt.Fprintf(&b, "Question %d: %s\n\n", q.Number, q.Text)
	b.WriteString("Here is the full conversation about it:\n\n")
	b.WriteString(seg.Transcript())
	b.WriteString("\nWrite a short summary of what the student was taught about this question, following these rules:\n")
	b.WriteString("1. Include ONLY claims that appear in the conversation above, verbatim or closely paraphrased. Never add facts from outside knowledge, even if the teaching was incomplete.\n")
	b.WriteString("2. If the teaching confirmed or reinforced the student's original incorrect belief, say so explicitly. Do not silently replace it with the correct idea.\n")
	b.WriteString("3. If the conversation contains no substantive instruction (only greetings, acknowledgements, or filler), state that no clear instruction was given. Do not invent teaching content.\n")

	return b.String()
}
