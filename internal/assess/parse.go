package assess

import (
	"encoding/json"
	"errors"
	"strings"
)

// AnswerSheet is the structured form of a test reply.
type AnswerSheet struct {
	Answers []Answer `json:"answers"`
}

// Answer is one selected option in a test reply.
type Answer struct {
	QuestionNumber int    `json:"question_number"`
	SelectedAnswer string `json:"selected_answer"`
	Reasoning      string `json:"reasoning"`
}

// ParseReply coerces a free-form model reply into an AnswerSheet.
//
// Models wrap JSON in prose and code fences no matter how firmly the
// prompt forbids it, so parsing runs a ladder of extraction strategies:
//
//  1. decode the trimmed text directly
//  2. strip a fenced code block and decode the body
//  3. take the outermost {...} span and decode that
//
// Each strategy is a pure function so it can be unit-tested against
// fixtures that simulate real deviations. If every rung fails the error is
// *ErrMalformedResponse carrying the raw text; a decoded object without an
// "answers" key is *ErrGrading.
func ParseReply(raw string) (*AnswerSheet, error) {
	trimmed := strings.TrimSpace(raw)

	candidates := []string{trimmed}
	if body, ok := StripCodeFence(trimmed); ok {
		candidates = append(candidates, body)
	}
	if span, ok := ExtractBraceSpan(trimmed); ok {
		candidates = append(candidates, span)
	}

	var lastErr error
	for _, candidate := range candidates {
		obj, err := DecodeObject(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return sheetFromObject(obj, raw)
	}

	if lastErr == nil {
		lastErr = errors.New("empty reply")
	}
	return nil, &ErrMalformedResponse{Raw: raw, Err: lastErr}
}

// DecodeObject decodes text as a single JSON object. It is the first rung
// of the parse ladder and the decoder behind the later rungs.
func DecodeObject(text string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// StripCodeFence removes a leading/trailing markdown code fence (with or
// without a language tag) and returns the inner body. Returns false when
// the text is not fenced.
func StripCodeFence(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return "", false
	}

	body := text
	// Drop the opening fence line, language tag included.
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[idx+1:]
	} else {
		return "", false
	}

	// Drop the closing fence.
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}

	return strings.TrimSpace(body), true
}

// ExtractBraceSpan returns the span from the first '{' to the last '}'.
// Returns false when no such span exists.
func ExtractBraceSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func sheetFromObject(obj map[string]json.RawMessage, raw string) (*AnswerSheet, error) {
	answersRaw, ok := obj["answers"]
	if !ok {
		return nil, &ErrGrading{Raw: raw, MissingKey: "answers"}
	}

	var answers []Answer
	if err := json.Unmarshal(answersRaw, &answers); err != nil {
		return nil, &ErrMalformedResponse{Raw: raw, Err: err}
	}
	return &AnswerSheet{Answers: answers}, nil
}
