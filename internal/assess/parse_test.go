package assess

import (
	"errors"
	"testing"
)

func TestParseReply_RawJSON(t *testing.T) {
	sheet, err := ParseReply(`{"answers": [{"question_number": 1, "selected_answer": "C", "reasoning": "it is an identifier"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(sheet.Answers))
	}
	if sheet.Answers[0].SelectedAnswer != "C" {
		t.Errorf("selected = %q, want C", sheet.Answers[0].SelectedAnswer)
	}
}

func TestParseReply_FencedWithLanguageTag(t *testing.T) {
	raw := "```json\n{\"answers\": [{\"question_number\": 2, \"selected_answer\": \"B\"}]}\n```"
	sheet, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Answers[0].QuestionNumber != 2 {
		t.Errorf("question number = %d, want 2", sheet.Answers[0].QuestionNumber)
	}
}

func TestParseReply_FencedWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"answers\": []}\n```"
	sheet, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Answers) != 0 {
		t.Errorf("expected empty answers, got %d", len(sheet.Answers))
	}
}

func TestParseReply_SurroundingProse(t *testing.T) {
	raw := "Sure! Here are my answers as requested:\n" +
		`{"answers": [{"question_number": 1, "selected_answer": "A"}]}` +
		"\nLet me know if you'd like me to explain any of them."
	sheet, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Answers[0].SelectedAnswer != "A" {
		t.Errorf("selected = %q, want A", sheet.Answers[0].SelectedAnswer)
	}
}

func TestParseReply_ProseAndFence(t *testing.T) {
	raw := "Okay, here you go:\n```json\n{\"answers\": [{\"question_number\": 3, \"selected_answer\": \"D\"}]}\n```\nHope that helps!"
	sheet, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Answers[0].SelectedAnswer != "D" {
		t.Errorf("selected = %q, want D", sheet.Answers[0].SelectedAnswer)
	}
}

func TestParseReply_NoJSONAtAll(t *testing.T) {
	_, err := ParseReply("I'm not sure how to answer these questions, sorry.")
	if err == nil {
		t.Fatal("expected error")
	}
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got %T", err)
	}
	if malformed.Raw == "" {
		t.Error("expected raw text to be carried for diagnostics")
	}
}

func TestParseReply_MissingAnswersKey(t *testing.T) {
	_, err := ParseReply(`{"responses": []}`)
	if err == nil {
		t.Fatal("expected error")
	}
	var grading *ErrGrading
	if !errors.As(err, &grading) {
		t.Fatalf("expected ErrGrading, got %T", err)
	}
	if grading.MissingKey != "answers" {
		t.Errorf("missing key = %q, want answers", grading.MissingKey)
	}
}

func TestParseReply_EmptyInput(t *testing.T) {
	_, err := ParseReply("   \n  ")
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got %T (%v)", err, err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"json tag", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"no tag", "```\n{\"a\":1}\n```", `{"a":1}`, true},
		{"not fenced", `{"a":1}`, "", false},
		{"fence only opener", "```json", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StripCodeFence(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractBraceSpan(t *testing.T) {
	got, ok := ExtractBraceSpan(`prefix {"a": {"b": 2}} suffix`)
	if !ok {
		t.Fatal("expected a span")
	}
	if got != `{"a": {"b": 2}}` {
		t.Errorf("got %q", got)
	}

	if _, ok := ExtractBraceSpan("no braces here"); ok {
		t.Error("expected no span")
	}
	if _, ok := ExtractBraceSpan("} reversed {"); ok {
		t.Error("expected no span for reversed braces")
	}
}
