package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "messages", "runs"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4.1-mini", Purpose: "pre-test", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4.1-mini", Purpose: "student-chat", InputTokens: 200, OutputTokens: 80, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "gpt-4.1-mini", Purpose: "post-test", InputTokens: 150, OutputTokens: 60, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, data := range events {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Purpose != "post-test" {
		t.Errorf("first purpose = %q, want post-test", got[0].Purpose)
	}
	if got[0].Success {
		t.Error("expected failed event")
	}

	// Purpose filter.
	got, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "pre-test"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(got) != 1 || got[0].Purpose != "pre-test" {
		t.Errorf("filtered events = %+v, want one pre-test event", got)
	}

	// Limit.
	got, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limited len = %d, want 2", len(got))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "learning-summary",
		InputTokens: 10, OutputTokens: 5, Success: true,
		RequestBody: "[system]\nsummarize", ResponseBody: `{"summary":"ok"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event 1")
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("expected request/response bodies to round-trip")
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4.1-mini", Purpose: "pre-test",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "student-chat",
		InputTokens: 300, OutputTokens: 120, LatencyMs: 600, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "pre-test" {
			if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 80 {
				t.Errorf("pre-test usage = %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func TestMessageRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	msgs := []Message{
		{RunID: "run-1", Role: "human-teacher", Content: "A bar chart compares categories.", TurnIndex: 0, QuestionNumber: 2},
		{RunID: "run-1", Role: "student", Content: "So I'd use bars for regions?", TurnIndex: 1, QuestionNumber: 2},
		{RunID: "run-2", Role: "human-teacher", Content: "unrelated run", TurnIndex: 0},
	}
	for i, m := range msgs {
		if err := repo.Append(ctx, m); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ByRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("by run: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Role != "human-teacher" || got[1].Role != "student" {
		t.Errorf("roles out of order: %q, %q", got[0].Role, got[1].Role)
	}
	if got[0].QuestionNumber != 2 {
		t.Errorf("question number = %d, want 2", got[0].QuestionNumber)
	}
}

func TestRunRepoLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	run := RunRecord{
		ID:             "run-abc",
		Scenario:       "type_to_chart",
		Level:          "beginner",
		Model:          "gpt-4.1-mini",
		QuestionsTotal: 5,
	}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("create: %v", err)
	}

	run.PreScore = 40
	run.PostScore = 80
	run.Improvement = 40
	run.Learned = true
	run.QuestionsTaught = 3
	run.SummariesJSON = `{"2":"the student learned bar charts"}`
	if err := repo.Finish(ctx, run); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, err := repo.Get(ctx, "run-abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected run")
	}
	if got.Improvement != 40 || !got.Learned {
		t.Errorf("run = %+v, want improvement 40 learned", got)
	}
	if got.QuestionsTaught != 3 {
		t.Errorf("taught = %d, want 3", got.QuestionsTaught)
	}

	runs, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("list len = %d, want 1", len(runs))
	}
}

func TestFinishUnknownRun(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()

	err := repo.Finish(context.Background(), RunRecord{ID: "nope"})
	if err == nil {
		t.Fatal("expected error finishing unknown run")
	}
}
