package bank

import (
	"testing"
)

func TestGetKnownScenario(t *testing.T) {
	qs := Get("data_types", "beginner")
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if qs[0].CorrectAnswer != "C" {
		t.Errorf("question 1 correct answer = %q, want C", qs[0].CorrectAnswer)
	}
}

func TestGetUnknownPairsReturnEmpty(t *testing.T) {
	tests := []struct {
		scenario, level string
	}{
		{"nonexistent", "beginner"},
		{"data_types", "expert"},
		{"", ""},
	}
	for _, tt := range tests {
		qs := Get(tt.scenario, tt.level)
		if qs == nil {
			t.Errorf("Get(%q, %q) returned nil, want empty slice", tt.scenario, tt.level)
		}
		if len(qs) != 0 {
			t.Errorf("Get(%q, %q) returned %d questions, want 0", tt.scenario, tt.level, len(qs))
		}
	}
}

func TestGetReturnsDefensiveCopy(t *testing.T) {
	first := Get("data_types", "beginner")
	first[0].Options["A"] = "tampered"
	first[0].TriggeredBy[0] = "tampered"
	first[0].CorrectAnswer = "Z"

	second := Get("data_types", "beginner")
	if second[0].Options["A"] == "tampered" {
		t.Error("registry options mutated through returned copy")
	}
	if second[0].TriggeredBy[0] == "tampered" {
		t.Error("registry tags mutated through returned copy")
	}
	if second[0].CorrectAnswer != "C" {
		t.Error("registry answer mutated through returned copy")
	}
}

func TestScenariosAndLevels(t *testing.T) {
	scenarios := Scenarios()
	want := []string{"chart_to_task", "data_preparation", "data_types", "type_to_chart"}
	if len(scenarios) != len(want) {
		t.Fatalf("scenarios = %v, want %v", scenarios, want)
	}
	for i := range want {
		if scenarios[i] != want[i] {
			t.Errorf("scenarios[%d] = %q, want %q", i, scenarios[i], want[i])
		}
	}

	levels := Levels("data_types")
	if len(levels) != 2 || levels[0] != "beginner" || levels[1] != "intermediate" {
		t.Errorf("data_types levels = %v, want [beginner intermediate]", levels)
	}
	if len(Levels("nonexistent")) != 0 {
		t.Error("expected no levels for unknown scenario")
	}
}

// Authoring invariants: these hold for every question in the registry.

func TestTrapAnswerDistinctFromCorrect(t *testing.T) {
	forEachQuestion(t, func(t *testing.T, scenario, level string, q Question) {
		if q.TrapAnswer != "" && q.TrapAnswer == q.CorrectAnswer {
			t.Errorf("%s/%s question %d: trap answer equals correct answer %q",
				scenario, level, q.Number, q.TrapAnswer)
		}
	})
}

func TestAnswerLabelsAreOptionKeys(t *testing.T) {
	forEachQuestion(t, func(t *testing.T, scenario, level string, q Question) {
		if _, ok := q.Options[q.CorrectAnswer]; !ok {
			t.Errorf("%s/%s question %d: correct answer %q not an option key",
				scenario, level, q.Number, q.CorrectAnswer)
		}
		if q.TrapAnswer != "" {
			if _, ok := q.Options[q.TrapAnswer]; !ok {
				t.Errorf("%s/%s question %d: trap answer %q not an option key",
					scenario, level, q.Number, q.TrapAnswer)
			}
		}
	})
}

func TestQuestionNumbersContiguous(t *testing.T) {
	for scenario, levels := range registry {
		for level, questions := range levels {
			for i, q := range questions {
				if q.Number != i+1 {
					t.Errorf("%s/%s: question at index %d numbered %d, want %d",
						scenario, level, i, q.Number, i+1)
				}
			}
		}
	}
}

func TestEveryQuestionTagged(t *testing.T) {
	forEachQuestion(t, func(t *testing.T, scenario, level string, q Question) {
		if len(q.TriggeredBy) == 0 {
			t.Errorf("%s/%s question %d: no misconception tags", scenario, level, q.Number)
		}
		if q.Explanation == "" {
			t.Errorf("%s/%s question %d: missing explanation", scenario, level, q.Number)
		}
	})
}

func forEachQuestion(t *testing.T, fn func(t *testing.T, scenario, level string, q Question)) {
	t.Helper()
	for scenario, levels := range registry {
		for level, questions := range levels {
			for _, q := range questions {
				fn(t, scenario, level, q)
			}
		}
	}
}
