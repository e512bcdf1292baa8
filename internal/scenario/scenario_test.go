package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/tutee/internal/bank"
)

func TestListBuiltins(t *testing.T) {
	names, err := NewLoader().List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"chart_to_task", "data_preparation", "data_types", "type_to_chart"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestLoadValidatesBuiltins(t *testing.T) {
	loader := NewLoader()
	names, err := loader.List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		cfg, err := loader.Load(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("%s: name = %q", name, cfg.Name)
		}
		if cfg.StudentConfig.TurnBudget < 1 {
			t.Errorf("%s: turn budget unset", name)
		}
		if len(cfg.StudentConfig.Misconceptions) == 0 {
			t.Errorf("%s: student has no misconceptions", name)
		}
	}
}

// Every built-in scenario must have a matching question set, and the trap
// tags in the bank must come from the scenario's misconception vocabulary.
func TestBuiltinsAlignWithQuestionBank(t *testing.T) {
	loader := NewLoader()
	names, err := loader.List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		cfg, err := loader.Load(name)
		if err != nil {
			t.Fatal(err)
		}
		level := cfg.StudentConfig.KnowledgeLevel
		questions := bank.Get(name, level)
		if len(questions) == 0 {
			t.Fatalf("%s/%s: empty question set", name, level)
		}

		declared := map[string]bool{}
		for _, m := range cfg.Misconceptions {
			declared[m] = true
		}
		for _, q := range questions {
			for _, tag := range q.TriggeredBy {
				if !declared[tag] {
					t.Errorf("%s question %d: trap tag %q not declared in scenario", name, q.Number, tag)
				}
			}
		}
	}
}

func TestLoadUnknownScenario(t *testing.T) {
	if _, err := NewLoader().Load("nope"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestWithDirOverride(t *testing.T) {
	dir := t.TempDir()
	custom := `name: custom
description: A user-authored scenario.
tasks:
  - do the thing
subskills:
  - a_skill
misconceptions:
  - a_belief
student_config:
  knowledge_level: beginner
  misconceptions:
    - a_belief
  target_subskills:
    - a_skill
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := WithDir(dir)
	names, err := loader.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "custom" {
		t.Fatalf("names = %v", names)
	}

	cfg, err := loader.Load("custom")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StudentConfig.Tone != DefaultTone {
		t.Errorf("tone = %q, want default", cfg.StudentConfig.Tone)
	}
	if cfg.StudentConfig.TurnBudget != DefaultTurnBudget {
		t.Errorf("turn budget = %d, want %d", cfg.StudentConfig.TurnBudget, DefaultTurnBudget)
	}
	if cfg.StudentConfig.ReleaseAnswersPolicy != DefaultPolicy {
		t.Errorf("policy = %q, want default", cfg.StudentConfig.ReleaseAnswersPolicy)
	}

	// Persona templates still come from the built-ins.
	persona, err := cfg.Persona("", "")
	if err != nil {
		t.Fatalf("persona: %v", err)
	}
	if !strings.Contains(persona, "a belief") {
		t.Errorf("persona missing misconception: %q", persona)
	}
}

func TestValidateRejectsUndeclaredSelections(t *testing.T) {
	cfg := Config{
		Name:           "x",
		Subskills:      []string{"a"},
		Misconceptions: []string{"m"},
		StudentConfig: StudentConfig{
			KnowledgeLevel:       "beginner",
			Misconceptions:       []string{"other"},
			TargetSubskills:      []string{"a"},
			Tone:                 DefaultTone,
			TurnBudget:           7,
			ReleaseAnswersPolicy: DefaultPolicy,
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected undeclared misconception to fail validation")
	}

	cfg.StudentConfig.Misconceptions = []string{"m"}
	cfg.StudentConfig.TargetSubskills = []string{"b"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected undeclared subskill to fail validation")
	}

	cfg.StudentConfig.TargetSubskills = []string{"a"}
	cfg.StudentConfig.ReleaseAnswersPolicy = "always"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown policy to fail validation")
	}
}

func TestFillPrompt(t *testing.T) {
	got := FillPrompt("level {{KNOWLEDGE_LEVEL}}, budget {{TURN_BUDGET}}, keep {{UNKNOWN}}", map[string]string{
		"KNOWLEDGE_LEVEL": "beginner",
		"TURN_BUDGET":     "7",
	})
	want := "level beginner, budget 7, keep {{UNKNOWN}}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplacementsOverrides(t *testing.T) {
	cfg, err := NewLoader().Load("data_types")
	if err != nil {
		t.Fatal(err)
	}

	r := cfg.Replacements("intermediate", "full_solution_ok")
	if r["KNOWLEDGE_LEVEL"] != "intermediate" {
		t.Errorf("level = %q", r["KNOWLEDGE_LEVEL"])
	}
	if r["RELEASE_ANSWERS_POLICY"] != "full_solution_ok" {
		t.Errorf("policy = %q", r["RELEASE_ANSWERS_POLICY"])
	}
	if !strings.Contains(r["MISCONCEPTIONS"], "ids are numbers") {
		t.Errorf("misconceptions = %q", r["MISCONCEPTIONS"])
	}

	r = cfg.Replacements("", "")
	if r["KNOWLEDGE_LEVEL"] != "beginner" {
		t.Errorf("default level = %q", r["KNOWLEDGE_LEVEL"])
	}
	if r["TURN_BUDGET"] != "7" {
		t.Errorf("turn budget = %q", r["TURN_BUDGET"])
	}
}

func TestPersonaHasNoLeftoverPlaceholders(t *testing.T) {
	cfg, err := NewLoader().Load("type_to_chart")
	if err != nil {
		t.Fatal(err)
	}
	persona, err := cfg.Persona("", "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(persona, "{{") {
		t.Errorf("persona has unfilled placeholders:\n%s", persona)
	}
	if !strings.Contains(persona, "pie for everything") {
		t.Error("persona missing rendered misconception")
	}
}
