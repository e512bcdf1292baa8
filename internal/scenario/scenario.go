package scenario

import (
	"fmt"
	"strings"
)

const (
	DefaultTone       = "encouraging, concise, concrete"
	DefaultTurnBudget = 7
	DefaultPolicy     = "withhold_solution"
	DefaultLevel      = "beginner"
)

// ValidPolicies are the recognized answer-release policies, ordered from
// most to least withholding.
var ValidPolicies = []string{"withhold_solution", "guided_steps", "full_solution_ok"}

// ValidLevels are the recognized knowledge levels.
var ValidLevels = []string{"beginner", "intermediate"}

// StudentConfig shapes the simulated student for one scenario.
type StudentConfig struct {
	KnowledgeLevel       string   `yaml:"knowledge_level"`
	Misconceptions       []string `yaml:"misconceptions"`
	TargetSubskills      []string `yaml:"target_subskills"`
	Tone                 string   `yaml:"tone"`
	TurnBudget           int      `yaml:"turn_budget"`
	ReleaseAnswersPolicy string   `yaml:"release_answers_policy"`
}

// Config is one scenario definition. The top-level misconceptions and
// subskills are the scenario's full vocabulary; the student config selects
// from them.
type Config struct {
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description"`
	Tasks          []string      `yaml:"tasks"`
	Subskills      []string      `yaml:"subskills"`
	Misconceptions []string      `yaml:"misconceptions"`
	StudentConfig  StudentConfig `yaml:"student_config"`
}

// applyDefaults fills unset student-config fields.
func (c *Config) applyDefaults() {
	sc := &c.StudentConfig
	if sc.KnowledgeLevel == "" {
		sc.KnowledgeLevel = DefaultLevel
	}
	if sc.Tone == "" {
		sc.Tone = DefaultTone
	}
	if sc.TurnBudget == 0 {
		sc.TurnBudget = DefaultTurnBudget
	}
	if sc.ReleaseAnswersPolicy == "" {
		sc.ReleaseAnswersPolicy = DefaultPolicy
	}
	if len(sc.TargetSubskills) == 0 {
		sc.TargetSubskills = c.Subskills
	}
	if len(sc.Misconceptions) == 0 {
		sc.Misconceptions = c.Misconceptions
	}
}

// Validate checks the structural invariants: non-empty name, known level
// and policy, and student selections drawn from the scenario vocabulary.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if !contains(ValidLevels, c.StudentConfig.KnowledgeLevel) {
		return fmt.Errorf("scenario %s: unknown knowledge level %q", c.Name, c.StudentConfig.KnowledgeLevel)
	}
	if !contains(ValidPolicies, c.StudentConfig.ReleaseAnswersPolicy) {
		return fmt.Errorf("scenario %s: unknown release policy %q", c.Name, c.StudentConfig.ReleaseAnswersPolicy)
	}
	if c.StudentConfig.TurnBudget < 1 {
		return fmt.Errorf("scenario %s: turn budget must be positive", c.Name)
	}
	for _, s := range c.StudentConfig.TargetSubskills {
		if !contains(c.Subskills, s) {
			return fmt.Errorf("scenario %s: target subskill %q not declared in subskills", c.Name, s)
		}
	}
	for _, m := range c.StudentConfig.Misconceptions {
		if !contains(c.Misconceptions, m) {
			return fmt.Errorf("scenario %s: student misconception %q not declared in misconceptions", c.Name, m)
		}
	}
	return nil
}

// MisconceptionStatements renders the student's misconception tags as
// readable phrases for prompts.
func (c *Config) MisconceptionStatements() []string {
	out := make([]string, len(c.StudentConfig.Misconceptions))
	for i, m := range c.StudentConfig.Misconceptions {
		out[i] = strings.ReplaceAll(m, "_", " ")
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
