package scenario

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// FillPrompt substitutes {{KEY}} placeholders in a template. Unknown
// placeholders are left in place so a typo in the template is visible in
// the rendered prompt rather than silently dropped.
func FillPrompt(template string, replacements map[string]string) string {
	prompt := template
	for key, value := range replacements {
		prompt = strings.ReplaceAll(prompt, "{{"+key+"}}", value)
	}
	return prompt
}

// Replacements builds the placeholder map for the student persona.
// Non-empty overrides take precedence over the scenario's student config.
func (c *Config) Replacements(levelOverride, policyOverride string) map[string]string {
	level := c.StudentConfig.KnowledgeLevel
	if levelOverride != "" {
		level = levelOverride
	}
	policy := c.StudentConfig.ReleaseAnswersPolicy
	if policyOverride != "" {
		policy = policyOverride
	}
	return map[string]string{
		"KNOWLEDGE_LEVEL":        level,
		"TARGET_SUBSKILLS":       strings.Join(c.StudentConfig.TargetSubskills, ", "),
		"MISCONCEPTIONS":         strings.Join(c.MisconceptionStatements(), ", "),
		"RELEASE_ANSWERS_POLICY": policy,
		"TONE":                   c.StudentConfig.Tone,
		"TURN_BUDGET":            strconv.Itoa(c.StudentConfig.TurnBudget),
	}
}

// Persona renders the full student system prompt for this scenario.
func (c *Config) Persona(levelOverride, policyOverride string) (string, error) {
	raw, err := fs.ReadFile(assetFS, "prompts/system_student.md")
	if err != nil {
		return "", fmt.Errorf("load persona template: %w", err)
	}
	return FillPrompt(string(raw), c.Replacements(levelOverride, policyOverride)), nil
}
