package bank

import "sort"

// Question is one multiple-choice item, authored against a specific
// misconception. Immutable once authored; question numbers are positions
// within their level's list, not persistent IDs.
type Question struct {
	// Number is the 1-based position within the (scenario, level) list.
	Number int

	// Text is the question stem.
	Text string

	// Options maps option label (A–D) to option text.
	Options map[string]string

	// CorrectAnswer is the label of the right option.
	CorrectAnswer string

	// TrapAnswer, when set, is the label a holder of the targeted
	// misconception would pick. Always differs from CorrectAnswer.
	TrapAnswer string

	// TriggeredBy lists the misconception tags this question probes.
	// Diagnostic metadata only; never consulted while grading.
	TriggeredBy []string

	// Explanation is the author's rationale, shown after grading.
	// Never sent to the model.
	Explanation string
}

// Get returns the ordered question list for a (scenario, level) pair.
// Unknown pairs return an empty slice, not an error: scenarios without
// leveled content are expected.
//
// The returned questions are deep copies; callers can't corrupt the
// registry.
func Get(scenario, level string) []Question {
	levels, ok := registry[scenario]
	if !ok {
		return []Question{}
	}
	questions, ok := levels[level]
	if !ok {
		return []Question{}
	}

	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = copyQuestion(q)
	}
	return out
}

// Scenarios returns the sorted list of scenario names with questions.
func Scenarios() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Levels returns the sorted knowledge levels available for a scenario.
func Levels(scenario string) []string {
	levels, ok := registry[scenario]
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copyQuestion(q Question) Question {
	c := q
	c.Options = make(map[string]string, len(q.Options))
	for k, v := range q.Options {
		c.Options[k] = v
	}
	c.TriggeredBy = append([]string(nil), q.TriggeredBy...)
	return c
}
