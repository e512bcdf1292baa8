package assess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutee/internal/bank"
)

// FormatRequest serializes a question list into a single instruction block
// demanding a strict machine-parseable reply. The exact expected shape is
// spelled out because the reply is parsed without a grammar-constrained
// decoder; the parse ladder in parse.go handles the deviations that happen
// anyway.
func FormatRequest(questions []bank.Question) string {
	var b strings.Builder

	b.WriteString("Please answer the following multiple choice questions. ")
	b.WriteString("Respond ONLY with valid JSON in this exact format:\n")
	b.WriteString(`{"answers": [{"question_number": 1, "selected_answer": "A", "reasoning": "brief explanation"}, ...]}`)
	b.WriteString("\n\nQuestions:\n")

	for _, q := range questions {
		fmt.Fprintf(&b, "\n%d. %s\n", q.Number, q.Text)
		for _, label := range sortedLabels(q.Options) {
			fmt.Fprintf(&b, "   %s) %s\n", label, q.Options[label])
		}
	}

	b.WriteString("\nRemember: Respond with ONLY the JSON object, no additional text.")
	return b.String()
}

func sortedLabels(options map[string]string) []string {
	labels := make([]string, 0, len(options))
	for label := range options {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
