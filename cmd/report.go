package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutee/internal/assess"
)

// printTestResult renders a graded test, one line per question.
func printTestResult(label string, result *assess.TestResult) {
	fmt.Printf("\n%s results\n", label)
	fmt.Println(strings.Repeat("─", 72))
	for _, q := range result.Questions {
		mark := "✗"
		if q.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s Q%d: answered %s (correct %s)\n", mark, q.QuestionNumber, q.SelectedAnswer, q.CorrectAnswer)
		if q.Reasoning != "" {
			fmt.Printf("   reasoning: %s\n", q.Reasoning)
		}
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Score: %.1f%% (%d/%d)\n", result.ScorePercentage, result.CorrectCount(), len(result.Questions))
}

// printImprovement renders the pre/post comparison.
func printImprovement(imp assess.Improvement) {
	fmt.Println()
	fmt.Println(strings.Repeat("═", 72))
	fmt.Println("TEACHING IMPACT")
	fmt.Println(strings.Repeat("═", 72))
	fmt.Printf("Pre-test:    %.1f%%\n", imp.PreTestScore)
	fmt.Printf("Post-test:   %.1f%%\n", imp.PostTestScore)
	fmt.Printf("Improvement: %+.1f points\n", imp.Improvement)
	if imp.Learned {
		fmt.Println("The student learned from your teaching.")
	} else {
		fmt.Println("The student did not improve meaningfully. Try being more direct about the misconception.")
	}
}
