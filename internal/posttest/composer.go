package posttest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutee/internal/assess"
	"github.com/abhisek/tutee/internal/bank"
	"github.com/abhisek/tutee/internal/teaching"
)

// Composer builds and runs the post-test: taught questions are answered
// from their learning summaries, untaught questions from the student's
// original misconceptions. It reuses the standard administrator, so the
// reply format, parse ladder, and grading are identical to the pre-test.
type Composer struct {
	admin *assess.Administrator
}

// NewComposer creates a Composer around an administrator.
func NewComposer(admin *assess.Administrator) *Composer {
	return &Composer{admin: admin}
}

// Partition splits question numbers into taught (present in the summary
// map) and untaught (the complement), both ascending.
func Partition(questions []bank.Question, taught map[int]teaching.Summary) (taughtNums, untaughtNums []int) {
	for _, q := range questions {
		if _, ok := taught[q.Number]; ok {
			taughtNums = append(taughtNums, q.Number)
		} else {
			untaughtNums = append(untaughtNums, q.Number)
		}
	}
	sort.Ints(taughtNums)
	sort.Ints(untaughtNums)
	return taughtNums, untaughtNums
}

// BuildInstructions produces the instruction block that precedes the
// question list. Pure; unit-tested without a model.
//
// Two delimited sections: taught questions carry their summaries verbatim
// with an order to apply them exactly, untaught questions are pinned to
// the original misconceptions with outside knowledge explicitly forbidden.
// With nothing taught, the discussed section is omitted entirely and every
// question falls under the misconception instruction.
func BuildInstructions(questions []bank.Question, taught map[int]teaching.Summary, untaughtMisconceptions []string) string {
	taughtNums, untaughtNums := Partition(questions, taught)

	var b strings.Builder
	b.WriteString("IMPORTANT: This is a POST-TEST after your teaching session.\n")

	if len(taughtNums) > 0 {
		b.WriteString("\n=== QUESTIONS YOU DISCUSSED WITH YOUR TEACHER ===\n")
		b.WriteString("For each question below, what your teacher taught you is recorded. ")
		b.WriteString("Apply each record EXACTLY as written, trusting it completely even if it conflicts with what you believed before. ")
		b.WriteString("If the record says no clear instruction was given, you learned nothing new for that question.\n")
		for _, num := range taughtNums {
			fmt.Fprintf(&b, "\nQuestion %d — what you were taught:\n%s\n", num, taught[num].Text)
		}
	}

	if len(untaughtNums) > 0 {
		b.WriteString("\n=== QUESTIONS YOU DID NOT DISCUSS ===\n")
		if len(taughtNums) > 0 {
			fmt.Fprintf(&b, "Your teacher did not go over questions %s with you. ", joinInts(untaughtNums))
		} else {
			b.WriteString("Your teacher did not go over any of the questions with you. ")
		}
		b.WriteString("For these questions you have learned nothing new: answer them from your ORIGINAL beliefs, which are:\n")
		for _, m := range untaughtMisconceptions {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("Do NOT use outside or general knowledge for these questions. Your original beliefs are your only source.\n")
	}

	b.WriteString("\nAnswer in the first person as the student. Your reasoning should sound like your own thinking, not commentary about the teaching.")
	return b.String()
}

// CombinedSummary renders the taught summaries as one display artifact,
// each under a heading naming its question, ascending.
func CombinedSummary(taught map[int]teaching.Summary) string {
	nums := make([]int, 0, len(taught))
	for num := range taught {
		nums = append(nums, num)
	}
	sort.Ints(nums)

	var b strings.Builder
	for _, num := range nums {
		fmt.Fprintf(&b, "### Question %d\n%s\n\n", num, taught[num].Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ComposeAndAdminister runs the post-test and returns its graded result.
func (c *Composer) ComposeAndAdminister(
	ctx context.Context,
	questions []bank.Question,
	taught map[int]teaching.Summary,
	untaughtMisconceptions []string,
) (*assess.TestResult, error) {
	return c.admin.Administer(ctx, assess.Administration{
		Phase:     "post-test",
		Persona:   postTestPersona(),
		Preamble:  BuildInstructions(questions, taught, untaughtMisconceptions),
		Questions: questions,
	})
}

// postTestPersona frames the student for the post-test: total trust in
// the teacher for taught material, unchanged beliefs for everything else.
func postTestPersona() string {
	return "You are a student who has just finished a tutoring session. " +
		"You trust your teacher completely: for every question you discussed together, you apply exactly what the teacher taught you, " +
		"even when it contradicts what you used to think. " +
		"For everything you did not discuss, you have not changed your mind at all and still hold your original beliefs. " +
		"You answer test questions in the first person, reasoning as yourself."
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
