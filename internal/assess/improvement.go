package assess

import "math"

// LearnedThreshold is the improvement, in percentage points, above which a
// session is framed as "learned". Display framing only; no control
// decision depends on it.
const LearnedThreshold = 10.0

// Improvement compares a pre-test score with a post-test score.
type Improvement struct {
	PreTestScore  float64 `json:"pre_test_score"`
	PostTestScore float64 `json:"post_test_score"`
	Improvement   float64 `json:"improvement"`
	Learned       bool    `json:"learned"`
}

// CalculateImprovement diffs the two scores, rounding to one decimal.
func CalculateImprovement(pre, post float64) Improvement {
	improvement := post - pre
	return Improvement{
		PreTestScore:  round1(pre),
		PostTestScore: round1(post),
		Improvement:   round1(improvement),
		Learned:       improvement > LearnedThreshold,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
