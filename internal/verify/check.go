// Package verify implements the screenshot verification checks and
// their aggregation into per-image verdicts and batch summaries.
package verify

import "math"

// Check names as they appear in serialized output. Downstream report
// tooling keys off these strings.
const (
	CheckDarkTheme     = "dark_theme"
	CheckColourPalette = "color_palette"
	CheckContrast      = "contrast"
)

// CheckResult is the outcome of one named check. Results are produced
// fresh per invocation and never mutated afterwards.
type CheckResult struct {
	Check   string         `json:"check"`
	Passed  bool           `json:"passed"`
	Score   *float64       `json:"score,omitempty"`
	Details map[string]any `json:"details,omitempty"`

	// Note explains a short-circuited check (e.g. not enough colours
	// to measure contrast).
	Note string `json:"note,omitempty"`

	// Recommendation is set only when the check failed.
	Recommendation string `json:"recommendation,omitempty"`
}

// Verdict aggregates all check results for one image.
type Verdict struct {
	Passed          bool          `json:"passed"`
	Score           float64       `json:"score"`
	Checks          []CheckResult `json:"checks"`
	Recommendations []string      `json:"recommendations"`
}

// aggregate merges check results into a single verdict: overall passed
// is the logical AND of the checks, the overall score is the mean of
// the per-check scores (a check without an explicit score contributes
// 100 when passed and 0 when failed), and recommendations are collected
// in check order.
func aggregate(checks []CheckResult) Verdict {
	passed := true
	total := 0.0
	recommendations := []string{}

	for _, c := range checks {
		if !c.Passed {
			passed = false
		}
		switch {
		case c.Score != nil:
			total += *c.Score
		case c.Passed:
			total += 100
		}
		if c.Recommendation != "" {
			recommendations = append(recommendations, c.Recommendation)
		}
	}

	score := 0.0
	if len(checks) > 0 {
		score = round1(total / float64(len(checks)))
	}

	return Verdict{
		Passed:          passed,
		Score:           score,
		Checks:          checks,
		Recommendations: recommendations,
	}
}

// scorePtr returns a pointer to a score value for optional score fields.
func scorePtr(v float64) *float64 {
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
