package verify

import (
	"fmt"
	"math"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/designsystem"
)

// VerifyContrast estimates whether the screenshot's text contrast meets
// the design system's normal-text requirement. The most dominant colour
// is assumed to be the background (a known limitation: a foreground
// element covering more area than the background breaks the
// assumption). The best-contrasting candidate is searched among the
// remaining dominant colours, then the canonical expected text colours
// are probed in case no dominant colour happens to be light text.
func VerifyContrast(dominant []colour.DominantColor) CheckResult {
	if len(dominant) < 2 {
		return CheckResult{
			Check:  CheckContrast,
			Passed: true,
			Note:   "Not enough colors to verify",
		}
	}

	background := dominant[0].Colour

	bestRatio := 0.0
	textColour := colour.RGB{R: 255, G: 255, B: 255}

	for _, dc := range dominant[1:] {
		if ratio := colour.ContrastRatio(background, dc.Colour); ratio > bestRatio {
			bestRatio = ratio
			textColour = dc.Colour
		}
	}

	for _, probe := range designsystem.ExpectedTextColours() {
		if ratio := colour.ContrastRatio(background, probe); ratio > bestRatio {
			bestRatio = ratio
			textColour = probe
		}
	}

	required := designsystem.ContrastRequirement(designsystem.ContextNormalText)

	result := CheckResult{
		Check:  CheckContrast,
		Passed: bestRatio >= required,
		Score:  scorePtr(math.Min(100, bestRatio/required*100)),
		Details: map[string]any{
			"contrast_ratio": round2(bestRatio),
			"required":       required,
			"bg_color":       background.Hex(),
			"text_color":     textColour.Hex(),
		},
	}

	if !result.Passed {
		result.Recommendation = fmt.Sprintf("Increase contrast ratio to at least %g:1", required)
	}

	return result
}
