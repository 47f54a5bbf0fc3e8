package verify

import (
	"fmt"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/designsystem"
)

const (
	// paletteColourCount is how many dominant colours are examined by
	// the palette and contrast checks.
	paletteColourCount = 10

	// paletteMatchTolerance is the per-channel tolerance for matching
	// a detected colour against a canonical palette colour. Wide on
	// purpose: rendering, compositing and screenshot compression all
	// shift channel values.
	paletteMatchTolerance = 48

	// paletteMatchThreshold is the fraction of dominant colours that
	// must match the palette for the check to pass.
	paletteMatchThreshold = 0.5
)

// paletteMatch records one dominant colour matched to a palette role.
type paletteMatch struct {
	Detected  string `json:"detected"`
	Matches   string `json:"matches"`
	Expected  string `json:"expected"`
	Frequency string `json:"frequency"`
}

// VerifyPalette checks how well the dominant colours align with the
// design-system palette for the given theme. Each dominant colour is
// matched against the theme's roles in declaration order and the first
// role within tolerance wins; a dominant colour never matches more than
// one role.
func VerifyPalette(dominant []colour.DominantColor, theme string) (CheckResult, error) {
	roles, err := designsystem.Palette(theme)
	if err != nil {
		return CheckResult{}, err
	}

	matches := []paletteMatch{}
	for _, dc := range dominant {
		for _, role := range roles {
			if colour.Similar(dc.Colour, role.Colour, paletteMatchTolerance) {
				matches = append(matches, paletteMatch{
					Detected:  dc.Colour.Hex(),
					Matches:   role.Name,
					Expected:  role.Colour.Hex(),
					Frequency: fmt.Sprintf("%.1f%%", dc.Frequency*100),
				})
				break
			}
		}
	}

	matchPercentage := 0.0
	if len(dominant) > 0 {
		matchPercentage = float64(len(matches)) / float64(len(dominant))
	}

	result := CheckResult{
		Check:  CheckColourPalette,
		Passed: matchPercentage >= paletteMatchThreshold,
		Score:  scorePtr(matchPercentage * 100),
		Details: map[string]any{
			"matches":         matches,
			"dominant_colors": colourFrequencies(dominant, 5),
		},
	}

	if !result.Passed {
		result.Recommendation = "Align colors with design system palette"
	}

	return result, nil
}
