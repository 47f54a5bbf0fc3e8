package verify

import (
	"image"

	"github.com/chromalint/chromalint/internal/colour"
)

// themeColourCount is how many dominant colours are surfaced in the
// theme check's evidence.
const themeColourCount = 5

// VerifyDarkTheme checks that the screenshot uses the dark theme. The
// classification is a global mean-luminance threshold; see colour.IsDark.
func VerifyDarkTheme(img image.Image) CheckResult {
	return darkThemeResult(colour.IsDark(img), colour.DominantColors(img, themeColourCount))
}

func darkThemeResult(isDark bool, dominant []colour.DominantColor) CheckResult {
	result := CheckResult{
		Check:  CheckDarkTheme,
		Passed: isDark,
		Details: map[string]any{
			"is_dark":         isDark,
			"dominant_colors": colourFrequencies(dominant, 3),
		},
	}

	if !isDark {
		result.Recommendation = "Switch to dark theme for better eye comfort"
	}

	return result
}

// colourFrequency is a (colour, frequency) evidence pair for details
// payloads.
type colourFrequency struct {
	Colour    string  `json:"color"`
	Frequency float64 `json:"frequency"`
}

// colourFrequencies converts up to n dominant colours into evidence pairs.
func colourFrequencies(dominant []colour.DominantColor, n int) []colourFrequency {
	if len(dominant) > n {
		dominant = dominant[:n]
	}
	pairs := make([]colourFrequency, len(dominant))
	for i, dc := range dominant {
		pairs[i] = colourFrequency{
			Colour:    dc.Colour.Hex(),
			Frequency: dc.Frequency,
		}
	}
	return pairs
}
