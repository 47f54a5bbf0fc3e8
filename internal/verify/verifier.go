package verify

import (
	"fmt"
	stdimage "image"

	"github.com/hashicorp/go-hclog"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/designsystem"
	"github.com/chromalint/chromalint/internal/image"
)

// Verifier runs all verification checks against screenshots. It holds
// no per-call state; a single Verifier can be reused across images.
type Verifier struct {
	loader image.Loader
	logger hclog.Logger

	// Workers bounds concurrent image verification during batch runs.
	// Values below 2 mean sequential processing.
	Workers int
}

// NewVerifier creates a Verifier that loads screenshots from local
// paths and HTTP(S) URLs.
func NewVerifier(logger hclog.Logger) *Verifier {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Verifier{
		loader: image.NewSmartLoader(),
		logger: logger,
	}
}

// Image runs all checks against the screenshot at path and returns the
// merged verdict. An unreadable or undecodable screenshot is an error,
// never a default verdict.
func (v *Verifier) Image(path string) (Verdict, error) {
	img, err := v.loader.Load(path)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to load screenshot %s: %w", path, err)
	}
	return v.verify(img)
}

// verify runs the three checks and aggregates them. The palette check
// is verified against the theme the screenshot was classified as, so a
// legitimate light-theme page is held to the light palette rather than
// failing everything at once.
func (v *Verifier) verify(img stdimage.Image) (Verdict, error) {
	isDark := colour.IsDark(img)
	themeCheck := darkThemeResult(isDark, colour.DominantColors(img, themeColourCount))

	theme := designsystem.ThemeLight
	if isDark {
		theme = designsystem.ThemeDark
	}

	dominant := colour.DominantColors(img, paletteColourCount)

	paletteCheck, err := VerifyPalette(dominant, theme)
	if err != nil {
		return Verdict{}, err
	}

	contrastCheck := VerifyContrast(dominant)

	verdict := aggregate([]CheckResult{themeCheck, paletteCheck, contrastCheck})
	v.logger.Debug("verified screenshot",
		"theme", theme,
		"passed", verdict.Passed,
		"score", verdict.Score,
	)
	return verdict, nil
}
