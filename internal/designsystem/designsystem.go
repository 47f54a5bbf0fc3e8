// Package designsystem holds the canonical design-system palette and
// contrast requirements that screenshots are verified against. The data
// is process-wide static configuration and is never mutated.
package designsystem

import (
	"fmt"

	"github.com/chromalint/chromalint/internal/colour"
)

// Theme names recognised by the design system.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Role pairs a semantic role name with its canonical colour. Roles are
// kept as an ordered slice because palette matching scans them in
// declaration order and accepts the first match.
type Role struct {
	Name   string
	Colour colour.RGB
}

var themes = map[string][]Role{
	ThemeDark: {
		{Name: "bg_primary", Colour: colour.MustParseHex("#020617")},
		{Name: "bg_secondary", Colour: colour.MustParseHex("#0F172A")},
		{Name: "bg_elevated", Colour: colour.MustParseHex("#1E293B")},
		{Name: "primary", Colour: colour.MustParseHex("#6366F1")},
		{Name: "success", Colour: colour.MustParseHex("#22C55E")},
		{Name: "warning", Colour: colour.MustParseHex("#F59E0B")},
		{Name: "danger", Colour: colour.MustParseHex("#EF4444")},
		{Name: "text_primary", Colour: colour.MustParseHex("#F8FAFC")},
		{Name: "text_secondary", Colour: colour.MustParseHex("#94A3B8")},
	},
	ThemeLight: {
		{Name: "bg_primary", Colour: colour.MustParseHex("#FFFFFF")},
		{Name: "bg_secondary", Colour: colour.MustParseHex("#F8FAFC")},
		{Name: "text_primary", Colour: colour.MustParseHex("#0F172A")},
	},
}

// Contrast contexts and their minimum required WCAG ratios.
const (
	ContextNormalText   = "normal_text"
	ContextLargeText    = "large_text"
	ContextUIComponents = "ui_components"
)

var contrastRequirements = map[string]float64{
	ContextNormalText:   4.5, // WCAG AA
	ContextLargeText:    3.0,
	ContextUIComponents: 3.0,
}

// expectedTextColours are canonical text colours probed during contrast
// verification when no dominant colour happens to be light text.
var expectedTextColours = []colour.RGB{
	colour.MustParseHex("#F8FAFC"),
	colour.MustParseHex("#FFFFFF"),
	colour.MustParseHex("#E2E8F0"),
}

// Palette returns the ordered role palette for a theme.
func Palette(theme string) ([]Role, error) {
	roles, ok := themes[theme]
	if !ok {
		return nil, fmt.Errorf("unknown theme: %q", theme)
	}
	return roles, nil
}

// ContrastRequirement returns the minimum contrast ratio for a context,
// falling back to the normal-text requirement for unknown contexts.
func ContrastRequirement(context string) float64 {
	if ratio, ok := contrastRequirements[context]; ok {
		return ratio
	}
	return contrastRequirements[ContextNormalText]
}

// ExpectedTextColours returns the canonical text colours used as
// contrast probes.
func ExpectedTextColours() []colour.RGB {
	return expectedTextColours
}
