package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/chromalint/chromalint/internal/verify"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// renderVerdict formats a single-screenshot verdict for humans.
func renderVerdict(path string, verdict verify.Verdict) string {
	passIcon, failIcon := checkIcons()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Verification results for: %s", path)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("=", 50)))
	b.WriteString("\n")

	if verdict.Passed {
		b.WriteString(fmt.Sprintf("Passed: %s\n", passStyle.Render("Yes")))
	} else {
		b.WriteString(fmt.Sprintf("Passed: %s\n", failStyle.Render("No")))
	}
	b.WriteString(fmt.Sprintf("Score: %.1f/100\n", verdict.Score))

	b.WriteString("\nChecks:\n")
	for _, check := range verdict.Checks {
		icon := passIcon
		if !check.Passed {
			icon = failIcon
		}
		line := fmt.Sprintf("  %s %s", icon, check.Check)
		if check.Score != nil {
			line += dimStyle.Render(fmt.Sprintf("  (%.1f)", *check.Score))
		}
		if check.Note != "" {
			line += dimStyle.Render(fmt.Sprintf("  %s", check.Note))
		}
		b.WriteString(line + "\n")
	}

	if len(verdict.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range verdict.Recommendations {
			b.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	return b.String()
}

// checkIcons returns the per-check status markers. Emoji are reserved
// for interactive terminals; piped output gets plain ASCII so logs and
// CI captures stay grep-friendly.
func checkIcons() (pass, fail string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return passStyle.Render("✅"), failStyle.Render("❌")
	}
	return "[PASS]", "[FAIL]"
}
