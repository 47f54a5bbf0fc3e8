// Package cli provides the command-line interface for chromalint.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chromalint/chromalint/internal/verify"
	"github.com/chromalint/chromalint/internal/version"
)

var (
	// Root command flags
	outputFormat string
	batchWorkers int
)

// NewRootCmd builds the root command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chromalint <screenshot|report.json>",
		Short: "Verify UI screenshots against the design system",
		Long: `Chromalint performs heuristic visual verification of UI screenshots
against the design-system palette: dark-theme detection, dominant-colour
palette matching, and WCAG contrast estimation.

Given an image path it prints a per-check summary for that screenshot.
Given a test report (a path ending in .json) it verifies every
screenshot the report references and prints a JSON roll-up.

Supported image formats: PNG, JPEG, GIF, WebP. Paths may also be
HTTP(S) URLs.

Examples:
  # Verify a single screenshot
  chromalint screenshots/flow-editor.png

  # Machine-readable verdict for one screenshot
  chromalint --format json screenshots/flow-editor.png

  # Verify every screenshot in a test report, 8 images at a time
  chromalint --workers 8 reports/e2e-report.json`,
		Args:    cobra.ExactArgs(1),
		Version: version.Short(),
		RunE:    runVerify,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format for single screenshots (text, json)")
	rootCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 1, "concurrent verifications during batch runs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// runVerify executes the verification for either a single screenshot or
// a batch report, depending on the path extension.
func runVerify(cmd *cobra.Command, args []string) error {
	// Argument errors above have already shown usage; from here on a
	// failure is a processing error and repeating usage just buries it.
	cmd.SilenceUsage = true

	path := args[0]
	verbose, _ := cmd.Flags().GetBool("verbose")

	verifier := verify.NewVerifier(newLogger(verbose))
	verifier.Workers = batchWorkers

	if strings.HasSuffix(path, ".json") {
		return runBatch(cmd, verifier, path)
	}
	return runSingle(cmd, verifier, path)
}

func runBatch(cmd *cobra.Command, verifier *verify.Verifier, path string) error {
	result, err := verifier.Report(path)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runSingle(cmd *cobra.Command, verifier *verify.Verifier, path string) error {
	verdict, err := verifier.Image(path)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode verdict: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text", "":
		fmt.Fprint(cmd.OutOrStdout(), renderVerdict(path, verdict))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", outputFormat)
	}
	return nil
}

// newLogger builds the CLI logger. Diagnostics go to stderr so stdout
// stays parseable.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromalint",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
