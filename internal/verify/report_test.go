package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSkipsUnresolvableEntries(t *testing.T) {
	dir := t.TempDir()
	valid := writePNG(t, dir, "valid.png", darkFill)

	verifier := NewVerifier(nil)
	result, err := verifier.Batch([]ReportEntry{
		{TestID: "a", ScreenshotPath: valid},
		{TestID: "b", ScreenshotPath: ""},
		{TestID: "c", ScreenshotPath: filepath.Join(dir, "missing.png")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Passed)
	assert.Equal(t, 0, result.Summary.Failed)
	require.Contains(t, result.Results, "a")
	assert.NotContains(t, result.Results, "b")
	assert.NotContains(t, result.Results, "c")
}

func TestBatchEmpty(t *testing.T) {
	verifier := NewVerifier(nil)
	result, err := verifier.Batch(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Summary.Total)
	assert.Zero(t, result.Summary.AverageScore)
	assert.Empty(t, result.Results)
}

func TestBatchDuplicateIDsLastWriteWins(t *testing.T) {
	dir := t.TempDir()
	dark := writePNG(t, dir, "dark.png", darkFill)
	light := writePNG(t, dir, "light.png", lightFill)

	verifier := NewVerifier(nil)
	result, err := verifier.Batch([]ReportEntry{
		{TestID: "dup", ScreenshotPath: dark},
		{TestID: "dup", ScreenshotPath: light},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Total)
	require.Contains(t, result.Results, "dup")
	// The light screenshot fails the theme check; the later entry must
	// have overwritten the earlier passing one.
	assert.False(t, result.Results["dup"].Passed)
}

func TestBatchSummaryAveragesScores(t *testing.T) {
	dir := t.TempDir()
	dark := writePNG(t, dir, "dark.png", darkFill)   // score 100
	light := writePNG(t, dir, "light.png", lightFill) // score 66.7

	verifier := NewVerifier(nil)
	result, err := verifier.Batch([]ReportEntry{
		{TestID: "a", ScreenshotPath: dark},
		{TestID: "b", ScreenshotPath: light},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Passed)
	assert.Equal(t, 1, result.Summary.Failed)
	assert.InDelta(t, 83.4, result.Summary.AverageScore, 0.05)
}

func TestBatchSurfacesDecodeFailures(t *testing.T) {
	dir := t.TempDir()
	valid := writePNG(t, dir, "valid.png", darkFill)
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a bitmap"), 0o644))

	verifier := NewVerifier(nil)
	_, err := verifier.Batch([]ReportEntry{
		{TestID: "ok", ScreenshotPath: valid},
		{TestID: "broken", ScreenshotPath: broken},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), broken)
}

func TestBatchParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	entries := []ReportEntry{
		{TestID: "a", ScreenshotPath: writePNG(t, dir, "a.png", darkFill)},
		{TestID: "b", ScreenshotPath: writePNG(t, dir, "b.png", lightFill)},
		{TestID: "c", ScreenshotPath: writePNG(t, dir, "c.png", darkFill)},
		{TestID: "d", ScreenshotPath: writePNG(t, dir, "d.png", lightFill)},
	}

	sequential := NewVerifier(nil)
	seqResult, err := sequential.Batch(entries)
	require.NoError(t, err)

	parallel := NewVerifier(nil)
	parallel.Workers = 4
	parResult, err := parallel.Batch(entries)
	require.NoError(t, err)

	assert.Equal(t, seqResult.Summary, parResult.Summary)
	assert.Equal(t, seqResult.Results, parResult.Results)
}

func TestReportParsesRunnerDocument(t *testing.T) {
	dir := t.TempDir()
	valid := writePNG(t, dir, "valid.png", darkFill)

	// Runner reports carry fields we do not consume; they must pass
	// through unnoticed, and null screenshot paths must be skipped.
	report := `{
		"run_id": "e2e-2026-08-23",
		"results": [
			{"test_id": "login_page", "screenshot_path": ` + marshalString(t, valid) + `, "duration_ms": 1200, "status": "passed"},
			{"test_id": "flow_editor", "screenshot_path": null, "error": "timeout"}
		]
	}`
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte(report), 0o644))

	verifier := NewVerifier(nil)
	result, err := verifier.Report(path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Total)
	assert.Contains(t, result.Results, "login_page")
}

func TestReportMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	verifier := NewVerifier(nil)
	_, err := verifier.Report(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestReportMissingFile(t *testing.T) {
	verifier := NewVerifier(nil)
	_, err := verifier.Report("/nonexistent/report.json")
	require.Error(t, err)
}

// marshalString JSON-quotes a string (paths may contain separators that
// need escaping on some platforms).
func marshalString(t *testing.T, s string) string {
	t.Helper()
	return `"` + filepath.ToSlash(s) + `"`
}
