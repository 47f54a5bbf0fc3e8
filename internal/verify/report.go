package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/chromalint/chromalint/internal/image"
)

// Report is the test-runner report document consumed for batch
// verification. Only test_id and screenshot_path are read from each
// result entry; everything else the runner records is opaque to us.
type Report struct {
	Results []ReportEntry `json:"results"`
}

// ReportEntry identifies one test case and its captured screenshot.
// ScreenshotPath may be empty or null when the test produced no capture.
type ReportEntry struct {
	TestID         string `json:"test_id"`
	ScreenshotPath string `json:"screenshot_path"`
}

// Summary is the roll-up over a batch of verdicts.
type Summary struct {
	Total        int     `json:"total"`
	Passed       int     `json:"passed"`
	Failed       int     `json:"failed"`
	AverageScore float64 `json:"average_score"`
}

// BatchResult pairs the batch summary with per-test verdicts.
type BatchResult struct {
	Summary Summary            `json:"summary"`
	Results map[string]Verdict `json:"results"`
}

// Report verifies every screenshot referenced by the report document at
// path.
func (v *Verifier) Report(path string) (BatchResult, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified report path, intended to be read
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return BatchResult{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return v.Batch(report.Results)
}

// Batch verifies a sequence of report entries. Entries without a
// screenshot path, or whose path does not resolve to an existing file,
// are skipped silently: a missing capture is the test runner's record
// to explain, not a verification failure. Entries sharing a test id
// overwrite earlier ones (last write wins).
//
// Entries are verified with up to v.Workers concurrent workers. A
// decode failure on a resolvable entry is an input error and is
// returned after the remaining entries have finished.
func (v *Verifier) Batch(entries []ReportEntry) (BatchResult, error) {
	var runnable []ReportEntry
	for _, entry := range entries {
		if !image.Exists(entry.ScreenshotPath) {
			v.logger.Debug("skipping entry without screenshot",
				"test_id", entry.TestID,
				"path", entry.ScreenshotPath,
			)
			continue
		}
		runnable = append(runnable, entry)
	}

	verdicts := make([]Verdict, len(runnable))
	errs := make([]error, len(runnable))

	workers := v.Workers
	if workers < 2 || len(runnable) < 2 {
		for i, entry := range runnable {
			verdicts[i], errs[i] = v.Image(entry.ScreenshotPath)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, workers)
		for i, entry := range runnable {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, entry ReportEntry) {
				defer wg.Done()
				defer func() { <-sem }()
				verdicts[i], errs[i] = v.Image(entry.ScreenshotPath)
			}(i, entry)
		}
		wg.Wait()
	}

	// Apply results in entry order so duplicate ids resolve
	// deterministically regardless of worker scheduling.
	results := make(map[string]Verdict, len(runnable))
	for i, entry := range runnable {
		if errs[i] != nil {
			return BatchResult{}, errs[i]
		}
		results[entry.TestID] = verdicts[i]
	}

	return BatchResult{
		Summary: summarize(results),
		Results: results,
	}, nil
}

// summarize rolls per-test verdicts up into counts and a mean score.
func summarize(results map[string]Verdict) Summary {
	summary := Summary{Total: len(results)}

	total := 0.0
	for _, verdict := range results {
		if verdict.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		total += verdict.Score
	}

	if summary.Total > 0 {
		summary.AverageScore = round1(total / float64(summary.Total))
	}

	return summary
}
