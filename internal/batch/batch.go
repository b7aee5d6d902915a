// Package batch drives generation of multiple landing pages from a single
// batch configuration.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// PageGenerator generates one landing page. Satisfied by generator.Generator.
type PageGenerator interface {
	Generate(ctx context.Context, cfg types.PageConfig) (*types.GenerationResult, error)
}

// PageReport records the outcome of one page in a batch run.
type PageReport struct {
	Product   string `json:"product"`
	PageType  string `json:"type"`
	Status    string `json:"status"`
	WordCount int    `json:"word_count,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report summarizes a batch run.
type Report struct {
	Timestamp  time.Time    `json:"timestamp"`
	TotalPages int          `json:"total_pages"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Results    []PageReport `json:"results"`
}

// Runner executes a batch of page generations. A failed page is recorded and
// the batch continues; only context cancellation stops the run early.
type Runner struct {
	Generator PageGenerator
	// Workers bounds concurrent generations. Values below 1 mean sequential.
	Workers int
	// Delay is the pause between pages in sequential mode, to space out
	// external API calls.
	Delay time.Duration
	// OnPage is called after each page completes, successful or not.
	OnPage func(index int, report PageReport)
}

// Run generates every page and returns the summary report. The per-page
// result order matches the input order regardless of worker count.
func (r *Runner) Run(ctx context.Context, configs []types.PageConfig) (*Report, error) {
	report := &Report{
		Timestamp:  time.Now(),
		TotalPages: len(configs),
		Results:    make([]PageReport, len(configs)),
	}

	if r.Workers > 1 {
		if err := r.runConcurrent(ctx, configs, report); err != nil {
			return nil, err
		}
	} else {
		if err := r.runSequential(ctx, configs, report); err != nil {
			return nil, err
		}
	}

	for _, res := range report.Results {
		if res.Status == "success" {
			report.Successful++
		} else {
			report.Failed++
		}
	}

	return report, nil
}

func (r *Runner) runSequential(ctx context.Context, configs []types.PageConfig, report *Report) error {
	for i, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return err
		}

		report.Results[i] = r.generateOne(ctx, i, cfg)

		if r.Delay > 0 && i < len(configs)-1 {
			select {
			case <-time.After(r.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

func (r *Runner) runConcurrent(ctx context.Context, configs []types.PageConfig, report *Report) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for i, cfg := range configs {
		i, cfg := i, cfg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each worker owns one slot; no shared mutable state.
			report.Results[i] = r.generateOne(ctx, i, cfg)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) generateOne(ctx context.Context, index int, cfg types.PageConfig) PageReport {
	page := PageReport{
		Product:  cfg.ProductName,
		PageType: cfg.PageType,
	}

	res, err := r.Generator.Generate(ctx, cfg)
	if err != nil {
		page.Status = "failed"
		page.Error = err.Error()
	} else {
		page.Status = "success"
		page.WordCount = res.WordCount
	}

	if r.OnPage != nil {
		r.OnPage(index, page)
	}
	return page
}

// WriteReport saves the batch report as a timestamped JSON file in dir and
// returns the path written.
func WriteReport(report *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("batch_report_%s.json", report.Timestamp.Format("20060102_150405")))
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize batch report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write batch report: %w", err)
	}

	return path, nil
}
