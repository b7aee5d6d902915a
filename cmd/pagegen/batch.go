package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/landing-page-generator/internal/batch"
	"github.com/jonathan/landing-page-generator/internal/config"
	"github.com/jonathan/landing-page-generator/internal/generator"
	"github.com/jonathan/landing-page-generator/internal/llm"
	"github.com/jonathan/landing-page-generator/internal/output"
	"github.com/jonathan/landing-page-generator/internal/patterns"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Generate multiple landing pages from a batch config file",
	Long: `Generates every page defined in a batch configuration file. Each page entry is merged over the file's defaults. A page that fails is recorded in the batch report and the run continues.`,
	RunE: runBatchCmd,
}

var (
	batchSettingsPath string
	batchConfigPath   string
	batchPatternDir   string
	batchSwipeDir     string
	batchOutputDir    string
	batchAPIKey       string
	batchModel        string
	batchDelay        int
	batchWorkers      int
	batchVerbose      bool
)

func init() {
	batchCommand.Flags().StringVar(&batchSettingsPath, "settings", "", "Path to settings.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to batch config JSON file (required)")
	batchCommand.Flags().StringVar(&batchPatternDir, "patterns", "", "Directory with pattern library sources (default \"config\")")
	batchCommand.Flags().StringVar(&batchSwipeDir, "swipe-dir", "", "Directory with swipe/formula analysis output (default \"analysis\")")
	batchCommand.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory for artifacts (default \"generated_pages\")")
	batchCommand.Flags().StringVar(&batchModel, "model", "", "Model name override")
	batchCommand.Flags().IntVarP(&batchDelay, "delay", "d", 5, "Delay between pages in seconds (sequential mode only)")
	batchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 1, "Concurrent generations (1 = sequential)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = batchCommand.MarkFlagRequired("config")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := resolveSettings(batchSettingsPath, config.Settings{
		PatternDir: batchPatternDir,
		SwipeDir:   batchSwipeDir,
		OutputDir:  batchOutputDir,
		APIKey:     batchAPIKey,
		Model:      batchModel,
		Verbose:    batchVerbose,
	})
	if err != nil {
		return err
	}

	batchCfg, err := config.LoadBatchConfig(batchConfigPath)
	if err != nil {
		return err
	}

	configs, err := batchCfg.MergedPages()
	if err != nil {
		return err
	}
	for i, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid page %d (%s): %w", i+1, cfg.ProductName, err)
		}
	}

	set := patterns.NewLoader(settings.PatternDir, settings.SwipeDir).Load()

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(settings.Model), settings.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	gen := generator.New(client, set, output.NewFileSink(settings.OutputDir))

	fmt.Printf("Batch generation: %d pages, %d worker(s)\n", len(configs), batchWorkers)

	runner := &batch.Runner{
		Generator: gen,
		Workers:   batchWorkers,
		Delay:     time.Duration(batchDelay) * time.Second,
		OnPage: func(index int, page batch.PageReport) {
			if page.Status == "success" {
				fmt.Printf("[%d/%d] %s (%s): %d words\n", index+1, len(configs), page.Product, page.PageType, page.WordCount)
			} else {
				fmt.Fprintf(os.Stderr, "[%d/%d] %s (%s) failed: %s\n", index+1, len(configs), page.Product, page.PageType, page.Error)
			}
		},
	}

	report, err := runner.Run(ctx, configs)
	if err != nil {
		return err
	}

	reportPath, err := batch.WriteReport(report, settings.OutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("\nBatch complete: %d successful, %d failed\n", report.Successful, report.Failed)
	fmt.Printf("Report saved to: %s\n", reportPath)

	return nil
}
