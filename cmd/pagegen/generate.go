package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/landing-page-generator/internal/config"
	"github.com/jonathan/landing-page-generator/internal/generator"
	"github.com/jonathan/landing-page-generator/internal/llm"
	"github.com/jonathan/landing-page-generator/internal/observability"
	"github.com/jonathan/landing-page-generator/internal/output"
	"github.com/jonathan/landing-page-generator/internal/patterns"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single landing page from a page config file",
	Long: `Runs the full generation sequence for one page: pattern selection -> prompt construction -> draft pass -> refinement pass -> section extraction -> artifact output.

Tool settings can be loaded from a JSON file using --settings. Command-line arguments override settings file values.`,
	RunE: runGenerateCmd,
}

var (
	genSettingsPath string
	genPagePath     string
	genPatternDir   string
	genSwipeDir     string
	genOutputDir    string
	genAPIKey       string
	genModel        string
	genVerbose      bool
)

func init() {
	generateCommand.Flags().StringVar(&genSettingsPath, "settings", "", "Path to settings.json file (values can be overridden by other flags)")
	generateCommand.Flags().StringVarP(&genPagePath, "page", "p", "", "Path to page config JSON file (required)")
	generateCommand.Flags().StringVar(&genPatternDir, "patterns", "", "Directory with pattern library sources (default \"config\")")
	generateCommand.Flags().StringVar(&genSwipeDir, "swipe-dir", "", "Directory with swipe/formula analysis output (default \"analysis\")")
	generateCommand.Flags().StringVarP(&genOutputDir, "out", "o", "", "Output directory for artifacts (default \"generated_pages\")")
	generateCommand.Flags().StringVar(&genModel, "model", "", "Model name override")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = generateCommand.MarkFlagRequired("page")

	rootCmd.AddCommand(generateCommand)
}

// defaultSettings are the fallback values applied after merging the settings
// file and CLI flags.
var defaultSettings = config.Settings{
	PatternDir: "config",
	SwipeDir:   "analysis",
	OutputDir:  "generated_pages",
}

// resolveSettings merges the optional settings file, CLI flag values, and
// built-in defaults, in increasing order of precedence for flags.
func resolveSettings(settingsPath string, flags config.Settings) (config.Settings, error) {
	merged := flags
	if settingsPath != "" {
		loaded, err := config.LoadSettings(settingsPath)
		if err != nil {
			return config.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
		merged = flags.MergeWithDefaults(*loaded)
	}
	merged = merged.MergeWithDefaults(defaultSettings)

	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if merged.APIKey == "" {
		return config.Settings{}, fmt.Errorf("API key required: set --api-key or GEMINI_API_KEY")
	}

	return merged, nil
}

func runGenerateCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := resolveSettings(genSettingsPath, config.Settings{
		PatternDir: genPatternDir,
		SwipeDir:   genSwipeDir,
		OutputDir:  genOutputDir,
		APIKey:     genAPIKey,
		Model:      genModel,
		Verbose:    genVerbose,
	})
	if err != nil {
		return err
	}

	pageCfg, err := config.LoadPageConfig(genPagePath)
	if err != nil {
		return err
	}
	if err := pageCfg.Validate(); err != nil {
		return fmt.Errorf("invalid page config: %w", err)
	}

	set := patterns.NewLoader(settings.PatternDir, settings.SwipeDir).Load()

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(settings.Model), settings.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var opts []generator.Option
	printer := observability.NewPrinter(os.Stdout)
	if genVerbose || settings.Verbose {
		opts = append(opts, generator.WithProgress(func(ev generator.ProgressEvent) {
			fmt.Printf("[%s] %s\n", ev.Step, ev.Message)
		}))
	}

	gen := generator.New(client, set, output.NewFileSink(settings.OutputDir), opts...)

	res, err := gen.Generate(ctx, *pageCfg)
	if err != nil {
		return err
	}

	if genVerbose || settings.Verbose {
		printer.PrintSelectedPatterns(&res.PatternsUsed)
		printer.PrintResult(res)
	}

	fmt.Printf("Generated %s for %s\n", pageCfg.PageType, pageCfg.ProductName)
	fmt.Printf("Word count: %d\n", res.WordCount)
	fmt.Printf("Saved to: %s/\n", settings.OutputDir)

	return nil
}
