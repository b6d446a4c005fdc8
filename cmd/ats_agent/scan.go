package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scanner/internal/analyzer"
	"github.com/jonathan/ats-scanner/internal/ats"
	"github.com/jonathan/ats-scanner/internal/config"
	"github.com/jonathan/ats-scanner/internal/fetch"
	"github.com/jonathan/ats-scanner/internal/llm"
	"github.com/jonathan/ats-scanner/internal/observability"
	"github.com/jonathan/ats-scanner/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a resume for ATS compatibility",
	Long: `Scores a resume JSON file against the rule-based checks, optionally measured against a job posting from a file or URL.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScanCmd,
}

var (
	scanConfigPath  string
	scanResume      string
	scanJob         string
	scanJobURL      string
	scanAI          bool
	scanUseBrowser  bool
	scanVerbose     bool
	scanAPIKey      string
	scanFormatScore int
)

func init() {
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scanCmd.Flags().StringVarP(&scanResume, "resume", "r", "", "Path to resume JSON file")
	scanCmd.Flags().StringVarP(&scanJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scanCmd.Flags().StringVar(&scanJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scanCmd.Flags().BoolVar(&scanAI, "ai", false, "Use AI-assisted analysis (requires GEMINI_API_KEY)")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print a formatted report instead of raw JSON")
	scanCmd.Flags().IntVar(&scanFormatScore, "format-score", 0, "Baseline format score (0-100, default 70)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(scanCmd)
}

func runScanCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveScanConfig(cmd)
	if err != nil {
		return err
	}

	rec, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	opts := ats.Options{FormatScore: cfg.FormatScore}

	var result types.ScanResult
	if scanAI {
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required for --ai")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		aiCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		result = analyzer.New(client, opts).Analyze(aiCtx, *rec, jobDescription)
	} else {
		result = ats.Scan(*rec, jobDescription, opts)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintScanResult(&result)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// resolveScanConfig merges the config file, CLI flags, and defaults.
// Flags that were explicitly set win over config file values.
func resolveScanConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if scanConfigPath != "" {
		loaded, err := config.LoadConfig(scanConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if scanVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", scanConfigPath)
		}
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = scanResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = scanJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = scanJobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scanAPIKey
	}
	if cmd.Flags().Changed("format-score") {
		cfg.FormatScore = scanFormatScore
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = scanUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scanVerbose
	}

	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return cfg, nil
}

// loadResume reads and normalizes a resume JSON file.
func loadResume(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	rec.Normalize()
	return &rec, nil
}

// loadJobDescription resolves the job posting text from a file or URL.
// Returns an empty string when neither is configured.
func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		opts.Verbose = cfg.Verbose
		text, err := fetch.JobDescription(ctx, cfg.JobURL, opts)
		if err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", nil
	}
}
