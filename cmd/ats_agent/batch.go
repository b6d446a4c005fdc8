package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scanner/internal/ats"
	"github.com/jonathan/ats-scanner/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resume files...]",
	Short: "Score multiple resumes against one job posting",
	Long:  `Runs the rule-based scan over several resume JSON files concurrently and prints a ranked summary, highest overall score first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatchCmd,
}

var (
	batchJob         string
	batchConcurrency int
	batchJSON        bool
	batchFormatScore int
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes scored in parallel")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit results as JSON instead of a ranked table")
	batchCmd.Flags().IntVar(&batchFormatScore, "format-score", 0, "Baseline format score (0-100, default 70)")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry pairs a resume file with its scan result.
type batchEntry struct {
	File   string           `json:"file"`
	Result types.ScanResult `json:"result"`
}

func runBatchCmd(_ *cobra.Command, args []string) error {
	var jobDescription string
	if batchJob != "" {
		data, err := os.ReadFile(batchJob)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", batchJob, err)
		}
		jobDescription = string(data)
	}

	opts := ats.Options{FormatScore: batchFormatScore}

	var (
		mu      sync.Mutex
		entries []batchEntry
	)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	for _, path := range args {
		g.Go(func() error {
			rec, err := loadResume(path)
			if err != nil {
				return err
			}
			result := ats.Scan(*rec, jobDescription, opts)

			mu.Lock()
			entries = append(entries, batchEntry{File: path, Result: result})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.OverallScore > entries[j].Result.OverallScore
	})

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for i, e := range entries {
		fmt.Printf("%2d. %-40s overall %3d  (keywords %3d, structure %3d, content %3d)\n",
			i+1, e.File, e.Result.OverallScore,
			e.Result.KeywordScore, e.Result.StructureScore, e.Result.ContentScore)
	}
	return nil
}
