// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for scan results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScanResult outputs a human-readable summary of a scan.
func (p *Printer) PrintScanResult(result *types.ScanResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %3d / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Format:     %3d / 100\n", result.FormatScore))
	sb.WriteString(fmt.Sprintf("Keywords:   %3d / 100\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Structure:  %3d / 100\n", result.StructureScore))
	sb.WriteString(fmt.Sprintf("Content:    %3d / 100", result.ContentScore))

	p.printBox("ATS COMPATIBILITY", sb.String())

	p.printList("STRENGTHS", result.Strengths)
	p.printList("SUGGESTIONS", result.Suggestions)
	p.printList("WARNINGS", result.Warnings)

	if len(result.JobKeywords) > 0 {
		p.PrintJobKeywords(result.JobKeywords)
	} else {
		p.printKeywordSets(result.MatchedKeywords, result.MissingKeywords)
	}

	if result.DetailedAnalysis != "" {
		p.printBox("ANALYSIS", wrapText(result.DetailedAnalysis, boxWidth-4))
	}
}

// PrintJobKeywords outputs the job description keyword matches.
func (p *Printer) PrintJobKeywords(keywords []types.JobKeywordMatch) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	for _, kw := range keywords {
		mark := "✗"
		if kw.Matched {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", mark, kw.Keyword, kw.Importance))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// printKeywordSets outputs the general matched and missing keyword lists.
func (p *Printer) printKeywordSets(matched, missing []string) {
	if len(matched) == 0 && len(missing) == 0 {
		return
	}

	var sb strings.Builder
	if len(matched) > 0 {
		sb.WriteString("Matched: ")
		sb.WriteString(strings.Join(truncateList(matched, maxItemsToShow), ", "))
		sb.WriteString("\n")
	}
	if len(missing) > 0 {
		sb.WriteString("Missing: ")
		sb.WriteString(strings.Join(truncateList(missing, maxItemsToShow), ", "))
		sb.WriteString("\n")
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// printList prints a bulleted box, capping the number of items shown.
func (p *Printer) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// truncateList caps a list at n entries, noting how many were dropped.
func truncateList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	out := make([]string, n, n+1)
	copy(out, items[:n])
	return append(out, fmt.Sprintf("+%d more", len(items)-n))
}

// wrapText breaks text into lines no longer than width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
