package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scanner/internal/types"
)

func TestPrintScanResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScanResult{
		OverallScore:    72,
		FormatScore:     70,
		KeywordScore:    55,
		StructureScore:  100,
		ContentScore:    65,
		Strengths:       []string{"Complete contact information", "Work experience section present"},
		Suggestions:     []string{"Add a professional summary (150-300 words recommended)"},
		Warnings:        []string{},
		MatchedKeywords: []string{"sql", "agile"},
		MissingKeywords: []string{"cloud"},
	}

	p.PrintScanResult(result)
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY")
	assert.Contains(t, output, "Overall:     72 / 100")
	assert.Contains(t, output, "STRENGTHS")
	assert.Contains(t, output, "Complete contact information")
	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "sql")
	assert.NotContains(t, output, "WARNINGS")
	assert.NotContains(t, output, "ANALYSIS")
}

func TestPrintScanResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScanResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScanResult_JobKeywordsPreferred(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScanResult{
		MatchedKeywords: []string{"sql"},
		JobKeywords: []types.JobKeywordMatch{
			{Keyword: "react", Matched: true, Importance: "high"},
			{Keyword: "graphql", Matched: false, Importance: "medium"},
		},
	}

	p.PrintScanResult(result)
	output := buf.String()

	assert.Contains(t, output, "JOB KEYWORDS")
	assert.Contains(t, output, "✓ react (high)")
	assert.Contains(t, output, "✗ graphql (medium)")
	assert.NotContains(t, output, "Matched: sql")
}

func TestPrintScanResult_DetailedAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScanResult{
		DetailedAnalysis: "A solid resume with room to grow in quantified impact.",
	}

	p.PrintScanResult(result)

	assert.Contains(t, buf.String(), "ANALYSIS")
	assert.Contains(t, buf.String(), "A solid resume")
}

func TestPrintList_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []string{"one", "two", "three", "four", "five", "six", "seven"}
	p.printList("SUGGESTIONS", items)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "seven")
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("alpha beta gamma delta", 11)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 11)
	}
	assert.Contains(t, wrapped, "alpha beta")
}

func TestTruncateList(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, items, truncateList(items, 5))
	assert.Equal(t, []string{"a", "b", "+2 more"}, truncateList(items, 2))
}
