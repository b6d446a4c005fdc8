package ats

import (
	"math"

	"github.com/jonathan/ats-scanner/internal/types"
)

// Coverage caps for the general-keyword bonus. The AI-assisted path allows a
// slightly larger bonus since its baseline scores come from the generator.
const (
	RuleCoverageCap = 25
	AICoverageCap   = 30
)

// DefaultFormatScore is the baseline format score. Format fidelity is
// guaranteed by the rendering template, not inspected by this engine, so the
// value is a configurable constant rather than a computed dimension.
const DefaultFormatScore = 70

// Options configures a scan.
type Options struct {
	// FormatScore overrides the baseline format score. Zero means
	// DefaultFormatScore.
	FormatScore int
}

func (opts Options) formatScore() int {
	if opts.FormatScore == 0 {
		return DefaultFormatScore
	}
	return clampScore(opts.FormatScore)
}

// outcome accumulates rule contributions during one evaluation pass.
type outcome struct {
	structureScore int
	contentScore   int
	keywordScore   int

	strengths   []string
	suggestions []string
	warnings    []string

	matched     []string
	missing     []string
	jobKeywords []types.JobKeywordMatch

	degenerate bool
}

// evaluate runs the full rule set over a resume in the fixed order:
// structure, content, general keyword coverage, job-specific matching.
func evaluate(rec types.ResumeRecord, jobDescription string, coverageCap int) outcome {
	rec.Normalize()

	var o outcome
	checkStructure(rec, &o)
	checkContent(rec, &o)

	fullText := resumeFullText(rec)
	matchGeneralKeywords(fullText, coverageCap, &o)
	if jobDescription != "" {
		matchJobKeywords(fullText, jobDescription, &o)
	}
	return o
}

// Scan computes the rule-based ATS compatibility score for a resume,
// optionally matched against a job description. It is deterministic, never
// fails, and tolerates zero-value records (they score low, with suggestions).
func Scan(rec types.ResumeRecord, jobDescription string, opts Options) types.ScanResult {
	o := evaluate(rec, jobDescription, RuleCoverageCap)

	res := types.ScanResult{
		FormatScore:     opts.formatScore(),
		StructureScore:  clampScore(o.structureScore),
		ContentScore:    clampScore(o.contentScore),
		KeywordScore:    clampScore(o.keywordScore),
		Strengths:       o.strengths,
		Suggestions:     o.suggestions,
		Warnings:        o.warnings,
		MatchedKeywords: o.matched,
		MissingKeywords: o.missing,
		JobKeywords:     o.jobKeywords,
	}
	res.EnsureLists()
	if o.degenerate {
		res.ContentScore = capAt(res.ContentScore, degenerateScoreCap)
		res.KeywordScore = capAt(res.KeywordScore, degenerateScoreCap)
	}
	res.OverallScore = overallScore(res)
	return res
}

// ApplyRuleChecks re-validates an externally generated analysis: every score
// is clamped, missing lists are coerced to empty, and the full rule set runs
// over the same resume with its contributions applied on top of the parsed
// values. The generated analysis is never trusted unchecked.
func ApplyRuleChecks(parsed *types.ScanResult, rec types.ResumeRecord, jobDescription string, opts Options) {
	parsed.EnsureLists()
	parsed.StructureScore = clampScore(parsed.StructureScore)
	parsed.ContentScore = clampScore(parsed.ContentScore)
	parsed.KeywordScore = clampScore(parsed.KeywordScore)
	if parsed.FormatScore == 0 {
		parsed.FormatScore = opts.formatScore()
	}
	parsed.FormatScore = clampScore(parsed.FormatScore)

	o := evaluate(rec, jobDescription, AICoverageCap)

	parsed.StructureScore = clampScore(parsed.StructureScore + o.structureScore)
	parsed.ContentScore = clampScore(parsed.ContentScore + o.contentScore)
	parsed.KeywordScore = clampScore(parsed.KeywordScore + o.keywordScore)
	if o.degenerate {
		parsed.ContentScore = capAt(parsed.ContentScore, degenerateScoreCap)
		parsed.KeywordScore = capAt(parsed.KeywordScore, degenerateScoreCap)
	}

	parsed.Strengths = append(parsed.Strengths, o.strengths...)
	parsed.Suggestions = append(parsed.Suggestions, o.suggestions...)
	parsed.Warnings = append(parsed.Warnings, o.warnings...)

	// Keyword sets from the generator are replaced with the deterministic
	// rule-based ones.
	parsed.MatchedKeywords = o.matched
	parsed.MissingKeywords = o.missing
	if jobDescription != "" {
		parsed.JobKeywords = o.jobKeywords
	}

	parsed.OverallScore = overallScore(*parsed)
}

// overallScore is the fixed arithmetic mean of the four sub-scores, rounded.
func overallScore(res types.ScanResult) int {
	sum := res.FormatScore + res.KeywordScore + res.StructureScore + res.ContentScore
	return int(math.Round(float64(sum) / 4.0))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func capAt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
