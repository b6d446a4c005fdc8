package ats

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

// Content-quality contributions. Four 25-point content buckets; some buckets
// also feed the keyword score as side bonuses.
const (
	contentBucketPoints = 25

	minContentWords = 100

	strongSkillCount        = 5
	partialSkillContent     = 15
	partialSkillKeyword     = 10
	strongSkillKeyword      = 20
	detailedEntryMinBullets = 3
	detailedEntryKeyword    = 15
	quantifiedKeyword       = 15
	actionVerbKeyword       = 8

	maxSummaryLength = 500

	// degenerateScoreCap limits content and keyword scores when the text
	// looks like gibberish or placeholder content, overriding any positive
	// contributions.
	degenerateScoreCap = 40
)

// WarningLowQualityText is the degenerate-content warning. Exported so
// callers can detect the condition without string duplication.
const WarningLowQualityText = "Resume text looks repetitive or too short to score reliably; content and keyword scores are capped"

// checkContent scores the free text of the resume: volume, skills, bullet
// depth, quantified achievements, verb strength, and passive phrasing.
func checkContent(rec types.ResumeRecord, o *outcome) {
	text := contentText(rec)
	norm := NormalizeText(text)
	lower := strings.ToLower(text)

	if norm.WordCount > minContentWords {
		o.contentScore += contentBucketPoints
		o.strengths = append(o.strengths, "Good level of detail in summary and experience")
	} else {
		o.suggestions = append(o.suggestions, "Add more detail to your summary and experience bullets")
	}

	switch n := len(rec.Skills); {
	case n >= strongSkillCount:
		o.contentScore += contentBucketPoints
		o.keywordScore += strongSkillKeyword
		o.strengths = append(o.strengths, "Strong skills section")
	case n >= 1:
		o.contentScore += partialSkillContent
		o.keywordScore += partialSkillKeyword
		o.suggestions = append(o.suggestions, "List at least 5 relevant skills")
	default:
		o.suggestions = append(o.suggestions, "Add a skills section")
	}

	if hasDetailedEntry(rec.WorkExperience) {
		o.contentScore += contentBucketPoints
		o.keywordScore += detailedEntryKeyword
		o.strengths = append(o.strengths, "Experience entries are well detailed")
	} else {
		o.suggestions = append(o.suggestions, "Describe each role with at least 3 responsibility bullets")
	}

	if quantifiableRe.MatchString(text) {
		o.contentScore += contentBucketPoints
		o.keywordScore += quantifiedKeyword
		o.strengths = append(o.strengths, "Includes quantifiable achievements")
	} else {
		o.suggestions = append(o.suggestions, "Quantify achievements with numbers, percentages, or amounts")
	}

	if actionVerbRe.MatchString(lower) {
		o.keywordScore += actionVerbKeyword
		o.strengths = append(o.strengths, "Uses strong action verbs")
	} else {
		o.suggestions = append(o.suggestions, "Start bullets with strong action verbs (led, built, delivered)")
	}

	if strings.Contains(lower, passivePhrase) {
		o.warnings = append(o.warnings, `Avoid passive phrasing like "responsible for"; lead with an action verb`)
	}

	if len(rec.Summary) > maxSummaryLength {
		o.warnings = append(o.warnings, "Summary may be too long; keep it under 500 characters")
	}

	if norm.Degenerate {
		o.degenerate = true
		o.warnings = append(o.warnings, WarningLowQualityText)
	}
}

// hasDetailedEntry reports whether any experience entry carries more than
// two responsibility bullets.
func hasDetailedEntry(entries []types.ExperienceEntry) bool {
	for _, exp := range entries {
		if len(exp.Responsibilities) >= detailedEntryMinBullets {
			return true
		}
	}
	return false
}
