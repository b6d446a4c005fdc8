package ats

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// pointsPerKeyword is the keyword-score contribution of each matched
	// general keyword, capped per path (rule-based vs AI-assisted).
	pointsPerKeyword = 3

	maxMatchedKeywords = 20
	maxMissingKeywords = 10

	// minMatchableWordLength: when a multi-word job keyword is not found as
	// a phrase, its individual words this long or longer still count.
	minMatchableWordLength = 3
)

// Importance tags for job-keyword display.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
)

// matchGeneralKeywords tests the fixed professional keyword list against the
// resume full text and feeds the coverage bonus into the keyword score.
func matchGeneralKeywords(fullText string, coverageCap int, o *outcome) {
	matched := []string{}
	missing := []string{}
	for _, kw := range generalKeywords {
		if kw.re.MatchString(fullText) {
			matched = append(matched, kw.Term)
		} else {
			missing = append(missing, kw.Term)
		}
	}

	bonus := len(matched) * pointsPerKeyword
	if bonus > coverageCap {
		bonus = coverageCap
	}
	o.keywordScore += bonus

	if len(matched) > maxMatchedKeywords {
		matched = matched[:maxMatchedKeywords]
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	o.matched = matched
	o.missing = missing
}

// matchJobKeywords extracts keywords from the job description and marks each
// as present or absent in the resume. Importance is a display tag only and
// never feeds the scores.
func matchJobKeywords(fullText, jobDescription string, o *outcome) {
	keywords := ExtractKeywords(jobDescription)
	if len(keywords) == 0 {
		return
	}

	matches := make([]types.JobKeywordMatch, 0, len(keywords))
	for _, kw := range keywords {
		importance := ImportanceMedium
		if isTechnicalTerm(kw) {
			importance = ImportanceHigh
		}
		matches = append(matches, types.JobKeywordMatch{
			Keyword:    kw,
			Matched:    keywordInText(fullText, kw),
			Importance: importance,
		})
	}
	o.jobKeywords = matches
}

// keywordInText reports a case-insensitive substring match of the keyword,
// or of any sufficiently long word of a multi-word keyword.
func keywordInText(fullText, kw string) bool {
	if strings.Contains(fullText, kw) {
		return true
	}
	if !strings.Contains(kw, " ") {
		return false
	}
	for _, word := range strings.Fields(kw) {
		if len(word) >= minMatchableWordLength && strings.Contains(fullText, word) {
			return true
		}
	}
	return false
}
