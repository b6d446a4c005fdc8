package ats

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

// structureBucketPoints is the score contribution of each satisfied
// structure rule. Four rules, no partial credit within a rule.
const structureBucketPoints = 25

// minSummaryLength is the character count above which a summary counts as
// a real professional summary rather than a placeholder.
const minSummaryLength = 50

// checkStructure scores section presence and completeness. Rules run in a
// fixed order; each contributes structureBucketPoints and one feedback line.
func checkStructure(rec types.ResumeRecord, o *outcome) {
	info := rec.PersonalInfo
	if strings.TrimSpace(info.Name) != "" &&
		strings.TrimSpace(info.Email) != "" &&
		strings.TrimSpace(info.Phone) != "" {
		o.structureScore += structureBucketPoints
		o.strengths = append(o.strengths, "Complete contact information")
	} else {
		o.suggestions = append(o.suggestions, "Add complete contact information (name, email, and phone)")
	}

	if len(rec.Summary) > minSummaryLength {
		o.structureScore += structureBucketPoints
		o.strengths = append(o.strengths, "Professional summary included")
	} else {
		o.suggestions = append(o.suggestions, "Add a professional summary (150-300 words recommended)")
	}

	if len(rec.WorkExperience) > 0 {
		o.structureScore += structureBucketPoints
		o.strengths = append(o.strengths, "Work experience section present")
	} else {
		o.suggestions = append(o.suggestions, "Add your work experience")
	}

	if len(rec.Education) > 0 {
		o.structureScore += structureBucketPoints
		o.strengths = append(o.strengths, "Education section present")
	} else {
		o.suggestions = append(o.suggestions, "Add your education")
	}
}
