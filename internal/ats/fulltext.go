package ats

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

// resumeFullText concatenates the searchable resume fields (summary, job
// titles, companies, responsibilities, degrees, institutions, skill names)
// and lowercases the result. This is the haystack for keyword matching.
func resumeFullText(rec types.ResumeRecord) string {
	var sb strings.Builder
	appendPart := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}

	appendPart(rec.Summary)
	for _, exp := range rec.WorkExperience {
		appendPart(exp.JobTitle)
		appendPart(exp.Company)
		for _, resp := range exp.Responsibilities {
			appendPart(resp)
		}
	}
	for _, edu := range rec.Education {
		appendPart(edu.Degree)
		appendPart(edu.Institution)
	}
	for _, skill := range rec.Skills {
		appendPart(skill.Name)
	}

	return strings.ToLower(sb.String())
}

// contentText is the free text the content-quality checks inspect: the
// summary plus every responsibility bullet.
func contentText(rec types.ResumeRecord) string {
	var sb strings.Builder
	sb.WriteString(rec.Summary)
	for _, exp := range rec.WorkExperience {
		for _, resp := range exp.Responsibilities {
			sb.WriteString(" ")
			sb.WriteString(resp)
		}
	}
	return sb.String()
}
