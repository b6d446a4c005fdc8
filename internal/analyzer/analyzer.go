// Package analyzer implements the AI-assisted scan path. Generated analyses
// are treated as untrusted input: parsed against a schema, clamped, and
// re-validated by the rule-based engine before anything reaches the caller.
// Every failure falls back to the pure rule-based scan; the caller always
// receives a ScanResult.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/jonathan/ats-scanner/internal/ats"
	"github.com/jonathan/ats-scanner/internal/llm"
	"github.com/jonathan/ats-scanner/internal/prompts"
	"github.com/jonathan/ats-scanner/internal/schemas"
	"github.com/jonathan/ats-scanner/internal/types"
)

// FallbackAnalysis is the diagnostic commentary set when the generated
// analysis could not be used and the rule-based result stands alone.
const FallbackAnalysis = "AI analysis was unavailable; showing rule-based results."

// Analyzer runs AI-assisted resume scans.
type Analyzer struct {
	client llm.Client
	opts   ats.Options
}

// New creates an Analyzer on top of an LLM client.
func New(client llm.Client, opts ats.Options) *Analyzer {
	return &Analyzer{client: client, opts: opts}
}

// Analyze scores a resume with generator assistance. The generated JSON is
// schema-validated, clamped, and reinforced by the full rule-based checks;
// on any generation or parse failure the pure rule-based result is returned
// instead. Analyze never fails.
func (a *Analyzer) Analyze(ctx context.Context, rec types.ResumeRecord, jobDescription string) types.ScanResult {
	rec.Normalize()

	raw, err := a.generate(ctx, rec, jobDescription)
	if err != nil {
		log.Printf("[analyzer] generation failed, using rule-based scan: %v", err)
		return a.fallback(rec, jobDescription)
	}

	parsed, err := parseAnalysis(raw)
	if err != nil {
		log.Printf("[analyzer] discarding generated analysis: %v", err)
		return a.fallback(rec, jobDescription)
	}

	ats.ApplyRuleChecks(&parsed, rec, jobDescription, a.opts)
	return parsed
}

// generate builds the prompt and calls the generator.
func (a *Analyzer) generate(ctx context.Context, rec types.ResumeRecord, jobDescription string) (string, error) {
	if a.client == nil {
		return "", &APICallError{Message: "no LLM client configured"}
	}

	var template string
	data := map[string]string{"ResumeText": ResumeText(rec)}
	if jobDescription != "" {
		template = prompts.MustGet("analysis.json", "ats-analysis-with-job")
		data["JobDescription"] = jobDescription
	} else {
		template = prompts.MustGet("analysis.json", "ats-analysis")
	}

	raw, err := a.client.GenerateJSON(ctx, prompts.Format(template, data), llm.TierStandard)
	if err != nil {
		return "", &APICallError{Message: "failed to generate analysis", Cause: err}
	}
	return raw, nil
}

// fallback is the pure rule-based result with a diagnostic note.
func (a *Analyzer) fallback(rec types.ResumeRecord, jobDescription string) types.ScanResult {
	res := ats.Scan(rec, jobDescription, a.opts)
	res.DetailedAnalysis = FallbackAnalysis
	return res
}

// generatedAnalysis mirrors the schema the generator is asked for. Scores
// are numbers: generators round-trip integers through floats freely.
type generatedAnalysis struct {
	OverallScore     float64  `json:"overall_score"`
	FormatScore      float64  `json:"format_score"`
	KeywordScore     float64  `json:"keyword_score"`
	StructureScore   float64  `json:"structure_score"`
	ContentScore     float64  `json:"content_score"`
	Strengths        []string `json:"strengths"`
	Suggestions      []string `json:"suggestions"`
	Warnings         []string `json:"warnings"`
	DetailedAnalysis string   `json:"detailed_analysis"`
}

// parseAnalysis validates and parses raw generator output into a ScanResult
// shape. Numeric fields are rounded; range clamping happens in
// ats.ApplyRuleChecks.
func parseAnalysis(raw string) (types.ScanResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateAnalysisJSON(cleaned); err != nil {
		return types.ScanResult{}, &ParseError{Message: "generated analysis failed schema validation", Cause: err}
	}

	var gen generatedAnalysis
	if err := json.Unmarshal([]byte(cleaned), &gen); err != nil {
		return types.ScanResult{}, &ParseError{Message: "failed to parse generated analysis", Cause: err}
	}

	res := types.ScanResult{
		OverallScore:     int(math.Round(gen.OverallScore)),
		FormatScore:      int(math.Round(gen.FormatScore)),
		KeywordScore:     int(math.Round(gen.KeywordScore)),
		StructureScore:   int(math.Round(gen.StructureScore)),
		ContentScore:     int(math.Round(gen.ContentScore)),
		Strengths:        gen.Strengths,
		Suggestions:      gen.Suggestions,
		Warnings:         gen.Warnings,
		DetailedAnalysis: gen.DetailedAnalysis,
	}
	res.EnsureLists()
	return res, nil
}

// ResumeText renders a ResumeRecord as plain text for prompting.
func ResumeText(rec types.ResumeRecord) string {
	var sb strings.Builder

	writeLine := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			sb.WriteString(label)
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}

	writeLine("Name: ", rec.PersonalInfo.Name)
	writeLine("Title: ", rec.PersonalInfo.JobTitle)
	writeLine("Location: ", rec.PersonalInfo.Location)
	writeLine("Email: ", rec.PersonalInfo.Email)
	writeLine("Phone: ", rec.PersonalInfo.Phone)

	if strings.TrimSpace(rec.Summary) != "" {
		sb.WriteString("\nSUMMARY\n")
		sb.WriteString(rec.Summary)
		sb.WriteString("\n")
	}

	if len(rec.WorkExperience) > 0 {
		sb.WriteString("\nEXPERIENCE\n")
		for _, exp := range rec.WorkExperience {
			sb.WriteString(fmt.Sprintf("%s at %s (%s - %s)\n", exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate))
			for _, resp := range exp.Responsibilities {
				sb.WriteString("- ")
				sb.WriteString(resp)
				sb.WriteString("\n")
			}
		}
	}

	if len(rec.Education) > 0 {
		sb.WriteString("\nEDUCATION\n")
		for _, edu := range rec.Education {
			sb.WriteString(fmt.Sprintf("%s, %s (%s)\n", edu.Degree, edu.Institution, edu.GraduationYear))
		}
	}

	if len(rec.Skills) > 0 {
		sb.WriteString("\nSKILLS\n")
		names := make([]string, 0, len(rec.Skills))
		for _, skill := range rec.Skills {
			if skill.Name != "" {
				names = append(names, skill.Name)
			}
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n")
	}

	if len(rec.CoursesAndCertifications) > 0 {
		sb.WriteString("\nCOURSES AND CERTIFICATIONS\n")
		for _, c := range rec.CoursesAndCertifications {
			sb.WriteString(fmt.Sprintf("%s - %s (%s)\n", c.Title, c.Provider, c.Date))
		}
	}

	return sb.String()
}
