package types

// JobKeywordMatch reports whether a single job-description keyword was found
// in the resume. Importance is a display hint only; it does not affect scores.
type JobKeywordMatch struct {
	Keyword    string `json:"keyword"`
	Matched    bool   `json:"matched"`
	Importance string `json:"importance"`
}

// ScanResult is the output of an ATS compatibility scan. All score fields are
// integers in [0,100]. Feedback lists preserve evaluation order.
type ScanResult struct {
	OverallScore   int `json:"overall_score"`
	FormatScore    int `json:"format_score"`
	KeywordScore   int `json:"keyword_score"`
	StructureScore int `json:"structure_score"`
	ContentScore   int `json:"content_score"`

	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`

	// General-keyword coverage, always computed.
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`

	// Per-keyword matches against a supplied job description. Nil when no
	// job description was given.
	JobKeywords []JobKeywordMatch `json:"job_keywords,omitempty"`

	// Free-text commentary from the AI-assisted path. Holds a diagnostic
	// fallback message when generation or parsing failed.
	DetailedAnalysis string `json:"detailed_analysis,omitempty"`
}

// EnsureLists coerces nil feedback and keyword lists to empty slices.
// Parsed AI output regularly omits array fields; callers rely on non-nil lists.
func (s *ScanResult) EnsureLists() {
	if s.Strengths == nil {
		s.Strengths = []string{}
	}
	if s.Suggestions == nil {
		s.Suggestions = []string{}
	}
	if s.Warnings == nil {
		s.Warnings = []string{}
	}
	if s.MatchedKeywords == nil {
		s.MatchedKeywords = []string{}
	}
	if s.MissingKeywords == nil {
		s.MissingKeywords = []string{}
	}
}
