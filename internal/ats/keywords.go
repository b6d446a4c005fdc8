package ats

import (
	"sort"
	"strings"
)

const (
	// maxTopWords is how many frequency-ranked words survive step two of
	// extraction before the union with technical terms.
	maxTopWords = 20
	// maxExtractedKeywords caps the final keyword list.
	maxExtractedKeywords = 15
	// minKeywordFrequency / minKeywordLength: a word qualifies when it
	// repeats, or when it is long enough to be distinctive on its own.
	minKeywordFrequency = 2
	minKeywordLength    = 5
)

// ExtractKeywords pulls up to maxExtractedKeywords significant keywords from
// free text: technical and domain terms first (pattern table), then
// frequency-ranked generic words after stop-word removal. Empty input yields
// an empty list.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	var technical []string
	for _, re := range technicalTermPatterns {
		for _, m := range re.FindAllString(lower, -1) {
			term := normalizeTerm(m)
			if term != "" && !seen[term] {
				seen[term] = true
				technical = append(technical, term)
			}
		}
	}

	norm := NormalizeText(text)
	freq := make(map[string]int)
	var order []string
	for _, w := range norm.Words {
		if len(w) <= 1 || stopWords[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	var candidates []string
	for _, w := range order {
		if freq[w] >= minKeywordFrequency || len(w) >= minKeywordLength {
			candidates = append(candidates, w)
		}
	}
	// Stable sort keeps first-appearance order among equal frequencies.
	sort.SliceStable(candidates, func(i, j int) bool {
		return freq[candidates[i]] > freq[candidates[j]]
	})
	if len(candidates) > maxTopWords {
		candidates = candidates[:maxTopWords]
	}

	keywords := technical
	for _, w := range candidates {
		if len(keywords) >= maxExtractedKeywords {
			break
		}
		if !seen[w] {
			seen[w] = true
			keywords = append(keywords, w)
		}
	}
	if len(keywords) > maxExtractedKeywords {
		keywords = keywords[:maxExtractedKeywords]
	}
	if keywords == nil {
		keywords = []string{}
	}
	return keywords
}

// normalizeTerm collapses internal whitespace in a matched technical term so
// "machine  learning" and "machine learning" extract identically.
func normalizeTerm(m string) string {
	return strings.Join(strings.Fields(strings.ToLower(m)), " ")
}

// isTechnicalTerm reports whether kw is, in its entirety, a technical-term
// pattern match. Used to tag job-keyword importance for display.
func isTechnicalTerm(kw string) bool {
	for _, re := range technicalTermPatterns {
		if loc := re.FindStringIndex(kw); loc != nil && loc[0] == 0 && loc[1] == len(kw) {
			return true
		}
	}
	return false
}
