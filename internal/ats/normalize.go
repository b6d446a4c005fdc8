package ats

import (
	"regexp"
	"strings"
)

// Degeneracy thresholds. Any single signal marks the text degenerate.
const (
	// minMeaningfulWords is the word count below which text is considered
	// too short to score reliably.
	minMeaningfulWords = 80
	// repeatedRunLength is the consecutive-character run length that flags
	// keyboard-mash input.
	repeatedRunLength = 4
	// maxVowellessFraction is the tolerated share of long tokens with no vowel.
	maxVowellessFraction = 0.3
	// vowellessMinTokenLength: shorter tokens (acronyms, "llc") are exempt
	// from the vowel check.
	vowellessMinTokenLength = 5
)

// nonTextRe matches every character the normalizer strips. Digits, percent,
// dot and hyphen survive so "node.js", "ci-cd" and "40%" stay intact.
var nonTextRe = regexp.MustCompile(`[^a-z0-9%\s.\-]`)

var vowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// NormalizedText is the tokenized form of a free-text input plus its
// degeneracy verdict.
type NormalizedText struct {
	Words      []string
	WordCount  int
	Degenerate bool
}

// NormalizeText lowercases, strips markup and punctuation, and tokenizes raw
// text. It never fails; empty input yields zero words and a degenerate flag.
func NormalizeText(raw string) NormalizedText {
	cleaned := nonTextRe.ReplaceAllString(strings.ToLower(raw), " ")
	words := strings.Fields(cleaned)

	degenerate := len(words) < minMeaningfulWords ||
		hasRepeatedRun(cleaned) ||
		vowellessFraction(words) > maxVowellessFraction

	return NormalizedText{
		Words:      words,
		WordCount:  len(words),
		Degenerate: degenerate,
	}
}

// hasRepeatedRun reports a run of repeatedRunLength identical characters.
// Implemented as a rune scan since RE2 has no backreferences. Whitespace runs
// are skipped: stripping punctuation legitimately produces consecutive spaces.
func hasRepeatedRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			prev = 0
			run = 0
			continue
		}
		if r == prev {
			run++
			if run >= repeatedRunLength {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// vowellessFraction returns the share of long tokens containing no vowel.
func vowellessFraction(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	vowelless := 0
	for _, w := range words {
		if len(w) < vowellessMinTokenLength {
			continue
		}
		hasVowel := false
		for _, r := range w {
			if vowels[r] {
				hasVowel = true
				break
			}
		}
		if !hasVowel {
			vowelless++
		}
	}
	return float64(vowelless) / float64(len(words))
}
