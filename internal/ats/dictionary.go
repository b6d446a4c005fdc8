// Package ats implements the rule-based ATS compatibility scoring engine.
// The engine is a pure function of its inputs: no I/O, no clocks, no
// randomness, safe for concurrent use.
package ats

import "regexp"

// The tables below are the versioned scoring vocabulary. Scoring logic never
// hardcodes terms; extending the dictionary means editing these tables only.

// technicalTermPatterns match multi-word and symbol-bearing technical or
// domain terms that plain tokenization would split or miss. Matches are
// lowercased before use. Order sets extraction priority.
var technicalTermPatterns = compilePatterns([]string{
	// Languages and frameworks
	`\bjavascript\b`, `\btypescript\b`, `\bpython\b`, `\bjava\b`, `\bgolang\b`,
	`c\+\+`, `c#`, `\bruby\b`, `\bphp\b`, `\bswift\b`, `\bkotlin\b`, `\brust\b`,
	`\bscala\b`, `\breact(?:\s+native)?\b`, `\bangular\b`, `\bvue(?:\.js)?\b`,
	`\bnode(?:\.js)?\b`, `\bdjango\b`, `\bflask\b`, `\bspring(?:\s+boot)?\b`,
	`\.net\b`, `\bgraphql\b`, `\brest(?:ful)?\s+apis?\b`, `\bmicroservices\b`,
	// Data stores
	`\bsql\b`, `\bnosql\b`, `\bpostgres(?:ql)?\b`, `\bmysql\b`, `\bmongodb\b`,
	`\bredis\b`, `\belasticsearch\b`,
	// Cloud and DevOps
	`\baws\b`, `\bamazon\s+web\s+services\b`, `\bazure\b`, `\bgoogle\s+cloud\b`,
	`\bgcp\b`, `\bdocker\b`, `\bkubernetes\b`, `\bterraform\b`, `\bansible\b`,
	`\bjenkins\b`, `\bci/cd\b`, `\bcontinuous\s+integration\b`, `\bdevops\b`,
	`\bgit(?:hub|lab)?\b`, `\blinux\b`,
	// Methodology
	`\bagile\b`, `\bscrum\b`, `\bkanban\b`, `\bwaterfall\b`, `\blean\b`,
	`\bsix\s+sigma\b`,
	// Role and domain phrases
	`\bmachine\s+learning\b`, `\bdeep\s+learning\b`, `\bdata\s+science\b`,
	`\bdata\s+analysis\b`, `\bartificial\s+intelligence\b`,
	`\bnatural\s+language\s+processing\b`, `\bproject\s+management\b`,
	`\bproduct\s+management\b`, `\bprogram\s+management\b`,
	`\bbusiness\s+analysis\b`, `\bcustomer\s+service\b`, `\bsupply\s+chain\b`,
	`\bquality\s+assurance\b`, `\buser\s+experience\b`, `\bweb\s+development\b`,
	`\bsoftware\s+(?:development|engineering)\b`, `\bfull[\s-]?stack\b`,
	`\bfront[\s-]?end\b`, `\bback[\s-]?end\b`, `\bstakeholder\s+management\b`,
	`\brisk\s+management\b`, `\bchange\s+management\b`, `\bteam\s+leadership\b`,
})

// generalKeywords is the fixed domain-agnostic list used to estimate baseline
// ATS keyword coverage independent of any job description. Matching is
// whole-word (or whole-phrase), case-insensitive.
var generalKeywords = compileKeywordList([]string{
	"project management",
	"stakeholder",
	"kpi",
	"sql",
	"agile",
	"scrum",
	"cloud",
	"compliance",
	"roadmap",
	"budget",
	"risk",
	"reporting",
	"leadership",
	"strategy",
	"analytics",
	"operations",
	"communication",
	"cross-functional",
	"automation",
	"data analysis",
	"forecasting",
	"negotiation",
	"process improvement",
	"vendor management",
})

// actionVerbs are the strong verbs the content checker rewards. Matching is
// on exact word forms; no stemming ("managed" counts, "managing" does not).
var actionVerbRe = regexp.MustCompile(`(?i)\b(?:led|managed|built|created|implemented|designed|optimized|improved|launched|delivered|increased|reduced|developed|analyzed|collaborated|negotiated|trained|mentored|automated)\b`)

// quantifiableRe detects quantified achievements: percentages, "N+" counts,
// dollar amounts, and year/month durations.
var quantifiableRe = regexp.MustCompile(`(?i)\d+%|\d+\+|\$\d+|\d+\s*years?\b|\d+\s*months?\b`)

// passivePhrase is the anti-pattern the content checker warns about.
const passivePhrase = "responsible for"

// stopWords are common English function words removed before frequency
// ranking in keyword extraction.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "cannot": true, "could": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "herself": true, "him": true, "himself": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "itself": true,
	"just": true, "me": true, "more": true, "most": true, "my": true,
	"myself": true, "no": true, "nor": true, "not": true, "now": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "our": true, "ours": true, "ourselves": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"themselves": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true,
	"too": true, "under": true, "until": true, "up": true, "very": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "who": true, "whom": true,
	"why": true, "will": true, "with": true, "would": true, "you": true,
	"your": true, "yours": true, "yourself": true, "yourselves": true,
	"ability": true, "able": true, "across": true, "among": true,
	"around": true, "become": true, "get": true, "give": true, "goes": true,
	"going": true, "good": true, "great": true, "help": true, "high": true,
	"however": true, "including": true, "like": true, "looking": true,
	"make": true, "making": true, "many": true, "may": true, "might": true,
	"much": true, "must": true, "need": true, "needs": true, "new": true,
	"one": true, "per": true, "plus": true, "provide": true, "really": true,
	"role": true, "said": true, "see": true, "seeking": true, "strong": true,
	"take": true, "team": true, "use": true, "used": true, "using": true,
	"want": true, "way": true, "well": true, "within": true, "work": true,
	"working": true, "years": true,
}

// generalKeyword pairs a coverage term with its precompiled whole-word matcher.
type generalKeyword struct {
	Term string
	re   *regexp.Regexp
}

func compilePatterns(exprs []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		res = append(res, regexp.MustCompile("(?i)"+expr))
	}
	return res
}

func compileKeywordList(terms []string) []generalKeyword {
	kws := make([]generalKeyword, 0, len(terms))
	for _, term := range terms {
		kws = append(kws, generalKeyword{
			Term: term,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
	return kws
}
