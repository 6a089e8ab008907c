// Package company resolves a company name to its katakana reading:
// legal-entity designators are stripped first, then override dictionaries,
// an optional partial-token composition pass, and finally the automatic
// transliterator.
package company

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kobune/eightatena/internal/textnorm"
)

// separator class accepted between the morphemes of a multi-token legal
// form (一般　社団法人, 一般・社団・法人, ...).
const sepClass = `[\s　・、,，.．()（）\[\]［］‐‑‒–—―ｰ−－-]*`

// Multi-morpheme legal forms. Matching these as units (with any separator
// mix between morphemes) must happen before literal replacement: removing
// a short literal like 一般 first would corrupt the longer form.
var morphemePatterns = [][]string{
	{"特定", "非営利", "活動", "法人"},
	{"地方", "独立", "行政", "法人"},
	{"一般", "社団", "法人"},
	{"一般", "財団", "法人"},
	{"公益", "社団", "法人"},
	{"公益", "財団", "法人"},
	{"医療", "法人", "社団"},
	{"医療", "法人", "財団"},
	{"社会", "福祉", "法人"},
	{"国立", "大学", "法人"},
	{"公立", "大学", "法人"},
	{"独立", "行政", "法人"},
}

// English legal suffixes in one case-insensitive alternation. Literal
// replace was shown to miss case variants like "CO.,LTD.", so this is a
// regex on purpose. Longest alternatives first.
var enSuffixRE = regexp.MustCompile(
	`(?i)\b(?:co\.?\s*,?\s*ltd|corporation|incorporated|company|limited|corp|inc|ltd|l\.?l\.?c|k\.?k|g\.?k|co)\b\.?,?`)

// Residue of a partially matched multi-morpheme form left dangling at the
// start of the name.
var leadingResidueRE = regexp.MustCompile(`^(?:一般|公益|特定)[\s　・、,，.．‐‑‒–—―ｰ−－-]+`)

var edgeNoiseRE = regexp.MustCompile(`^[\s　・、,，.．/／&＆‐‑‒–—―−－-]+|[\s　・、,，.．/／&＆‐‑‒–—―−－-]+$`)

// SuffixStripper removes legal-entity designators from company names.
type SuffixStripper struct {
	literals []string // longest-first
	tuples   []*regexp.Regexp
}

// NewSuffixStripper builds a stripper from the corporate term list. Terms
// are sorted longest-first so that 一般社団法人 is removed as a whole and
// never leaves a dangling 社団法人 behind.
func NewSuffixStripper(terms []string) *SuffixStripper {
	lits := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			lits = append(lits, t)
		}
	}
	sort.Slice(lits, func(i, j int) bool {
		if len(lits[i]) != len(lits[j]) {
			return len(lits[i]) > len(lits[j])
		}
		return lits[i] < lits[j]
	})

	tuples := make([]*regexp.Regexp, 0, len(morphemePatterns))
	for _, parts := range morphemePatterns {
		quoted := make([]string, len(parts))
		for i, p := range parts {
			quoted[i] = regexp.QuoteMeta(p)
		}
		tuples = append(tuples, regexp.MustCompile(strings.Join(quoted, sepClass)))
	}
	return &SuffixStripper{literals: lits, tuples: tuples}
}

// Strip removes every legal-entity designator occurrence and tidies the
// leftover separators. The name is NFKC-folded first so full-width
// variants (Ｉｎｃ．, ＣＯ．，ＬＴＤ．, （株）) match the same patterns as
// their ASCII forms.
func (st *SuffixStripper) Strip(name string) string {
	s := textnorm.NFKC(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	for _, re := range st.tuples {
		s = re.ReplaceAllString(s, "")
	}
	for _, lit := range st.literals {
		s = strings.ReplaceAll(s, lit, "")
	}
	s = enSuffixRE.ReplaceAllString(s, "")
	s = leadingResidueRE.ReplaceAllString(s, "")
	s = edgeNoiseRE.ReplaceAllString(s, "")
	return textnorm.CollapseSpaces(s)
}
