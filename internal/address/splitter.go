// Package address splits a free-text Japanese address into the block
// address (up to the lot number) and the building/floor/room part. The
// split is an ordered cascade of named rules; the first rule that decides
// wins, and the terminal fallback keeps the whole string as the block, so
// Split never fails.
package address

import (
	"sort"
	"strings"

	"github.com/kobune/eightatena/internal/textnorm"
)

// Result is one rule's decision.
type Result struct {
	Block    string
	Building string
}

type rule struct {
	name string
	try  func(sp *Splitter, s string) (Result, bool)
}

// Splitter holds the building vocabulary and the rule cascade. It is
// immutable after construction; build a new one after a dictionary reload.
type Splitter struct {
	keywords []string // longest-first
	rules    []rule
}

// Inside-facility markers that push the remainder of an address to the
// building side. A bare 内 is deliberately not matched on its own: it
// collides with place names like 丸の内. Ordered longest-first.
var facilityMarkers = []string{
	"大学構内", "研究所内", "センター内", "NHK内", "工場内",
	"構内", "院内", "校内",
}

// Floor/room tokens. 号室 must sort before 室 so the longer token wins.
var floorRoomTokens = []string{"号室", "号館", "階", "室", "F"}

// NewSplitter builds a splitter over the given building keywords (any
// order; sorted longest-first internally).
func NewSplitter(buildingWords []string) *Splitter {
	kw := make([]string, 0, len(buildingWords))
	for _, w := range buildingWords {
		if t := strings.TrimSpace(textnorm.NFKC(w)); t != "" {
			kw = append(kw, t)
		}
	}
	sort.Slice(kw, func(i, j int) bool {
		if len(kw[i]) != len(kw[j]) {
			return len(kw[i]) > len(kw[j])
		}
		return kw[i] < kw[j]
	})
	return &Splitter{keywords: kw, rules: cascade}
}

// Split separates raw into (block, building). Both outputs are full-width
// normalized; building may be empty. Lot notation (丁目/番/号, dash glyph
// variants) is unified before the cascade runs.
func (sp *Splitter) Split(raw string) (string, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ""
	}
	s = textnorm.NormalizeBlockNotation(s)

	for _, r := range sp.rules {
		if res, ok := r.try(sp, s); ok {
			return finishBlock(res.Block), finishBuilding(res.Building)
		}
	}
	return finishBlock(s), ""
}

// keywordIndex returns the leftmost building-keyword occurrence in s,
// preferring the longest keyword when several start at the same position.
func (sp *Splitter) keywordIndex(s string) (int, bool) {
	best := -1
	for _, kw := range sp.keywords {
		if i := strings.Index(s, kw); i >= 0 && (best == -1 || i < best) {
			best = i
		}
	}
	return best, best >= 0
}

func (sp *Splitter) containsKeyword(s string) bool {
	_, ok := sp.keywordIndex(s)
	return ok
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// tokenIndex returns the leftmost occurrence of any token, longest token
// winning ties.
func tokenIndex(s string, tokens []string) (int, bool) {
	best := -1
	for _, t := range tokens {
		if i := strings.Index(s, t); i >= 0 && (best == -1 || i < best) {
			best = i
		}
	}
	return best, best >= 0
}

func finishBlock(s string) string {
	return textnorm.ToFullWidth(strings.TrimRight(s, " \t　"))
}

// finishBuilding drops the stray separators a split can leave at the head
// of the building part ("1-1 -ネコノスビル" must not yield "-ネコノスビル").
func finishBuilding(s string) string {
	s = strings.TrimLeft(s, " \t　-‐‑‒–—―ｰ−－")
	s = strings.TrimRight(s, " \t　")
	return textnorm.ToFullWidth(s)
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
