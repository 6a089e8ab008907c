package company

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/metrics"
	"github.com/kobune/eightatena/internal/textnorm"
)

// Options are the feature flags of the kana resolver. Zero value means
// full-match lookups plus transliterator fallback only.
type Options struct {
	// PartialMatch enables the greedy longest-token composition pass.
	PartialMatch bool
	// PartialTokenMinLen is the minimum token length (runes) considered
	// during partial matching.
	PartialTokenMinLen int
	// AcronymCharwise expands short unmatched ASCII runs letter by letter
	// via single-character EN token entries.
	AcronymCharwise bool
	// AcronymMaxLen is the longest ASCII run expanded char-by-char;
	// longer runs go to the fallback transliterator instead.
	AcronymMaxLen int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{PartialTokenMinLen: 2, AcronymMaxLen: 3}
}

const cacheSize = 4096

type scanToken struct {
	runes []rune
	kana  string
}

// Resolver turns a company name into a katakana reading. It is built from
// one dictionary snapshot and is safe for concurrent use.
type Resolver struct {
	opts    Options
	strip   *SuffixStripper
	jp      dict.CompanyDict
	en      dict.CompanyDict
	jpScan  []scanToken // longest-first, NFKC view
	enScan  []scanToken // longest-first, lowercased NFKC view
	enChars map[rune]string
	tr      kana.Transliterator
	cache   *lru.Cache[string, string]
}

// NewResolver builds a resolver over the given snapshot and
// transliterator.
func NewResolver(t *dict.Tables, tr kana.Transliterator, opts Options) *Resolver {
	if opts.PartialTokenMinLen <= 0 {
		opts.PartialTokenMinLen = 2
	}
	if opts.AcronymMaxLen <= 0 {
		opts.AcronymMaxLen = 3
	}
	cache, _ := lru.New[string, string](cacheSize)
	r := &Resolver{
		opts:    opts,
		strip:   NewSuffixStripper(t.CorpTerms.Words),
		jp:      t.CompanyJP,
		en:      t.CompanyEN,
		enChars: map[rune]string{},
		tr:      tr,
		cache:   cache,
	}
	for k, v := range t.CompanyJP.Tokens {
		runes := []rune(textnorm.NFKC(k))
		if len(runes) >= opts.PartialTokenMinLen {
			r.jpScan = append(r.jpScan, scanToken{runes: runes, kana: v})
		}
	}
	for k, v := range t.CompanyEN.Tokens {
		runes := []rune(strings.ToLower(textnorm.NFKC(k)))
		if len(runes) == 1 {
			r.enChars[runes[0]] = v
			continue
		}
		if len(runes) >= opts.PartialTokenMinLen {
			r.enScan = append(r.enScan, scanToken{runes: runes, kana: v})
		}
	}
	sortScan(r.jpScan)
	sortScan(r.enScan)
	return r
}

func sortScan(toks []scanToken) {
	sort.Slice(toks, func(i, j int) bool {
		if len(toks[i].runes) != len(toks[j].runes) {
			return len(toks[i].runes) > len(toks[j].runes)
		}
		return string(toks[i].runes) < string(toks[j].runes)
	})
}

// Resolve returns the katakana reading of a company name. The corporate
// suffix never appears in the output, hiragana is always folded to
// katakana, and separator symbols are stripped.
func (r *Resolver) Resolve(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	if v, ok := r.cache.Get(name); ok {
		return v
	}
	v := r.resolve(r.strip.Strip(name))
	r.cache.Add(name, v)
	return v
}

func (r *Resolver) resolve(stripped string) string {
	if stripped == "" {
		return ""
	}
	if v, ok := r.jp.Overrides[r.jp.Normalize.Key(stripped)]; ok {
		metrics.KanaLookupsTotal.WithLabelValues("override_jp").Inc()
		return clean(v)
	}
	if v, ok := r.en.Overrides[r.en.Normalize.Key(stripped)]; ok {
		metrics.KanaLookupsTotal.WithLabelValues("override_en").Inc()
		return clean(v)
	}
	if r.opts.PartialMatch {
		if v, ok := r.partial(stripped); ok {
			metrics.KanaLookupsTotal.WithLabelValues("partial").Inc()
			return clean(v)
		}
	}
	metrics.KanaLookupsTotal.WithLabelValues("fallback").Inc()
	return clean(r.tr.Reading(stripped))
}

func clean(s string) string {
	return textnorm.StripKanaSymbols(kana.ForceKatakana(s))
}

// partial composes a reading by greedy longest-token matching, left to
// right. Separator characters are consumed silently and flush the gap
// buffer; unmatched text is transliterated when flushed. Reports false if
// not a single token matched.
func (r *Resolver) partial(stripped string) (string, bool) {
	runes := []rune(textnorm.NFKC(stripped))
	var out strings.Builder
	var gap []rune
	hits := 0

	flush := func() {
		if len(gap) == 0 {
			return
		}
		if s, ok := r.expandAcronym(gap); ok {
			out.WriteString(s)
			hits++
		} else {
			out.WriteString(r.tr.Reading(string(gap)))
		}
		gap = gap[:0]
	}

	i := 0
	for i < len(runes) {
		if isScanSeparator(runes[i]) {
			flush()
			i++
			continue
		}
		if tok, n := r.matchAt(runes, i); n > 0 {
			flush()
			out.WriteString(tok)
			hits++
			i += n
			continue
		}
		gap = append(gap, runes[i])
		i++
	}
	flush()

	if hits == 0 {
		return "", false
	}
	return out.String(), true
}

// matchAt tries the JP token dictionary, then the EN one. EN matches are
// case-insensitive and must not start or end inside an ASCII-alnum word.
func (r *Resolver) matchAt(runes []rune, i int) (string, int) {
	for _, tok := range r.jpScan {
		if hasPrefixRunes(runes[i:], tok.runes) {
			return tok.kana, len(tok.runes)
		}
	}
	for _, tok := range r.enScan {
		n := len(tok.runes)
		if !hasPrefixFold(runes[i:], tok.runes) {
			continue
		}
		if i > 0 && isASCIIAlnum(runes[i-1]) {
			continue
		}
		if i+n < len(runes) && isASCIIAlnum(runes[i+n]) {
			continue
		}
		return tok.kana, n
	}
	return "", 0
}

// expandAcronym reads a short ASCII run letter by letter using the
// single-character EN entries (so "AB" becomes エービー when the entries
// exist). Longer runs and runs with unknown characters are left for the
// transliterator.
func (r *Resolver) expandAcronym(gap []rune) (string, bool) {
	if !r.opts.AcronymCharwise || len(gap) > r.opts.AcronymMaxLen {
		return "", false
	}
	var b strings.Builder
	for _, c := range gap {
		if !isASCIIAlnum(c) {
			return "", false
		}
		k, ok := r.enChars[toLowerASCII(c)]
		if !ok {
			return "", false
		}
		b.WriteString(k)
	}
	return b.String(), true
}

func hasPrefixRunes(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func hasPrefixFold(s, lowerPrefix []rune) bool {
	if len(s) < len(lowerPrefix) {
		return false
	}
	for i := range lowerPrefix {
		if toLowerASCII(s[i]) != lowerPrefix[i] {
			return false
		}
	}
	return true
}

func isScanSeparator(r rune) bool {
	switch r {
	case ' ', '　', '\t', '/', '／', '・', '･', '&', '＆', ',', '，', '.', '．':
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
