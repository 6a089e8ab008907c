// Package textnorm provides the deterministic string transforms shared by
// the converter: width normalization, kana folding, and postal / block
// notation cleanup. All functions are pure and never fail.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// symbolMap covers ASCII symbols whose NFKC full-width counterpart is not
// a simple +0xFEE0 shift, or where we want a specific glyph.
var symbolMap = map[rune]rune{
	' ': '　',
	'-': '－', '_': '＿', '/': '／', '#': '＃',
	'.': '．', ',': '，', ':': '：', ';': '；', '&': '＆',
	'(': '（', ')': '）', '[': '［', ']': '］', '\'': '’',
	'"': '”', '+': '＋', '!': '！', '?': '？', '@': '＠',
	'*': '＊',
}

// ToFullWidth maps ASCII 0x21-0x7E to the full-width Unicode block and the
// ASCII space to an ideographic space. Non-ASCII runes pass through, which
// makes the transform idempotent.
func ToFullWidth(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if mapped, ok := symbolMap[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		if r >= 0x21 && r <= 0x7E {
			b.WriteRune(r + 0xFEE0)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NFKC applies Unicode NFKC normalization (half-width kana to full-width,
// full-width ASCII to half-width, and so on).
func NFKC(s string) string {
	return norm.NFKC.String(s)
}

const hiraToKataOffset = 'ァ' - 'ぁ'

// HiraToKata converts hiragana runes (ぁ..ゖ) to katakana, leaving
// everything else untouched.
func HiraToKata(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ゖ' {
			b.WriteRune(r + hiraToKataOffset)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsJapaneseText reports whether s contains at least one kanji, hiragana,
// katakana, or long-vowel-mark rune.
func IsJapaneseText(s string) bool {
	for _, r := range s {
		if r == 'ー' || r == 'ｰ' {
			return true
		}
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}

// HasLatin reports whether s contains an ASCII letter.
func HasLatin(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// NormalizePostalCode returns a 7-digit postal code formatted as ###-####.
// Anything that does not contain exactly 7 digits yields "" rather than a
// guess.
func NormalizePostalCode(s string) string {
	if s == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range NFKC(s) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 7 {
		return ""
	}
	return d[:3] + "-" + d[3:]
}

// hyphenClass unifies the glyphs commonly used as lot-number separators.
// The full-width long vowel mark ー is deliberately absent: it is part of
// katakana words, not a hyphen.
var hyphenClass = regexp.MustCompile(`[‐‑‒–—―ｰ−－]`)

var (
	blockSeparatorRE = regexp.MustCompile(`([0-9])(?:丁目|番地|番|号|の)([0-9])`)
	blockTrailingRE  = regexp.MustCompile(`([0-9])(?:丁目|番地|号)$`)
	// Same markers before whitespace: "3号 パレス会館" ends the lot, but 号室,
	// 号館 and 号棟 are left alone by requiring the space.
	blockMarkerSpaceRE = regexp.MustCompile(`([0-9])(?:丁目|番地|号)([ \t　])`)
	hyphenRunRE        = regexp.MustCompile(`-{2,}`)
)

// NormalizeBlockNotation rewrites formal Japanese block notation
// (1丁目2番3号, 1の2の3, mixed dash glyphs) into hyphen-joined numeric
// form. Markers are only rewritten between digits, so words like 号室 and
// place names containing の survive. The result feeds the address splitter
// a uniform string.
func NormalizeBlockNotation(s string) string {
	if s == "" {
		return ""
	}
	x := NFKC(s)
	x = hyphenClass.ReplaceAllString(x, "-")
	// Repeated because matches share boundary digits (1丁目2番3号 needs
	// two passes).
	for {
		next := blockSeparatorRE.ReplaceAllString(x, "$1-$2")
		if next == x {
			break
		}
		x = next
	}
	x = blockTrailingRE.ReplaceAllString(x, "$1")
	x = blockMarkerSpaceRE.ReplaceAllString(x, "$1$2")
	x = hyphenRunRE.ReplaceAllString(x, "-")
	return x
}

// kanaSymbolRE matches the separator symbols stripped from final kana
// output.
var kanaSymbolRE = regexp.MustCompile(`[・／/\[\]&＆()（）［］｜|]`)

// StripKanaSymbols removes stray separator symbols from a kana reading.
func StripKanaSymbols(s string) string {
	return kanaSymbolRE.ReplaceAllString(s, "")
}

var spaceRunRE = regexp.MustCompile(`[ \t\x{3000}]+`)

// CollapseSpaces squeezes runs of ASCII and ideographic whitespace into a
// single ASCII space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRunRE.ReplaceAllString(s, " "))
}
