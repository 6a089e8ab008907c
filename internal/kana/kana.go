// Package kana defines the transliteration boundary: a narrow interface
// returning a best-effort reading, with the katakana forcing always applied
// by the caller so the backend stays swappable.
package kana

import "github.com/kobune/eightatena/internal/textnorm"

// Transliterator produces a best-effort phonetic reading for text. An
// empty return means "could not read"; implementations never fail hard.
type Transliterator interface {
	// Reading returns the reading in kana (hiragana or katakana; callers
	// force katakana themselves).
	Reading(text string) string
	// Name identifies the backend for diagnostics.
	Name() string
}

// ForceKatakana folds a reading to full-width katakana.
func ForceKatakana(s string) string {
	return textnorm.HiraToKata(textnorm.NFKC(s))
}

// Null is a Transliterator that reads nothing. Used when automatic kana
// guessing is disabled.
type Null struct{}

func (Null) Reading(string) string { return "" }
func (Null) Name() string          { return "null" }
