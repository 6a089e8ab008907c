package kana

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/kobune/eightatena/internal/textnorm"
)

// Kagome reads Japanese text with the kagome morphological analyzer and
// the bundled IPA dictionary. Readings come back in katakana; tokens the
// dictionary does not know keep their surface form so no text is dropped.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome builds the analyzer. The IPA dictionary is embedded in the
// binary, so this only fails on allocation problems.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("initializing kagome tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

func (k *Kagome) Name() string { return "kagome/ipa" }

// Reading tokenizes text and joins the per-token readings. Non-Japanese
// input is returned NFKC-normalized as-is; the caller decides what to do
// with latin residue.
func (k *Kagome) Reading(text string) string {
	if text == "" {
		return ""
	}
	x := textnorm.NFKC(text)
	if !textnorm.IsJapaneseText(x) {
		return x
	}
	var b strings.Builder
	for _, tok := range k.t.Tokenize(x) {
		if r, ok := tok.Reading(); ok && r != "" && r != "*" {
			b.WriteString(r)
			continue
		}
		b.WriteString(tok.Surface)
	}
	return b.String()
}
