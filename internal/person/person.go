// Package person resolves surname/given-name kana readings through the
// full-name override dictionary, the per-part term tables, and the
// automatic transliterator.
package person

import (
	"strings"

	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/metrics"
	"github.com/kobune/eightatena/internal/textnorm"
)

// Reading is the resolved kana for one person.
type Reading struct {
	Surname string
	Given   string
	Full    string
}

// Resolver is built from one dictionary snapshot.
type Resolver struct {
	full    dict.TermTable
	surname dict.TermTable
	given   dict.TermTable
	tr      kana.Transliterator
}

// NewResolver builds a resolver over the given snapshot.
func NewResolver(t *dict.Tables, tr kana.Transliterator) *Resolver {
	return &Resolver{full: t.PersonFull, surname: t.PersonSurname, given: t.PersonGiven, tr: tr}
}

// Resolve returns katakana readings for the surname, the given name, and
// the concatenated full name. A full-name override wins for the full
// reading even when the per-part tables are empty; the per-part readings
// are always resolved independently.
func (r *Resolver) Resolve(surname, given string) Reading {
	surname = strings.TrimSpace(surname)
	given = strings.TrimSpace(given)

	sk := r.part(surname, r.surname)
	gk := r.part(given, r.given)

	full := surname + given
	if v, ok := r.full.Lookup(full); ok && full != "" {
		metrics.KanaLookupsTotal.WithLabelValues("person_full").Inc()
		return Reading{Surname: sk, Given: gk, Full: clean(v)}
	}
	return Reading{Surname: sk, Given: gk, Full: sk + gk}
}

func (r *Resolver) part(name string, table dict.TermTable) string {
	if name == "" {
		return ""
	}
	if v, ok := table.Lookup(name); ok {
		return clean(v)
	}
	return clean(r.tr.Reading(name))
}

func clean(s string) string {
	return textnorm.StripKanaSymbols(kana.ForceKatakana(s))
}
