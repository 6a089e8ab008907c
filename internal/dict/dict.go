// Package dict loads the JSON lookup tables used by the converter and
// serves them as an immutable snapshot behind an atomically swappable
// store. Every loader degrades to a built-in default on any IO or parse
// failure, so a missing data directory never prevents startup.
package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/kobune/eightatena/internal/textnorm"
)

// Dictionary file names looked up under the data directory.
const (
	fileBuildingWords     = "bldg_words.json"
	fileCompanyOverrides  = "company_kana_overrides.json"
	fileCompanyOverridesE = "company_kana_overrides_en.json"
	filePersonFull        = "person_kana_full.json"
	filePersonSurname     = "person_kana_surname.json"
	filePersonGiven       = "person_kana_given.json"
	fileAreaCodes         = "area_codes.json"
	fileCorpTerms         = "corp_terms.json"
)

// NormalizeFlags controls how lookup keys are derived from raw input for a
// company override table. The flags mirror the "normalize" object of the
// JSON schema.
type NormalizeFlags struct {
	NFKC           bool `json:"nfkc"`
	Lower          bool `json:"lower"`
	StripSpaces    bool `json:"strip_spaces"`
	FullWidthASCII bool `json:"fullwidth_ascii"`
	UnifySlash     bool `json:"unify_slash"`
	UnifyMiddleDot bool `json:"unify_middledot"`
}

// Key derives the lookup key for s under these flags.
func (f NormalizeFlags) Key(s string) string {
	x := s
	if f.NFKC {
		x = textnorm.NFKC(x)
	}
	if f.UnifySlash {
		x = strings.NewReplacer("／", "/", "＼", "/").Replace(x)
	}
	if f.UnifyMiddleDot {
		x = strings.NewReplacer("･", "・", "·", "・").Replace(x)
	}
	if f.Lower {
		x = strings.ToLower(x)
	}
	if f.StripSpaces {
		x = strings.NewReplacer(" ", "", "\t", "", "　", "").Replace(x)
	} else {
		x = textnorm.CollapseSpaces(x)
	}
	if f.FullWidthASCII {
		x = textnorm.ToFullWidth(x)
	}
	return x
}

// CompanyDict is one language's company-name kana table: full-string
// overrides plus partial-match tokens, with the key normalization the
// table was built for.
type CompanyDict struct {
	Version   string
	Normalize NormalizeFlags
	Overrides map[string]string
	Tokens    map[string]string
}

// TermTable is a flat {term: kana} table (person names).
type TermTable struct {
	Version string
	Terms   map[string]string
}

// Lookup returns the kana for an NFKC-normalized term.
func (t TermTable) Lookup(s string) (string, bool) {
	v, ok := t.Terms[textnorm.NFKC(strings.TrimSpace(s))]
	return v, ok
}

// WordList is a versioned list of strings (building keywords, corporate
// suffix terms, area codes).
type WordList struct {
	Version string
	Words   []string
}

// Tables is one immutable snapshot of every dictionary. A snapshot is
// never mutated after load; Reload builds a new one and swaps the pointer.
type Tables struct {
	BuildingWords WordList
	CompanyJP     CompanyDict
	CompanyEN     CompanyDict
	PersonFull    TermTable
	PersonSurname TermTable
	PersonGiven   TermTable
	AreaCodes     WordList
	CorpTerms     WordList
}

// Versions reports each table's version string for diagnostics. Tables
// loaded from fallback defaults report "".
func (t *Tables) Versions() map[string]string {
	return map[string]string{
		"bldg_words":                t.BuildingWords.Version,
		"company_kana_overrides":    t.CompanyJP.Version,
		"company_kana_overrides_en": t.CompanyEN.Version,
		"person_kana_full":          t.PersonFull.Version,
		"person_kana_surname":       t.PersonSurname.Version,
		"person_kana_given":         t.PersonGiven.Version,
		"area_codes":                t.AreaCodes.Version,
		"corp_terms":                t.CorpTerms.Version,
	}
}

// Store holds the current snapshot. Readers call Tables() and get a
// consistent view; Reload swaps in a fresh snapshot atomically so
// in-flight conversions see either the old or the new set, never a
// partial one.
type Store struct {
	dir string
	cur atomic.Pointer[Tables]
}

// NewStore loads all tables from dir (falling back per table) and returns
// the store. dir may be empty, in which case only defaults are used.
func NewStore(dir string) *Store {
	s := &Store{dir: dir}
	s.cur.Store(load(dir))
	return s
}

// Tables returns the current snapshot.
func (s *Store) Tables() *Tables {
	return s.cur.Load()
}

// Reload rebuilds every table from disk and swaps the snapshot.
func (s *Store) Reload() {
	s.cur.Store(load(s.dir))
}

func load(dir string) *Tables {
	return &Tables{
		BuildingWords: loadWordList(candidates(dir, fileBuildingWords), "words", defaultBuildingWords),
		CompanyJP:     loadCompanyDict(candidates(dir, fileCompanyOverrides), defaultCompanyJP),
		CompanyEN:     loadCompanyDict(candidates(dir, fileCompanyOverridesE), defaultCompanyEN),
		PersonFull:    loadTermTable(candidates(dir, filePersonFull)),
		PersonSurname: loadTermTable(candidates(dir, filePersonSurname)),
		PersonGiven:   loadTermTable(candidates(dir, filePersonGiven)),
		AreaCodes:     loadWordList(candidates(dir, fileAreaCodes), "codes", defaultAreaCodes),
		CorpTerms:     loadWordList(candidates(dir, fileCorpTerms), "terms", defaultCorpTerms),
	}
}

// candidates returns the ordered list of paths tried for a file.
func candidates(dir, name string) []string {
	var c []string
	if dir != "" {
		c = append(c, filepath.Join(dir, name))
	}
	c = append(c, filepath.Join("data", name))
	return c
}

func readJSON(paths []string, v any) error {
	var lastErr error = os.ErrNotExist
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		if err := json.Unmarshal(b, v); err != nil {
			lastErr = fmt.Errorf("%s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// loadWordList accepts both the dict schema {"version":..., "<key>":[...]}
// and the legacy bare-array schema.
func loadWordList(paths []string, key string, fallback []string) WordList {
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var asList []string
		if err := json.Unmarshal(b, &asList); err == nil {
			return WordList{Words: dedupNonEmpty(asList)}
		}
		var asDict map[string]json.RawMessage
		if err := json.Unmarshal(b, &asDict); err != nil {
			continue
		}
		wl := WordList{}
		if raw, ok := asDict["version"]; ok {
			_ = json.Unmarshal(raw, &wl.Version)
		}
		raw, ok := asDict[key]
		if !ok {
			// tolerate "words" as the generic list key
			raw, ok = asDict["words"]
		}
		if !ok {
			continue
		}
		var words []string
		if err := json.Unmarshal(raw, &words); err != nil {
			continue
		}
		wl.Words = dedupNonEmpty(words)
		return wl
	}
	return WordList{Words: fallback}
}

type companyDictFile struct {
	Version   string            `json:"version"`
	Normalize NormalizeFlags    `json:"normalize"`
	Overrides map[string]string `json:"overrides"`
	Tokens    map[string]string `json:"tokens"`
}

func loadCompanyDict(paths []string, fallback CompanyDict) CompanyDict {
	var f companyDictFile
	if err := readJSON(paths, &f); err != nil {
		return fallback
	}
	d := CompanyDict{
		Version:   strings.TrimSpace(f.Version),
		Normalize: f.Normalize,
		Overrides: make(map[string]string, len(f.Overrides)),
		Tokens:    make(map[string]string, len(f.Tokens)),
	}
	// Keys are normalized at load so lookups only normalize the probe.
	for k, v := range f.Overrides {
		d.Overrides[d.Normalize.Key(k)] = v
	}
	for k, v := range f.Tokens {
		d.Tokens[d.Normalize.Key(k)] = v
	}
	return d
}

type termTableFile struct {
	Version string            `json:"version"`
	Terms   map[string]string `json:"terms"`
	// Overrides is accepted as a legacy alias for Terms in the full-name
	// file; Terms wins when both are present.
	Overrides map[string]string `json:"overrides"`
}

func loadTermTable(paths []string) TermTable {
	var f termTableFile
	if err := readJSON(paths, &f); err != nil {
		return TermTable{Terms: map[string]string{}}
	}
	src := f.Terms
	if len(src) == 0 {
		src = f.Overrides
	}
	t := TermTable{Version: strings.TrimSpace(f.Version), Terms: make(map[string]string, len(src))}
	for k, v := range src {
		t.Terms[textnorm.NFKC(strings.TrimSpace(k))] = v
	}
	return t
}

func dedupNonEmpty(items []string) []string {
	return lo.Uniq(lo.FilterMap(items, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	}))
}
