package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewStoreFallsBackToDefaults(t *testing.T) {
	store := NewStore(t.TempDir())
	tables := store.Tables()

	assert.Contains(t, tables.BuildingWords.Words, "ビル")
	assert.Contains(t, tables.CorpTerms.Words, "株式会社")
	assert.Contains(t, tables.AreaCodes.Words, "03")
	assert.Empty(t, tables.BuildingWords.Version, "defaults carry no version")
	assert.Empty(t, tables.PersonFull.Terms)
}

func TestLoadWordListSchemas(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bldg_words.json", `{"version":"v2","words":["ビル","タワー","","ビル"]}`)
	writeFile(t, dir, "corp_terms.json", `["株式会社","有限会社"]`) // legacy bare array

	tables := NewStore(dir).Tables()

	assert.Equal(t, "v2", tables.BuildingWords.Version)
	assert.Equal(t, []string{"ビル", "タワー"}, tables.BuildingWords.Words, "blank and duplicate entries dropped")
	assert.Equal(t, []string{"株式会社", "有限会社"}, tables.CorpTerms.Words)
	assert.Empty(t, tables.CorpTerms.Version, "bare arrays carry no version")
}

func TestLoadWordListCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "area_codes.json", `{not json`)

	tables := NewStore(dir).Tables()
	assert.Contains(t, tables.AreaCodes.Words, "03")
}

func TestLoadCompanyDictNormalizesKeysAtLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "company_kana_overrides.json",
		`{"version":"j1","normalize":{"nfkc":true,"strip_spaces":true},"overrides":{"ネコ ノス":"ネコノス"},"tokens":{"ネコ":"ネコ"}}`)

	tables := NewStore(dir).Tables()
	d := tables.CompanyJP

	assert.Equal(t, "j1", d.Version)
	v, ok := d.Overrides[d.Normalize.Key("ネコノス")]
	require.True(t, ok, "spaced key must be reachable through the normalized probe")
	assert.Equal(t, "ネコノス", v)
}

func TestLoadTermTableAcceptsLegacyOverridesKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "person_kana_full.json", `{"version":"p1","overrides":{"山田太郎":"ヤマダタロー"}}`)
	writeFile(t, dir, "person_kana_surname.json", `{"version":"p2","terms":{"山田":"ヤマダ"}}`)

	tables := NewStore(dir).Tables()

	v, ok := tables.PersonFull.Lookup("山田太郎")
	require.True(t, ok)
	assert.Equal(t, "ヤマダタロー", v)

	v, ok = tables.PersonSurname.Lookup(" 山田 ")
	require.True(t, ok, "lookup trims and NFKC-normalizes the probe")
	assert.Equal(t, "ヤマダ", v)
}

func TestReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	before := store.Tables()
	assert.Empty(t, before.BuildingWords.Version)

	writeFile(t, dir, "bldg_words.json", `{"version":"v9","words":["ビル"]}`)
	store.Reload()

	assert.Equal(t, "v9", store.Tables().BuildingWords.Version)
	assert.Empty(t, before.BuildingWords.Version, "old snapshot stays immutable")
}

func TestNormalizeFlagsKey(t *testing.T) {
	tests := []struct {
		name  string
		flags NormalizeFlags
		input string
		want  string
	}{
		{"nfkc+lower", NormalizeFlags{NFKC: true, Lower: true}, "ＮＥＫＯ", "neko"},
		{"strip spaces", NormalizeFlags{StripSpaces: true}, "ネコ 　ノス", "ネコノス"},
		{"collapse spaces when not stripping", NormalizeFlags{}, " ネコ  ノス ", "ネコ ノス"},
		{"unify slash", NormalizeFlags{UnifySlash: true}, "ネコ／ノス", "ネコ/ノス"},
		{"unify middle dot", NormalizeFlags{UnifyMiddleDot: true}, "ネコ･ノス", "ネコ・ノス"},
		{"fullwidth ascii", NormalizeFlags{FullWidthASCII: true}, "neko", "ｎｅｋｏ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Key(tt.input))
		})
	}
}

func TestVersionsReportsEveryTable(t *testing.T) {
	tables := NewStore(t.TempDir()).Tables()
	v := tables.Versions()
	assert.Len(t, v, 8)
	assert.Contains(t, v, "bldg_words")
	assert.Contains(t, v, "person_kana_full")
}
