package person

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kobune/eightatena/internal/dict"
)

type stubTr struct {
	readings map[string]string
}

func (s stubTr) Reading(text string) string { return s.readings[text] }
func (s stubTr) Name() string               { return "stub" }

func testTables() *dict.Tables {
	return &dict.Tables{
		PersonFull:    dict.TermTable{Terms: map[string]string{"山田太郎": "ヤマダタロー"}},
		PersonSurname: dict.TermTable{Terms: map[string]string{"山田": "やまだ"}},
		PersonGiven:   dict.TermTable{Terms: map[string]string{"太郎": "タロウ"}},
	}
}

func TestResolvePerPartTables(t *testing.T) {
	r := NewResolver(testTables(), stubTr{})
	got := r.Resolve("山田", "花子")

	assert.Equal(t, "ヤマダ", got.Surname, "hiragana table values are folded to katakana")
	assert.Equal(t, "", got.Given, "unknown name with a null transliterator reads as empty")
	assert.Equal(t, "ヤマダ", got.Full)
}

func TestResolveFullNameOverrideWins(t *testing.T) {
	r := NewResolver(testTables(), stubTr{})
	got := r.Resolve("山田", "太郎")

	assert.Equal(t, "ヤマダ", got.Surname)
	assert.Equal(t, "タロウ", got.Given)
	assert.Equal(t, "ヤマダタロー", got.Full, "the full-name override beats the concatenated parts")
}

func TestResolveTransliteratorFallback(t *testing.T) {
	tr := stubTr{readings: map[string]string{"鈴木": "すずき", "一郎": "イチロウ"}}
	r := NewResolver(testTables(), tr)
	got := r.Resolve("鈴木", "一郎")

	assert.Equal(t, "スズキ", got.Surname)
	assert.Equal(t, "イチロウ", got.Given)
	assert.Equal(t, "スズキイチロウ", got.Full)
}

func TestResolveTrimsAndHandlesEmpty(t *testing.T) {
	r := NewResolver(testTables(), stubTr{})

	got := r.Resolve(" 山田 ", "")
	assert.Equal(t, "ヤマダ", got.Surname)
	assert.Equal(t, "", got.Given)
	assert.Equal(t, "ヤマダ", got.Full)

	got = r.Resolve("", "")
	assert.Equal(t, Reading{}, got)
}
