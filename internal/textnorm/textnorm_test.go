package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFullWidth(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ABC123", "ＡＢＣ１２３"},
		{"1-2-3", "１－２－３"},
		{"a b", "ａ　ｂ"},
		{"東京都", "東京都"},
		{"#301", "＃３０１"},
		{"", ""},
	}
	for _, tt := range tests {
		got := ToFullWidth(tt.input)
		if got != tt.want {
			t.Errorf("ToFullWidth(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToFullWidthIdempotent(t *testing.T) {
	inputs := []string{"ABC 1-2-3", "東京都千代田区1-2-3", "ｱｲｳ", "Neko/Nosu #5"}
	for _, s := range inputs {
		once := ToFullWidth(s)
		assert.Equal(t, once, ToFullWidth(once), "ToFullWidth must be idempotent for %q", s)
	}
}

func TestNFKC(t *testing.T) {
	assert.Equal(t, "アイウ", NFKC("ｱｲｳ"))
	assert.Equal(t, "123", NFKC("１２３"))
	assert.Equal(t, "ABC", NFKC("ＡＢＣ"))
}

func TestHiraToKata(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ねこのす", "ネコノス"},
		{"すずき", "スズキ"},
		{"やまだ太郎", "ヤマダ太郎"},      // kanji passes through
		{"カタカナ東京ABC", "カタカナ東京ABC"}, // non-hiragana untouched
		{"ヴぁ", "ヴァ"},
	}
	for _, tt := range tests {
		got := HiraToKata(tt.input)
		if got != tt.want {
			t.Errorf("HiraToKata(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsJapaneseText(t *testing.T) {
	assert.True(t, IsJapaneseText("東京"))
	assert.True(t, IsJapaneseText("ビル"))
	assert.True(t, IsJapaneseText("ねこ"))
	assert.True(t, IsJapaneseText("コーヒー"))
	assert.False(t, IsJapaneseText("1-2-3 Ginza"))
	assert.False(t, IsJapaneseText(""))
}

func TestHasLatin(t *testing.T) {
	assert.True(t, HasLatin("NHK"))
	assert.False(t, HasLatin("東京 123"))
}

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234567", "123-4567"},
		{"123-4567", "123-4567"},
		{"〒123-4567", "123-4567"},
		{"１２３４５６７", "123-4567"},
		{"12345", ""},
		{"12345678", ""},
		{"", ""},
		{"unknown", ""},
	}
	for _, tt := range tests {
		got := NormalizePostalCode(tt.input)
		if got != tt.want {
			t.Errorf("NormalizePostalCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeBlockNotation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1丁目2番3号", "1-2-3"},
		{"1の2の3", "1-2-3"},
		{"1丁目2番地3", "1-2-3"},
		{"銀座1丁目", "銀座1"},
		{"1−2－3", "1-2-3"},       // dash glyph variants
		{"1--2", "1-2"},          // hyphen runs collapse
		{"丸の内", "丸の内"},          // の survives between non-digits
		{"2号室", "2号室"},          // 号室 is a room marker, not lot notation
		{"1丁目2番3号 ビル", "1-2-3 ビル"},
		{"3号棟", "3号棟"},
		{"１丁目２番３号", "1-2-3"},    // full-width digits
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeBlockNotation(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeBlockNotation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripKanaSymbols(t *testing.T) {
	assert.Equal(t, "ネコカンパニー", StripKanaSymbols("ネコ・カンパニー"))
	assert.Equal(t, "エヌエイチケー", StripKanaSymbols("エヌ／エイチ／ケー"))
	assert.Equal(t, "アンド", StripKanaSymbols("(アンド)"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces(" a  b　c "))
	assert.Equal(t, "", CollapseSpaces("  　 "))
}
