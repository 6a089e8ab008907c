package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStripper() *SuffixStripper {
	return NewSuffixStripper([]string{
		"株式会社", "有限会社", "合同会社",
		"一般社団法人", "一般財団法人", "公益社団法人", "特定非営利活動法人",
		"(株)", "（株）", "(有)", "（有）",
	})
}

func TestStripLiteralSuffixes(t *testing.T) {
	st := testStripper()
	tests := []struct {
		input string
		want  string
	}{
		{"株式会社ネコノス", "ネコノス"},
		{"ネコノス株式会社", "ネコノス"},
		{"（株）ネコノス", "ネコノス"},
		{"ネコノス(有)", "ネコノス"},
		{"合同会社ネコ・ノス", "ネコ・ノス"},
		{"ネコノス", "ネコノス"},
		{"", ""},
		{"株式会社", ""},
	}
	for _, tt := range tests {
		got := st.Strip(tt.input)
		if got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripLongestMatchFirst(t *testing.T) {
	st := testStripper()
	got := st.Strip("一般社団法人テスト")
	assert.Equal(t, "テスト", got, "must not leave a dangling 社団法人 or 一般")
}

func TestStripMorphemeTupleWithSeparators(t *testing.T) {
	st := testStripper()
	assert.Equal(t, "テスト", st.Strip("一般 社団 法人テスト"))
	assert.Equal(t, "テスト", st.Strip("一般・社団・法人 テスト"))
	assert.Equal(t, "テスト", st.Strip("特定非営利活動法人テスト"))
}

func TestStripEnglishSuffixes(t *testing.T) {
	st := testStripper()
	tests := []struct {
		input string
		want  string
	}{
		{"Neko Inc.", "Neko"},
		{"NEKO CO.,LTD.", "NEKO"},
		{"Neko Co., Ltd.", "Neko"},
		{"Nekonosu Corporation", "Nekonosu"},
		{"NEKO K.K.", "NEKO"},
		{"Neko LLC", "Neko"},
		{"Incredible", "Incredible"}, // word boundary: not a suffix
	}
	for _, tt := range tests {
		got := st.Strip(tt.input)
		if got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripFullWidthEnglishSuffixes(t *testing.T) {
	st := testStripper()
	tests := []struct {
		input string
		want  string
	}{
		{"ネコノス　Ｉｎｃ．", "ネコノス"},
		{"NEKO ＣＯ．，ＬＴＤ．", "NEKO"},
		{"Ｎｅｋｏ　Ｌｉｍｉｔｅｄ", "Neko"},
		{"ネコノス　Ｋ．Ｋ．", "ネコノス"},
	}
	for _, tt := range tests {
		got := st.Strip(tt.input)
		if got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripMultipleOccurrences(t *testing.T) {
	st := testStripper()
	assert.Equal(t, "ネコノス", st.Strip("株式会社ネコノス株式会社"))
}
