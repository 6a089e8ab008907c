package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceKatakana(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ねこのす", "ネコノス"},
		{"ｱｲｳ", "アイウ"},
		{"ヤマダ", "ヤマダ"},
		{"やまだ太郎", "ヤマダ太郎"},
		{"", ""},
	}
	for _, tt := range tests {
		got := ForceKatakana(tt.input)
		if got != tt.want {
			t.Errorf("ForceKatakana(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNull(t *testing.T) {
	assert.Equal(t, "", Null{}.Reading("山田"))
	assert.Equal(t, "null", Null{}.Name())
}

func TestKagomeReading(t *testing.T) {
	k, err := NewKagome()
	require.NoError(t, err)

	assert.Equal(t, "kagome/ipa", k.Name())
	assert.Equal(t, "トウキョウ", k.Reading("東京"))
	assert.Equal(t, "ABC-123", k.Reading("ABC-123"), "non-Japanese input passes through")
	assert.Equal(t, "", k.Reading(""))
}
