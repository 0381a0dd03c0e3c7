package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
	}{
		{"very-negative", MoodVeryNegative},
		{" Positive ", MoodPositive},
		{"very-positive", MoodVeryPositive},
		{"euphorisch", MoodNeutral},
		{"", MoodNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMood(tt.in))
		})
	}
}

func TestMood_Level(t *testing.T) {
	for i, m := range Moods {
		assert.Equal(t, i, m.Level())
	}
	assert.Equal(t, 2, Mood("unbekannt").Level())
}

func TestParseDreamType(t *testing.T) {
	t.Run("正式名称はそのまま受け付ける", func(t *testing.T) {
		got, ok := ParseDreamType("Albträume")
		assert.True(t, ok)
		assert.Equal(t, DreamTypeNightmare, got)
	})

	t.Run("英語のエイリアスも使えるのだ", func(t *testing.T) {
		got, ok := ParseDreamType("Lucid")
		assert.True(t, ok)
		assert.Equal(t, DreamTypeLucid, got)
	})

	t.Run("未知の値はそのまま返して ok=false", func(t *testing.T) {
		got, ok := ParseDreamType("Tagträume")
		assert.False(t, ok)
		assert.Equal(t, DreamType("Tagträume"), got)
	})
}
