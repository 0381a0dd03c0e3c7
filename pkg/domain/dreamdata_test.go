package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func TestDefaultDreamData(t *testing.T) {
	d := DefaultDreamData(testNow)

	assert.Equal(t, MoodNeutral, d.Mood)
	assert.Equal(t, 75, d.SleepQuality)
	assert.Equal(t, DreamTypeEveryday, d.DreamType)
	assert.Equal(t, []string{"Fliegen", "Wasser"}, d.SearchedSymbols)
	assert.Equal(t, testNow, d.LastUpdated)
}

func TestDreamData_WithSearchedSymbol(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("先頭に追加して重複は取り除く", func(t *testing.T) {
		d := DefaultDreamData(testNow).WithSearchedSymbol("Wasser", later)
		assert.Equal(t, []string{"Wasser", "Fliegen"}, d.SearchedSymbols)
		assert.Equal(t, later, d.LastUpdated)
	})

	t.Run("最新5件だけが残るのだ", func(t *testing.T) {
		d := DefaultDreamData(testNow)
		for _, s := range []string{"Zug", "Berg", "Haus", "Hund", "Katze"} {
			d = d.WithSearchedSymbol(s, later)
		}
		assert.Equal(t, []string{"Katze", "Hund", "Haus", "Berg", "Zug"}, d.SearchedSymbols)
	})

	t.Run("元の値は変更されない", func(t *testing.T) {
		base := DefaultDreamData(testNow)
		_ = base.WithSearchedSymbol("Feuer", later)
		assert.Equal(t, []string{"Fliegen", "Wasser"}, base.SearchedSymbols)
	})
}

func TestDreamData_Request(t *testing.T) {
	d := DefaultDreamData(testNow).
		WithMood(MoodPositive, testNow).
		WithDreamType(DreamTypeFantasy, testNow).
		WithSleepQuality(80, testNow)

	req := d.Request("", 0.5)

	assert.Equal(t, DefaultDisplayName, req.DisplayName)
	assert.Equal(t, MoodPositive, req.Mood)
	assert.Equal(t, DreamTypeFantasy, req.DreamType)
	assert.Equal(t, 80, req.SleepQuality)
	assert.Equal(t, 0.5, req.Seed)
	assert.Equal(t, "19.10.2026", req.TimestampLabel)
}

func TestDecodeDreamData(t *testing.T) {
	t.Run("YAML の値で上書きし、無い項目は既定値のまま", func(t *testing.T) {
		src := `
mood: very-positive
dream_type: Luzide Träume
searched_symbols: [Fallen, Feuer]
`
		d, err := DecodeDreamData(strings.NewReader(src), testNow)
		require.NoError(t, err)

		assert.Equal(t, MoodVeryPositive, d.Mood)
		assert.Equal(t, DreamTypeLucid, d.DreamType)
		assert.Equal(t, 75, d.SleepQuality)
		assert.Equal(t, []string{"Fallen", "Feuer"}, d.SearchedSymbols)
	})

	t.Run("空のファイルは既定値になる", func(t *testing.T) {
		d, err := DecodeDreamData(strings.NewReader(""), testNow)
		require.NoError(t, err)
		assert.Equal(t, DefaultDreamData(testNow), d)
	})

	t.Run("範囲外の睡眠の質はエラー", func(t *testing.T) {
		_, err := DecodeDreamData(strings.NewReader("sleep_quality: 120\n"), testNow)
		assert.Error(t, err)
	})

	t.Run("壊れた YAML はエラー", func(t *testing.T) {
		_, err := DecodeDreamData(strings.NewReader("mood: [unclosed"), testNow)
		assert.Error(t, err)
	})
}
