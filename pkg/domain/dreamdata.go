package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout はメタデータに描画する日付の書式 (de-DE) です。
const DateLayout = "2.1.2006"

// DreamData はダッシュボードで編集される現在の夢データです。
// 値型として扱い、With 系メソッドは更新済みのコピーを返します。
type DreamData struct {
	Mood            Mood      `yaml:"mood"`
	SleepQuality    int       `yaml:"sleep_quality"`
	DreamType       DreamType `yaml:"dream_type"`
	SearchedSymbols []string  `yaml:"searched_symbols"`
	LastUpdated     time.Time `yaml:"last_updated"`
}

// DefaultDreamData は初期状態の夢データを返します。
func DefaultDreamData(now time.Time) DreamData {
	return DreamData{
		Mood:            MoodNeutral,
		SleepQuality:    75,
		DreamType:       DreamTypeEveryday,
		SearchedSymbols: []string{"Fliegen", "Wasser"},
		LastUpdated:     now,
	}
}

func (d DreamData) clone() DreamData {
	out := d
	out.SearchedSymbols = append([]string(nil), d.SearchedSymbols...)
	return out
}

// WithMood は気分を更新します。
func (d DreamData) WithMood(m Mood, now time.Time) DreamData {
	out := d.clone()
	out.Mood = m
	out.LastUpdated = now
	return out
}

// WithSleepQuality は睡眠の質を更新します。
func (d DreamData) WithSleepQuality(q int, now time.Time) DreamData {
	out := d.clone()
	out.SleepQuality = q
	out.LastUpdated = now
	return out
}

// WithDreamType は夢のタイプを更新します。
func (d DreamData) WithDreamType(t DreamType, now time.Time) DreamData {
	out := d.clone()
	out.DreamType = t
	out.LastUpdated = now
	return out
}

// WithSearchedSymbol は検索したシンボルを先頭に追加します。
// 重複は取り除かれ、最新 MaxSymbols 件だけが残ります。
func (d DreamData) WithSearchedSymbol(symbol string, now time.Time) DreamData {
	symbol = strings.TrimSpace(symbol)
	out := d.clone()
	out.LastUpdated = now
	if symbol == "" {
		return out
	}
	list := []string{symbol}
	for _, s := range d.SearchedSymbols {
		if s != symbol {
			list = append(list, s)
		}
	}
	if len(list) > MaxSymbols {
		list = list[:MaxSymbols]
	}
	out.SearchedSymbols = list
	return out
}

// Validate は範囲外の値を検出します。
func (d DreamData) Validate() error {
	if d.SleepQuality < 0 || d.SleepQuality > 100 {
		return fmt.Errorf("sleep quality must be within 0-100, got %d", d.SleepQuality)
	}
	return nil
}

// Request は描画リクエストを組み立てます。表示名が空の場合は DefaultDisplayName を使います。
func (d DreamData) Request(displayName string, seed float64) RenderRequest {
	if strings.TrimSpace(displayName) == "" {
		displayName = DefaultDisplayName
	}
	var label string
	if !d.LastUpdated.IsZero() {
		label = d.LastUpdated.Format(DateLayout)
	}
	return RenderRequest{
		Mood:           d.Mood,
		DreamType:      d.DreamType,
		SleepQuality:   d.SleepQuality,
		Symbols:        append([]string(nil), d.SearchedSymbols...),
		Seed:           seed,
		DisplayName:    displayName,
		TimestampLabel: label,
	}
}

// DecodeDreamData は YAML から夢データを読み込みます。
// 書かれていない項目は DefaultDreamData の値のままになります。
func DecodeDreamData(r io.Reader, now time.Time) (DreamData, error) {
	data := DefaultDreamData(now)
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return DreamData{}, fmt.Errorf("夢データの読み込みに失敗しました: %w", err)
	}
	if len(data.SearchedSymbols) > MaxSymbols {
		data.SearchedSymbols = data.SearchedSymbols[:MaxSymbols]
	}
	if err := data.Validate(); err != nil {
		return DreamData{}, err
	}
	return data, nil
}
