package domain

import "strings"

// Mood は夢のスタイルを決める5段階の気分カテゴリです。
type Mood string

const (
	MoodVeryNegative Mood = "very-negative"
	MoodNegative     Mood = "negative"
	MoodNeutral      Mood = "neutral"
	MoodPositive     Mood = "positive"
	MoodVeryPositive Mood = "very-positive"
)

// Moods はネガティブからポジティブの順に並んだ全カテゴリです。
var Moods = []Mood{MoodVeryNegative, MoodNegative, MoodNeutral, MoodPositive, MoodVeryPositive}

// Level は very-negative を 0、very-positive を 4 とする順位を返します。
// 未知のカテゴリは neutral と同じ 2 になります。
func (m Mood) Level() int {
	for i, v := range Moods {
		if v == m {
			return i
		}
	}
	return 2
}

// Valid は既知のカテゴリかどうかを返します。
func (m Mood) Valid() bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}
	return false
}

// ParseMood は入力文字列をカテゴリに変換します。未知の値は neutral になるのだ。
func ParseMood(s string) Mood {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m
	}
	return MoodNeutral
}

// DreamType はモチーフを決める夢のタイプです。
type DreamType string

const (
	DreamTypeLucid     DreamType = "Luzide Träume"
	DreamTypeNightmare DreamType = "Albträume"
	DreamTypeFantasy   DreamType = "Fantasie Träume"
	DreamTypeEveryday  DreamType = "Alltägliche Träume"
)

// DreamTypes は既知の夢タイプの一覧です。
var DreamTypes = []DreamType{DreamTypeLucid, DreamTypeNightmare, DreamTypeFantasy, DreamTypeEveryday}

var dreamTypeAliases = map[string]DreamType{
	"lucid":     DreamTypeLucid,
	"nightmare": DreamTypeNightmare,
	"fantasy":   DreamTypeFantasy,
	"everyday":  DreamTypeEveryday,
}

// Valid は既知の夢タイプかどうかを返します。
func (t DreamType) Valid() bool {
	for _, v := range DreamTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseDreamType は正式名称か英語のエイリアス (lucid, nightmare, fantasy, everyday) を受け付けます。
// 未知の値はそのまま返し、ok=false になります。描画側で everyday にフォールバックします。
func ParseDreamType(s string) (DreamType, bool) {
	trimmed := strings.TrimSpace(s)
	if t := DreamType(trimmed); t.Valid() {
		return t, true
	}
	if t, ok := dreamTypeAliases[strings.ToLower(trimmed)]; ok {
		return t, true
	}
	return DreamType(trimmed), false
}
