package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxSymbols は描画されるシンボルの上限です。
	MaxSymbols = 5
	// DefaultDisplayName はユーザー名が未設定のときの表示名です。
	DefaultDisplayName = "NAME"
)

// RenderRequest は1回の描画を完全に決定する入力です。
// 描画はこの値の純粋関数であり、同じ値からは同じピクセルが得られます。
type RenderRequest struct {
	Mood           Mood
	DreamType      DreamType
	SleepQuality   int // 0-100
	Symbols        []string
	Seed           float64
	DisplayName    string
	TimestampLabel string
}

// ClampedSleepQuality は 0-100 に丸めた睡眠の質を返します。
func (r RenderRequest) ClampedSleepQuality() int {
	switch {
	case r.SleepQuality < 0:
		return 0
	case r.SleepQuality > 100:
		return 100
	default:
		return r.SleepQuality
	}
}

// VisibleSymbols は描画対象となる先頭 MaxSymbols 件のシンボルを返します。
func (r RenderRequest) VisibleSymbols() []string {
	if len(r.Symbols) <= MaxSymbols {
		return r.Symbols
	}
	return r.Symbols[:MaxSymbols]
}

// WithSeed はシードだけを差し替えたコピーを返します。
func (r RenderRequest) WithSeed(seed float64) RenderRequest {
	out := r
	out.Symbols = append([]string(nil), r.Symbols...)
	out.Seed = seed
	return out
}

// CacheKey は描画結果を一意に識別するキーです。
func (r RenderRequest) CacheKey() string {
	raw := strings.Join([]string{
		string(r.Mood),
		string(r.DreamType),
		strconv.Itoa(r.SleepQuality),
		strings.Join(r.VisibleSymbols(), "\x1f"),
		strconv.FormatFloat(r.Seed, 'g', -1, 64),
		r.DisplayName,
		r.TimestampLabel,
	}, "\x1e")
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (r RenderRequest) String() string {
	return fmt.Sprintf("%s/%s/%d%%/seed=%g", r.Mood, r.DreamType, r.SleepQuality, r.Seed)
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	ID        string
	Data      []byte
	MimeType  string
	Width     int
	Height    int
	UsedSeed  float64
	Stats     RenderStats
	CreatedAt time.Time
}
