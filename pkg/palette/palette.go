// Package palette は気分カテゴリごとの配色を提供します。
package palette

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

// Palette は4系統 × 3色のカラーランプです。色は "#rrggbb" 形式で保持します。
type Palette struct {
	Primary   [3]string
	Secondary [3]string
	Accent    [3]string
	Light     [3]string
}

// palettes は domain.Moods と同じ順 (Mood.Level) に並びます。
var palettes = [...]Palette{
	// very-negative
	{
		Primary:   [3]string{"#ef4444", "#dc2626", "#b91c1c"},
		Secondary: [3]string{"#7f1d1d", "#991b1b", "#b91c1c"},
		Accent:    [3]string{"#374151", "#4b5563", "#6b7280"},
		Light:     [3]string{"#fee2e2", "#fecaca", "#fca5a5"},
	},
	// negative
	{
		Primary:   [3]string{"#f59e0b", "#d97706", "#b45309"},
		Secondary: [3]string{"#ef4444", "#dc2626", "#b91c1c"},
		Accent:    [3]string{"#8b5cf6", "#7c3aed", "#6d28d9"},
		Light:     [3]string{"#fef3c7", "#fde68a", "#fcd34d"},
	},
	// neutral
	{
		Primary:   [3]string{"#3b82f6", "#2563eb", "#1d4ed8"},
		Secondary: [3]string{"#6366f1", "#4f46e5", "#4338ca"},
		Accent:    [3]string{"#06b6d4", "#0891b2", "#0e7490"},
		Light:     [3]string{"#dbeafe", "#bfdbfe", "#93c5fd"},
	},
	// positive
	{
		Primary:   [3]string{"#10b981", "#059669", "#047857"},
		Secondary: [3]string{"#3b82f6", "#2563eb", "#1d4ed8"},
		Accent:    [3]string{"#8b5cf6", "#7c3aed", "#6d28d9"},
		Light:     [3]string{"#ddd6fe", "#c4b5fd", "#a78bfa"},
	},
	// very-positive
	{
		Primary:   [3]string{"#22c55e", "#10b981", "#059669"},
		Secondary: [3]string{"#fbbf24", "#f59e0b", "#d97706"},
		Accent:    [3]string{"#06b6d4", "#0891b2", "#0e7490"},
		Light:     [3]string{"#ecfdf5", "#d1fae5", "#a7f3d0"},
	},
}

// ForMood は気分カテゴリに対応するパレットを返します。
// 未知のカテゴリは neutral にフォールバックします。
func ForMood(m domain.Mood) Palette {
	return palettes[m.Level()]
}

// OrbColors は Primary, Secondary, Accent を連結した9色を返します。
func (p Palette) OrbColors() []string {
	out := make([]string, 0, 9)
	out = append(out, p.Primary[:]...)
	out = append(out, p.Secondary[:]...)
	out = append(out, p.Accent[:]...)
	return out
}

// Hex は "#rrggbb" を不透明な色に変換します。
func Hex(s string) color.NRGBA {
	return HexAlpha(s, 0xff)
}

// HexAlpha は "#rrggbb" に 0-255 のアルファを付けた色を返します。
// 解釈できない文字列は黒になります。
func HexAlpha(s string, alpha int) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.NRGBA{A: clampByte(alpha)}
	if len(s) != 6 {
		return c
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}

// White は指定アルファ (0-1) の白を返します。
func White(alpha float64) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: clampByte(int(alpha*255 + 0.5))}
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return uint8(v)
	}
}
