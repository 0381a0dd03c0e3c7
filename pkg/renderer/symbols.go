package renderer

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// symbolSlot は index 番目のシンボルの位置と揺らぎ (0-1) を返します。
func symbolSlot(seed float64, index int) (x, y, variation float64) {
	fi := float64(index)
	x = 120 + fi*140 + (rnd(seed+fi*100)-0.5)*60
	y = 60 + rnd(seed+fi*200)*40
	variation = rnd(seed + fi*300)
	return x, y, variation
}

// glyphFor はシンボル名から描画ルーチンを選びます。専用のものがなければ GlyphText です。
func glyphFor(symbol string) domain.GlyphKind {
	switch domain.GlyphKind(symbol) {
	case domain.GlyphFlying, domain.GlyphWater, domain.GlyphFalling:
		return domain.GlyphKind(symbol)
	default:
		return domain.GlyphText
	}
}

// drawSymbols は最大 domain.MaxSymbols 個のシンボルを上部に並べ、使った描画ルーチンを返します。
func drawSymbols(c *canvas.Canvas, p palette.Palette, symbols []string, seed float64) []domain.GlyphKind {
	if len(symbols) > domain.MaxSymbols {
		symbols = symbols[:domain.MaxSymbols]
	}

	dc := c.DC()
	kinds := make([]domain.GlyphKind, 0, len(symbols))
	for i, symbol := range symbols {
		x, y, v := symbolSlot(seed, i)

		glowSize := 40 + v*30
		glow := gg.NewRadialGradient(x, y, 0, x, y, glowSize)
		glow.AddColorStop(0, palette.HexAlpha(p.Primary[0], floorInt(20+v*40)))
		glow.AddColorStop(1, palette.HexAlpha(p.Primary[0], 0))
		dc.SetFillStyle(glow)
		dc.DrawRectangle(x-glowSize, y-glowSize, glowSize*2, glowSize*2)
		dc.Fill()

		kind := glyphFor(symbol)
		switch kind {
		case domain.GlyphFlying:
			drawWings(dc, p, x, y, v)
		case domain.GlyphWater:
			drawDrops(dc, p, x, y, v)
		case domain.GlyphFalling:
			drawFallingLines(dc, p, x, y, v)
		default:
			c.SetFont(true, 20+v*12)
			dc.SetColor(palette.Hex(p.Primary[0]))
			dc.DrawStringAnchored(symbol, x, y+8, 0.5, 0)
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

// drawWings は傾けた2枚の楕円の翼と胴体を描きます。
func drawWings(dc *gg.Context, p palette.Palette, x, y, v float64) {
	wing := 20 + v*15
	rotation := (v - 0.5) * 0.6

	dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Light[0], 0x80)))
	for _, w := range []struct{ dx, tilt float64 }{{-30, -0.3}, {30, 0.3}} {
		dc.Push()
		dc.RotateAbout(w.tilt+rotation, x+w.dx, y)
		dc.DrawEllipse(x+w.dx, y, wing, wing*0.6)
		dc.Pop()
	}
	dc.Fill()

	dc.SetFillStyle(gg.NewSolidPattern(palette.Hex(p.Primary[0])))
	dc.DrawRectangle(x-3, y-10, 6, 20)
	dc.Fill()
}

// drawDrops は 3-5 個の水滴を並べます。上下の揺れは壁時計ではなく揺らぎの値から決めます。
func drawDrops(dc *gg.Context, p palette.Palette, x, y, v float64) {
	count := floorInt(v*3) + 3
	dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Accent[0], 0x60)))
	for i := 0; i < count; i++ {
		fi := float64(i)
		dropX := x + (fi-float64(count)/2)*15
		dropY := y + math.Sin(v*10+fi)*15

		dc.DrawCircle(dropX, dropY+10, 6+v*4)
		dc.NewSubPath()
		dc.MoveTo(dropX, dropY)
		dc.LineTo(dropX-5, dropY+10)
		dc.LineTo(dropX+5, dropY+10)
		dc.ClosePath()
		dc.Fill()
	}
}

// drawFallingLines は 5-8 本の縦線を描きます。
func drawFallingLines(dc *gg.Context, p palette.Palette, x, y, v float64) {
	count := floorInt(v*4) + 5
	length := 30 + v*20

	dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Secondary[0], 0x80)))
	dc.SetLineWidth(2 + v*2)
	for i := 0; i < count; i++ {
		lineX := x + (float64(i)-float64(count)/2)*6
		dc.DrawLine(lineX, y-length/2, lineX, y+length/2)
		dc.Stroke()
	}
}
