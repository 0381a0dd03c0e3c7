package renderer

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawLucid は光彩を背負ったスパイラルと、その中心に重ねる図形を描きます。
func drawLucid(c *canvas.Canvas, p palette.Palette, seed float64, stats *domain.RenderStats) {
	dc := c.DC()
	count := spiralCount(seed)

	for i := 0; i < count; i++ {
		fi := float64(i)
		cx := 100 + rnd(seed+fi*10)*600
		cy := 150 + rnd(seed+fi*20)*300
		size := 60 + rnd(seed+fi*30)*40

		glowIntensity := 0.5 + rnd(seed+fi*40)*0.5
		glow := gg.NewRadialGradient(cx, cy, 0, cx, cy, size)
		glow.AddColorStop(0, palette.HexAlpha(p.Primary[0], floorInt(glowIntensity*128)))
		glow.AddColorStop(1, palette.HexAlpha(p.Primary[0], 0))
		dc.SetFillStyle(glow)
		dc.DrawRectangle(cx-size, cy-size, size*2, size*2)
		dc.Fill()

		rotation := rnd(seed+fi*50) * math.Pi * 2
		lineWidth := 2 + rnd(seed+fi*60)*3
		blur := 5 + rnd(seed+fi*70)*10
		tightness := 4 + rnd(seed+fi*80)*6

		for k := 0; ; k++ {
			angle := float64(k) * 0.1
			if angle >= spiralTurns {
				break
			}
			radius := angle * tightness
			x := cx + math.Cos(angle+rotation)*radius
			y := cy + math.Sin(angle+rotation)*radius
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		// 影のぼかしの代わりに太い半透明の線を下に敷く
		dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Primary[0], 0x30)))
		dc.SetLineWidth(lineWidth + blur)
		dc.StrokePreserve()
		dc.SetStrokeStyle(gg.NewSolidPattern(palette.Hex(p.Primary[i%len(p.Primary)])))
		dc.SetLineWidth(lineWidth)
		dc.Stroke()

		dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Accent[0], 0x60)))
		switch floorInt(rnd(seed+fi*90) * 3) {
		case 0:
			side := 20 + rnd(seed+fi*100)*30
			dc.DrawRectangle(cx-side/2, cy-side/2, side, side)
		case 1:
			dc.DrawCircle(cx, cy, 15+rnd(seed+fi*110)*25)
		default:
			tri := 25 + rnd(seed+fi*120)*20
			dc.MoveTo(cx, cy-tri)
			dc.LineTo(cx-tri, cy+tri)
			dc.LineTo(cx+tri, cy+tri)
			dc.ClosePath()
		}
		dc.Fill()

		stats.Spirals++
		stats.SpiralRotations = append(stats.SpiralRotations, rotation)
	}
}
