package renderer

import (
	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawFantasy は放射グラデーションのオーブを散らし、ときどき以前のオーブと細い線で結びます。
// 最後に結晶の多角形を下半分に並べます。
func drawFantasy(c *canvas.Canvas, p palette.Palette, seed float64, stats *domain.RenderStats) {
	dc := c.DC()
	colors := p.OrbColors()
	count := orbCount(seed)

	for i := 0; i < count; i++ {
		fi := float64(i)
		x := rnd(seed+fi*10) * Width
		y := rnd(seed+fi*20) * Height
		size := 15 + rnd(seed+fi*30)*80

		col := colors[floorInt(rnd(seed+fi*40)*float64(len(colors)))]
		orb := gg.NewRadialGradient(x, y, 0, x, y, size)
		orb.AddColorStop(0, palette.HexAlpha(col, 0x80))
		orb.AddColorStop(0.7, palette.HexAlpha(col, 0x40))
		orb.AddColorStop(1, palette.HexAlpha(col, 0x00))
		dc.SetFillStyle(orb)
		dc.DrawCircle(x, y, size)
		dc.Fill()
		stats.Orbs++
		stats.OrbColors = append(stats.OrbColors, col)

		if i > 0 && rnd(seed+fi*50) > 0.6 {
			prev := float64(floorInt(rnd(seed+fi*60) * fi))
			prevX := rnd(seed+prev*10) * Width
			prevY := rnd(seed+prev*20) * Height

			dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Accent[0], 0x30)))
			dc.SetLineWidth(1 + rnd(seed+fi*70)*2)
			dc.DrawLine(x, y, prevX, prevY)
			dc.Stroke()
			stats.Links++
		}
	}

	crystals := crystalCount(seed)
	for i := 0; i < crystals; i++ {
		fi := float64(i)
		x := 50 + rnd(seed+1100+fi*10)*700
		y := 300 + rnd(seed+1200+fi*20)*200
		height := 30 + rnd(seed+1300+fi*30)*40
		width := 15 + rnd(seed+1400+fi*40)*25

		dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Light[0], 0x60)))
		dc.SetStrokeStyle(gg.NewSolidPattern(palette.Hex(p.Primary[i%len(p.Primary)])))
		dc.SetLineWidth(2)

		dc.MoveTo(x, y-height)
		dc.LineTo(x-width, y)
		dc.LineTo(x-width/2, y+height/2)
		dc.LineTo(x+width/2, y+height/2)
		dc.LineTo(x+width, y)
		dc.ClosePath()
		dc.FillPreserve()
		dc.Stroke()
		stats.Crystals++
	}
}
