package renderer

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawEveryday は揺らぎのあるグリッドに半透明の正方形を置き、正弦波の線を流します。
func drawEveryday(c *canvas.Canvas, p palette.Palette, seed float64, stats *domain.RenderStats) {
	dc := c.DC()
	grid := 60 + rnd(seed)*40

	for x := 0.0; x < Width; x += grid {
		for y := 0.0; y < Height; y += grid {
			if rnd(seed+x+y) <= 0.6 {
				continue
			}
			size := 20 + rnd(seed+x+y+100)*30
			offsetX := rnd(seed+x+y+200) * 20
			offsetY := rnd(seed+x+y+300) * 20

			dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Primary[0], 0x20)))
			dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Secondary[0], 0x60)))
			dc.SetLineWidth(1)
			dc.DrawRectangle(x+20+offsetX, y+20+offsetY, size, size)
			dc.FillPreserve()
			dc.Stroke()
			stats.GridCells++
		}
	}

	lines := flowLineCount(seed)
	dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Accent[0], 0x40)))
	dc.SetLineWidth(2 + rnd(seed+3000)*3)

	for i := 0; i < lines; i++ {
		fi := float64(i)
		startY := 80 + fi*120 + rnd(seed+4000+fi)*60
		amplitude := 20 + rnd(seed+5000+fi)*40
		frequency := 0.005 + rnd(seed+6000+fi)*0.01

		dc.MoveTo(0, startY)
		for x := 0.0; x < Width; x += 20 {
			dc.LineTo(x, startY+math.Sin(x*frequency+fi)*amplitude)
		}
		dc.Stroke()
		stats.FlowLines++
	}
}
