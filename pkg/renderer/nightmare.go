package renderer

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawNightmare は multiply で影のようなギザギザの多角形とひび割れを重ねます。
func drawNightmare(c *canvas.Canvas, p palette.Palette, seed float64, stats *domain.RenderStats) {
	c.SetBlendMode(canvas.BlendMultiply)
	defer c.SetBlendMode(canvas.BlendSourceOver)

	dc := c.DC()
	count := nightmareShapeCount(seed)

	for i := 0; i < count; i++ {
		fi := float64(i)
		x := rnd(seed+fi*10) * Width
		y := 200 + rnd(seed+fi*20)*400

		dc.SetFillStyle(gg.NewSolidPattern(palette.HexAlpha(p.Primary[2], floorInt(30+rnd(seed+fi*30)*40))))
		dc.MoveTo(x, y)
		vertices := nightmareVertexCount(seed, i)
		for j := 0; j < vertices; j++ {
			fj := float64(j)
			angle := fj / float64(vertices) * math.Pi * 2
			radius := 20 + rnd(seed+fi*50+fj)*60
			jitter := (rnd(seed+fi*60+fj) - 0.5) * 40
			dc.LineTo(x+math.Cos(angle)*radius+jitter, y+math.Sin(angle)*radius+jitter)
		}
		dc.ClosePath()
		dc.Fill()

		cracks := floorInt(rnd(seed+fi*70)*4) + 1
		for k := 0; k < cracks; k++ {
			fk := float64(k)
			dc.SetStrokeStyle(gg.NewSolidPattern(palette.HexAlpha(p.Secondary[0], floorInt(60+rnd(seed+fi*80+fk)*80))))
			dc.SetLineWidth(1 + rnd(seed+fi*90+fk)*4)
			endX := x + (rnd(seed+fi*100+fk)-0.5)*300
			endY := y + (rnd(seed+fi*110+fk)-0.5)*300
			dc.DrawLine(x, y, endX, endY)
			dc.Stroke()
		}

		stats.Shapes = append(stats.Shapes, vertices)
		stats.Cracks += cracks
	}
}
