package renderer

import (
	"math"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawMotif は夢タイプに応じたモチーフを描きます。未知のタイプは everyday になります。
func drawMotif(c *canvas.Canvas, p palette.Palette, t domain.DreamType, seed float64, stats *domain.RenderStats) {
	c.Save()
	defer c.Restore()

	switch t {
	case domain.DreamTypeLucid:
		stats.Motif = domain.DreamTypeLucid
		drawLucid(c, p, seed, stats)
	case domain.DreamTypeNightmare:
		stats.Motif = domain.DreamTypeNightmare
		drawNightmare(c, p, seed, stats)
	case domain.DreamTypeFantasy:
		stats.Motif = domain.DreamTypeFantasy
		drawFantasy(c, p, seed, stats)
	default:
		stats.Motif = domain.DreamTypeEveryday
		drawEveryday(c, p, seed, stats)
	}
}

// spiralCount は 3-7 本です。
func spiralCount(seed float64) int {
	return floorInt(rnd(seed)*5) + 3
}

// nightmareShapeCount は 5-12 個です。
func nightmareShapeCount(seed float64) int {
	return floorInt(rnd(seed)*8) + 5
}

// nightmareVertexCount は i 番目の図形の頂点数で 6-11 です。
func nightmareVertexCount(seed float64, i int) int {
	return 6 + floorInt(rnd(seed+float64(i)*40)*6)
}

// orbCount は 10-20 個です。
func orbCount(seed float64) int {
	return floorInt(rnd(seed)*11) + 10
}

// crystalCount は 3-8 個です。
func crystalCount(seed float64) int {
	return floorInt(rnd(seed+1000)*6) + 3
}

// flowLineCount は 3-6 本です。
func flowLineCount(seed float64) int {
	return floorInt(rnd(seed+2000)*4) + 3
}

const spiralTurns = math.Pi * 6
