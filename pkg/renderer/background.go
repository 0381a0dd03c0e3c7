package renderer

import (
	"github.com/fogleman/gg"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawBackground はシードで傾きを変えた4色の線形グラデーションで全面を塗ります。
func drawBackground(c *canvas.Canvas, p palette.Palette, seed float64) {
	v := rnd(seed)
	g := gg.NewLinearGradient(v*200, v*200, Width-v*200, Height-v*200)
	g.AddColorStop(0, palette.Hex(p.Primary[0]))
	g.AddColorStop(0.3+v*0.2, palette.Hex(p.Secondary[0]))
	g.AddColorStop(0.7-v*0.2, palette.Hex(p.Accent[0]))
	g.AddColorStop(1, palette.Hex(p.Primary[2]))

	dc := c.DC()
	dc.SetFillStyle(g)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()
}

// textureCount は 800-1199 の範囲のノイズ粒の数です。
func textureCount(seed float64) int {
	return 800 + floorInt(rnd(seed+1000)*400)
}

// drawTexture は overlay ブレンドで白い粒を散らし、描いた粒の数を返します。
func drawTexture(c *canvas.Canvas, seed float64) int {
	count := textureCount(seed)

	c.SetBlendMode(canvas.BlendOverlay)
	drawSpecks(c.DC(), seed, count)
	c.SetBlendMode(canvas.BlendSourceOver)

	return count
}

// drawSpecks は現在のコンテキストにそのまま粒を描きます。合成方法は呼び出し側が決めます。
func drawSpecks(dc *gg.Context, seed float64, count int) {
	for i := 0; i < count; i++ {
		fi := float64(i)
		dc.SetColor(palette.White(rnd(seed+fi) * 0.15))
		dc.DrawRectangle(
			rnd(seed+fi+1000)*Width,
			rnd(seed+fi+2000)*Height,
			1+rnd(seed+fi+3000)*2,
			1+rnd(seed+fi+4000)*2,
		)
		dc.Fill()
	}
}

// StarCount は睡眠の質 (0-100) とシードから星の数を求めます。
//
//	floor(sleepQuality/100 * 60) + floor(SeededRandom(seed+5000) * 40)
func StarCount(sleepQuality int, seed float64) int {
	return floorInt(float64(sleepQuality)/100*60) + floorInt(rnd(seed+5000)*40)
}

// drawStars は上部 300 単位の帯に光彩付きの星を描きます。明るさは睡眠の質に比例します。
func drawStars(c *canvas.Canvas, sleepQuality int, seed float64) int {
	count := StarCount(sleepQuality, seed)
	quality := float64(sleepQuality) / 100

	dc := c.DC()
	for i := 0; i < count; i++ {
		fi := float64(i)
		x := rnd(seed+fi+6000) * Width
		y := rnd(seed+fi+7000) * 300
		size := rnd(seed+fi+8000)*5 + 1
		brightness := quality * (0.5 + rnd(seed+fi+9000)*0.5)

		glow := gg.NewRadialGradient(x, y, 0, x, y, size*3)
		glow.AddColorStop(0, palette.White(brightness))
		glow.AddColorStop(1, palette.White(0))
		dc.SetFillStyle(glow)
		dc.DrawCircle(x, y, size*3)
		dc.Fill()

		dc.SetColor(palette.White(brightness * 0.8))
		dc.DrawCircle(x, y, size)
		dc.Fill()
	}
	return count
}
