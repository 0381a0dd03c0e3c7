package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	t.Run("multiply は積になる", func(t *testing.T) {
		assert.InDelta(t, 0.25, Blend(BlendMultiply, 0.5, 0.5), 1e-9)
		assert.InDelta(t, 0.3, Blend(BlendMultiply, 1, 0.3), 1e-9)
		assert.InDelta(t, 0.0, Blend(BlendMultiply, 0, 0.8), 1e-9)
	})

	t.Run("overlay は背景の明暗で multiply と screen を切り替える", func(t *testing.T) {
		assert.InDelta(t, 0.2, Blend(BlendOverlay, 0.25, 0.4), 1e-9)
		// cb=0.75: screen(cs, 0.5) = 0.4 + 0.5 - 0.2
		assert.InDelta(t, 0.7, Blend(BlendOverlay, 0.75, 0.4), 1e-9)
		assert.InDelta(t, 1.0, Blend(BlendOverlay, 1, 1), 1e-9)
	})

	t.Run("source-over はソースをそのまま返す", func(t *testing.T) {
		assert.Equal(t, 0.6, Blend(BlendSourceOver, 0.1, 0.6))
	})
}

func TestComposite(t *testing.T) {
	newFilled := func(c color.RGBA) *image.RGBA {
		im := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for i := 0; i < len(im.Pix); i += 4 {
			im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3] = c.R, c.G, c.B, c.A
		}
		return im
	}

	t.Run("不透明な白への multiply はソース色になるのだ", func(t *testing.T) {
		dst := newFilled(color.RGBA{255, 255, 255, 255})
		src := newFilled(color.RGBA{200, 100, 50, 255})

		composite(dst, src, BlendMultiply)

		assert.Equal(t, color.RGBA{200, 100, 50, 255}, dst.RGBAAt(0, 0))
	})

	t.Run("不透明な黒への multiply は黒のまま", func(t *testing.T) {
		dst := newFilled(color.RGBA{0, 0, 0, 255})
		src := newFilled(color.RGBA{200, 100, 50, 255})

		composite(dst, src, BlendMultiply)

		assert.Equal(t, color.RGBA{0, 0, 0, 255}, dst.RGBAAt(1, 1))
	})

	t.Run("透明な背景では source-over と同じ結果になる", func(t *testing.T) {
		dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
		src := newFilled(color.RGBA{64, 32, 16, 128})

		composite(dst, src, BlendOverlay)

		assert.Equal(t, color.RGBA{64, 32, 16, 128}, dst.RGBAAt(0, 1))
	})

	t.Run("ソースが透明なピクセルは変更しない", func(t *testing.T) {
		dst := newFilled(color.RGBA{10, 20, 30, 255})
		src := image.NewRGBA(image.Rect(0, 0, 2, 2))

		composite(dst, src, BlendMultiply)

		assert.Equal(t, color.RGBA{10, 20, 30, 255}, dst.RGBAAt(0, 0))
	})
}
