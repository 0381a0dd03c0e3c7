package canvas

import (
	"image"
	"math"
)

// BlendMode は描画済みピクセルとの合成方法です。
type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	BlendMultiply
	BlendOverlay
)

func (m BlendMode) String() string {
	switch m {
	case BlendMultiply:
		return "multiply"
	case BlendOverlay:
		return "overlay"
	default:
		return "source-over"
	}
}

// Blend は非乗算済みのチャンネル値 (0-1) に対するブレンド関数 B(cb, cs) です。
func Blend(mode BlendMode, cb, cs float64) float64 {
	switch mode {
	case BlendMultiply:
		return cb * cs
	case BlendOverlay:
		// overlay(cb, cs) = hard-light(cs, cb)
		if cb <= 0.5 {
			return cs * 2 * cb
		}
		s := 2*cb - 1
		return cs + s - cs*s
	default:
		return cs
	}
}

// composite は src レイヤーを mode で dst に合成します。どちらも乗算済み RGBA で、同じサイズが前提です。
func composite(dst, src *image.RGBA, mode BlendMode) {
	b := dst.Bounds().Intersect(src.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, si, di = x+1, si+4, di+4 {
			sa := src.Pix[si+3]
			if sa == 0 {
				continue
			}
			blendPixel(dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4], mode)
		}
	}
}

func blendPixel(d, s []uint8, mode BlendMode) {
	as := float64(s[3]) / 255
	ab := float64(d[3]) / 255
	ao := as + ab*(1-as)
	for c := 0; c < 3; c++ {
		cs := float64(s[c]) / 255 / as
		var cb float64
		if ab > 0 {
			cb = float64(d[c]) / 255 / ab
		}
		mixed := (1-ab)*cs + ab*Blend(mode, cb, cs)
		d[c] = toByte(as*mixed + (1-as)*ab*cb)
	}
	d[3] = toByte(ao)
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
