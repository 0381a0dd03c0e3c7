// Package canvas は 2D 描画面を提供します。
//
// パスやグラデーションの描画は fogleman/gg に任せ、gg が持たない
// multiply / overlay のブレンドモードをレイヤー合成で補います。
// ブレンドモードは状態として保持され、切り替えた順に合成されます。
package canvas

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// Canvas はブレンドモード付きの描画面です。
type Canvas struct {
	base  *image.RGBA
	dc    *gg.Context
	layer *gg.Context
	mode  BlendMode
	saved []BlendMode
	fonts *fontCache
}

// New は width×height の透明なキャンバスを作成します。
// サイズが 0 以下の場合は nil を返し、描画側はそれを何もしない合図として扱います。
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	base := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		base:  base,
		dc:    gg.NewContextForRGBA(base),
		fonts: newFontCache(),
	}
}

// Width はキャンバスの幅です。nil でも安全に呼べます。
func (c *Canvas) Width() int {
	if c == nil {
		return 0
	}
	return c.base.Bounds().Dx()
}

// Height はキャンバスの高さです。
func (c *Canvas) Height() int {
	if c == nil {
		return 0
	}
	return c.base.Bounds().Dy()
}

// Clear は全面を透明にし、ブレンドモードを source-over に戻します。
func (c *Canvas) Clear() {
	draw.Draw(c.base, c.base.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.dc = gg.NewContextForRGBA(c.base)
	c.layer = nil
	c.mode = BlendSourceOver
	c.saved = c.saved[:0]
}

// DC は現在のブレンドモードで描画すべきコンテキストを返します。
// ブレンドモードを切り替えると別のコンテキストになるため、線幅や色は切り替え後に設定し直します。
func (c *Canvas) DC() *gg.Context {
	if c.layer != nil {
		return c.layer
	}
	return c.dc
}

// BlendMode は現在のブレンドモードを返します。
func (c *Canvas) BlendMode() BlendMode {
	return c.mode
}

// SetBlendMode は以降の描画の合成方法を切り替えます。
// 保留中のレイヤーは切り替え前のモードで先に合成されます。
func (c *Canvas) SetBlendMode(mode BlendMode) {
	if mode == c.mode {
		return
	}
	c.flush()
	c.mode = mode
	if mode != BlendSourceOver {
		c.layer = gg.NewContext(c.Width(), c.Height())
	}
}

// Save は現在のブレンドモードを退避します。
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.mode)
}

// Restore は Save で退避したブレンドモードに戻します。
func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	mode := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.SetBlendMode(mode)
}

// SetFont は現在のコンテキストにフォントを設定します。
func (c *Canvas) SetFont(bold bool, size float64) {
	c.DC().SetFontFace(c.fonts.face(bold, size))
}

// Image は保留中のレイヤーを合成したうえで描画結果を返します。
// 返される画像はキャンバスと独立したコピーです。
func (c *Canvas) Image() *image.RGBA {
	c.flush()
	if c.mode != BlendSourceOver {
		c.layer = gg.NewContext(c.Width(), c.Height())
	}
	out := image.NewRGBA(c.base.Bounds())
	copy(out.Pix, c.base.Pix)
	return out
}

// Close はフォントフェイスを解放します。
func (c *Canvas) Close() {
	if c == nil {
		return
	}
	c.fonts.close()
}

func (c *Canvas) flush() {
	if c.layer == nil {
		return
	}
	if src, ok := c.layer.Image().(*image.RGBA); ok {
		composite(c.base, src, c.mode)
	}
	c.layer = nil
}
