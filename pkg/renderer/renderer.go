// Package renderer は夢データからシード付きの装飾画像を手続き的に描画します。
//
// 描画はリクエストの純粋関数で、同じリクエストと同じサイズのキャンバスからは
// 同じピクセルが得られます。乱数は utils.SeededRandom にオフセット付きのシードを
// 渡して取り出すため、状態を持つカウンタはありません。
package renderer

import (
	"math"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
	"github.com/shouni/dream-image-kit/pkg/utils"
)

const (
	// Width と Height は描画に使う論理座標の大きさです。
	Width  = 800
	Height = 600
)

// rnd は SeededRandom の短縮形なのだ。
func rnd(seed float64) float64 {
	return utils.SeededRandom(seed)
}

// floorInt は floor(v) を int で返します。
func floorInt(v float64) int {
	return int(math.Floor(v))
}

// Renderer は合成パイプラインを実行します。状態は持ちません。
type Renderer struct{}

// New は Renderer を返します。
func New() *Renderer {
	return &Renderer{}
}

// Render はキャンバスを消去してから固定の順序で全ステージを描画します。
//
//	背景グラデーション → ノイズ (overlay) → 星空 → 夢タイプ別モチーフ → シンボル → メタデータ
//
// キャンバスが nil または大きさ 0 の場合は何もせずゼロ値の統計を返します。
// NaN や ±Inf のシードは 0 として描画します。
func (r *Renderer) Render(c *canvas.Canvas, req domain.RenderRequest) domain.RenderStats {
	var stats domain.RenderStats
	if c == nil || c.Width() == 0 || c.Height() == 0 {
		return stats
	}

	c.Clear()
	p := palette.ForMood(req.Mood)
	seed := utils.SanitizeSeed(req.Seed)

	drawBackground(c, p, seed)
	stats.Specks = drawTexture(c, seed)
	stats.Stars = drawStars(c, req.ClampedSleepQuality(), seed)
	drawMotif(c, p, req.DreamType, seed, &stats)
	stats.Glyphs = drawSymbols(c, p, req.VisibleSymbols(), seed)
	drawMetadata(c, req)

	return stats
}
