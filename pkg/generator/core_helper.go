package generator

import (
	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/imgutil"
)

// lookup はキャッシュから生成結果を探します。型が合わないエントリは無視します。
func (g *DreamImageGenerator) lookup(key string) (*domain.ImageResponse, bool) {
	if g.cache == nil {
		return nil, false
	}
	val, ok := g.cache.Get(key)
	if !ok {
		return nil, false
	}
	resp, ok := val.(*domain.ImageResponse)
	return resp, ok && resp != nil
}

// render は新しいキャンバスに描画して PNG にエンコードします。
func (g *DreamImageGenerator) render(req domain.RenderRequest) (*domain.ImageResponse, error) {
	c := canvas.New(CanvasWidth, CanvasHeight)
	defer c.Close()

	stats := g.renderer.Render(c, req)
	data, err := imgutil.EncodePNG(c.Image())
	if err != nil {
		return nil, err
	}

	return &domain.ImageResponse{
		ID:        g.newID(),
		Data:      data,
		MimeType:  imgutil.MimeTypePNG,
		Width:     CanvasWidth,
		Height:    CanvasHeight,
		UsedSeed:  req.Seed,
		Stats:     stats,
		CreatedAt: g.now(),
	}, nil
}
