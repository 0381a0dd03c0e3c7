package generator

import (
	"context"
	"time"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
)

// ImageGenerator はビジネスロジック層が利用する統合窓口です。
type ImageGenerator interface {
	// Generate はリクエストのシードのまま画像を生成します。
	Generate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error)
	// Regenerate は新しいシードで画像を生成し直します。
	Regenerate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error)
}

// ImageRenderer はキャンバスに夢の画像を描画します。renderer.Renderer が実装です。
type ImageRenderer interface {
	Render(c *canvas.Canvas, req domain.RenderRequest) domain.RenderStats
}

// ImageCacher は、画像をキャッシュするためのインターフェースです。
// github.com/patrickmn/go-cache の *cache.Cache がそのまま満たします。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
