package generator

import (
	"context"
	"time"

	"github.com/shouni/dream-image-kit/pkg/renderer"
)

const (
	CanvasWidth  = renderer.Width
	CanvasHeight = renderer.Height

	// DefaultMinDuration は生成中表示を見せるための最低所要時間です。
	DefaultMinDuration = 2 * time.Second
	// DefaultCacheTTL は WithCache に 0 を渡したときの有効期限です。
	DefaultCacheTTL = 10 * time.Minute

	cacheKeyRender = "render:"
)

// WaitFunc は ctx が終わるか d が経過するまで待ちます。
type WaitFunc func(ctx context.Context, d time.Duration) error

// Option は DreamImageGenerator の設定を変更します。
type Option func(*DreamImageGenerator)

// WithCache は生成結果のキャッシュを設定します。nil ならキャッシュしません。
func WithCache(cache ImageCacher, ttl time.Duration) Option {
	return func(g *DreamImageGenerator) {
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		g.cache = cache
		g.expiration = ttl
	}
}

// WithMinDuration は最低所要時間を変更します。0 以下で待機しません。
func WithMinDuration(d time.Duration) Option {
	return func(g *DreamImageGenerator) {
		if d < 0 {
			d = 0
		}
		g.minDuration = d
	}
}

// WithClock は現在時刻の取得元を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(g *DreamImageGenerator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithSeedSource は Regenerate が使うシードの払い出し元を差し替えます。
func WithSeedSource(newSeed func() float64) Option {
	return func(g *DreamImageGenerator) {
		if newSeed != nil {
			g.newSeed = newSeed
		}
	}
}

// WithWait は最低所要時間の待ち方を差し替えます。
func WithWait(wait WaitFunc) Option {
	return func(g *DreamImageGenerator) {
		if wait != nil {
			g.wait = wait
		}
	}
}

// WithIDFunc は生成 ID の払い出し元を差し替えます。
func WithIDFunc(newID func() string) Option {
	return func(g *DreamImageGenerator) {
		if newID != nil {
			g.newID = newID
		}
	}
}
