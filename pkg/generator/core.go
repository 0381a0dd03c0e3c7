package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/utils"
)

// DreamImageGenerator は描画・エンコード・キャッシュ・最低所要時間の待機をまとめる生成サービスです。
type DreamImageGenerator struct {
	renderer    ImageRenderer
	cache       ImageCacher
	expiration  time.Duration
	minDuration time.Duration
	now         func() time.Time
	newSeed     func() float64
	newID       func() string
	wait        WaitFunc
}

// NewDreamImageGenerator は依存関係を注入して DreamImageGenerator を初期化します。
func NewDreamImageGenerator(renderer ImageRenderer, opts ...Option) (*DreamImageGenerator, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	// cache は nil を許容（キャッシュなし動作）
	g := &DreamImageGenerator{
		renderer:    renderer,
		expiration:  DefaultCacheTTL,
		minDuration: DefaultMinDuration,
		now:         time.Now,
		newSeed:     utils.NewSeed,
		newID:       uuid.NewString,
		wait:        sleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate はリクエストを描画して PNG を返します。
// 同じリクエストの結果はキャッシュから返しますが、最低所要時間の待機は毎回行います。
// NaN や ±Inf のシードは 0 に置き換えてから描画し、UsedSeed にもその値を返します。
func (g *DreamImageGenerator) Generate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	start := g.now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req = req.WithSeed(utils.SanitizeSeed(req.Seed))

	key := cacheKeyRender + req.CacheKey()
	resp, hit := g.lookup(key)
	if !hit {
		var err error
		resp, err = g.render(req)
		if err != nil {
			return nil, fmt.Errorf("夢画像の生成に失敗しました: %w", err)
		}
		if g.cache != nil {
			g.cache.Set(key, resp, g.expiration)
		}
	}

	if err := g.waitRemaining(ctx, start); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "夢画像を生成しました",
		"id", resp.ID,
		"request", req.String(),
		"cache_hit", hit,
		"bytes", len(resp.Data),
		"elapsed", g.now().Sub(start),
	)
	return resp, nil
}

// Regenerate は新しいシードに差し替えて Generate を呼び直します。
func (g *DreamImageGenerator) Regenerate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	seed := g.newSeed()
	slog.DebugContext(ctx, "新しいシードで再生成します", "previous_seed", req.Seed, "seed", seed)
	return g.Generate(ctx, req.WithSeed(seed))
}

// waitRemaining は開始から minDuration に満たない分だけ待ちます。
func (g *DreamImageGenerator) waitRemaining(ctx context.Context, start time.Time) error {
	if g.minDuration <= 0 {
		return nil
	}
	remaining := g.minDuration - g.now().Sub(start)
	if remaining <= 0 {
		return nil
	}
	return g.wait(ctx, remaining)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
