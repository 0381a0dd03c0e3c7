package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/generator"
)

// VariantAdapter は同じ夢データからシード違いの画像を複数まとめて作るアダプターです。
// 1枚目はリクエストのシード、2枚目以降は Regenerate で新しいシードを使います。
type VariantAdapter struct {
	gen generator.ImageGenerator
}

// NewVariantAdapter は、依存関係を注入してアダプターのインスタンスを作成する。
func NewVariantAdapter(gen generator.ImageGenerator) (*VariantAdapter, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	return &VariantAdapter{gen: gen}, nil
}

// GenerateVariants は count 枚の画像を順に生成します。
// 2枚目以降の失敗は警告ログを残して続行し、1枚も得られなければエラーを返します。
func (a *VariantAdapter) GenerateVariants(ctx context.Context, req domain.RenderRequest, count int) ([]*domain.ImageResponse, error) {
	if count < 1 {
		count = 1
	}
	slog.InfoContext(ctx, "バリエーション生成を開始します", "count", count, "request", req.String())

	first, err := a.gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("夢画像の生成に失敗しました: %w", err)
	}
	out := []*domain.ImageResponse{first}

	for i := 1; i < count; i++ {
		resp, err := a.gen.Regenerate(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			slog.WarnContext(ctx, "バリエーションの生成に失敗しました", "index", i, "error", err)
			continue
		}
		out = append(out, resp)
	}

	slog.InfoContext(ctx, "バリエーション生成が完了しました", "generated", len(out))
	return out, nil
}
