package adapters

import (
	"context"
	"errors"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

// mockGenerator は generator.ImageGenerator のテスト用モックなのだ。
type mockGenerator struct {
	nextSeed     float64
	failAt       map[int]bool
	regenerated  int
	generateErr  error
	regenerateFn func(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &domain.ImageResponse{ID: "first", Data: []byte("png"), UsedSeed: req.Seed}, nil
}

func (m *mockGenerator) Regenerate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	if m.regenerateFn != nil {
		return m.regenerateFn(ctx, req)
	}
	m.regenerated++
	if m.failAt[m.regenerated] {
		return nil, errors.New("render failed")
	}
	m.nextSeed += 0.1
	return &domain.ImageResponse{Data: []byte("png"), UsedSeed: m.nextSeed}, nil
}
