package generator

import (
	"context"
	"sync"
	"time"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
)

// --- Mocks ---

type mockRenderer struct {
	mu       sync.Mutex
	calls    int
	lastSeed float64
}

func (m *mockRenderer) Render(c *canvas.Canvas, req domain.RenderRequest) domain.RenderStats {
	m.mu.Lock()
	m.calls++
	m.lastSeed = req.Seed
	m.mu.Unlock()

	dc := c.DC()
	dc.SetRGB(0.2, 0.4, 0.6)
	dc.DrawRectangle(0, 0, 10, 10)
	dc.Fill()
	return domain.RenderStats{Stars: 7, Motif: req.DreamType}
}

func (m *mockRenderer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCache struct {
	mu   sync.Mutex
	data map[string]any
	ttl  time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]any)}
}

func (m *mockCache) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttl = d
}

// recordingWait は待機時間を記録するだけで実際には待ちません。
type recordingWait struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (w *recordingWait) Wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.waits = append(w.waits, d)
	w.mu.Unlock()
	return ctx.Err()
}

// fakeClock は呼ばれるたびに step だけ進む時計です。
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// controlledGenerator は release を閉じるまで Generate を止めておけるジェネレーターです。
type controlledGenerator struct {
	mu      sync.Mutex
	release map[float64]chan struct{}
	started chan float64
	nextID  int
}

func newControlledGenerator() *controlledGenerator {
	return &controlledGenerator{release: make(map[float64]chan struct{}), started: make(chan float64, 8)}
}

func (g *controlledGenerator) gate(seed float64) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.release[seed]
	if !ok {
		ch = make(chan struct{})
		g.release[seed] = ch
	}
	return ch
}

func (g *controlledGenerator) Generate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	g.started <- req.Seed
	select {
	case <-g.gate(req.Seed):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	g.mu.Lock()
	g.nextID++
	id := g.nextID
	g.mu.Unlock()
	return &domain.ImageResponse{ID: string(rune('a' + id - 1)), UsedSeed: req.Seed}, nil
}

func (g *controlledGenerator) Regenerate(ctx context.Context, req domain.RenderRequest) (*domain.ImageResponse, error) {
	return g.Generate(ctx, req.WithSeed(req.Seed+1))
}
