package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

// Session は画面1枚分の状態 (現在のリクエストと画像) を保持します。
//
// 同時に呼ばれた生成はまとめず、最後に呼び出されたものの結果だけが Current に残ります。
// 先に呼ばれた生成が後から終わっても、その結果は呼び出し元に返るだけで保存されません。
type Session struct {
	gen ImageGenerator

	mu       sync.Mutex
	seq      uint64
	version  uint64
	inflight int
	req      domain.RenderRequest
	current  *domain.ImageResponse
}

// NewSession はリクエストを初期状態として Session を作成します。
func NewSession(gen ImageGenerator, req domain.RenderRequest) (*Session, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	return &Session{gen: gen, req: req}, nil
}

// Generate は現在のリクエストで画像を生成します (初回表示)。
func (s *Session) Generate(ctx context.Context) (*domain.ImageResponse, error) {
	return s.run(ctx, s.gen.Generate)
}

// Regenerate は新しいシードで生成し直し、成功すればそのシードをリクエストに反映します。
func (s *Session) Regenerate(ctx context.Context) (*domain.ImageResponse, error) {
	return s.run(ctx, s.gen.Regenerate)
}

// Update はリクエストを差し替えます。表示中の画像はそのまま残ります。
// 生成中に呼ばれた場合、その生成が反映するのはシードだけです。
func (s *Session) Update(req domain.RenderRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.req = req
	s.version++
}

// Current は最後に反映された画像を返します。まだ無ければ nil です。
func (s *Session) Current() *domain.ImageResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Request は現在のリクエストを返します。
func (s *Session) Request() domain.RenderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.req.WithSeed(s.req.Seed)
}

// Generating は生成中の呼び出しがあるかどうかです。
func (s *Session) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

func (s *Session) run(ctx context.Context, fn func(context.Context, domain.RenderRequest) (*domain.ImageResponse, error)) (*domain.ImageResponse, error) {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.inflight++
	version := s.version
	req := s.req.WithSeed(s.req.Seed)
	s.mu.Unlock()

	resp, err := fn(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if err != nil {
		return nil, err
	}
	if ticket != s.seq {
		slog.DebugContext(ctx, "後続の生成があるため結果を破棄します", "id", resp.ID, "ticket", ticket, "latest", s.seq)
		return resp, nil
	}
	s.current = resp
	if version != s.version {
		// 生成中に Update されたリクエストを古いスナップショットで戻さない
		s.req = s.req.WithSeed(resp.UsedSeed)
		return resp, nil
	}
	s.req = req.WithSeed(resp.UsedSeed)
	return resp, nil
}
