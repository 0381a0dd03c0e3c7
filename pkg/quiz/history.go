package quiz

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// MaxHistory は履歴に残す結果の数です。
const MaxHistory = 5

// History は新しい順に最大 MaxHistory 件の結果を保持します。
type History struct {
	mu      sync.Mutex
	entries []Result
}

// NewHistory は古い順に並んだ結果から履歴を作ります。
func NewHistory(results ...Result) *History {
	h := &History{}
	for _, r := range results {
		h.Add(r)
	}
	return h
}

// DecodeHistory は Encode で書き出した YAML (新しい順) から履歴を復元します。
// 空の入力は空の履歴になります。
func DecodeHistory(r io.Reader) (*History, error) {
	var entries []Result
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("クイズ履歴の読み込みに失敗しました: %w", err)
	}
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	return &History{entries: entries}, nil
}

// Add は結果を先頭に追加し、あふれた古いものを捨てます。
func (h *History) Add(r Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]Result{r}, h.entries...)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[:MaxHistory]
	}
}

// Entries は新しい順の履歴のコピーです。
func (h *History) Entries() []Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Result(nil), h.entries...)
}

// Encode は履歴を新しい順の YAML で書き出します。
func (h *History) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h.Entries()); err != nil {
		return fmt.Errorf("クイズ履歴の書き出しに失敗しました: %w", err)
	}
	return enc.Close()
}
