// Package journal は夢日記のエントリーを保持し、YAML ファイルとの間で読み書きします。
package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

var (
	ErrTitleRequired   = errors.New("タイトルを入力してください")
	ErrContentRequired = errors.New("夢の内容を入力してください")
	ErrDateRequired    = errors.New("日付を入力してください")
)

// NoDate は最後の記録日が無いときの表示です。
const NoDate = "-"

// Journal は追加順に並んだ夢日記です。並行して使えます。
type Journal struct {
	mu      sync.Mutex
	entries []domain.DreamEntry
	newID   func() string
}

// Option は Journal の設定を変更します。
type Option func(*Journal)

// WithIDFunc はエントリー ID の採番方法を差し替えます。
func WithIDFunc(fn func() string) Option {
	return func(j *Journal) {
		if fn != nil {
			j.newID = fn
		}
	}
}

// New は既存のエントリーから Journal を作成します。
func New(entries []domain.DreamEntry, opts ...Option) *Journal {
	j := &Journal{
		entries: append([]domain.DreamEntry(nil), entries...),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Sample は初回起動時に表示する2件のエントリーです。
func Sample() []domain.DreamEntry {
	return []domain.DreamEntry{
		{
			ID:      "1",
			Date:    time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
			Title:   "Flug über die Stadt",
			Content: "Ich flog über eine leuchtende Stadt bei Nacht. Die Lichter waren wie Sterne unter mir. Ich fühlte mich frei und glücklich.",
		},
		{
			ID:      "2",
			Date:    time.Date(2023, 5, 18, 0, 0, 0, 0, time.UTC),
			Title:   "Unterwasserwelt",
			Content: "Ich konnte unter Wasser atmen und schwamm mit bunten Fischen. Es gab eine alte Ruine auf dem Meeresboden, die ich erkundete.",
		},
	}
}

// Add は検証したエントリーを末尾に追加して返します。
// タイトルと内容は前後の空白を除いて空であってはならず、日付はゼロ値であってはなりません。
func (j *Journal) Add(title, content string, date time.Time) (domain.DreamEntry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	switch {
	case title == "":
		return domain.DreamEntry{}, ErrTitleRequired
	case content == "":
		return domain.DreamEntry{}, ErrContentRequired
	case date.IsZero():
		return domain.DreamEntry{}, ErrDateRequired
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	e := domain.DreamEntry{ID: j.newID(), Date: date, Title: title, Content: content}
	j.entries = append(j.entries, e)
	return e, nil
}

// Entries は追加順のエントリーのコピーです。
func (j *Journal) Entries() []domain.DreamEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]domain.DreamEntry(nil), j.entries...)
}

// Summary は日記の件数と最後に追加されたエントリーの日付です。
type Summary struct {
	Total    int
	LastDate string
}

// Summary は件数と最後のエントリーの日付 (無ければ NoDate) を返します。
func (j *Journal) Summary() Summary {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := Summary{Total: len(j.entries), LastDate: NoDate}
	if n := len(j.entries); n > 0 {
		s.LastDate = j.entries[n-1].DateLabel()
	}
	return s
}

// Decode は YAML のエントリー一覧から Journal を作成します。空の入力は空の日記です。
func Decode(r io.Reader, opts ...Option) (*Journal, error) {
	var entries []domain.DreamEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("夢日記の読み込みに失敗しました: %w", err)
	}
	return New(entries, opts...), nil
}

// Encode はエントリーを YAML で書き出します。
func (j *Journal) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(j.Entries()); err != nil {
		return fmt.Errorf("夢日記の書き出しに失敗しました: %w", err)
	}
	return enc.Close()
}

// Load は path の日記を読み込みます。ファイルが無ければ Sample の日記を返します。
func Load(path string, opts ...Option) (*Journal, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(Sample(), opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("夢日記を開けません: %w", err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Save は日記を path に書き出します。
func (j *Journal) Save(path string) error {
	buf := new(bytes.Buffer)
	if err := j.Encode(buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("夢日記の保存に失敗しました: %w", err)
	}
	return nil
}
