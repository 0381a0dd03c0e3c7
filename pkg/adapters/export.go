package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/generator"
	"github.com/shouni/dream-image-kit/pkg/imgutil"
)

// Exporter は生成済みの画像を保存先に書き出します。
type Exporter interface {
	Export(ctx context.Context, resp *domain.ImageResponse, displayName string) (string, error)
}

// LocalExporter はローカルディレクトリに画像を書き出すアダプターです。
// ファイル名はダウンロード時と同じ <name>-traum-<unix ミリ秒>.<ext> です。
// 同じ名前のファイルが既にあれば上書きせず、<name>-traum-<unix ミリ秒>-1.<ext> のように連番を付けます。
type LocalExporter struct {
	dir     string
	format  imgutil.Format
	quality int
	now     func() time.Time
}

// NewLocalExporter は出力先と形式を指定して LocalExporter を作成します。
func NewLocalExporter(dir string, format imgutil.Format, quality int) (*LocalExporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if format != imgutil.FormatPNG && format != imgutil.FormatJPEG {
		return nil, fmt.Errorf("未対応の画像形式です: %q", format)
	}
	return &LocalExporter{dir: dir, format: format, quality: quality, now: time.Now}, nil
}

// Export は画像を変換して書き出し、書き出したファイルのパスを返します。
// 出力先ディレクトリが無ければ作成します。
func (e *LocalExporter) Export(ctx context.Context, resp *domain.ImageResponse, displayName string) (string, error) {
	if resp == nil || len(resp.Data) == 0 {
		return "", fmt.Errorf("書き出す画像がありません")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, mimeType, err := imgutil.Convert(resp.Data, e.format, e.quality)
	if err != nil {
		return "", fmt.Errorf("画像の変換に失敗しました: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	path, err := writeExclusive(e.dir, generator.FileName(displayName, e.now(), e.format.Extension()), data)
	if err != nil {
		return "", fmt.Errorf("画像の書き出しに失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "画像を書き出しました", "path", path, "mime_type", mimeType, "bytes", len(data), "id", resp.ID)
	return path, nil
}

// maxNameAttempts は連番を付けて試すファイル名の上限です。
const maxNameAttempts = 1000

// writeExclusive は既存ファイルを上書きせずに data を書き込み、実際に使ったパスを返します。
func writeExclusive(dir, name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("空いているファイル名が見つかりません: %s", name)
}
