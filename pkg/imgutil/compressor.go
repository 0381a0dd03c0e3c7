// Package imgutil は描画結果のラスタ画像をダウンロード用のバイト列に変換します。
package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"strings"
)

// Format は出力する画像形式です。
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"

	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"

	// DefaultJPEGQuality は品質が範囲外のときに使う値です。
	DefaultJPEGQuality = 90
)

// ParseFormat は "png" / "jpeg" / "jpg" を受け付けます。大文字小文字は区別しません。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("未対応の画像形式です: %q", s)
	}
}

// Extension はファイル名に付ける拡張子 (ドットなし) です。
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// MimeType は形式に対応する MIME タイプです。
func (f Format) MimeType() string {
	if f == FormatJPEG {
		return MimeTypeJPEG
	}
	return MimeTypePNG
}

// EncodePNG は画像を PNG にエンコードします。
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("image is required")
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// 品質が 1-100 の範囲外なら DefaultJPEGQuality を使います。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// Convert は PNG データを指定形式に変換し、データと MIME タイプを返します。
// PNG 指定のときは入力をそのまま返します。
func Convert(data []byte, format Format, quality int) ([]byte, string, error) {
	switch format {
	case FormatPNG, "":
		return data, FormatPNG.MimeType(), nil
	case FormatJPEG:
		out, err := CompressToJPEG(data, quality)
		if err != nil {
			return nil, "", err
		}
		return out, format.MimeType(), nil
	default:
		return nil, "", fmt.Errorf("未対応の画像形式です: %q", format)
	}
}
