package canvas

import (
	"log/slog"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	parseOnce.Do(func() {
		var err error
		if regularFont, err = opentype.Parse(goregular.TTF); err != nil {
			slog.Warn("Go Regular フォントの読み込みに失敗しました", "error", err)
		}
		if boldFont, err = opentype.Parse(gobold.TTF); err != nil {
			slog.Warn("Go Bold フォントの読み込みに失敗しました", "error", err)
		}
	})
}

type faceKey struct {
	bold bool
	size float64
}

// fontCache はサイズ別のフォントフェイスを保持します。
// font.Face はスレッドセーフではないため、Canvas ごとに1つ持ちます。
type fontCache struct {
	faces map[faceKey]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[faceKey]font.Face)}
}

func (fc *fontCache) face(bold bool, size float64) font.Face {
	key := faceKey{bold: bold, size: size}
	if f, ok := fc.faces[key]; ok {
		return f
	}

	loadFonts()
	src := regularFont
	if bold {
		src = boldFont
	}

	var f font.Face = basicfont.Face7x13
	if src != nil {
		face, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			f = face
		} else {
			slog.Warn("フォントフェイスの生成に失敗しました。ビットマップフォントで続行します", "size", size, "error", err)
		}
	}
	fc.faces[key] = f
	return f
}

func (fc *fontCache) close() {
	for k, f := range fc.faces {
		if f != basicfont.Face7x13 {
			_ = f.Close()
		}
		delete(fc.faces, k)
	}
}
