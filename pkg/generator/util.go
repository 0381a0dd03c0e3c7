package generator

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

// FileName はダウンロード用のファイル名 <name>-traum-<unix ミリ秒>.<ext> を返します。
// 名前のうちファイル名に使えない文字は取り除き、空白は - にします。
func FileName(displayName string, t time.Time, ext string) string {
	name := sanitizeName(displayName)
	if name == "" {
		name = domain.DefaultDisplayName
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("%s-traum-%d.%s", name, t.UnixMilli(), ext)
}

func sanitizeName(s string) string {
	s = strings.Join(strings.Fields(s), "-")
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, s)
}
