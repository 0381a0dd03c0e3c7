package renderer

import (
	"fmt"

	"github.com/shouni/dream-image-kit/pkg/canvas"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/palette"
)

// drawMetadata は左上に表示名・気分・睡眠の質・夢タイプ・日付を書き込みます。
// 値はリクエストに渡された文字列のまま表示します。
func drawMetadata(c *canvas.Canvas, req domain.RenderRequest) {
	dc := c.DC()
	dc.SetColor(palette.White(0.9))

	c.SetFont(true, 20)
	dc.DrawString(fmt.Sprintf("%s's Traum", req.DisplayName), 30, 40)

	c.SetFont(false, 14)
	dc.DrawString(fmt.Sprintf("Stimmung: %s", req.Mood), 30, 65)
	dc.DrawString(fmt.Sprintf("Schlafqualität: %d%%", req.SleepQuality), 30, 85)
	dc.DrawString(fmt.Sprintf("Typ: %s", req.DreamType), 30, 105)
	if req.TimestampLabel != "" {
		dc.DrawString(req.TimestampLabel, 30, 125)
	}
}
