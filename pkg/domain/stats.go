package domain

// GlyphKind はシンボルがどの描画ルーチンで描かれたかを示します。
type GlyphKind string

const (
	GlyphFlying  GlyphKind = "Fliegen"
	GlyphWater   GlyphKind = "Wasser"
	GlyphFalling GlyphKind = "Fallen"
	GlyphText    GlyphKind = "text"
)

// RenderStats は1回の描画で実際に描かれた要素の集計です。
type RenderStats struct {
	Specks int
	Stars  int
	Motif  DreamType

	// Lucid
	Spirals         int
	SpiralRotations []float64

	// Nightmare: 図形ごとの頂点数
	Shapes []int
	Cracks int

	// Fantasy
	Orbs      int
	OrbColors []string
	Links     int
	Crystals  int

	// Everyday
	GridCells int
	FlowLines int

	Glyphs []GlyphKind
}
