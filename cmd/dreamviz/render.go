package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"

	"github.com/shouni/dream-image-kit/pkg/adapters"
	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/generator"
	"github.com/shouni/dream-image-kit/pkg/imgutil"
	"github.com/shouni/dream-image-kit/pkg/renderer"
	"github.com/shouni/dream-image-kit/pkg/utils"
)

type renderOptions struct {
	dataFile    string
	mood        string
	dreamType   string
	sleep       int
	symbols     []string
	seed        float64
	name        string
	outDir      string
	format      string
	quality     int
	variants    int
	regenerate  bool
	minDuration time.Duration
}

func (a *app) renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dream image and write it to the output directory",
		Long: `Render the decorative dream image for the current dream data.

Examples:
  dreamviz render --mood positive --type fantasy --sleep 80 --symbol Fliegen --symbol Wasser --seed 0.5
  dreamviz render --data traum.yaml --variants 3 --format jpeg
  dreamviz render --regenerate --min-duration 0s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.dataFile, "data", "", "YAML dream data file")
	f.StringVar(&opts.mood, "mood", "", "mood (very-negative, negative, neutral, positive, very-positive)")
	f.StringVar(&opts.dreamType, "type", "", "dream type (lucid, nightmare, fantasy, everyday or the German name)")
	f.IntVar(&opts.sleep, "sleep", 0, "sleep quality 0-100")
	f.StringArrayVar(&opts.symbols, "symbol", nil, "dream symbol, repeatable (first 5 are drawn)")
	f.Float64Var(&opts.seed, "seed", 0, "render seed (random when omitted)")
	f.StringVar(&opts.name, "name", "", "display name (DREAMVIZ_DISPLAY_NAME)")
	f.StringVarP(&opts.outDir, "out", "o", "", "output directory (DREAMVIZ_OUTPUT_DIR)")
	f.StringVar(&opts.format, "format", "", "png or jpeg (DREAMVIZ_EXPORT_FORMAT)")
	f.IntVar(&opts.quality, "quality", 0, "JPEG quality 1-100 (DREAMVIZ_JPEG_QUALITY)")
	f.IntVarP(&opts.variants, "variants", "n", 1, "number of images with different seeds")
	f.BoolVar(&opts.regenerate, "regenerate", false, "render once more with a new seed and keep the last one")
	f.DurationVar(&opts.minDuration, "min-duration", 0, "minimum generation time (DREAMVIZ_MIN_GENERATION_TIME)")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, opts renderOptions) error {
	ctx := cmd.Context()
	flags := cmd.Flags()
	now := time.Now()

	data, err := a.dreamData(opts, flags.Changed("sleep"), now)
	if err != nil {
		return err
	}

	seedPtr, err := seedFlag(cmd, opts.seed)
	if err != nil {
		return err
	}
	seed := utils.DereferenceSeed(seedPtr)
	name := firstNonEmpty(opts.name, a.cfg.DisplayName)
	req := data.Request(name, seed)

	minDuration := a.cfg.MinGenerationTime
	if flags.Changed("min-duration") {
		minDuration = opts.minDuration
	}
	format, err := imgutil.ParseFormat(firstNonEmpty(opts.format, a.cfg.ExportFormat))
	if err != nil {
		return err
	}
	quality := a.cfg.JPEGQuality
	if flags.Changed("quality") {
		quality = opts.quality
	}

	gen, err := generator.NewDreamImageGenerator(renderer.New(),
		generator.WithMinDuration(minDuration),
		generator.WithCache(cache.New(a.cfg.CacheTTL, 2*a.cfg.CacheTTL), a.cfg.CacheTTL),
	)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	exporter, err := adapters.NewLocalExporter(firstNonEmpty(opts.outDir, a.cfg.OutputDir), format, quality)
	if err != nil {
		return err
	}

	var results []*domain.ImageResponse
	if opts.variants > 1 {
		variants, err := adapters.NewVariantAdapter(gen)
		if err != nil {
			return err
		}
		results, err = variants.GenerateVariants(ctx, req, opts.variants)
		if err != nil {
			return err
		}
	} else {
		session, err := generator.NewSession(gen, req)
		if err != nil {
			return err
		}
		if _, err := session.Generate(ctx); err != nil {
			return err
		}
		if opts.regenerate {
			if _, err := session.Regenerate(ctx); err != nil {
				return err
			}
		}
		results = append(results, session.Current())
	}

	if err := exportAll(ctx, exporter, results, req.DisplayName, cmd.OutOrStdout()); err != nil {
		return err
	}
	slog.DebugContext(ctx, "render finished", "images", len(results))
	return nil
}

// exportAll は画像を順に書き出し、1枚ごとにパスと描画統計を1行で表示します。
func exportAll(ctx context.Context, exporter adapters.Exporter, results []*domain.ImageResponse, displayName string, out io.Writer) error {
	for _, resp := range results {
		path, err := exporter.Export(ctx, resp, displayName)
		if err != nil {
			return err
		}
		s := resp.Stats
		fmt.Fprintf(out, "%s\tseed=%g\tmotif=%s\tstars=%d\tglyphs=%d\n",
			path, resp.UsedSeed, s.Motif, s.Stars, len(s.Glyphs))
	}
	return nil
}

// dreamData はデータファイルを読み込み、フラグで指定された項目を上書きします。
func (a *app) dreamData(opts renderOptions, sleepSet bool, now time.Time) (domain.DreamData, error) {
	data := domain.DefaultDreamData(now)
	if opts.dataFile != "" {
		f, err := os.Open(opts.dataFile)
		if err != nil {
			return domain.DreamData{}, fmt.Errorf("failed to open dream data: %w", err)
		}
		defer f.Close()
		if data, err = domain.DecodeDreamData(f, now); err != nil {
			return domain.DreamData{}, err
		}
	}

	if opts.mood != "" {
		m := domain.ParseMood(opts.mood)
		if string(m) != strings.ToLower(strings.TrimSpace(opts.mood)) {
			slog.Warn("unknown mood, falling back", "mood", opts.mood, "used", m)
		}
		data = data.WithMood(m, now)
	}
	if opts.dreamType != "" {
		t, ok := domain.ParseDreamType(opts.dreamType)
		if !ok {
			slog.Warn("unknown dream type, the everyday motif is drawn", "type", opts.dreamType)
		}
		data = data.WithDreamType(t, now)
	}
	if sleepSet {
		data = data.WithSleepQuality(opts.sleep, now)
	}
	if len(opts.symbols) > 0 {
		data.SearchedSymbols = nil
		for i := len(opts.symbols) - 1; i >= 0; i-- {
			data = data.WithSearchedSymbol(opts.symbols[i], now)
		}
	}

	if err := data.Validate(); err != nil {
		return domain.DreamData{}, err
	}
	return data, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
