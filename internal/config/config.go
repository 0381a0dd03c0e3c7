// Package config は環境変数と .env ファイルから dreamviz の設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/shouni/dream-image-kit/pkg/imgutil"
)

// DefaultEnvFile は Load が探す .env ファイルです。
const DefaultEnvFile = ".env"

// Config は CLI 全体の設定です。
type Config struct {
	OutputDir         string        `env:"DREAMVIZ_OUTPUT_DIR" envDefault:"."`
	DisplayName       string        `env:"DREAMVIZ_DISPLAY_NAME" envDefault:"NAME"`
	MinGenerationTime time.Duration `env:"DREAMVIZ_MIN_GENERATION_TIME" envDefault:"2s"`
	CacheTTL          time.Duration `env:"DREAMVIZ_CACHE_TTL" envDefault:"10m"`
	ExportFormat      string        `env:"DREAMVIZ_EXPORT_FORMAT" envDefault:"png"`
	JPEGQuality       int           `env:"DREAMVIZ_JPEG_QUALITY" envDefault:"90"`
	LogLevel          string        `env:"DREAMVIZ_LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"DREAMVIZ_LOG_FORMAT" envDefault:"text"`
	JournalFile       string        `env:"DREAMVIZ_JOURNAL_FILE" envDefault:"traumtagebuch.yaml"`
	QuizHistoryFile   string        `env:"DREAMVIZ_QUIZ_HISTORY_FILE"`
}

// Load は envFile (空なら DefaultEnvFile) があれば読み込んでから環境変数を解析します。
// 既に設定されている環境変数は .env の値で上書きされません。
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate は値の範囲と列挙値を確認します。
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("DREAMVIZ_OUTPUT_DIR must not be empty")
	}
	if strings.TrimSpace(c.JournalFile) == "" {
		return fmt.Errorf("DREAMVIZ_JOURNAL_FILE must not be empty")
	}
	if c.MinGenerationTime < 0 {
		return fmt.Errorf("DREAMVIZ_MIN_GENERATION_TIME must not be negative: %s", c.MinGenerationTime)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("DREAMVIZ_CACHE_TTL must not be negative: %s", c.CacheTTL)
	}
	if _, err := imgutil.ParseFormat(c.ExportFormat); err != nil {
		return fmt.Errorf("DREAMVIZ_EXPORT_FORMAT: %w", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("DREAMVIZ_JPEG_QUALITY must be between 1 and 100: %d", c.JPEGQuality)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("DREAMVIZ_LOG_FORMAT must be text or json: %q", c.LogFormat)
	}
	return nil
}

// Format は検証済みの出力形式です。
func (c Config) Format() imgutil.Format {
	f, err := imgutil.ParseFormat(c.ExportFormat)
	if err != nil {
		return imgutil.FormatPNG
	}
	return f
}

// ParseLevel は debug / info / warn / error を slog.Level に変換します。
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("DREAMVIZ_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogger は設定に従った slog.Logger を作成します。
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, _ := ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
