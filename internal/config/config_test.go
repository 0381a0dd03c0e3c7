package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/dream-image-kit/pkg/imgutil"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "NAME", cfg.DisplayName)
	assert.Equal(t, 2*time.Second, cfg.MinGenerationTime)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, imgutil.FormatPNG, cfg.Format())
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "traumtagebuch.yaml", cfg.JournalFile)
	assert.Empty(t, cfg.QuizHistoryFile)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DREAMVIZ_OUTPUT_DIR", "/tmp/traum")
	t.Setenv("DREAMVIZ_MIN_GENERATION_TIME", "0s")
	t.Setenv("DREAMVIZ_EXPORT_FORMAT", "jpg")
	t.Setenv("DREAMVIZ_JPEG_QUALITY", "70")
	t.Setenv("DREAMVIZ_JOURNAL_FILE", "/tmp/traum/tagebuch.yaml")
	t.Setenv("DREAMVIZ_QUIZ_HISTORY_FILE", "/tmp/traum/quiz.yaml")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/traum", cfg.OutputDir)
	assert.Zero(t, cfg.MinGenerationTime)
	assert.Equal(t, imgutil.FormatJPEG, cfg.Format())
	assert.Equal(t, 70, cfg.JPEGQuality)
	assert.Equal(t, "/tmp/traum/tagebuch.yaml", cfg.JournalFile)
	assert.Equal(t, "/tmp/traum/quiz.yaml", cfg.QuizHistoryFile)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DREAMVIZ_DISPLAY_NAME=Mia\nDREAMVIZ_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DREAMVIZ_LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("DREAMVIZ_DISPLAY_NAME") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Mia", cfg.DisplayName)
	assert.Equal(t, "warn", cfg.LogLevel, "既存の環境変数が優先される")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"不正な期間", "DREAMVIZ_CACHE_TTL", "soon", "parse env:"},
		{"負の待機時間", "DREAMVIZ_MIN_GENERATION_TIME", "-1s", "must not be negative"},
		{"未対応の形式", "DREAMVIZ_EXPORT_FORMAT", "webp", "DREAMVIZ_EXPORT_FORMAT"},
		{"品質が範囲外", "DREAMVIZ_JPEG_QUALITY", "101", "between 1 and 100"},
		{"不正なログレベル", "DREAMVIZ_LOG_LEVEL", "loud", "DREAMVIZ_LOG_LEVEL"},
		{"不正なログ形式", "DREAMVIZ_LOG_FORMAT", "xml", "text or json"},
		{"空白だけの日記ファイル", "DREAMVIZ_JOURNAL_FILE", "  ", "DREAMVIZ_JOURNAL_FILE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(missingEnvFile(t))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cfg := Config{LogLevel: "warn", LogFormat: "json"}
		logger := cfg.NewLogger(buf)

		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("text", func(t *testing.T) {
		buf := new(bytes.Buffer)
		cfg := Config{LogLevel: "debug", LogFormat: "text"}
		cfg.NewLogger(buf).Debug("details", "n", 3)
		assert.Contains(t, buf.String(), "n=3")
	})
}
