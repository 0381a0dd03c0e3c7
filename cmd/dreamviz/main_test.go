package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/dream-image-kit/pkg/journal"
	"github.com/shouni/dream-image-kit/pkg/quiz"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DREAMVIZ_MIN_GENERATION_TIME", "0s")
	t.Setenv("DREAMVIZ_LOG_LEVEL", "error")

	out := new(bytes.Buffer)
	a := &app{stdin: strings.NewReader(stdin), stdout: out, stderr: new(bytes.Buffer)}
	cmd := a.rootCmd()
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Run("PNG を書き出す", func(t *testing.T) {
		dir := t.TempDir()
		out, err := runCLI(t, "", "render",
			"--mood", "positive", "--type", "fantasy", "--sleep", "80",
			"--symbol", "Fliegen", "--symbol", "Wasser",
			"--seed", "0.5", "--name", "Mia", "--out", dir)
		require.NoError(t, err)

		assert.Contains(t, out, "seed=0.5")
		assert.Contains(t, out, "motif=Fantasie Träume")
		assert.Contains(t, out, "glyphs=2")

		files, err := filepath.Glob(filepath.Join(dir, "Mia-traum-*.png"))
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("データファイルとバリエーション", func(t *testing.T) {
		dir := t.TempDir()
		data := filepath.Join(dir, "traum.yaml")
		require.NoError(t, os.WriteFile(data, []byte("mood: negative\ndream_type: Albträume\nsleep_quality: 20\n"), 0o600))

		out, err := runCLI(t, "", "render", "--data", data, "--variants", "2", "--format", "jpeg", "--out", dir)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, out, "motif=Albträume")

		files, err := filepath.Glob(filepath.Join(dir, "NAME-traum-*.jpg"))
		require.NoError(t, err)
		assert.Len(t, files, 2, "バリエーションは別々のファイルに書き出される")
		for _, line := range lines {
			assert.FileExists(t, strings.SplitN(line, "\t", 2)[0])
		}
	})

	t.Run("範囲外の睡眠の質はエラー", func(t *testing.T) {
		_, err := runCLI(t, "", "render", "--sleep", "120", "--out", t.TempDir())
		assert.Error(t, err)
	})

	t.Run("有限でないシードはエラー", func(t *testing.T) {
		for _, seed := range []string{"NaN", "+Inf", "-Inf"} {
			dir := t.TempDir()
			_, err := runCLI(t, "", "render", "--seed", seed, "--out", dir)
			assert.ErrorContains(t, err, "--seed must be a finite number", seed)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		}
	})
}

func TestSymbolsCommand(t *testing.T) {
	out, err := runCLI(t, "", "symbols", "Tiere")
	require.NoError(t, err)
	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "Schlange")

	out, err = runCLI(t, "", "symbols", "xyz-unbekannt")
	require.NoError(t, err)
	assert.Contains(t, out, "Keine Symbole gefunden")

	out, err = runCLI(t, "", "symbols", "Fliegen", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Fliegen")

	t.Run("完全一致で1件だけ引く", func(t *testing.T) {
		out, err := runCLI(t, "", "symbols", "--exact", "haus")
		require.NoError(t, err)
		assert.Contains(t, out, "Selbst, Sicherheit")
		assert.NotContains(t, out, "Krankenhaus")

		_, err = runCLI(t, "", "symbols", "--exact", "Hau")
		assert.ErrorContains(t, err, "unknown dream symbol")
	})
}

func TestQuizCommand(t *testing.T) {
	t.Run("説明がなければエラー", func(t *testing.T) {
		_, err := runCLI(t, "", "quiz")
		assert.ErrorIs(t, err, quiz.ErrDescriptionRequired)
	})

	t.Run("フラグと対話で回答する", func(t *testing.T) {
		out, err := runCLI(t, "2\nFantasiewelt\n1\n5\n", "quiz",
			"-d", "Ich flog über eine Stadt",
			"--answer", "actions=Fliegen",
			"--seed", "0.5")
		require.NoError(t, err)

		assert.Contains(t, out, "Frage 2 von 5")
		assert.Contains(t, out, "Traumdeutung: "+quiz.Interpret(0.5))
	})

	t.Run("回答が足りなければエラー", func(t *testing.T) {
		_, err := runCLI(t, "1\n", "quiz", "-d", "Traum")
		assert.ErrorIs(t, err, quiz.ErrIncomplete)
	})

	t.Run("有限でないシードはエラー", func(t *testing.T) {
		_, err := runCLI(t, "", "quiz", "-d", "Traum", "--seed", "NaN")
		assert.ErrorContains(t, err, "--seed must be a finite number")
	})

	t.Run("履歴ファイルに結果を残す", func(t *testing.T) {
		history := filepath.Join(t.TempDir(), "quiz.yaml")
		answers := "1\n1\n1\n1\n1\n"

		out, err := runCLI(t, answers, "quiz", "-d", "Erster Traum", "--seed", "0.5", "--history", history)
		require.NoError(t, err)
		assert.NotContains(t, out, "Frühere Deutungen")

		out, err = runCLI(t, answers, "quiz", "-d", "Zweiter Traum", "--seed", "1", "--history", history)
		require.NoError(t, err)
		assert.Contains(t, out, "Frühere Deutungen:")
		assert.Contains(t, out, "Erster Traum: "+quiz.Interpret(0.5))

		f, err := os.Open(history)
		require.NoError(t, err)
		defer f.Close()
		h, err := quiz.DecodeHistory(f)
		require.NoError(t, err)
		entries := h.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "Zweiter Traum", entries[0].Description)
		assert.Equal(t, "Erster Traum", entries[1].Description)
	})
}

func TestJournalCommand(t *testing.T) {
	t.Run("ファイルが無ければサンプルを表示する", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "tagebuch.yaml")
		out, err := runCLI(t, "", "journal", "list", "--file", file)
		require.NoError(t, err)

		assert.Contains(t, out, "Einträge: 2\tLetzter Eintrag: 18.05.2023")
		assert.Contains(t, out, "15.05.2023  Flug über die Stadt")
		assert.NoFileExists(t, file, "一覧表示では保存しない")
	})

	t.Run("追加した夢を保存して一覧に出す", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "tagebuch.yaml")
		out, err := runCLI(t, "", "journal", "add", "--file", file,
			"--title", "Verfolgung", "--content", "Ich rannte durch einen dunklen Wald.", "--date", "3.2.2024")
		require.NoError(t, err)
		assert.Contains(t, out, "Gespeichert: Verfolgung (03.02.2024)")
		assert.Contains(t, out, "Einträge: 3")
		assert.FileExists(t, file)

		out, err = runCLI(t, "", "journal", "list", "--file", file)
		require.NoError(t, err)
		assert.Contains(t, out, "Letzter Eintrag: 03.02.2024")
		assert.Contains(t, out, "Ich rannte durch einen dunklen Wald.")
	})

	t.Run("設定の日記ファイルを使う", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "env.yaml")
		t.Setenv("DREAMVIZ_JOURNAL_FILE", file)
		_, err := runCLI(t, "", "journal", "add", "--title", "Prüfung", "--content", "Zu spät.", "--date", "19.10.2026")
		require.NoError(t, err)
		assert.FileExists(t, file)
	})

	t.Run("入力の検証", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "tagebuch.yaml")
		_, err := runCLI(t, "", "journal", "add", "--file", file, "--content", "x")
		assert.ErrorIs(t, err, journal.ErrTitleRequired)

		_, err = runCLI(t, "", "journal", "add", "--file", file, "--title", "x")
		assert.ErrorIs(t, err, journal.ErrContentRequired)

		_, err = runCLI(t, "", "journal", "add", "--file", file, "--title", "x", "--content", "y", "--date", "")
		assert.ErrorIs(t, err, journal.ErrDateRequired)

		_, err = runCLI(t, "", "journal", "add", "--file", file, "--title", "x", "--content", "y", "--date", "2024-02-03")
		assert.ErrorContains(t, err, "expected dd.mm.yyyy")

		assert.NoFileExists(t, file)
	})
}
