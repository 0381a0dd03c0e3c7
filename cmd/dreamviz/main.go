// Command dreamviz は夢データから装飾画像を生成し、シンボル辞書・夢クイズ・夢日記を提供する CLI です。
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shouni/dream-image-kit/internal/config"
)

var Version = "dev"

// app はサブコマンド間で共有する実行時の状態です。
type app struct {
	cfg     config.Config
	envFile string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dreamviz",
		Short:         "dreamviz - seeded dream visualizer",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			slog.SetDefault(cfg.NewLogger(a.stderr))
			return nil
		},
	}
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "optional .env file")

	rootCmd.AddCommand(a.renderCmd())
	rootCmd.AddCommand(a.symbolsCmd())
	rootCmd.AddCommand(a.quizCmd())
	rootCmd.AddCommand(a.journalCmd())

	return rootCmd
}
