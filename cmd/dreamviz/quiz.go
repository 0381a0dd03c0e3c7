package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/quiz"
	"github.com/shouni/dream-image-kit/pkg/utils"
)

func (a *app) quizCmd() *cobra.Command {
	var (
		description string
		answers     map[string]string
		seed        float64
		historyFile string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer the dream quiz and get an interpretation",
		Long: `Answer five questions about your dream. Questions not given with --answer
are asked interactively; reply with the option number or its text.

Examples:
  dreamviz quiz --description "Ich flog über eine Stadt"
  dreamviz quiz -d "Elternhaus" --answer emotion=Freude --answer setting="Bekannter Ort"
  dreamviz quiz -d "Prüfung" --history quiz-verlauf.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quiz.Start(description)
			if err != nil {
				return err
			}
			seedPtr, err := seedFlag(cmd, seed)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(answers))
			for id := range answers {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				if err := q.Answer(id, answers[id]); err != nil {
					return err
				}
			}

			if err := askRemaining(q, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}

			res, err := q.Complete(utils.DereferenceSeed(seedPtr), time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Traumdeutung: %s\n", res.Interpretation)

			path := firstNonEmpty(historyFile, a.cfg.QuizHistoryFile)
			if path == "" {
				return nil
			}
			return recordQuizResult(path, res, out)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "short description of the dream (required)")
	cmd.Flags().StringToStringVar(&answers, "answer", nil, "answer as question=option (emotion, setting, characters, actions, feeling)")
	cmd.Flags().Float64Var(&seed, "seed", 0, "seed for picking the interpretation (random when omitted)")
	cmd.Flags().StringVar(&historyFile, "history", "", "YAML file keeping the last results (DREAMVIZ_QUIZ_HISTORY_FILE)")
	return cmd
}

// recordQuizResult は履歴ファイルに結果を追加し、それ以前の解釈を表示します。
func recordQuizResult(path string, res quiz.Result, out io.Writer) error {
	history := quiz.NewHistory()
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to open quiz history: %w", err)
	default:
		history, err = quiz.DecodeHistory(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if previous := history.Entries(); len(previous) > 0 {
		fmt.Fprintln(out, "Frühere Deutungen:")
		for _, r := range previous {
			fmt.Fprintf(out, "  %s  %s: %s\n", r.CompletedAt.Format(domain.JournalDateLayout), r.Description, r.Interpretation)
		}
	}
	history.Add(res)

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write quiz history: %w", err)
	}
	if err := history.Encode(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// askRemaining は未回答の質問を順に表示して in から回答を読み取ります。
func askRemaining(q *quiz.Quiz, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		question, ok := q.Next()
		if !ok {
			return nil
		}
		answered, total := q.Progress()
		fmt.Fprintf(out, "Frage %d von %d: %s\n", answered+1, total, question.Text)
		for i, option := range question.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, option)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			return fmt.Errorf("%w: %s", quiz.ErrIncomplete, question.ID)
		}
		reply := strings.TrimSpace(scanner.Text())
		if n, err := strconv.Atoi(reply); err == nil && n >= 1 && n <= len(question.Options) {
			reply = question.Options[n-1]
		}
		if err := q.Answer(question.ID, reply); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
