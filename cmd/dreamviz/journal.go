package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/dream-image-kit/pkg/domain"
	"github.com/shouni/dream-image-kit/pkg/journal"
)

func (a *app) journalCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Record and list dream journal entries",
		Long: `Keep a dream journal in a YAML file. Without an existing file the
journal starts with two sample entries.

Examples:
  dreamviz journal list
  dreamviz journal add --title "Unterwasserwelt" --content "Ich konnte unter Wasser atmen." --date 18.05.2023`,
		Args: cobra.NoArgs,
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "journal file (DREAMVIZ_JOURNAL_FILE)")

	path := func() string { return firstNonEmpty(file, a.cfg.JournalFile) }

	list := &cobra.Command{
		Use:   "list",
		Short: "List all journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.Load(path())
			if err != nil {
				return err
			}
			printJournal(cmd.OutOrStdout(), j)
			return nil
		},
	}

	var title, content, date string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a dream entry (date as dd.mm.yyyy, today when omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if cmd.Flags().Changed("date") {
				var err error
				if day, err = parseJournalDate(date); err != nil {
					return err
				}
			}

			p := path()
			j, err := journal.Load(p)
			if err != nil {
				return err
			}
			e, err := j.Add(title, content, day)
			if err != nil {
				return err
			}
			if err := j.Save(p); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gespeichert: %s (%s)\n", e.Title, e.DateLabel())
			printSummary(out, j.Summary())
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "title of the dream")
	add.Flags().StringVar(&content, "content", "", "what happened in the dream")
	add.Flags().StringVar(&date, "date", "", "date as dd.mm.yyyy")

	cmd.AddCommand(list, add)
	return cmd
}

// parseJournalDate は dd.mm.yyyy (先頭の 0 は省略可) を解釈します。空文字はゼロ値です。
func parseJournalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{domain.JournalDateLayout, domain.DateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected dd.mm.yyyy", s)
}

func printSummary(out io.Writer, s journal.Summary) {
	fmt.Fprintf(out, "Einträge: %d\tLetzter Eintrag: %s\n", s.Total, s.LastDate)
}

func printJournal(out io.Writer, j *journal.Journal) {
	printSummary(out, j.Summary())
	for _, e := range j.Entries() {
		fmt.Fprintf(out, "\n%s  %s\n  %s\n", e.DateLabel(), e.Title, e.Content)
	}
}
