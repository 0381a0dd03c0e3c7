package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shouni/dream-image-kit/pkg/domain"
)

func (a *app) symbolsCmd() *cobra.Command {
	var asYAML, exact bool

	cmd := &cobra.Command{
		Use:   "symbols [query]",
		Short: "Search the dream symbol dictionary",
		Long: `Search dream symbols by name, meaning or category (case-insensitive).
Without a query every symbol is listed.

Examples:
  dreamviz symbols
  dreamviz symbols transformation
  dreamviz symbols Tiere --yaml
  dreamviz symbols --exact haus`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			var results []domain.Symbol
			if exact {
				s, ok := domain.LookupSymbol(query)
				if !ok {
					return fmt.Errorf("unknown dream symbol: %q", query)
				}
				results = []domain.Symbol{s}
			} else {
				results = domain.SearchSymbols(query)
			}

			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(results)
			}

			if len(results) == 0 {
				fmt.Fprintf(out, "Keine Symbole gefunden für %q\n", query)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tKATEGORIE\tBEDEUTUNG")
			for _, s := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Category, s.Meaning)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "output as YAML")
	cmd.Flags().BoolVar(&exact, "exact", false, "look up a single symbol by its exact name (case-insensitive)")
	return cmd
}
