// Command fasskollen is the command-line client for the medication table.
// It answers pharmacy-counter questions about common Swedish medications
// without any network access: the table is compiled into the binary.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/almroth/fasskollen/medications"
	"github.com/almroth/fasskollen/report"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	table := medications.Default()

	var listAll bool

	cmd := &cobra.Command{
		Use:   "fasskollen [medication]",
		Short: "Quick reference for common Swedish medications",
		Long: `Fasskollen looks up common Swedish medications by substance key or brand
name and prints a short Markdown report: use, adult dosing, prescription
status, ATC code and warnings. Queries that match nothing still produce a
report with a FASS search link, so the exit code is 0 either way.

Available keys:

` + report.RenderList(table.Records()),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listAll {
				fmt.Fprint(cmd.OutOrStdout(), report.RenderList(table.Records()))
				return nil
			}

			// No query behaves like --help
			if len(args) == 0 {
				return cmd.Help()
			}

			query := strings.Join(args, " ")
			rec, _, matched := table.Resolve(query)
			if !matched {
				fmt.Fprint(cmd.OutOrStdout(), report.RenderNotFound(query, medications.SearchURL(query)))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), report.RenderRecord(rec, medications.SearchURL(query)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listAll, "list", false, "print every record's key, brands and prescription status")

	return cmd
}
