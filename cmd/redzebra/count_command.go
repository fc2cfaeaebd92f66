package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"redzebra/internal/textmetrics"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count characters, bytes, words and lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			m := textmetrics.Compute(text)
			ctx.logger().Debug("computed metrics",
				"characters", m.Characters,
				"bytes", m.Bytes,
				"words", m.Words,
				"lines", m.Lines,
			)

			if jsonOut {
				return writeJSON(cmd, m)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, countTitle(m))
			fmt.Fprintln(out, renderTable(out,
				[]string{"Metric", "Count"},
				[][]string{
					{"Characters", humanize.Comma(int64(m.Characters))},
					{"Bytes", humanize.Comma(int64(m.Bytes))},
					{"Words", humanize.Comma(int64(m.Words))},
					{"Lines", humanize.Comma(int64(m.Lines))},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output counts as JSON")
	return cmd
}

func countTitle(m textmetrics.Metrics) string {
	if m.Tweetable() {
		return "🐥 It's tweetable! 🐥"
	}
	return "📖 Word Count 📖"
}
