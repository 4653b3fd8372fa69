package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's mood",
	Long: `Show the mood recorded for today, if any.

The note is rendered as markdown. With --json the record is printed in its
stored form.`,
	Example: `  sunspot today
  sunspot today --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return todayRun(cmd.OutOrStdout())
	},
}

func todayRun(w io.Writer) error {
	today := clk.Today()
	rec, ok, err := store.LoadToday(today)
	if err != nil {
		return fmt.Errorf("reading today's record: %w", err)
	}

	if jsonOutput {
		out := ui.TodayJSON{Date: today, Recorded: ok}
		if ok {
			out.Record = &rec
		}
		return ui.FormatJSON(w, out)
	}

	if !ok {
		ui.FormatNoRecord(w, today)
		return nil
	}
	ui.FormatRecord(w, rec, markdownStyle())
	return nil
}

// markdownStyle picks the glamour style from the configured theme.
func markdownStyle() string {
	return ui.ResolveTheme(appConfig.Theme, "").MarkdownStyle
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
