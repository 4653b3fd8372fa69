package cmd

import (
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/spf13/cobra"
)

// moodJSON is the JSON shape of one palette entry.
type moodJSON struct {
	Type  mood.Type `json:"type"`
	Icon  string    `json:"icon"`
	Label string    `json:"label"`
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the mood palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := mood.All()
		if jsonOutput {
			out := make([]moodJSON, len(opts))
			for i, o := range opts {
				out[i] = moodJSON{Type: o.Type, Icon: o.Icon, Label: o.Label}
			}
			return ui.FormatJSON(cmd.OutOrStdout(), out)
		}
		ui.FormatMoodList(cmd.OutOrStdout(), opts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}
