package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored record",
	Long: `Export the stored records in the order they are kept.

JSON is an array of {"date","mood","note","timestamp"} objects, the same
shape the store uses. Plain output prints one line per record.`,
	Example: `  sunspot export --json
  sunspot export --json --output moods.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()
			w = f
		}
		return exportRun(w)
	},
}

func exportRun(w io.Writer) error {
	records, err := store.Records()
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	if jsonOutput {
		return ui.FormatJSON(w, records)
	}
	ui.FormatRecordList(w, records)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
