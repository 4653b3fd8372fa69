package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chris-regnier/sunspot/internal/editor"
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/session"
	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	recordEdit bool
	recordYes  bool
)

// recordOptions controls the optional interactive parts of recordRun.
type recordOptions struct {
	// editNote opens the note in an editor when set.
	editNote func(initial string) (string, error)
	// confirm is asked before replacing today's record; nil means yes.
	confirm func(prompt string) (bool, error)
}

var recordCmd = &cobra.Command{
	Use:   "record <mood> [note...]",
	Short: "Record today's mood",
	Long: `Record today's mood, replacing any earlier record for today.

Without a note argument the note already recorded today is kept. Use --edit
to write the note in your editor. When a record already exists and the
terminal is interactive you are asked before it is replaced; --yes skips
the question.

Moods: sunny, cloudy, rainy, stormy, rainbow.`,
	Example: `  sunspot record sunny
  sunspot record rainy "long day, early night"
  sunspot record rainbow --edit
  sunspot record cloudy --yes`,
	Args:     cobra.MinimumNArgs(1),
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := recordOptions{}
		if recordEdit {
			opts.editNote = func(initial string) (string, error) {
				note, _, err := editor.EditNote(editor.ResolveEditor(appConfig.Editor), initial)
				return note, err
			}
		}
		if !recordYes && !jsonOutput && term.IsTerminal(int(os.Stdin.Fd())) {
			theme := ui.ResolveTheme(appConfig.Theme, "")
			opts.confirm = func(prompt string) (bool, error) {
				return ui.Confirm(prompt, theme)
			}
		}
		return recordRun(cmd.OutOrStdout(), args, opts)
	},
}

func recordRun(w io.Writer, args []string, opts recordOptions) error {
	m, err := mood.Parse(args[0])
	if err != nil {
		return err
	}

	ctrl := session.New(store, clk,
		session.WithLogger(logger),
		session.WithConfirmDelay(appConfig.ConfirmDelayDuration()),
	)
	defer ctrl.Close()

	st := ctrl.Snapshot()
	if st.Err != nil {
		return fmt.Errorf("reading today's record: %w", st.Err)
	}
	existing := st.LastSaved

	note, hasNote := strings.Join(args[1:], " "), len(args) > 1
	if opts.editNote != nil {
		initial := note
		if !hasNote && existing != nil {
			initial = existing.Note
		}
		if note, err = opts.editNote(initial); err != nil {
			return err
		}
		hasNote = true
	}

	if existing != nil && opts.confirm != nil {
		ok, err := opts.confirm(fmt.Sprintf("Replace today's %s %s?", existing.Mood.Icon(), existing.Mood))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Kept today's record.")
			return nil
		}
	}

	if err := ctrl.SelectMood(m); err != nil {
		return err
	}
	if hasNote {
		if err := ctrl.EditNote(note); err != nil {
			return err
		}
	}
	if err := ctrl.Submit(); err != nil {
		return fmt.Errorf("recording mood: %w", err)
	}

	saved := ctrl.Snapshot().LastSaved
	if jsonOutput {
		return ui.FormatJSON(w, saved)
	}
	ui.FormatSaved(w, *saved, existing != nil)
	return nil
}

func init() {
	recordCmd.Flags().BoolVarP(&recordEdit, "edit", "e", false, "write the note in $EDITOR")
	recordCmd.Flags().BoolVarP(&recordYes, "yes", "y", false, "replace today's record without asking")
	rootCmd.AddCommand(recordCmd)
}
