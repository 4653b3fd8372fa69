package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chris-regnier/sunspot/internal/diary"
	"github.com/chris-regnier/sunspot/internal/ui"
	"github.com/spf13/cobra"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Browse long-form diary posts",
	Long: `Browse markdown diary posts kept in diary_dir.

Each post is a .md file with front-matter:

  ---
  title: Walk by the river
  date: 2026-03-14
  mood: rainbow
  tags: [walk]
  ---`,
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return diaryListRun(cmd.OutOrStdout())
	},
}

var diaryShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one diary post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return diaryShowRun(cmd.OutOrStdout(), args[0])
	},
}

func diaryListRun(w io.Writer) error {
	posts, err := diary.Load(appConfig.DiaryDir, logger)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, posts)
	}
	ui.FormatPostList(w, posts)
	return nil
}

func diaryShowRun(w io.Writer, slug string) error {
	posts, err := diary.Load(appConfig.DiaryDir, logger)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.Slug != slug {
			continue
		}
		if jsonOutput {
			return ui.FormatJSON(w, struct {
				diary.Post
				Body string `json:"body"`
			}{p, p.Body})
		}
		theme := ui.ResolveTheme(appConfig.Theme, "")
		var buf bytes.Buffer
		ui.FormatPost(&buf, p, theme.MarkdownStyle)
		return ui.Page(w, p.Title, buf.String(), theme, appConfig.MaxWidth)
	}
	return fmt.Errorf("no diary post %q", slug)
}

func init() {
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryShowCmd)
	rootCmd.AddCommand(diaryCmd)
}
