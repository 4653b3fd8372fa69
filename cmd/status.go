package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/chris-regnier/sunspot/internal/shell"
	"github.com/spf13/cobra"
)

// statusData holds the template data for status formatting.
type statusData struct {
	Icon     string
	Mood     string
	Label    string
	HasToday bool
	Backend  string
}

var (
	statusEnv     bool
	statusRefresh bool
	statusFormat  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's mood for a shell prompt",
	Long: `Show today's mood icon for shell prompt integration.

Reads from cache when fresh, queries storage when stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  sunspot status
  sunspot status --env
  sunspot status --refresh
  sunspot status --format "{{.Icon}} {{.Mood}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd.OutOrStdout(), time.Now())
	},
}

func statusRun(w io.Writer, now time.Time) error {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}
	today := clk.Today()

	cache := shell.ReadCache(appConfig.DataDir)
	if statusRefresh || !cache.IsFresh(today, now, ttl) {
		m, ok, err := shell.ComputeStatus(store, today)
		if err != nil {
			return fmt.Errorf("computing status: %w", err)
		}
		cache = &shell.PromptCache{
			Today:     ok,
			Mood:      m,
			TodayDate: today,
			Backend:   appConfig.Storage,
			UpdatedAt: now,
		}
		if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
			// Non-fatal: cache write failure shouldn't break the prompt
			logger.Warn("could not write prompt cache", "error", err)
		}
	}

	data := statusData{
		Icon:     cache.Icon(appConfig.Shell.NoTodayIcon),
		Mood:     string(cache.Mood),
		Label:    cache.Mood.Label(),
		HasToday: cache.Today,
		Backend:  cache.Backend,
	}

	switch {
	case statusEnv:
		return outputEnv(w, data)
	case statusFormat != "":
		return outputTemplate(w, data, statusFormat)
	default:
		return outputDefault(w, data)
	}
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export SUNSPOT_TODAY=%q\n", data.Icon)
	fmt.Fprintf(w, "export SUNSPOT_MOOD=%q\n", data.Mood)
	if data.Backend != "" {
		fmt.Fprintf(w, "export SUNSPOT_BACKEND=%q\n", data.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{data.Icon}
	if appConfig.Shell.ShowLabel && data.HasToday {
		parts = append(parts, data.Label)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().BoolVar(&statusRefresh, "refresh", false, "force cache refresh")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
