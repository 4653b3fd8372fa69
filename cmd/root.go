package cmd

import (
	"fmt"
	"os"

	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/config"
	"github.com/chris-regnier/sunspot/internal/kv"
	"github.com/chris-regnier/sunspot/internal/kv/file"
	"github.com/chris-regnier/sunspot/internal/kv/sqlite"
	"github.com/chris-regnier/sunspot/internal/ledger"
	"github.com/chris-regnier/sunspot/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	surface        kv.Surface
	store          *ledger.Store
	logger         = logging.Discard()
	clk            = clock.System()
)

var rootCmd = &cobra.Command{
	Use:   "sunspot",
	Short: "Record today's inner weather",
	Long: `sunspot is a terminal mood journal. Pick one mood a day from a small
weather palette, add a note if you like, and it is kept locally. Run it
again the same day to see or change what you recorded.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		logger = logging.New(os.Stderr, appConfig.LogLevel)

		surface, err = openSurface(appConfig)
		if err != nil {
			return err
		}
		store = ledger.New(surface,
			ledger.WithKey(appConfig.LedgerKey),
			ledger.WithLogger(logger),
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if surface == nil {
			return nil
		}
		return surface.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to today's record
			return todayRun(cmd.OutOrStdout())
		}
		return recorderRun(cmd.Context())
	},
}

// openSurface initializes the configured key-value backend.
func openSurface(cfg *config.Config) (kv.Surface, error) {
	switch cfg.Storage {
	case "file":
		s, err := file.New(cfg.DataDir, cfg.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("initializing file storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(cfg.DataDir, cfg.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (file|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
