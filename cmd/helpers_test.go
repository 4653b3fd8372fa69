package cmd

import (
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/config"
	"github.com/chris-regnier/sunspot/internal/kv/memory"
	"github.com/chris-regnier/sunspot/internal/ledger"
	"github.com/chris-regnier/sunspot/internal/logging"
)

var testNow = time.Date(2026, 5, 3, 9, 0, 0, 0, time.Local)

const testToday = "2026-05-03"

// setupTestEnv points the command globals at an in-memory store, a fixed
// clock and a config rooted in a temp dir.
func setupTestEnv(t *testing.T) *memory.Store {
	t.Helper()
	mem := memory.New(0)
	surface = mem
	store = ledger.New(mem)
	clk = clock.Fixed(testNow)
	logger = logging.Discard()
	appConfig = &config.Config{
		Storage:      "file",
		DataDir:      t.TempDir(),
		DiaryDir:     t.TempDir(),
		ConfirmDelay: "2s",
		Shell:        config.ShellConfig{CacheTTL: "5m", NoTodayIcon: "·"},
		Theme:        config.ThemeConfig{Preset: "default-dark", MarkdownStyle: "notty"},
	}
	jsonOutput = false
	statusEnv, statusRefresh, statusFormat = false, false, ""
	t.Cleanup(func() {
		clk = clock.System()
		jsonOutput = false
		weatherClientOptions = nil
	})
	return mem
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
