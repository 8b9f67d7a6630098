// arcade runs Razor Flap, a one-button razor-dodging game, in the terminal.
//
// Usage:
//
//	arcade play              - Play in this terminal
//	arcade serve             - Start SSH server for remote play
//	arcade scores            - Show the leaderboard
//	arcade themes            - List visual themes
//	arcade settings          - Show or change stored settings
//	arcade sim               - Run a headless game with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared game flags
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Razor Flap - dodge the razors in your terminal",
	Long: `Razor Flap is a one-button game: tap to flap between pairs of razors,
score a point for every pair you pass, and try to beat your best.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View the leaderboard
  themes    - List visual themes
  settings  - Show or change stored settings
  sim       - Headless run driven by the autopilot

Examples:
  arcade play
  arcade play --difficulty hard --theme classic
  arcade serve --ssh :2222
  arcade scores --recent
  arcade settings set muted true`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(simCmd)
}

// addGameFlags registers the tuning flags shared by play, serve and sim.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the tuning and applies the difficulty preset.
func loadGameConfig(logger *log.Logger) (config.FlapConfig, error) {
	cfg, err := config.LoadFlap(flagConfig)
	if err != nil {
		return cfg, err
	}
	switch p := config.DifficultyPreset(flagDifficulty); p {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyFlapPreset(&cfg, p)
	default:
		return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", flagDifficulty, "scaling", cfg.Difficulty.Enabled)
	return cfg, nil
}

// newLogger builds the process logger. When the alt screen owns the terminal,
// it writes to ~/.arcade/arcade.log instead; the returned closer closes that file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if toFile {
		f, ferr := openLogFile()
		if ferr != nil {
			// no log file, no logs: stderr would corrupt the screen
			w = io.Discard
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer, nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the runs database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("open runs database: %w", err)
	}
	return store, nil
}
