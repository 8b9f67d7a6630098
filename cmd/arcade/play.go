package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/razor-flap/internal/audio"
	"github.com/vovakirdan/razor-flap/internal/core"
	"github.com/vovakirdan/razor-flap/internal/platform/tui"
	"github.com/vovakirdan/razor-flap/internal/registry"
	"github.com/vovakirdan/razor-flap/internal/settings"
)

var (
	flagTheme   string
	flagName    string
	flagMute    bool
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Razor Flap",
	Long: `Start the game in this terminal.

Controls:
  Space/Enter/Up/W - Start, flap, play again
  Mouse click      - Flap, or press an on-screen button
  L/Tab            - Leaderboard (between runs)
  S                - Settings (between runs)
  N                - Edit player name (between runs)
  M                - Mute / unmute
  T                - Next theme
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, the tuned speed and spawn rate throughout

Examples:
  arcade play
  arcade play --difficulty hard
  arcade play --theme mono --mute
  arcade play --name ada --config ./my-flap.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme ID (see 'arcade themes')")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with runs")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	if flagTheme != "" && !registry.Exists(flagTheme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", flagTheme)
		fmt.Fprintln(os.Stderr, "Run 'arcade themes' to see available themes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:      store,
		KV:         settings.NewMemoryKV(),
		Logger:     logger,
		PlayerName: flagName,
	}
	if store != nil {
		opts.KV = store
	}
	if err := applyPlayFlags(opts.KV); err != nil {
		logger.Warn("could not store flag settings", "err", err)
	}

	if !flagNoAudio {
		opts.Audio = openAudio(opts.KV, logger)
	}

	runErr := tui.Run(opts)

	if opts.Audio != nil {
		opts.Audio.Close()
	}
	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// applyPlayFlags writes --theme and --mute into the stored settings so the
// game picks them up on load.
func applyPlayFlags(kv settings.KV) error {
	if flagTheme == "" && !flagMute {
		return nil
	}
	s, err := settings.Load(kv)
	if err != nil {
		return err
	}
	if flagTheme != "" {
		s.Theme = flagTheme
	}
	if flagMute {
		s.Muted = true
	}
	return settings.Save(kv, s)
}

// openAudio opens the sound device. Any failure means a silent game.
func openAudio(kv settings.KV, logger *log.Logger) *audio.Player {
	s, err := settings.Load(kv)
	if err != nil {
		logger.Warn("load settings failed", "err", err)
	}
	p := audio.NewPlayer(s)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, playing silent", "err", err)
		return nil
	}
	return p
}
