package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/razor-flap/internal/clock"
	"github.com/vovakirdan/razor-flap/internal/games/flap"
	"github.com/vovakirdan/razor-flap/internal/storage"
)

var (
	flagSimRealtime   bool
	flagSimMaxSeconds float64
	flagSimMargin     float64
	flagSimRecord     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Play one run without a screen. The autopilot flaps whenever the player
sinks below the next gap, and the death certificate is printed at the end.

By default frames are stepped as fast as possible with the nominal frame time;
--realtime drives the run from the frame clock instead.

Examples:
  arcade sim --seed 42
  arcade sim --realtime --max-seconds 20
  arcade sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at wall-clock speed on the frame clock")
	simCmd.Flags().Float64Var(&flagSimMaxSeconds, "max-seconds", 120, "Stop after this much simulated time")
	simCmd.Flags().Float64Var(&flagSimMargin, "margin", 40, "Autopilot slack below the gap centre, in logical pixels")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store the run in the runs database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	var cert *flap.DeathCertificate
	opts := []flap.Option{flap.WithPlayerName("autopilot")}
	if flagSeed != 0 {
		opts = append(opts, flap.WithSeed(flagSeed))
	}

	simMs := 0.0
	if !flagSimRealtime {
		start := time.Now()
		opts = append(opts, flap.WithClock(func() time.Time {
			return start.Add(time.Duration(simMs * float64(time.Millisecond)))
		}))
	}

	s := flap.NewSession(cfg, flap.Hooks{
		Logger:  logger,
		Results: flap.ResultFunc(func(c flap.DeathCertificate) { cert = &c }),
	}, opts...)
	pilot := flap.Autopilot{Margin: flagSimMargin}
	limit := flagSimMaxSeconds * 1000

	step := func(dtMs float64) bool {
		if pilot.ShouldFlap(s) {
			s.Activate()
		}
		s.Advance(dtMs)
		simMs += dtMs
		return s.State() != flap.StateGameOver && simMs < limit
	}

	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loop := clock.NewLoop(clock.FrameInterval(flagFPS), clock.NewSmoother(cfg.Clock), func(d time.Duration) bool {
			return step(float64(d) / float64(time.Millisecond))
		})
		if err := loop.Start(ctx); err != nil {
			return err
		}
		<-loop.Done()
	} else {
		frame := cfg.Clock.FrameMs()
		for step(frame) {
		}
	}

	out := cmd.OutOrStdout()
	if cert == nil {
		// stopped while the death animation was still running
		cert = s.Certificate()
	}
	if cert == nil {
		fmt.Fprintf(out, "autopilot survived %.1fs with score %d\n", simMs/1000, s.Score())
		return nil
	}
	fmt.Fprintln(out, cert.Summary())
	logger.Debug("run finished", "run", cert.ID, "cause", cert.Cause, "sim_ms", simMs)

	if flagSimRecord {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.RecordRun(storage.RunFromCertificate(*cert)); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Fprintf(out, "recorded run %s\n", cert.ID)
	}
	return nil
}
