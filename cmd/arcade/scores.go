package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/razor-flap/internal/platform/tui"
	"github.com/vovakirdan/razor-flap/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  arcade scores
  arcade scores --limit 25
  arcade scores --recent
  arcade scores --tui
  arcade scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All runs deleted.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(0); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	title := "High Scores"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	fmt.Fprintf(out, "%s - Razor Flap\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'arcade play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-20s  %8s  %7s  %-16s  %s\n", "Rank", "Player", "Score", "Time", "Cause", "When")
	fmt.Fprintf(out, "  %-4s  %-20s  %8s  %7s  %-16s  %s\n", "----", "------", "-----", "----", "-----", "----")

	// Print runs
	for i, r := range runs {
		name := r.PlayerName
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(out, "  %-4d  %-20s  %8s  %6.1fs  %-16s  %s\n",
			i+1, name, humanize.Comma(int64(r.Score)), r.Duration().Seconds(), r.Cause, humanize.Time(r.CreatedAt))
	}

	// Show stats
	st, err := store.Stats()
	if err == nil && st.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %s   Runs: %s   Avg: %.1f   Played: %s\n",
			humanize.Comma(int64(st.HighScore)), humanize.Comma(int64(st.Runs)), st.AvgScore,
			st.TotalPlay().Round(time.Second))
		if !st.LastPlayed.IsZero() {
			fmt.Fprintf(out, "Last played %s\n", humanize.Time(st.LastPlayed))
		}
	}
	return nil
}
