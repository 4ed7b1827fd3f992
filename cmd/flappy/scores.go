//go:build !js

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best runs recorded in the database.

In a terminal this opens an interactive scoreboard. When output is
piped, a plain table is printed instead.

Examples:
  flappy scores
  flappy scores --limit 5 | cat`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var resetScoresCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Clear the score history and the high score",
	Args:  cobra.NoArgs,
	RunE:  runResetScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print when not interactive")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	title, ok := registry.Title(flappy.ID)
	if !ok {
		title = "Flappy Bird"
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, flappy.ID, title, width, height)
	}

	return printScores(os.Stdout, store, title, flagScoresLimit)
}

// printScores writes the top scores as a plain table.
func printScores(w io.Writer, store *storage.Store, title string, limit int) error {
	scores, err := store.TopScores(flappy.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	best, err := storage.NewHighScores(store, storage.HighScoreKey).LoadHighScore()
	if err != nil {
		return nil
	}
	fmt.Fprintf(w, "\nBest: %d\n", best)
	return nil
}

func runResetScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(flappy.ID); err != nil {
		return fmt.Errorf("clearing score history: %w", err)
	}
	if err := storage.NewHighScores(store, storage.HighScoreKey).Clear(); err != nil {
		return fmt.Errorf("clearing high score: %w", err)
	}

	logger.Info("scores cleared", "db", flagDBPath)
	return nil
}
