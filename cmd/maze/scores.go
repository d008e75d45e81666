package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs for a game",
	Long: `Display the best recorded runs for a game (default: maze).

Runs are ranked by score, then by time. In a terminal the table is
interactive; with --plain or when piped, it is printed as text.

Examples:
  maze scores
  maze scores --plain --limit 5
  maze scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print as text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		newLogger("maze").Info("runs cleared", "game", gameID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if _, err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(store, gameID, title)
}

// printRuns writes the best runs and aggregate stats as plain text.
func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' and find the treasure to record one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-8s  %-7s  %-12s  %s\n", "Rank", "Score", "Moves/Par", "Time", "Size", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-8s  %-7s  %-12s  %s\n", "----", "-----", "---------", "----", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-9s  %-8s  %-7s  %-12s  %s\n",
			i+1,
			r.Score,
			fmt.Sprintf("%d/%d", r.Moves, r.Par),
			r.Duration.Round(100*time.Millisecond),
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Player,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Printf("Best: %d (seed %d)\n", best.Score, best.Seed)
	}
	if stats, err := store.GameStats(gameID); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d, avg moves %.1f, fastest %s\n",
			stats.Runs, stats.AvgMoves, stats.FastestRun.Round(100*time.Millisecond))
	}
}
