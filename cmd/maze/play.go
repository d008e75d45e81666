package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	mazegame "github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: maze).

Controls:
  Arrows/WASD/hjkl - Move
  Enter/Space      - Skip the carving animation
  P                - Pause
  R                - New maze
  B/Esc            - Best runs (when paused or finished)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 11x21 maze, slow carving
  normal - 21x41 maze
  hard   - 31x61 maze, fast carving
  huge   - 51x101 maze, very fast carving

The maze shrinks to fit the terminal unless fit_screen is disabled in the config.

Examples:
  maze play
  maze play --difficulty easy
  maze play --seed 42
  maze play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, huge")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: $USER)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Report a broken config here rather than silently using defaults in-game.
	if _, err := config.LoadMaze(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mazegame.SetConfigPath(flagConfig)
	mazegame.SetDifficultyPreset(preset)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger, closeLog, err := newFileLogger("maze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger, closeLog = nil, func() {}
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playLoop(gameID, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop alternates between a game and its best runs until the user quits.
func playLoop(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	for {
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		back, err := tui.Run(game, store, cfg, tui.Options{Player: player, Logger: logger})
		if err != nil || !back {
			return err
		}

		play, err := tui.RunScoreboard(store, gameID, game.Title(), cfg.ScreenW, cfg.ScreenH)
		if err != nil || !play {
			return err
		}

		// A fixed seed would replay the same maze; later rounds use fresh ones.
		cfg.Seed = 0
	}
}
