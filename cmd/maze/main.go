// maze is a terminal maze game: watch a perfect maze being carved, then
// find the treasure hidden somewhere inside it.
//
// Usage:
//
//	maze list              - List available games
//	maze play [game]       - Play a game (default: maze)
//	maze gen               - Print a generated maze
//	maze config            - Print the default YAML config
//	maze serve             - Start SSH server for remote play
//	maze scores [game]     - Show the best runs for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.maze/runs.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/maze"
)

const defaultGame = "maze"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Runner - carve a maze, then find the treasure",
	Long: `Maze Runner generates a perfect maze with a recursive backtracker,
animates its carving step by step, and then lets you hunt for the treasure
hidden in one of its corridors.

Available commands:
  list     - Show all available games
  play     - Play a maze in this terminal
  gen      - Print a generated maze as text
  config   - Print the default configuration
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  maze play
  maze play --difficulty hard --seed 42
  maze gen --rows 11 --cols 21 --seed 7
  maze serve --ssh :2222
  maze scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns a stderr logger honoring --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newFileLogger returns a logger writing to ~/.maze/maze.log, for use while
// the alternate screen owns the terminal. The returned func closes the file.
func newFileLogger(prefix string) (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Join(home, ".maze")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "maze.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Formatter:       log.LogfmtFormatter,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
