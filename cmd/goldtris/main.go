// goldtris is a falling-block puzzle game for the terminal, with a rare
// gold piece that pays bonus points when its blocks clear in a line.
//
// Usage:
//
//	goldtris play            - Play in the current terminal
//	goldtris serve           - Start SSH server for remote play
//	goldtris scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.goldtris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebalakin/goldtris/internal/storage"

	// Import the game to register it
	_ "github.com/ebalakin/goldtris/internal/games/goldtris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldtris",
	Short: "Goldtris - falling blocks with a golden twist",
	Long: `Goldtris is a terminal falling-block puzzle game. Stack pieces,
clear lines, and watch for the rare gold piece: clearing a line through
its spawn row pays a bonus per gold block.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  goldtris play
  goldtris play --seed 42
  goldtris serve --ssh :2222
  goldtris scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
