package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ebalakin/goldtris/internal/core"
	"github.com/ebalakin/goldtris/internal/games/goldtris"
	"github.com/ebalakin/goldtris/internal/platform/tui"
	"github.com/ebalakin/goldtris/internal/registry"
	"github.com/ebalakin/goldtris/internal/storage"
)

var (
	flagConfig string
	flagGhost  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Down/S/J   - Soft drop
  Up/W/X     - Rotate
  Space      - Hard drop
  P/Esc      - Pause
  B/Tab      - Scoreboard (while paused or after game over)
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  goldtris play
  goldtris play --seed 42
  goldtris play --config ./my-goldtris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagGhost, "ghost", true, "Show the drop-position ghost piece")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early so the game lays out correctly from tick one
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	goldtris.SetConfigPath(flagConfig)
	if cmd.Flags().Changed("ghost") {
		goldtris.SetGhostOverride(flagGhost)
	}

	game, err := registry.Create("goldtris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
