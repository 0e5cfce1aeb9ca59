package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/banana/internal/assets"
	"github.com/vovakirdan/banana/internal/core"
	"github.com/vovakirdan/banana/internal/game"
	"github.com/vovakirdan/banana/internal/platform/tui"
	"github.com/vovakirdan/banana/internal/render"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A       - Walk left
  Right/D      - Walk right
  Up/W/Space   - Jump
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

The terminal belongs to the game while it runs, so logs go to a file
(default $XDG_STATE_HOME/banana/banana.log).

Examples:
  banana play
  banana play --fps 30
  banana play --config ./my-world.yaml --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Bare "banana" runs play, so both accept its flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
		c.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (default $XDG_STATE_HOME/banana/banana.log)")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	world, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reg, err := assets.Load()
	if err == nil {
		err = reg.Require(g.ImageKeys()...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	logger.Info("starting", "collision", world.Collision.Mode, "screen", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(g, render.New(reg, world), logger, cfg); err != nil {
		logger.Error("tui exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("finished", "score", g.State().Score)
}

// openLogFile opens path for appending, creating its directory as needed.
// An empty path selects the XDG state directory.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		p, err := xdg.StateFile("banana/banana.log")
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
