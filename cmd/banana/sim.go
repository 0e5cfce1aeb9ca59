package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/banana/internal/assets"
	"github.com/vovakirdan/banana/internal/config"
	"github.com/vovakirdan/banana/internal/core"
	"github.com/vovakirdan/banana/internal/game"
	"github.com/vovakirdan/banana/internal/platform/eventlog"
	"github.com/vovakirdan/banana/internal/render"
)

var (
	flagFrame bool
	flagCols  int
	flagRows  int
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run a command script headless",
	Long: `Run the simulation without a terminal UI, one command per tick, and
print the final snapshot as YAML.

Script commands:
  L   - Walk left
  R   - Walk right
  J   - Jump
  .   - Idle

A number after a command repeats it.

Examples:
  banana sim 'R4J.30'
  banana sim 'R66R' --debug
  banana sim 'RJ.10' --frame --cols 100 --rows 30`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Also print the final frame as text")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Frame width in cells")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Frame height in cells")
}

func runSim(cmd *cobra.Command, args []string) error {
	cmds, err := parseScript(args[0])
	if err != nil {
		return err
	}
	world, err := loadWorld()
	if err != nil {
		return err
	}

	snap, err := simulate(world, cmds, newLogger(os.Stderr))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if !flagFrame {
		return nil
	}
	frame, err := drawFrame(world, snap, flagCols, flagRows)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "---")
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

// simulate runs cmds against a fresh game and returns the final snapshot.
func simulate(world config.WorldConfig, cmds []core.Command, logger *log.Logger) (game.Snapshot, error) {
	g, err := game.New(world)
	if err != nil {
		return game.Snapshot{}, err
	}
	for _, c := range cmds {
		events := g.Tick(c)
		eventlog.Events(logger, g.Snapshot().Tick, events)
	}
	logger.Info("simulation finished", "ticks", len(cmds), "score", g.State().Score)
	return g.Snapshot(), nil
}

// drawFrame renders snap as plain text.
func drawFrame(world config.WorldConfig, snap game.Snapshot, cols, rows int) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("frame size must be positive, got %dx%d", cols, rows)
	}
	reg, err := assets.Load()
	if err != nil {
		return "", err
	}
	screen := core.NewScreen(cols, rows)
	render.New(reg, world).Draw(screen, snap)
	return screen.String(), nil
}
