// banana is a side-scrolling platformer for the terminal: walk the banana
// across a scrolling world, jump, and collect coins.
//
// Usage:
//
//	banana play            - Play in the terminal (default)
//	banana sim <script>    - Run a command script headless and print the final state
//	banana config          - Print the effective world config
//
// Global flags:
//
//	--config <path>      - World config YAML (default: search ~/.banana, ./configs, embedded)
//	--collision <mode>   - Override collision mode: containment or intersect
//	--debug              - Log gameplay events
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/banana/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagCollision string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "banana",
	Short: "Banana Platforma - a side-scroller in your terminal",
	Long: `Banana Platforma is a small side-scrolling platformer. Walk left and
right to scroll the world, jump to reach the coins floating above you.

Available commands:
  play     - Play in the terminal
  sim      - Run a command script without a terminal
  config   - Print the effective world config

Examples:
  banana
  banana play --fps 30 --debug
  banana sim 'R4J.30'
  banana config --collision intersect`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCollision, "collision", "", "Collision mode: containment or intersect")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log gameplay events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadWorld resolves the world config from the global flags.
func loadWorld() (config.WorldConfig, error) {
	world, err := config.Load(expandHome(flagConfig))
	if err != nil {
		return config.WorldConfig{}, err
	}
	if flagCollision != "" {
		if err := config.ApplyCollisionMode(&world, flagCollision); err != nil {
			return config.WorldConfig{}, err
		}
	}
	return world, nil
}

// newLogger creates the structured logger shared by all commands.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "banana",
		Level:           level,
	})
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
