// asteroids is a single-player Asteroids game played in the terminal.
//
// Usage:
//
//	asteroids [--config <path>]
//
// Controls:
//
//	A/D or Left/Right - Rotate
//	W or Up           - Thrust
//	Space             - Shoot, start
//	Q, Esc or Ctrl+C  - Quit
//
// Settings are read from --config, ~/.asteroids/config.yaml or
// ./configs/asteroids.yaml, falling back to built-in defaults.
// ASTEROIDS_FPS, ASTEROIDS_SEED, ASTEROIDS_LOG_LEVEL and ASTEROIDS_LOG_FILE
// override the file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "asteroids",
		Short: "Classic Asteroids in your terminal",
		Long: `Fly a ship through a field of drifting asteroids and shoot them down.

Large asteroids split into two medium ones, medium into two small ones.
Large scores 20, medium 50 and small 100. You have three lives.

Controls:
  A/D or Left/Right  - Rotate
  W or Up            - Thrust
  Space              - Shoot / start
  Q, Esc or Ctrl+C   - Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a config YAML file")
	return cmd
}
