package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/internal/logger"
	"github.com/philipparndt/hiddenline/version"
)

var (
	configPath string
	overrides  config.Overrides

	// Set by loadConfig before any command runs
	cfg        *config.Config
	loadedFrom string
)

var rootCmd = &cobra.Command{
	Use:   "hiddenline",
	Short: "Rotate a box and compare its wireframe and hidden-line views",
	Long: `hiddenline draws a rectangular box twice: as a full wireframe and with
back faces removed. Rotate it with W/S (X axis) and A/D (Y axis).

Without a subcommand the interactive window opens. The headless commands
render frames, list edges, analyze the box and export it as STL or glTF.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runView,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file (default: search ./"+config.FileName+" and the user config dir)")
	flags.BoolVar(&overrides.Debug, "debug", false, "Enable debug logging")
	flags.StringVar(&overrides.LogFile, "log-file", "", "Also write logs to this file (rotated)")
	flags.IntVar(&overrides.Width, "width", 0, "Viewport width in pixels")
	flags.IntVar(&overrides.Height, "height", 0, "Viewport height in pixels")
	flags.Float64Var(&overrides.Step, "step", 0, "Rotation step in degrees per key press")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, path, err := config.Load(configPath, overrides)
	if err != nil {
		return err
	}
	if err := logger.Init(c.Logging.Level, c.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, loadedFrom = c, path
	logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("command", cmd.Name()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
