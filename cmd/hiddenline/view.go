package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hiddenline/internal/app"
	"github.com/philipparndt/hiddenline/internal/logger"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive window (default)",
	Long: `Open a window with the wireframe view on the left and the hidden-line view
on the right. Both show the current rotation. When a config file is in use
and watch is enabled, edits to it are applied without restarting.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	session, err := app.NewSession(cfg, logger.Named("session"))
	if err != nil {
		return err
	}

	fmt.Println("hiddenline controls:")
	for _, line := range session.Keymap().Help() {
		fmt.Println("  " + line)
	}

	return app.RunWindow(cmd.Context(), session, app.WindowOptions{
		ConfigPath: loadedFrom,
		Watch:      cfg.Watch,
		Overrides:  overrides,
	}, logger.Log)
}
