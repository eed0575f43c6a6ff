package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/hiddenline/internal/app"
	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/internal/logger"
	"github.com/philipparndt/hiddenline/pkg/viewer"
)

var (
	renderKeys   string
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render both views without a window",
	Long: `Replay a key sequence from the resting pose and write the resulting frame.

Formats:
  json, yaml  draw lists of both views with projected coordinates
  png         both views side by side`,
	Example: `  hiddenline render --keys wwdd
  hiddenline render --keys aaaa --format png --out frame.png`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderKeys, "keys", "k", "", "Key presses to replay, e.g. \"wwad\"")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "json", "Output format: json, yaml or png")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "Output file, - for stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	session, err := app.NewSession(cfg, logger.Named("session"))
	if err != nil {
		return err
	}
	frame := session.Replay(renderKeys)

	w, closeOut, err := openOutput(renderOut)
	if err != nil {
		return err
	}

	if err := writeFrame(w, frame, strings.ToLower(renderFormat), cfg); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func writeFrame(w io.Writer, frame viewer.Frame, format string, c *config.Config) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "png":
		style, err := c.Style()
		if err != nil {
			return err
		}
		return viewer.EncodePNG(w, frame, c.View.Width, c.View.Height, style)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or png)", format)
	}
}

// openOutput returns stdout for "-" and a created file otherwise
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
