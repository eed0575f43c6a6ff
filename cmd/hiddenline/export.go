package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/hiddenline/internal/logger"
	"github.com/philipparndt/hiddenline/pkg/export"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/philipparndt/hiddenline/pkg/stl"
)

var (
	exportFormat string
	exportX      float64
	exportY      float64
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the box as STL or glTF",
	Long: `Write the configured box at a rotation.

Formats:
  stl        binary STL, vertices rotated
  stl-ascii  ASCII STL, vertices rotated
  glb        binary glTF; rotation stored as the node transform, with the
             hidden-line outline as a second mesh
  gltf       like glb, JSON with an embedded buffer

Without --format the file extension decides.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "stl, stl-ascii, glb or gltf")
	exportCmd.Flags().Float64Var(&exportX, "x", 0, "Rotation about X in degrees")
	exportCmd.Flags().Float64Var(&exportY, "y", 0, "Rotation about Y in degrees")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	format := strings.ToLower(exportFormat)
	if format == "" {
		format = formatFromPath(path)
	}

	o := scene.NewOrientation(exportX, exportY)
	topology := cfg.Topology()

	var err error
	switch format {
	case "stl", "stl-ascii":
		model := stl.FromTopology("hiddenline box", topology, o)
		enc := stl.Binary
		if format == "stl-ascii" {
			enc = stl.ASCII
		}
		err = stl.Save(path, model, enc)
	case "glb", "gltf":
		err = export.Save(path, export.Build(topology, o), format == "glb")
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}

	logger.Info("exported", zap.String("path", path), zap.String("format", format), zap.Stringer("orientation", o))
	fmt.Printf("Wrote %s (%s, %s)\n", path, format, o)
	return nil
}

func formatFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".glb"):
		return "glb"
	case strings.HasSuffix(lower, ".gltf"):
		return "gltf"
	default:
		return "stl"
	}
}
