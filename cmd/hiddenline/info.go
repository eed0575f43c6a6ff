package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hiddenline/pkg/analysis"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/philipparndt/hiddenline/pkg/stl"
)

var (
	infoX float64
	infoY float64
)

var infoCmd = &cobra.Command{
	Use:   "info [file.stl]",
	Short: "Display information about the box or an STL file",
	Long: `Without arguments, show the configured box: dimensions, surface area,
volume, edge lengths, face visibility and a closure check of its topology.
With an STL file (for example one written by export), show the same
measurements for the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoX, "x", 0, "Rotation about X in degrees")
	infoCmd.Flags().Float64Var(&infoY, "y", 0, "Rotation about Y in degrees")
}

func runInfo(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return printModelInfo(args[0])
	}

	o := scene.NewOrientation(infoX, infoY)
	result := analysis.AnalyzeBox(cfg.Topology(), o)

	fmt.Println("Box Information")
	fmt.Println("====================")
	if loadedFrom != "" {
		fmt.Printf("Config: %s\n", loadedFrom)
	}
	fmt.Printf("Size: %g x %g x %g\n", cfg.Box.Width, cfg.Box.Height, cfg.Box.Depth)
	fmt.Printf("Resting tilt: X %g°, Y %g°\n", cfg.Box.TiltX, cfg.Box.TiltY)
	fmt.Printf("Rotation: %s\n\n", o)

	fmt.Println("Topology:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Edges: %d\n", len(result.Edges))
	fmt.Printf("  Faces: %d\n", len(result.Faces))
	if result.Closed {
		fmt.Println("  Closed: yes")
	} else {
		fmt.Printf("  Closed: no (%s)\n", result.Problem)
	}
	fmt.Println()

	fmt.Println("Measurements:")
	fmt.Printf("  Surface Area: %.3f square units\n", result.SurfaceArea)
	fmt.Printf("  Volume: %.3f cubic units\n", result.Volume)
	fmt.Printf("  Screen extent: %s\n\n", analysis.FormatVector(result.Dimensions))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.3f units\n", result.EdgeStats.Min)
	fmt.Printf("  Maximum: %.3f units\n", result.EdgeStats.Max)
	fmt.Printf("  Average: %.3f units\n\n", result.EdgeStats.Avg)

	fmt.Printf("Faces (%d visible edges):\n", result.VisibleEdges)
	for _, f := range result.Faces {
		state := "hidden"
		if f.Visible {
			state = "visible"
		}
		fmt.Printf("  %-7s %-8s area %-12.3f normal %s\n", f.Name, state, f.Area, analysis.FormatVector(f.Normal))
	}
	return nil
}

func printModelInfo(filename string) error {
	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("error parsing STL file: %w", err)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeStats.Count)
	fmt.Printf("  Surface Area: %.3f square units\n", result.SurfaceArea)
	fmt.Printf("  Volume: %.3f cubic units\n\n", result.Volume)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Printf("  Diagonal: %.3f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.3f units\n", result.EdgeStats.Min)
	fmt.Printf("  Maximum: %.3f units\n", result.EdgeStats.Max)
	fmt.Printf("  Average: %.3f units\n", result.EdgeStats.Avg)
	return nil
}
