package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hiddenline/pkg/analysis"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

var (
	edgesX        float64
	edgesY        float64
	edgesAll      bool
	edgesCount    int
	edgesLongest  bool
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "List the edges drawn by the hidden-line view",
	Long:  "List the visible (or all) box edges at a rotation, with their camera-space endpoints, lengths and owning faces.",
	Args:  cobra.NoArgs,
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().Float64Var(&edgesX, "x", 0, "Rotation about X in degrees")
	edgesCmd.Flags().Float64Var(&edgesY, "y", 0, "Rotation about Y in degrees")
	edgesCmd.Flags().BoolVarP(&edgesAll, "all", "a", false, "Include edges hidden by back-face culling")
	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 12, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Sort longest first")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Sort shortest first")
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesLongest && edgesShortest {
		return fmt.Errorf("--longest and --shortest are mutually exclusive")
	}

	o := scene.NewOrientation(edgesX, edgesY)
	result := analysis.AnalyzeBox(cfg.Topology(), o)

	edges := result.Edges
	title := "All Edges"
	if !edgesAll {
		edges = analysis.FilterVisible(edges)
		title = "Visible Edges"
	}

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(edges, edgesCount)
		title += ", longest first"
	case edgesShortest:
		edges = analysis.FindShortestEdges(edges, edgesCount)
		title += ", shortest first"
	default:
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Printf("%s at %s\n", title, o)
	fmt.Println("====================")
	fmt.Printf("Visible edges: %d of %d\n", result.VisibleEdges, len(result.Edges))
	fmt.Printf("Visible faces: %s\n\n", strings.Join(visibleFaceNames(result), ", "))

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return nil
	}

	fmt.Printf("%-6s %-30s %-30s %-10s %s\n", "Edge", "Start", "End", "Length", "Faces")
	fmt.Println(strings.Repeat("-", 100))
	for _, edge := range edges {
		fmt.Printf("%-6s %-30s %-30s %-10.3f %s\n",
			edge.Edge,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			strings.Join(edge.Faces, "/"))
	}
	return nil
}

func visibleFaceNames(result *analysis.Report) []string {
	var names []string
	for _, f := range result.Faces {
		if f.Visible {
			names = append(names, f.Name)
		}
	}
	return names
}
