package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	visualizeOutDir string
	visualizeGrid   bool
	visualizeTopN   int
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize <state-file>",
	Short: "Render a saved dictionary's patterns to SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runVisualize,
}

func init() {
	visualizeCmd.Flags().StringVar(&visualizeOutDir, "out", ".", "output directory")
	visualizeCmd.Flags().BoolVar(&visualizeGrid, "grid", false, "tile every pattern onto a single SVG instead of one file each")
	visualizeCmd.Flags().IntVar(&visualizeTopN, "top", 0, "limit --grid to the top N highest-scoring patterns (0 = all)")
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	comp, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(visualizeOutDir, 0o755); err != nil {
		return fmt.Errorf("graphzip: %w", err)
	}

	if !visualizeGrid {
		return comp.VisualizeDictionarySeparate(visualizeOutDir)
	}

	out, err := os.Create(filepath.Join(visualizeOutDir, "dictionary.svg"))
	if err != nil {
		return fmt.Errorf("graphzip: %w", err)
	}
	defer out.Close()
	return comp.VisualizeDictionaryGrid(out, visualizeTopN)
}
