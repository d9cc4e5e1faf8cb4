package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpacker/graphzip/compressor"
	"github.com/cpacker/graphzip/state"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <state-file>",
	Short: "Print a saved dictionary in the dictionary-dump text format",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	comp, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	return comp.Dump(os.Stdout)
}

// loadSnapshot reads the state file at path and rebuilds a Compressor from
// it using the currently resolved configuration.
func loadSnapshot(path string) (*compressor.Compressor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphzip: %w", err)
	}
	defer f.Close()

	snap, err := state.Load(f)
	if err != nil {
		return nil, fmt.Errorf("graphzip: %s: %w", path, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("graphzip: %w", err)
	}

	comp, err := compressor.FromSnapshot(cfg, snap, nil)
	if err != nil {
		return nil, fmt.Errorf("graphzip: %w", err)
	}
	return comp, nil
}
