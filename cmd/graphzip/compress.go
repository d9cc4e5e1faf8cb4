package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpacker/graphzip/compressor"
)

var saveStatePath string

var compressCmd = &cobra.Command{
	Use:   "compress <file>...",
	Short: "Compress one or more .graph files, printing the resulting dictionary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVar(&saveStatePath, "save", "", "write final compressor state to this YAML file")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("graphzip: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	comp, err := compressor.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("graphzip: %w", err)
	}

	for _, path := range args {
		if err := comp.CompressFile(path); err != nil {
			return fmt.Errorf("graphzip: %w", err)
		}
	}

	if saveStatePath != "" {
		f, err := os.Create(saveStatePath)
		if err != nil {
			return fmt.Errorf("graphzip: %w", err)
		}
		defer f.Close()
		if err := comp.SaveState(f); err != nil {
			return fmt.Errorf("graphzip: %w", err)
		}
	}

	return comp.Dump(os.Stdout)
}
