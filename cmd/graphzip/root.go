package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpacker/graphzip/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "graphzip",
	Short: "Stream a labeled graph-edge stream through the pattern compressor",
	Long: `graphzip reads a potentially unbounded stream of labeled graph
edges, partitions it into fixed-size batches, and maintains a bounded
dictionary of recurring labeled subgraph patterns scored by how much
replacing each occurrence would shrink the stream.`,
}

func init() {
	cobra.OnInitialize(initViperConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().Int("batch-size", 10, "edges accumulated per batch (alpha)")
	rootCmd.PersistentFlags().Int("dict-size", config.Unbounded, "dictionary bound theta (-1 = unbounded)")
	rootCmd.PersistentFlags().Bool("directed", false, "treat the graph stream as directed")
	rootCmd.PersistentFlags().Bool("match-strict", true, "require label-matching subgraph isomorphism")
	rootCmd.PersistentFlags().Bool("add-implicit-vertices", true, "implicitly add undeclared edge endpoints")
	rootCmd.PersistentFlags().Bool("label-history-per-file", false, "clear the vertex-id-to-label map between files")

	bind := func(key, flag string) {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "graphzip: binding --%s: %v\n", flag, err)
			os.Exit(1)
		}
	}
	bind("batch_size", "batch-size")
	bind("dict_size", "dict-size")
	bind("directed", "directed")
	bind("match_strict", "match-strict")
	bind("add_implicit_vertices", "add-implicit-vertices")
	bind("label_history_per_file", "label-history-per-file")

	viper.SetEnvPrefix("GRAPHZIP")
	viper.AutomaticEnv()
}

func initViperConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "graphzip: reading config file %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// loadConfig resolves the six compressor parameters via viper, layered in
// viper's order of precedence: flags given on the command line, then
// GRAPHZIP_* environment variables, then the optional YAML config file,
// then the flag defaults.
func loadConfig() (config.Config, error) {
	return config.New(
		config.WithBatchSize(viper.GetInt("batch_size")),
		config.WithDictSize(viper.GetInt("dict_size")),
		config.WithDirected(viper.GetBool("directed")),
		config.WithMatchStrict(viper.GetBool("match_strict")),
		config.WithAddImplicitVertices(viper.GetBool("add_implicit_vertices")),
		config.WithLabelHistoryPerFile(viper.GetBool("label_history_per_file")),
	)
}
