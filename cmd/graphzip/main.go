// Command graphzip is the CLI driver for the streaming graph-pattern
// compressor: compress `.graph` files, dump a saved dictionary, or render
// one to SVG.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
