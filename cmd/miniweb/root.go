// Command miniweb is the CLI front end for the engine: it loads an HTML
// document (plus an optional stylesheet), runs the pipeline, and either
// dumps the resulting box tree or rasterizes it to a PNG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cssFlag    string
	widthFlag  float64
	heightFlag float64
)

var rootCmd = &cobra.Command{
	Use:   "miniweb [html-file]",
	Short: "A minimal HTML/CSS layout engine",
	Long: `miniweb parses an HTML document, cascades and inherits CSS onto
its DOM, reflows a box tree, and dumps or rasterizes the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cssFlag, "css", "", "path to a stylesheet to apply on top of the built-in defaults")
	rootCmd.PersistentFlags().Float64Var(&widthFlag, "width", 800, "viewport width in pixels")
	rootCmd.PersistentFlags().Float64Var(&heightFlag, "height", 600, "viewport height in pixels")
	rootCmd.AddCommand(renderCmd)
}

// Execute runs the CLI, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
