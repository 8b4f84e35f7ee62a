package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chartkit",
		Short:         "Render bar, line, candlestick and pie charts as SVG or PNG",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML or JSON)")
	flags.Float64("width", 800, "Chart width in pixels")
	flags.Float64("height", 400, "Chart height in pixels")
	flags.String("title", "", "Chart title")
	flags.StringP("format", "f", "svg", "Output format (svg or png)")
	flags.StringP("output", "o", "", `Output file, "-" for stdout (default: input name with the format extension)`)
	flags.Bool("table", false, "Print a table of the computed chart")

	rootCmd.AddCommand(
		buildBarCmd(),
		buildLineCmd(),
		buildCandleCmd(),
		buildPieCmd(),
		buildBatchCmd(),
	)

	return rootCmd
}
