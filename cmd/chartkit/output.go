package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/chartkit"
	"github.com/raykavin/chartkit/internal/config"
	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/feed"
	"github.com/raykavin/chartkit/pkg/render"

	"github.com/spf13/cobra"
)

const stdio = "-"

func inputArg(args []string) string {
	if len(args) == 0 {
		return stdio
	}
	return args[0]
}

func readSeries(cmd *cobra.Command, input string) ([]core.DataSeries, error) {
	if input == stdio {
		return feed.ReadSeriesJSON(cmd.InOrStdin())
	}
	return feed.ReadSeriesFile(input)
}

// outputPath names the chart written for input: the configured output, or
// the input's base name with the format as extension.
func outputPath(cfg *config.Config, input string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	if input == stdio {
		return stdio
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + cfg.Format
}

func encode(w io.Writer, chart *render.Chart, format string) error {
	if format == config.FormatPNG {
		return render.WritePNG(w, chart)
	}
	return render.WriteSVG(w, chart)
}

func saveChart(cmd *cobra.Command, chart *render.Chart, format, output string) error {
	if output == stdio {
		return encode(cmd.OutOrStdout(), chart, format)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer file.Close()

	if err := encode(file, chart, format); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	chartkit.DefaultLog.WithField("file", output).Info("chart written")
	return nil
}

// reportWriter keeps tables off stdout when the chart itself goes there.
func reportWriter(cmd *cobra.Command, output string) io.Writer {
	if output == stdio {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}
