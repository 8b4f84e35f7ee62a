package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/chartkit"
	"github.com/raykavin/chartkit/internal/config"
	"github.com/raykavin/chartkit/pkg/render"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// Batch command flags
var (
	batchKind   string
	batchOutDir string
)

// Chart kinds accepted by the batch command for JSON inputs.
const (
	kindBar  = "bar"
	kindLine = "line"
	kindPie  = "pie"
)

func buildBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch <file or directory>...",
		Short: "Render every JSON and CSV file found in the arguments",
		Long: "Render a chart per input file. CSV files become candlestick charts;\n" +
			"JSON series become the chart selected by --kind.",
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	batchCmd.Flags().StringVarP(&batchKind, "kind", "k", kindBar, "Chart for JSON inputs: bar, line or pie")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "d", ".", "Directory receiving the charts")

	return batchCmd
}

// collectInputs expands directories into the JSON and CSV files they hold.
func collectInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		for _, pattern := range []string{"*.json", "*.csv"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
		}
	}
	return files, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	switch batchKind {
	case kindBar, kindLine, kindPie:
	default:
		return fmt.Errorf("%w: kind %q, want bar, line or pie", config.ErrInvalid, batchKind)
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	files, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no JSON or CSV files in %s", strings.Join(args, ", "))
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", batchOutDir, err)
	}

	progressBar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
	)

	var failed int
	for _, file := range files {
		if err := renderFile(cmd, cfg, file); err != nil {
			chartkit.DefaultLog.WithError(err).WithField("file", file).Error("render failed")
			failed++
		}

		if err := progressBar.Add(1); err != nil {
			chartkit.DefaultLog.Warnf("update progressbar fail: %v", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d charts failed", failed, len(files))
	}
	return nil
}

func renderFile(cmd *cobra.Command, cfg *config.Config, file string) error {
	chart, err := fileChart(cmd, cfg, file)
	if err != nil {
		return err
	}

	output := filepath.Join(batchOutDir, outputPath(&config.Config{Format: cfg.Format}, file))
	return saveChart(cmd, chart, cfg.Format, output)
}

func fileChart(cmd *cobra.Command, cfg *config.Config, file string) (*render.Chart, error) {
	if strings.EqualFold(filepath.Ext(file), ".csv") {
		candles, err := loadCandles(cmd.Context(), cfg, file)
		if err != nil {
			return nil, err
		}
		chart, _ := candleChart(cfg, candles)
		return chart, nil
	}

	series, err := readSeries(cmd, file)
	if err != nil {
		return nil, err
	}

	switch batchKind {
	case kindLine:
		chart, _ := lineChart(cfg, series)
		return chart, nil
	case kindPie:
		chart, _, err := pieChart(cfg, series)
		return chart, err
	default:
		chart, _ := barChart(cfg, series)
		return chart, nil
	}
}
