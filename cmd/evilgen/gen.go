package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evilgen/internal/config"
	"evilgen/internal/pattern"
	"evilgen/internal/report"
	"evilgen/internal/walker"
)

var (
	patternFile string
	outPath     string
	format      string
	maxPaths    int
)

var genCmd = &cobra.Command{
	Use:   "gen [pattern...]",
	Short: "Generate path and evil strings for patterns",
	Long: `Generate path and evil strings for each pattern given as an argument or,
with --file, one per line (blank lines and lines starting with # are skipped).`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&patternFile, "file", "f", "", "file with one pattern per line")
	genCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	genCmd.Flags().StringVar(&format, "format", config.FormatNDJSON, "output format: ndjson or text")
	genCmd.Flags().IntVar(&maxPaths, "max-paths", walker.DefaultMaxPaths, "maximum paths explored per pattern")
}

func runGen(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("max-paths") {
		cfg.MaxPaths = maxPaths
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	patterns := append([]string{}, args...)
	if patternFile != "" {
		fromFile, err := readPatterns(patternFile)
		if err != nil {
			return err
		}
		patterns = append(patterns, fromFile...)
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no patterns given")
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ndjson := report.NewWriter(out)
	failed := 0
	for _, src := range patterns {
		res, err := generate(cmd.Context(), src)
		if err != nil {
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Warn("skipping pattern", zap.String("pattern", src), zap.Error(err))
			failed++
			continue
		}
		if cfg.Format == config.FormatText {
			err = report.Render(out, res)
		} else {
			err = ndjson.Write(res)
		}
		if err != nil {
			return err
		}
	}
	if failed == len(patterns) {
		return fmt.Errorf("no pattern could be parsed")
	}
	return nil
}

func generate(ctx context.Context, src string) (*walker.Result, error) {
	p, err := pattern.Parse(src)
	if err != nil {
		return nil, err
	}
	w := walker.New(p, walker.WithMaxPaths(cfg.MaxPaths), walker.WithLogger(logger))
	return w.Generate(ctx)
}

func readPatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
