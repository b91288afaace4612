package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/midbel/graphlib"
	"github.com/midbel/graphlib/canvas/raster"
	"github.com/midbel/graphlib/canvas/vector"
	"github.com/midbel/graphlib/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	format string
	output string
	jobs   int
	strict bool
	only   []string
}

func (a *App) newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render every chart of a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (png, svg), overrides the file")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output directory, overrides the file")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "number of charts rendered in parallel")
	cmd.Flags().BoolVar(&opts.strict, "strict-env", false, "fail on undefined environment variables")
	cmd.Flags().StringSliceVar(&opts.only, "chart", nil, "only render the named charts")
	return cmd
}

func (a *App) runRender(ctx context.Context, file string, opts renderOptions) error {
	def, err := config.NewLoader(config.WithStrictEnv(opts.strict)).LoadFile(file)
	if err != nil {
		return err
	}
	format := strings.ToLower(def.Format)
	if opts.format != "" {
		format = strings.ToLower(opts.format)
	}
	if format != config.FormatPNG && format != config.FormatSVG {
		return fmt.Errorf("%w: %s", config.ErrFormat, format)
	}
	dir := def.Output
	if opts.output != "" {
		dir = opts.output
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(max(opts.jobs, 1))
	for _, c := range selectCharts(def.Charts, opts.only) {
		c := c
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.renderChart(c, c.Target(dir, format), format)
		})
	}
	return grp.Wait()
}

func (a *App) renderChart(c config.Chart, target, format string) error {
	logger := a.logger.With().Str("chart", c.Name).Logger()
	plan, errs, err := c.Build(logger)
	if err != nil {
		logger.Error().Err(err).Msg("chart can not be built")
		return err
	}
	for _, msg := range errs.Messages() {
		logger.Warn().Msg(msg)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	w, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := encodeTo(w, plan, newCanvas(format, plan)); err != nil {
		logger.Error().Err(err).Str("file", target).Msg("encoding failed")
		return err
	}
	logger.Info().
		Str("file", target).
		Int("instructions", plan.Len()).
		Int("errors", errs.Len()).
		Msg("chart rendered")
	return nil
}

// encodeTo renders plan into w and closes it. A failing Close is reported
// since it may hide a write that never reached the disk.
func encodeTo(w io.WriteCloser, plan *graphlib.Plan, canvas graphlib.Canvas) error {
	if err := graphlib.Render(plan, canvas, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func newCanvas(format string, plan *graphlib.Plan) graphlib.Canvas {
	if format == config.FormatSVG {
		return vector.New(plan.Width, plan.Height)
	}
	return raster.New(plan.Width, plan.Height)
}

func selectCharts(charts []config.Chart, names []string) []config.Chart {
	if len(names) == 0 {
		return charts
	}
	var list []config.Chart
	for _, c := range charts {
		for _, n := range names {
			if c.Name == n {
				list = append(list, c)
				break
			}
		}
	}
	return list
}
