package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var Version = "dev"

type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	level  string
	pretty bool
	logger zerolog.Logger
}

func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.root = &cobra.Command{
		Use:           "graphlib",
		Short:         "Render bar and line charts described in yaml or json files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLogger()
		},
	}
	app.root.PersistentFlags().StringVarP(&app.level, "level", "l", "info", "log level (trace, debug, info, warn, error)")
	app.root.PersistentFlags().BoolVar(&app.pretty, "pretty", true, "human readable logs")

	app.root.AddCommand(
		app.newRenderCmd(),
		app.newPlanCmd(),
		app.newTicksCmd(),
	)
	return app
}

func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) setupLogger() error {
	level, err := zerolog.ParseLevel(a.level)
	if err != nil {
		return err
	}
	var out io.Writer = a.stderr
	if a.pretty {
		out = zerolog.ConsoleWriter{
			Out:        a.stderr,
			NoColor:    true,
			TimeFormat: time.TimeOnly,
		}
	}
	a.logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}

func main() {
	if err := New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
