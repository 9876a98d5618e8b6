package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourplan/config"
	"github.com/katalvlaran/tourplan/telemetry"
)

// errDegraded is returned by plan --strict when a segment fell back.
var errDegraded = errors.New("plan is degraded")

// app holds the flags shared by every command.
type app struct {
	file     string
	logLevel string
	trace    bool

	logger   *slog.Logger
	shutdown func(context.Context) error
}

// run executes the command line in args and always flushes telemetry.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, a.teardown(ctx))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tourplan",
		Short:         "Plan guided A* tours through mission checkpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "mission.yaml", "mission file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "export spans and metrics to stderr")

	root.AddCommand(
		newPlanCmd(a),
		newSearchCmd(a),
		newNearestCmd(a),
		newValidateCmd(a),
	)

	return root
}

// setup builds the logger and, with --trace, the telemetry providers.
func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := telemetry.DefaultConfig()
	cfg.Writer = cmd.ErrOrStderr()
	if a.trace {
		cfg.TraceExporter = telemetry.ExporterStdout
		cfg.MetricExporter = telemetry.ExporterStdout
	}
	shutdown, err := telemetry.Init(contextOf(cmd), cfg)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	return a.shutdown(ctx)
}

// load reads the mission file and logs its warnings.
func (a *app) load() (*config.File, error) {
	f, err := config.Load(a.file)
	if err != nil {
		return nil, err
	}
	for _, w := range f.Warnings() {
		a.logger.Warn("config: "+w, slog.String("file", a.file))
	}

	return f, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
