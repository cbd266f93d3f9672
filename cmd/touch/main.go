package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brn0058/jiptouch/builtins"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitIOError      = 1
	exitInvalidUsage = 2
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

type touchFlags struct {
	prefix  string
	count   string
	dir     string
	dryRun  bool
	summary bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var (
		flags  touchFlags
		logger = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "touch -p <prefix> -c <count>",
		Short: "Create prefix_1 .. prefix_<count> and touch each file",
		Long: `touch generates count filenames sharing a prefix (prefix_1, prefix_2, ...)
and touches each one in order: missing files are created empty, existing
files keep their content and get a new modification time.

Example:
  touch -p log -c 3`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %q", builtins.ErrInvalidArgs, args)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(cmd.ErrOrStderr(), flags.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()

			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return runTouch(cmd.OutOrStdout(), opts, flags.summary, logger)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", builtins.ErrInvalidArgs, err)
	})

	f := cmd.Flags()
	f.StringVarP(&flags.prefix, "prefix", "p", "", "prefix shared by the generated filenames (required)")
	f.StringVarP(&flags.count, "count", "c", "", "number of files to create, a positive integer (required)")
	f.StringVarP(&flags.dir, "dir", "d", "", "directory to create the files in (default: working directory)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "print the files that would be created without touching them")
	f.BoolVar(&flags.summary, "summary", false, "print a table of the touched files when done")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

func (f touchFlags) options(cmd *cobra.Command) (builtins.Options, error) {
	if f.prefix == "" {
		return builtins.Options{}, fmt.Errorf("%w: -p <prefix> is required", builtins.ErrInvalidArgs)
	}
	if !cmd.Flags().Changed("count") {
		return builtins.Options{}, fmt.Errorf("%w: -c <count> is required", builtins.ErrInvalidArgs)
	}
	count, err := builtins.ParseCount(f.count)
	if err != nil {
		return builtins.Options{}, err
	}
	return builtins.Options{
		Prefix: f.prefix,
		Count:  count,
		Dir:    f.dir,
		DryRun: f.dryRun,
	}, nil
}

func runTouch(w io.Writer, opts builtins.Options, withSummary bool, logger *zap.Logger) error {
	plan, err := builtins.NewPlan(opts, logger)
	if err != nil {
		return err
	}
	logger.Debug("plan built",
		zap.String("prefix", opts.Prefix),
		zap.Int("count", opts.Count),
		zap.String("dir", opts.Dir),
		zap.Bool("dry_run", opts.DryRun))

	results, err := plan.Execute(w)
	if err != nil {
		return err
	}

	if withSummary {
		dir := opts.Dir
		if dir == "" {
			if dir, err = builtins.Pwd(); err != nil {
				return err
			}
		}
		builtins.WriteSummary(w, dir, results)
	}
	return nil
}

// newLogger writes JSON entries to w; warnings and above unless verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

func exitCode(err error) int {
	if errors.Is(err, builtins.ErrInvalidArgs) {
		return exitInvalidUsage
	}
	return exitIOError
}
