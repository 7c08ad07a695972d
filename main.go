package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errCountWithoutCron = errors.New("--count requires --cron")
	errInvalidCount     = errors.New("--count must be positive, or -1 for unlimited")
)

// app carries the flags shared by every command.
type app struct {
	logger   *zap.Logger
	dbPath   string
	verbose  bool
	cronSpec string
	count    int
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "absval",
		Short: "Compute absolute values of integer sequences three ways",
		Long: `absval maps each integer of a sequence to its absolute value using a
declarative transform (comprehension), a mapped primitive (map) or an
indexed in-place loop (loop). Without a subcommand it runs the demo.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validate(cmd); err != nil {
				return err
			}
			// The terminal UI owns the screen, so stay quiet there.
			if cmd.Name() == "tui" {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runDemo,
	}
	root.PersistentFlags().StringVar(&a.dbPath, "dbpath", "", "path to run history (disabled when empty)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log intermediate results")
	root.PersistentFlags().StringVar(&a.cronSpec, "cron", "", "recompute on this cron schedule (seconds optional)")
	root.PersistentFlags().IntVar(&a.count, "count", -1, "number of scheduled recomputations, -1 for unlimited")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every variant over the built-in sequences",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}

	var variantName string
	var sortResult bool
	absCmd := &cobra.Command{
		Use:   "abs [flags] -- <ints...>",
		Short: "Print the absolute values of the given integers",
		Example: `  absval abs -- 4 -9 7 9
  absval abs --variant loop --sort "[4, -9, 7, -5, -4]"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := ParseVariant(variantName)
			if err != nil {
				return err
			}
			input, err := parseSeq(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.schedule(cmd.Context(), func() error {
				return a.runAbs(cmd.OutOrStdout(), v, input, sortResult)
			})
		},
	}
	absCmd.Flags().StringVar(&variantName, "variant", string(Comprehension), "one of comprehension, map, loop")
	absCmd.Flags().BoolVar(&sortResult, "sort", false, "sort the result ascending")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}

	root.AddCommand(demoCmd, absCmd, tuiCmd)
	return root
}

// validate rejects schedule flags that would print nothing or be ignored.
func (a *app) validate(cmd *cobra.Command) error {
	if a.cronSpec == "" {
		if cmd.Flags().Changed("count") {
			return errCountWithoutCron
		}
		return nil
	}
	if a.count == 0 || a.count < -1 {
		return fmt.Errorf("%w: got %d", errInvalidCount, a.count)
	}
	return nil
}

func (a *app) openDB() (*DB, error) {
	if a.dbPath == "" {
		return nil, nil
	}
	db, err := NewDB(a.dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize database: %w", err)
	}
	return db, nil
}

// schedule runs fn once, or on the --cron schedule when one is given.
func (a *app) schedule(ctx context.Context, fn func() error) error {
	if a.cronSpec == "" {
		return fn()
	}
	r, err := NewReplay(a.cronSpec, time.Now(), a.count)
	if err != nil {
		return err
	}
	a.logger.Info("scheduled replay",
		zap.String("id", r.ID),
		zap.String("cron", r.Cron),
		zap.Int("count", r.Count))
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = RunReplay(ctx, &r, fn)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	return a.schedule(cmd.Context(), func() error {
		out, err := demo(db, a.logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatSeq(out))
		return nil
	})
}

// demo walks through the three variants and returns the in-place result.
func demo(db *DB, logger *zap.Logger) ([]int, error) {
	var runs []Run

	list1 := []int{4, -9, 7, 9}
	list2 := absComprehension(list1)
	logger.Debug("comprehension", zap.Ints("input", list1), zap.Ints("output", list2))
	runs = append(runs, NewRun(Comprehension, list1, list2, false))
	sortAsc(list2)
	logger.Debug("sorted", zap.Ints("output", list2))
	runs = append(runs, NewRun(Comprehension, list1, list2, true))

	list2 = absMap(list1)
	logger.Debug("map", zap.Ints("input", list1), zap.Ints("output", list2))
	runs = append(runs, NewRun(Map, list1, list2, false))

	list3 := []int{4, -9, 7, -5, -4}
	orig := NewRun(Loop, list3, nil, false)
	absInPlace(list3)
	logger.Debug("loop", zap.Ints("input", orig.Input), zap.Ints("output", list3))
	orig.Output = append([]int(nil), list3...)
	runs = append(runs, orig)

	if db != nil {
		for _, run := range runs {
			if err := db.Record(run); err != nil {
				return nil, fmt.Errorf("cannot record run: %w", err)
			}
		}
	}
	return list3, nil
}

func (a *app) runAbs(w io.Writer, v Variant, input []int, sorted bool) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	in := append([]int(nil), input...)
	out, err := Apply(v, in)
	if err != nil {
		return err
	}
	if sorted {
		sortAsc(out)
	}
	a.logger.Debug("abs",
		zap.String("variant", string(v)),
		zap.Ints("input", input),
		zap.Ints("output", out),
		zap.Bool("sorted", sorted))
	if db != nil {
		if err := db.Record(NewRun(v, input, out, sorted)); err != nil {
			return fmt.Errorf("cannot record run: %w", err)
		}
	}
	fmt.Fprintln(w, formatSeq(out))
	return nil
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	ui, err := NewUI(NewSession(db), a.logger)
	if err != nil {
		return err
	}
	defer ui.Close()
	go func() {
		contCh := make(chan os.Signal, 1)
		signal.Notify(contCh, syscall.SIGCONT)
		for range contCh {
			ui.Resume()
		}
	}()
	ui.Run()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
