// Command reltable loads delimited text tables and runs selection,
// projection and equi-join pipelines over them.
//
// Without arguments it walks through the embedded buyers and suppliers
// sample: print the buyers, pick the suppliers of department 23, and join
// both tables on PartNo.
//
// Usage:
//
//	reltable [-config reltable.yaml] [-left a.csv] [-right b.csv]
//	         [-select Column=Value] [-join Column] [-project a,b]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/leengari/reltable/internal/config"
	domainerrors "github.com/leengari/reltable/internal/domain/errors"
	"github.com/leengari/reltable/internal/logging"
	"github.com/leengari/reltable/internal/tracing"
	"github.com/leengari/reltable/internal/watch"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "reltable: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() (err error) {
	configPath := flag.String("config", "", "Path to a YAML pipeline configuration")
	left := flag.String("left", "", "Left-hand table file")
	right := flag.String("right", "", "Right-hand table file")
	selectExpr := flag.String("select", "", "Select rows of the right table (or left when no right) where Column=Value")
	joinColumn := flag.String("join", "", "Join left and right on this column")
	projectCols := flag.String("project", "", "Comma separated columns to keep from the last result")
	delimiter := flag.String("delimiter", ",", "Field delimiter (single character, or 'tab')")
	style := flag.String("style", "fixed", "Output style (fixed, aligned, box)")
	width := flag.Int("width", 20, "Column width for the fixed style")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	seqURL := flag.String("seq-url", "", "Seq server URL for structured logs (optional)")
	trace := flag.Bool("trace", false, "Log OpenTelemetry spans for loads and steps")
	watchMode := flag.Bool("watch", false, "Re-run the pipeline when a table file changes")
	printSchema := flag.Bool("print-schema", false, "Print the configuration JSON Schema and exit")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *printSchema {
		raw, err := config.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(raw))
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Flags win over the configuration file when explicitly set
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if set["delimiter"] {
		cfg.Delimiter = *delimiter
	}
	if set["style"] {
		cfg.Output.Style = *style
	}
	if set["width"] {
		cfg.Output.Width = *width
	}
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["seq-url"] {
		cfg.Log.SeqURL = *seqURL
	}
	if set["trace"] {
		cfg.Trace = *trace
	}
	if set["watch"] {
		cfg.Watch = *watchMode
	}
	if err := applyTableFlags(cfg, *left, *right, *selectExpr, *joinColumn, *projectCols); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closeFn := logging.SetupLogger(logging.Options{Level: level, SeqURL: cfg.Log.SeqURL})
	defer closeFn()
	slog.SetDefault(logger)

	shutdownTracing := tracing.Setup(logger, cfg.Trace)
	defer func() {
		err = multierr.Append(err, shutdownTracing(context.Background()))
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	r, err := newRunner(cfg, os.Stdout, logger)
	if err != nil {
		return err
	}

	runErr := r.run(ctx)
	if runErr != nil {
		slog.Error("pipeline failed", "kind", domainerrors.KindOf(runErr), "error", runErr)
	}

	if !cfg.Watch {
		return runErr
	}
	if cfg.UsesSamples() {
		slog.Warn("watch mode needs table files, the embedded samples never change")
		return runErr
	}
	return watch.Run(ctx, cfg.TablePaths(), 0, r.run)
}

// applyTableFlags turns -left/-right and the step shorthands into tables and steps
func applyTableFlags(cfg *config.Config, left, right, selectExpr, joinColumn, projectCols string) error {
	hasStepFlags := selectExpr != "" || joinColumn != "" || projectCols != ""
	if left == "" && right == "" && !hasStepFlags {
		return nil
	}
	if right != "" && left == "" {
		return fmt.Errorf("-right needs -left")
	}

	leftName, rightName := "buyers", "suppliers"
	if left == "" && len(cfg.Tables) > 0 {
		leftName, rightName = sourceName(cfg.Tables[0]), ""
		if len(cfg.Tables) > 1 {
			rightName = sourceName(cfg.Tables[1])
		}
	}
	if left != "" {
		cfg.Tables = []config.TableSource{{Path: left}}
		leftName, rightName = tableName(left), ""
		if right != "" {
			cfg.Tables = append(cfg.Tables, config.TableSource{Path: right})
			rightName = tableName(right)
			if rightName == leftName {
				rightName += "_right"
				cfg.Tables[1].Name = rightName
			}
		}
	}

	steps, err := config.FlagSteps(leftName, rightName, selectExpr, joinColumn, projectCols)
	if err != nil {
		return err
	}
	cfg.Steps = steps
	return nil
}

// sourceName is the catalog name a configured table is loaded under
func sourceName(t config.TableSource) string {
	if t.Name != "" {
		return t.Name
	}
	return tableName(t.Path)
}
