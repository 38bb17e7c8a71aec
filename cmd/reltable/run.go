package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/leengari/reltable/internal/config"
	"github.com/leengari/reltable/internal/domain/schema"
	"github.com/leengari/reltable/internal/engine"
	"github.com/leengari/reltable/internal/render"
	"github.com/leengari/reltable/internal/storage/loader"
	"github.com/leengari/reltable/sampledata"
)

// runner loads the configured tables and runs the pipeline over them
type runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
	opts   loader.Options
	render render.Options
}

func newRunner(cfg *config.Config, out io.Writer, logger *slog.Logger) (*runner, error) {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	style, err := render.ParseStyle(cfg.Output.Style)
	if err != nil {
		return nil, err
	}
	return &runner{
		cfg:    cfg,
		out:    out,
		logger: logger,
		opts:   loader.Options{Delimiter: delim},
		render: render.Options{Style: style, Width: cfg.Output.Width},
	}, nil
}

func tableName(path string) string {
	return loader.TableName(path)
}

// run performs one full load, execute and print cycle
// Tables are reloaded every time so watch mode sees fresh content
func (r *runner) run(ctx context.Context) error {
	tables, err := r.load(ctx)
	if err != nil {
		return err
	}

	eng := engine.New(tables)
	eng.AddObserver(engine.NewLoggingObserver(r.logger))

	results, err := eng.Run(ctx, r.steps(eng))
	if err != nil {
		return err
	}

	for _, res := range results {
		if err := render.Fprint(r.out, res.Title(), res.Table, r.render); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (r *runner) load(ctx context.Context) (map[string]*schema.Table, error) {
	if r.cfg.UsesSamples() {
		tables := make(map[string]*schema.Table, 2)
		for _, file := range []string{sampledata.BuyersFile, sampledata.SuppliersFile} {
			t, err := loader.LoadFS(ctx, sampledata.Content, file, loader.Options{})
			if err != nil {
				return nil, err
			}
			tables[t.Name] = t
		}
		return tables, nil
	}

	sources := make([]loader.Source, len(r.cfg.Tables))
	for i, t := range r.cfg.Tables {
		sources[i] = loader.Source{Name: t.Name, Path: t.Path}
	}
	return loader.LoadAll(ctx, sources, r.opts)
}

// steps returns the configured steps, or a default walkthrough
func (r *runner) steps(eng *engine.Engine) []engine.Step {
	if len(r.cfg.Steps) > 0 {
		return r.cfg.Steps
	}
	if r.cfg.UsesSamples() {
		return engine.DemoSteps(loader.TableName(sampledata.BuyersFile), loader.TableName(sampledata.SuppliersFile))
	}

	var steps []engine.Step
	for _, name := range eng.ListTables() {
		steps = append(steps, engine.Step{Title: name + " table", Op: engine.OpPrint, Table: name})
	}
	return steps
}
