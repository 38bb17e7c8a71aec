package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leengari/reltable/internal/domain/schema"
)

// LoadAll loads every source concurrently and returns the tables keyed by name
// The first failure cancels the remaining loads and is returned
func LoadAll(ctx context.Context, sources []Source, opts Options) (map[string]*schema.Table, error) {
	named := make([]Source, len(sources))
	seen := make(map[string]bool, len(sources))
	for i, src := range sources {
		if src.Name == "" {
			src.Name = TableName(src.Path)
		}
		if seen[src.Name] {
			return nil, fmt.Errorf("duplicate table name %q", src.Name)
		}
		seen[src.Name] = true
		named[i] = src
	}

	var mu sync.Mutex
	tables := make(map[string]*schema.Table, len(named))

	g, ctx := errgroup.WithContext(ctx)
	for _, src := range named {
		g.Go(func() error {
			table, err := loadNamed(ctx, src.Name, src.Path, opts)
			if err != nil {
				return fmt.Errorf("failed to load table %s: %w", src.Name, err)
			}
			mu.Lock()
			tables[src.Name] = table
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("tables loaded", slog.Int("table_count", len(tables)))
	return tables, nil
}
