package loader

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/leengari/reltable/internal/domain/data"
	"github.com/leengari/reltable/internal/domain/errors"
	"github.com/leengari/reltable/internal/domain/schema"
)

const maxLineSize = 1 << 20

var tracer = otel.Tracer("github.com/leengari/reltable/internal/storage/loader")

// TableName derives a table name from a file path: "data/buyers.csv" -> "buyers"
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadTable reads the delimited file at path into a table named after the file
func LoadTable(ctx context.Context, path string, opts Options) (*schema.Table, error) {
	return loadNamed(ctx, TableName(path), path, opts)
}

func loadNamed(ctx context.Context, name, path string, opts Options) (*schema.Table, error) {
	ctx, span := tracer.Start(ctx, "loader.LoadTable")
	defer span.End()
	span.SetAttributes(attribute.String("table", name), attribute.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &errors.SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	table, err := parse(ctx, name, path, f, opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", table.Len()))
	return table, nil
}

// LoadFS reads the delimited file at path inside fsys
func LoadFS(ctx context.Context, fsys fs.FS, path string, opts Options) (*schema.Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &errors.SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	return parse(ctx, TableName(path), path, f, opts)
}

// Parse reads delimited text from r into a table called name
// The first line is the header; every following line must have exactly one
// field per header column. A blank line is a row of one empty field
func Parse(ctx context.Context, name string, r io.Reader, opts Options) (*schema.Table, error) {
	return parse(ctx, name, name, r, opts)
}

func parse(ctx context.Context, name, source string, r io.Reader, opts Options) (*schema.Table, error) {
	delim := opts.delimiter()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var b *schema.Builder
	columns := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")

		if b == nil {
			header := splitLine(line, delim)
			columns = len(header)
			b = schema.NewBuilder(name, header)
			continue
		}
		fields := splitLine(line, delim)
		if len(fields) != columns {
			return nil, &errors.SchemaMismatchError{
				Source:   source,
				Line:     lineNo,
				Expected: columns,
				Got:      len(fields),
			}
		}
		if err := b.Append(data.Row(fields)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.SourceUnavailableError{Source: source, Err: err}
	}

	if b == nil {
		// empty source: no header, no rows
		b = schema.NewBuilder(name, nil)
	}
	table := b.Build()

	slog.Info("table loaded",
		slog.String("table", name),
		slog.String("source", source),
		slog.Int("columns", table.ColumnCount()),
		slog.Int("rows", table.Len()),
	)

	return table, nil
}
