package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leengari/reltable/internal/config"
	"github.com/leengari/reltable/internal/domain/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runWith(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r, err := newRunner(cfg, &out, discardLogger())
	if err != nil {
		t.Fatalf("newRunner failed: %v", err)
	}
	err = r.run(context.Background())
	return out.String(), err
}

func TestRun_Samples(t *testing.T) {
	out, err := runWith(t, config.Default())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	banners := []string{"=== BUYERS TABLE ===", "=== SUPPLIERS IN DEPT 23 ===", "=== JOINED DATA ==="}
	pos := -1
	for _, b := range banners {
		i := strings.Index(out, b)
		if i < 0 {
			t.Fatalf("missing banner %q in output:\n%s", b, out)
		}
		if i < pos {
			t.Errorf("banner %q out of order", b)
		}
		pos = i
	}

	joined := out[pos:]
	if !strings.Contains(joined, "Stark Industries") || strings.Contains(joined, "Umbrella") {
		t.Errorf("unexpected joined rows:\n%s", joined)
	}
	if !strings.Contains(out, "Globex, Inc.") {
		t.Error("quoted field should keep its embedded delimiter")
	}
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestRun_FlagPipeline(t *testing.T) {
	dir := t.TempDir()
	left := writeCSV(t, dir, "parts.csv", "PartNo,Name\n1,Bolt\n2,Screw\n")
	right := writeCSV(t, dir, "depts.csv", "PartNo,Dept\n1,23\n1,07\n3,12\n")

	cfg := config.Default()
	cfg.Output.Style = "aligned"
	if err := applyTableFlags(cfg, left, right, "", "PartNo", "Name,Dept"); err != nil {
		t.Fatalf("applyTableFlags failed: %v", err)
	}

	out, err := runWith(t, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "=== PROJECT JOINED ON NAME, DEPT ===\n" +
		"Name  Dept\n" +
		"---   ---\n" +
		"Bolt  23\n" +
		"Bolt  07\n"
	if !strings.Contains(out, want) {
		t.Errorf("output missing projected join:\n%s", out)
	}
}

func TestRun_ConfiguredTablesWithoutSteps(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "parts.csv", "PartNo,Name\n1,Bolt\n")

	cfg := config.Default()
	cfg.Tables = []config.TableSource{{Path: path}}

	out, err := runWith(t, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "=== PARTS TABLE ===\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRun_MissingColumn(t *testing.T) {
	cfg := config.Default()
	if err := applyTableFlags(cfg, "", "", "", "Nope", ""); err != nil {
		t.Fatalf("applyTableFlags failed: %v", err)
	}

	out, err := runWith(t, cfg)
	if errors.KindOf(err) != errors.KindColumnNotFound {
		t.Fatalf("expected column not found, got %v", err)
	}
	if out != "" {
		t.Errorf("failed pipeline should print nothing, got:\n%s", out)
	}
}

func TestRun_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Tables = []config.TableSource{{Path: filepath.Join(t.TempDir(), "absent.csv")}}

	_, err := runWith(t, cfg)
	if errors.KindOf(err) != errors.KindSourceUnavailable {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}

func TestApplyTableFlags(t *testing.T) {
	cfg := config.Default()
	if err := applyTableFlags(cfg, "", "", "", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UsesSamples() || len(cfg.Steps) != 0 {
		t.Error("no flags should leave the configuration untouched")
	}

	if err := applyTableFlags(config.Default(), "", "b.csv", "", "", ""); err == nil {
		t.Error("expected -right without -left to fail")
	}

	cfg = config.Default()
	if err := applyTableFlags(cfg, "x/t.csv", "y/t.csv", "", "PartNo", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tables[1].Name != "t_right" {
		t.Errorf("same file names should be disambiguated, got %+v", cfg.Tables)
	}

	cfg = config.Default()
	cfg.Tables = []config.TableSource{{Path: "data/parts.csv"}, {Name: "d", Path: "data/depts.csv"}}
	if err := applyTableFlags(cfg, "", "", "Dept=23", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Steps) != 2 || cfg.Steps[0].Table != "parts" || cfg.Steps[1].Table != "d" {
		t.Errorf("steps should target the configured tables, got %+v", cfg.Steps)
	}
	if len(cfg.Tables) != 2 {
		t.Errorf("configured tables should be kept, got %+v", cfg.Tables)
	}
}

func TestRun_ConfiguredTablesWithStepFlags(t *testing.T) {
	dir := t.TempDir()
	parts := writeCSV(t, dir, "parts.csv", "PartNo,Name\n1,Bolt\n2,Screw\n")
	depts := writeCSV(t, dir, "depts.csv", "PartNo,Dept\n1,23\n2,07\n")

	cfg := config.Default()
	cfg.Tables = []config.TableSource{{Path: parts}, {Path: depts}}
	if err := applyTableFlags(cfg, "", "", "", "PartNo", ""); err != nil {
		t.Fatalf("applyTableFlags failed: %v", err)
	}

	out, err := runWith(t, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "=== JOINED DATA ===") || !strings.Contains(out, "Screw") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
