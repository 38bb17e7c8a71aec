package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leengari/reltable/internal/engine"
)

const sampleYAML = `
tables:
  - path: data/buyers.csv
  - name: supp
    path: data/suppliers.csv
delimiter: ";"
steps:
  - title: suppliers in dept 23
    op: select
    table: supp
    column: Dept
    value: "23"
  - op: join
    table: buyers
    right: supp
    column: PartNo
    as: joined
  - op: project
    table: joined
    columns: [Buyer, Dept]
output:
  style: box
log:
  level: debug
  seq_url: http://localhost:5341
trace: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(cfg.Tables) != 2 || cfg.Tables[1].Name != "supp" {
		t.Errorf("unexpected tables: %+v", cfg.Tables)
	}
	if len(cfg.Steps) != 3 || cfg.Steps[1].Op != engine.OpJoin || cfg.Steps[2].Columns[1] != "Dept" {
		t.Errorf("unexpected steps: %+v", cfg.Steps)
	}
	if cfg.Output.Style != "box" {
		t.Errorf("style = %q, want box", cfg.Output.Style)
	}
	// unset values keep their defaults
	if cfg.Output.Width != 20 {
		t.Errorf("width = %d, want default 20", cfg.Output.Width)
	}
	if !cfg.Trace || cfg.Watch {
		t.Errorf("unexpected flags: trace=%v watch=%v", cfg.Trace, cfg.Watch)
	}
	if r, _ := cfg.DelimiterRune(); r != ';' {
		t.Errorf("delimiter = %q, want ';'", r)
	}
	if cfg.UsesSamples() {
		t.Error("config with tables should not use samples")
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cfg.UsesSamples() {
		t.Error("empty config should use the sample tables")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "colour: red\n",
		"bad style":       "output:\n  style: html\n",
		"negative width":  "output:\n  width: -1\n",
		"bad level":       "log:\n  level: loud\n",
		"long delimiter":  "delimiter: '::'\n",
		"quote delimiter": "delimiter: '\"'\n",
		"missing path":    "tables:\n  - name: x\n",
		"bad step":        "steps:\n  - op: select\n    table: t\n",
		"unknown op":      "steps:\n  - op: merge\n    table: t\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reltable.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Steps) != 3 {
		t.Errorf("expected 3 steps, got %d", len(cfg.Steps))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDelimiterRune(t *testing.T) {
	for in, want := range map[string]rune{"": ',', ",": ',', "tab": '\t', `\t`: '\t', "|": '|'} {
		cfg := &Config{Delimiter: in}
		got, err := cfg.DelimiterRune()
		if err != nil || got != want {
			t.Errorf("DelimiterRune(%q) = %q, %v", in, got, err)
		}
	}
}

func TestJSONSchema(t *testing.T) {
	raw, err := JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	for _, want := range []string{`"tables"`, `"steps"`, `"seq_url"`, `"join"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("schema missing %s", want)
		}
	}
}

func TestFlagSteps(t *testing.T) {
	steps, err := FlagSteps("buyers", "suppliers", "Dept=23", "PartNo", "Buyer, Dept")
	if err != nil {
		t.Fatalf("FlagSteps failed: %v", err)
	}

	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %+v", steps)
	}
	if steps[1].Op != engine.OpSelect || steps[1].Table != "suppliers" || steps[1].Column != "Dept" || steps[1].Value != "23" {
		t.Errorf("unexpected select step: %+v", steps[1])
	}
	if steps[2].Op != engine.OpJoin || steps[2].Right != "suppliers" {
		t.Errorf("unexpected join step: %+v", steps[2])
	}
	if steps[3].Table != "joined" || len(steps[3].Columns) != 2 || steps[3].Columns[1] != "Dept" {
		t.Errorf("unexpected project step: %+v", steps[3])
	}
	for i, step := range steps {
		if err := step.Validate(); err != nil {
			t.Errorf("step %d invalid: %v", i, err)
		}
	}
}

func TestFlagSteps_Errors(t *testing.T) {
	if _, err := FlagSteps("buyers", "", "", "PartNo", ""); err == nil {
		t.Error("expected error for join without right table")
	}
	if _, err := FlagSteps("buyers", "", "Dept", "", ""); err == nil {
		t.Error("expected error for malformed select")
	}
}

func TestFlagSteps_SelectOnLeftOnly(t *testing.T) {
	steps, err := FlagSteps("buyers", "", "Buyer=Acme", "", "")
	if err != nil {
		t.Fatalf("FlagSteps failed: %v", err)
	}
	if steps[1].Table != "buyers" {
		t.Errorf("select should target the left table, got %q", steps[1].Table)
	}
}

func TestFlagSteps_PrintsUnusedRight(t *testing.T) {
	steps, err := FlagSteps("parts", "depts", "", "", "")
	if err != nil {
		t.Fatalf("FlagSteps failed: %v", err)
	}
	if len(steps) != 2 || steps[0].Table != "parts" || steps[1].Table != "depts" || steps[1].Op != engine.OpPrint {
		t.Errorf("expected both tables printed, got %+v", steps)
	}

	steps, err = FlagSteps("parts", "depts", "", "PartNo", "")
	if err != nil {
		t.Fatalf("FlagSteps failed: %v", err)
	}
	if len(steps) != 2 || steps[1].Op != engine.OpJoin {
		t.Errorf("right table read by join should not be printed separately, got %+v", steps)
	}
}

func TestTablePaths(t *testing.T) {
	cfg := Default()
	cfg.Tables = []TableSource{{Path: "a.csv"}, {Name: "b", Path: "dir/b.tsv"}}

	got := cfg.TablePaths()
	if len(got) != 2 || got[0] != "a.csv" || got[1] != "dir/b.tsv" {
		t.Errorf("TablePaths() = %v", got)
	}
}
