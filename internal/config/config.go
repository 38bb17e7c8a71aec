// Package config loads the reltable pipeline configuration.
//
// A configuration names the tables to load, the steps to run over them and
// how output and logs are produced. It is read from YAML; command line flags
// override individual values.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/leengari/reltable/internal/engine"
	"github.com/leengari/reltable/internal/logging"
	"github.com/leengari/reltable/internal/render"
)

// TableSource names a delimited file to load
type TableSource struct {
	Name string `yaml:"name,omitempty" jsonschema:"description=Table name; defaults to the file name without extension"`
	Path string `yaml:"path" jsonschema:"required"`
}

// Output controls how results are rendered
type Output struct {
	Style string `yaml:"style,omitempty" jsonschema:"enum=fixed,enum=aligned,enum=box,default=fixed"`
	Width int    `yaml:"width,omitempty" jsonschema:"minimum=0,default=20"`
}

// Log controls logging
type Log struct {
	Level  string `yaml:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	SeqURL string `yaml:"seq_url,omitempty" jsonschema:"description=Seq ingestion URL; console only when empty"`
}

// Config is the full reltable configuration
type Config struct {
	Tables    []TableSource `yaml:"tables,omitempty"`
	Delimiter string        `yaml:"delimiter,omitempty" jsonschema:"description=Single field separator character (tab for tab separated files)"`
	Steps     []engine.Step `yaml:"steps,omitempty"`
	Output    Output        `yaml:"output,omitempty"`
	Log       Log           `yaml:"log,omitempty"`
	Trace     bool          `yaml:"trace,omitempty" jsonschema:"description=Log OpenTelemetry spans for every load and step"`
	Watch     bool          `yaml:"watch,omitempty" jsonschema:"description=Re-run the pipeline when a table file changes"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Delimiter: ",",
		Output:    Output{Style: string(render.StyleFixed), Width: render.DefaultWidth},
		Log:       Log{Level: "info"},
	}
}

// Load reads the YAML file at path on top of Default and validates it
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML on top of Default and validates the result
// Unknown keys are rejected
func Parse(raw []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value is usable
func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if _, err := render.ParseStyle(c.Output.Style); err != nil {
		return err
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("output width must not be negative, got %d", c.Output.Width)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	for i, t := range c.Tables {
		if strings.TrimSpace(t.Path) == "" {
			return fmt.Errorf("table %d: path is required", i+1)
		}
	}
	for i, step := range c.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// DelimiterRune returns the field delimiter as a single rune
// "\t" and "tab" both select a tab
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("delimiter %q is not allowed", c.Delimiter)
	}
	return r, nil
}

// UsesSamples reports whether the embedded sample tables should be loaded
func (c *Config) UsesSamples() bool {
	return len(c.Tables) == 0
}

// JSONSchema returns the JSON Schema describing the configuration file
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "yaml",
		DoNotReference: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "reltable configuration"
	return json.MarshalIndent(s, "", "  ")
}

// TablePaths returns the file path of every configured table
func (c *Config) TablePaths() []string {
	paths := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		paths[i] = t.Path
	}
	return paths
}
