package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML layout accepted by -config. Command line flags override
// the top-level fields.
//
//	schema: db/catalog.yaml
//	package: controllers
//	import_path: example.com/app/formkit
//	controllers:
//	  - model: coltype
//	    output: controllers/coltype.go
//	    index: [id, vc255, int11]
type Config struct {
	Schema      string           `yaml:"schema"`
	SQLite      string           `yaml:"sqlite"`
	Package     string           `yaml:"package"`
	ImportPath  string           `yaml:"import_path"`
	Controllers []ControllerSpec `yaml:"controllers"`
}

// ControllerSpec describes one controller to generate. Nil column lists mean
// every column.
type ControllerSpec struct {
	Model  string   `yaml:"model"`
	Table  string   `yaml:"table"`
	Output string   `yaml:"output"`
	Index  []string `yaml:"index"`
	New    []string `yaml:"new"`
	Show   []string `yaml:"show"`
	Edit   []string `yaml:"edit"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate(interactive bool) error {
	if c.Schema == "" && c.SQLite == "" {
		return errors.New("either a schema document or a sqlite database is required")
	}
	if c.Schema != "" && c.SQLite != "" {
		return errors.New("schema and sqlite are mutually exclusive")
	}
	if len(c.Controllers) == 0 && !interactive {
		return errors.New("no model given")
	}
	for i, spec := range c.Controllers {
		if spec.Model == "" && !interactive {
			return fmt.Errorf("controller %d: model is required", i)
		}
	}
	if len(c.Controllers) > 1 {
		for _, spec := range c.Controllers {
			if spec.Output == "" {
				return fmt.Errorf("controller %q: output is required when generating several controllers", spec.Model)
			}
		}
	}
	return nil
}

// splitColumns parses a comma separated flag value. An empty value yields nil,
// meaning every column.
func splitColumns(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
