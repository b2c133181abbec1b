package maps

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"perspectiveview/internal/perspective"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func mapSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("map.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("map.schema.json")
	})
	return schema, schemaErr
}

// Format is the encoding of a map file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Unknown extensions are
// treated as YAML, which also accepts JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

type fileUnit struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type fileMap struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Fallback int       `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Unit     *fileUnit `json:"unit,omitempty" yaml:"unit,omitempty"`
	Rows     [][]int   `json:"rows" yaml:"rows,flow"`
}

// Load reads a JSON or YAML map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Parse validates data against the map schema and converts it into a Map.
// A missing unit defaults to the renderer's default tile size.
func Parse(data []byte, format Format) (*Map, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}
	s, err := mapSchema()
	if err != nil {
		return nil, fmt.Errorf("compile map schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	// doc passed the schema, so it round-trips into fileMap without loss.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fm fileMap
	if err := json.Unmarshal(normalized, &fm); err != nil {
		return nil, err
	}
	unit := perspective.DefaultConfig().Unit
	if fm.Unit != nil {
		unit = perspective.UnitSize{X: fm.Unit.X, Y: fm.Unit.Y}
	}
	m, err := New(fm.Name, unit, fm.Rows)
	if err != nil {
		return nil, err
	}
	m.Fallback = fm.Fallback
	m.UnitSet = fm.Unit != nil
	return m, nil
}

// decodeDocument turns data into the generic JSON value tree the schema
// validator expects. YAML is re-encoded through JSON so both formats yield
// identical trees.
func decodeDocument(data []byte, format Format) (any, error) {
	raw := data
	if format != FormatJSON {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		raw = b
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}

// Save writes m to path, choosing the encoding from the extension.
func Save(path string, m *Map) error {
	fm := fileMap{
		Name:     m.Name,
		Fallback: m.Fallback,
		Unit:     &fileUnit{X: m.Unit.X, Y: m.Unit.Y},
		Rows:     m.Heights.Rows(),
	}
	var (
		data []byte
		err  error
	)
	if FormatFor(path) == FormatJSON {
		data, err = json.MarshalIndent(fm, "", "  ")
	} else {
		data, err = yaml.Marshal(fm)
	}
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
