// Package importer reads table descriptions from JSON or YAML files and
// turns them into renderable tables.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tabular/render"
	"tabular/table"
)

// Format identifies a table file's encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// Document is the on-disk description of a table. Rows use the string
// spellings of the sentinels (`\ext`, `\hline`, `\bhline`); justify is
// the specifier string of l/r letters with | and ! boundary markers.
type Document struct {
	Rows       [][]string `json:"rows" yaml:"rows"`
	Sep        int        `json:"sep" yaml:"sep"`
	Justify    string     `json:"justify" yaml:"justify"`
	BorderBold bool       `json:"borderBold" yaml:"borderBold"`
	BoxBold    bool       `json:"boxBold" yaml:"boxBold"`
}

// Detect guesses the format from the file extension, falling back to
// sniffing the content: JSON documents open with a brace or bracket.
func Detect(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes a table document and builds the table plus the render
// options it requests.
func Parse(data []byte, format Format) (*table.Table, render.Options, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, render.Options{}, fmt.Errorf("parsing JSON table: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, render.Options{}, fmt.Errorf("parsing YAML table: %w", err)
		}
	default:
		return nil, render.Options{}, fmt.Errorf("unknown table format")
	}
	t, err := table.New(table.FromStrings(doc.Rows), doc.Sep, doc.Justify)
	if err != nil {
		return nil, render.Options{}, err
	}
	opts := render.Options{BorderBold: doc.BorderBold, BoxBold: doc.BoxBold}
	return t, opts, nil
}

// Load reads path and parses it, detecting the format from the
// extension or content.
func Load(path string) (*table.Table, render.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, render.Options{}, err
	}
	return Parse(data, Detect(path, data))
}
