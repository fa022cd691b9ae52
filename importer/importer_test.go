package importer

import (
	"os"
	"path/filepath"
	"testing"

	"tabular/render"
	"tabular/table"
)

const jsonDoc = `{
	"rows": [["a", "b"], ["c", "d"]],
	"sep": 1,
	"justify": "l|r",
	"boxBold": true
}`

const yamlDoc = `rows:
  - ["pencil", "pusher"]
  - ["\\hline", "\\hline"]
  - ["fabulous pumpkins", "\\ext"]
sep: 2
justify: l|l
borderBold: true
`

func TestParse_JSON(t *testing.T) {
	tbl, opts, err := Parse([]byte(jsonDoc), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tbl.NumCols(); got != 2 {
		t.Errorf("NumCols = %d, want 2", got)
	}
	if tbl.Sep != 1 {
		t.Errorf("Sep = %d, want 1", tbl.Sep)
	}
	if tbl.Justify[1] != table.Right {
		t.Errorf("Justify[1] = %v, want Right", tbl.Justify[1])
	}
	if tbl.Separators[0] != table.PlainSeparator {
		t.Errorf("Separators[0] = %v, want PlainSeparator", tbl.Separators[0])
	}
	if !opts.BoxBold || opts.BorderBold {
		t.Errorf("opts = %+v, want BoxBold only", opts)
	}
}

func TestParse_YAML(t *testing.T) {
	tbl, opts, err := Parse([]byte(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Rows[1][0].Kind != table.CellRule {
		t.Errorf("row 1 col 0 kind = %v, want CellRule", tbl.Rows[1][0].Kind)
	}
	if tbl.Rows[2][1].Kind != table.CellExtend {
		t.Errorf("row 2 col 1 kind = %v, want CellExtend", tbl.Rows[2][1].Kind)
	}
	if !opts.BorderBold || opts.BoxBold {
		t.Errorf("opts = %+v, want BorderBold only", opts)
	}
}

func TestParse_BadShape(t *testing.T) {
	doc := `{"rows": [["a", "b"], ["c"]], "justify": "l|l"}`
	if _, _, err := Parse([]byte(doc), FormatJSON); err == nil {
		t.Fatal("Parse accepted ragged rows")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want Format
	}{
		{"JSONExt", "t.json", "", FormatJSON},
		{"YAMLExt", "t.yaml", "", FormatYAML},
		{"YMLExt", "t.yml", "", FormatYAML},
		{"SniffJSON", "t", "  {\"rows\": []}", FormatJSON},
		{"SniffYAML", "t", "rows:\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.path, []byte(tt.data)); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad_RenderRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts.BorderBold = false // compare against the light-stroke golden
	out, err := render.Render(tbl, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "┌────────┬────────┐\n" +
		"│pencil  │  pusher│\n" +
		"├────────┴────────┤\n" +
		"│fabulous pumpkins│\n" +
		"└─────────────────┘\n"
	if out != want {
		t.Errorf("rendered table mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}
