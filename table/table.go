package table

import (
	"errors"
	"fmt"
)

// Common validation errors. The wrapped messages carry the offending
// row or column index.
var (
	ErrEmpty    = errors.New("table has no rows")
	ErrRagged   = errors.New("row length mismatch")
	ErrJustify  = errors.New("bad justify specifier")
	ErrBadSep   = errors.New("separation must be non-negative")
	ErrBoundary = errors.New("separator boundary out of range")
)

// Table is one render call's worth of input: a rectangular cell matrix,
// the inter-column separation, per-column justification, and the
// separator topology at column boundaries. A Table is never mutated by
// the renderer.
type Table struct {
	Rows       [][]Cell
	Sep        int
	Justify    []Justification
	Separators []Separator // entry b covers the boundary between columns b and b+1
}

// New builds a Table from a cell matrix and a justify specifier string
// (see ParseJustify). The result is validated.
func New(rows [][]Cell, sep int, justify string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	just, seps, err := ParseJustify(justify, len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJustify, err)
	}
	t := &Table{Rows: rows, Sep: sep, Justify: just, Separators: seps}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NumCols returns the table's column count.
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Validate checks the shape invariants: a rectangular matrix, a
// justification per column, a separator entry per internal boundary, and
// a non-negative separation. Shape violations are caller bugs and are
// reported before any rendering output is produced.
func (t *Table) Validate() error {
	if len(t.Rows) == 0 {
		return ErrEmpty
	}
	ncols := len(t.Rows[0])
	for i, row := range t.Rows {
		if len(row) != ncols {
			return fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRagged, i, len(row), ncols)
		}
	}
	if len(t.Justify) != ncols {
		return fmt.Errorf("%w: %d justifications for %d columns", ErrJustify, len(t.Justify), ncols)
	}
	want := ncols - 1
	if ncols == 0 {
		want = 0
	}
	if len(t.Separators) != want {
		return fmt.Errorf("%w: %d separator entries for %d boundaries", ErrBoundary, len(t.Separators), want)
	}
	if t.Sep < 0 {
		return fmt.Errorf("%w: %d", ErrBadSep, t.Sep)
	}
	return nil
}

// Span is a maximal run of columns [Start,End) occupied by one leading
// text cell and its continuation cells.
type Span struct {
	Start, End int
}

// Covers reports whether column j lies inside the span.
func (s Span) Covers(j int) bool {
	return s.Start <= j && j < s.End
}

// Spans scans a row left to right and returns its spans. Rule cells end
// any preceding scan and lead no span of their own; continuation cells
// with no leader to their left are skipped the same way.
func Spans(row []Cell) []Span {
	var spans []Span
	for j := 0; j < len(row); {
		if row[j].Kind != CellText {
			j++
			continue
		}
		k := j + 1
		for k < len(row) && row[k].Kind == CellExtend {
			k++
		}
		spans = append(spans, Span{Start: j, End: k})
		j = k
	}
	return spans
}

// SpanAt returns the span of row that starts at column j, which must
// hold a text cell.
func SpanAt(row []Cell, j int) Span {
	k := j + 1
	for k < len(row) && row[k].Kind == CellExtend {
		k++
	}
	return Span{Start: j, End: k}
}
