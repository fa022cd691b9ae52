// Package table holds the data model consumed by the box renderer: a
// matrix of tagged cells plus the per-column justification and separator
// topology parsed from a specifier string.
package table

import "tabular/ansi"

// CellKind discriminates literal content from the structural sentinels.
// The sentinels carry layout meaning and render no text of their own.
type CellKind int

const (
	// CellText is ordinary content, possibly with embedded escapes.
	CellText CellKind = iota
	// CellExtend continues the span begun by the nearest text cell to
	// its left.
	CellExtend
	// CellRule renders a horizontal dash run in this cell's slot.
	CellRule
	// CellBoldRule renders a heavy horizontal dash run.
	CellBoldRule
)

// Cell is one slot of a table row.
type Cell struct {
	Kind CellKind
	Text string
}

// Sentinel cells. Using tagged values rather than reserved strings keeps
// literal content that happens to spell a sentinel from being
// misinterpreted.
var (
	Extend   = Cell{Kind: CellExtend}
	Rule     = Cell{Kind: CellRule}
	BoldRule = Cell{Kind: CellBoldRule}
)

// Text cell spellings accepted by ParseCell, for callers that build rows
// as plain string matrices.
const (
	extendToken   = `\ext`
	ruleToken     = `\hline`
	boldRuleToken = `\bhline`
)

// Content returns a text cell holding s.
func Content(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// ParseCell maps the reserved string spellings to their sentinel cells
// and everything else to a text cell.
func ParseCell(s string) Cell {
	switch s {
	case extendToken:
		return Extend
	case ruleToken:
		return Rule
	case boldRuleToken:
		return BoldRule
	}
	return Content(s)
}

// FromStrings converts a string matrix, interpreting the sentinel
// spellings, into a cell matrix.
func FromStrings(rows [][]string) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = make([]Cell, len(row))
		for j, s := range row {
			out[i][j] = ParseCell(s)
		}
	}
	return out
}

// Width returns the visible width of the cell. Sentinels take no space.
func (c Cell) Width() int {
	if c.Kind != CellText {
		return 0
	}
	return ansi.VisibleWidth(c.Text)
}

// IsRule reports whether the cell renders as a horizontal dash run.
func (c Cell) IsRule() bool {
	return c.Kind == CellRule || c.Kind == CellBoldRule
}
