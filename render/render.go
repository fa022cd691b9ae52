// Package render turns a table into box-drawn text: it solves column
// widths, pads cells, emits the raw bordered grid, and then smooths the
// junction glyphs from local context.
package render

import (
	"fmt"
	"io"
	"strings"

	"tabular/layout"
	"tabular/table"
)

// Options control stroke weighting and debug tracing for one render
// call. The zero value draws everything with light strokes.
type Options struct {
	// BorderBold draws the outer frame with heavy strokes.
	BorderBold bool
	// BoxBold draws every box character with heavy strokes.
	BoxBold bool
	// Debug, when non-nil, receives one line per layout and smoothing
	// decision.
	Debug io.Writer
}

func (o Options) borderWeight() Weight {
	if o.BorderBold || o.BoxBold {
		return Bold
	}
	return Plain
}

func (o Options) boxWeight() Weight {
	if o.BoxBold {
		return Bold
	}
	return Plain
}

// Render draws t as a Unicode box table and returns the text, one
// newline-terminated line per output row. It is a pure function of its
// arguments; concurrent calls share nothing.
func Render(t *table.Table, opts Options) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	cons := layout.Constraints(t)
	widths := layout.Solve(t.NumCols(), cons, opts.Debug)
	if opts.Debug != nil {
		fmt.Fprintf(opts.Debug, "render: widths %v\n", widths)
	}
	r := &renderer{t: t, widths: widths, opts: opts}
	return smooth(r.grid(), opts), nil
}

type renderer struct {
	t      *table.Table
	widths []int
	opts   Options
	sb     strings.Builder
}

func (r *renderer) grid() string {
	r.topBorder()
	for i := range r.t.Rows {
		r.bodyRow(i)
	}
	r.bottomBorder()
	return r.sb.String()
}

func (r *renderer) repeat(g rune, n int) {
	for ; n > 0; n-- {
		r.sb.WriteRune(g)
	}
}

// barWeightAt returns the stroke weight of the vertical rule at
// boundary b.
func (r *renderer) barWeightAt(b int) Weight {
	if r.opts.BoxBold || r.t.Separators[b] == table.BoldSeparator {
		return Bold
	}
	return Plain
}

// ruleWeight returns the stroke weight of a rule cell's dash run.
func (r *renderer) ruleWeight(c table.Cell) Weight {
	if r.opts.BoxBold || c.Kind == table.CellBoldRule {
		return Bold
	}
	return Plain
}

func (r *renderer) topBorder() {
	g := glyphs[r.opts.borderWeight()]
	ncols := r.t.NumCols()
	r.sb.WriteRune(g.topLeft)
	for j := 0; j < ncols; j++ {
		n := r.widths[j]
		if j < ncols-1 {
			n += r.t.Sep
		}
		r.repeat(g.dash, n)
		if j < ncols-1 && r.t.Separators[j] != table.NoSeparator {
			// Always a tee here; smoothing demotes it to a dash
			// wherever no vertical continues below.
			r.sb.WriteRune(g.tee)
			r.repeat(g.dash, r.t.Sep)
		}
	}
	r.sb.WriteRune(g.topRight)
	r.sb.WriteByte('\n')
}

// spanTotal returns the rendered width a text cell at the span's start
// has to fill: its columns plus the separations and separator bars
// between them.
func (r *renderer) spanTotal(sp table.Span) int {
	total := 0
	for j := sp.Start; j < sp.End; j++ {
		total += r.widths[j]
	}
	for b := sp.Start; b < sp.End-1; b++ {
		total += r.t.Sep
		if r.t.Separators[b] != table.NoSeparator {
			total += r.t.Sep + 1
		}
	}
	return total
}

func (r *renderer) bodyRow(i int) {
	row := r.t.Rows[i]
	ncols := len(row)
	outer := glyphs[r.opts.borderWeight()]
	r.sb.WriteRune(outer.bar)
	for j := 0; j < ncols; {
		c := row[j]
		end := j
		switch c.Kind {
		case table.CellRule, table.CellBoldRule:
			r.repeat(glyphs[r.ruleWeight(c)].dash, r.widths[j])
		case table.CellExtend:
			// A continuation with no leader still occupies its slot.
			r.repeat(' ', r.widths[j])
		case table.CellText:
			sp := table.SpanAt(row, j)
			end = sp.End - 1
			r.paddedCell(c, sp)
		}
		if end < ncols-1 {
			gap := ' '
			if c.IsRule() {
				gap = glyphs[r.ruleWeight(c)].dash
			}
			r.repeat(gap, r.t.Sep)
			if r.t.Separators[end] != table.NoSeparator {
				r.sb.WriteRune(glyphs[r.barWeightAt(end)].bar)
				gap = ' '
				if next := row[end+1]; next.IsRule() {
					gap = glyphs[r.ruleWeight(next)].dash
				}
				r.repeat(gap, r.t.Sep)
			}
		}
		j = end + 1
	}
	r.sb.WriteRune(outer.bar)
	r.sb.WriteByte('\n')
}

// paddedCell writes a text cell padded to its span's full width. Cells
// spanning several columns are always padded on the right regardless of
// justification; single-column cells pad per the column's justification.
func (r *renderer) paddedCell(c table.Cell, sp table.Span) {
	pad := r.spanTotal(sp) - c.Width()
	if pad < 0 {
		pad = 0
	}
	if sp.End-sp.Start == 1 && r.t.Justify[sp.Start] == table.Right {
		r.repeat(' ', pad)
		r.sb.WriteString(c.Text)
		return
	}
	r.sb.WriteString(c.Text)
	r.repeat(' ', pad)
}

func (r *renderer) bottomBorder() {
	g := glyphs[r.opts.borderWeight()]
	ncols := r.t.NumCols()
	last := r.t.Rows[len(r.t.Rows)-1]
	r.sb.WriteRune(g.botLeft)
	for j := 0; j < ncols; j++ {
		n := r.widths[j]
		if j < ncols-1 {
			n += r.t.Sep
		}
		r.repeat(g.dash, n)
		if j < ncols-1 && r.t.Separators[j] != table.NoSeparator {
			// No up-tee where the last row's span crosses this
			// boundary: no vertical terminates there.
			if last[j+1].Kind == table.CellExtend {
				r.sb.WriteRune(g.dash)
			} else {
				r.sb.WriteRune(g.upTee)
			}
			r.repeat(g.dash, r.t.Sep)
		}
	}
	r.sb.WriteRune(g.botRight)
	r.sb.WriteByte('\n')
}
