// Package layout turns a table's span structure into per-column width
// requirements and solves them with a deterministic greedy heuristic.
package layout

import (
	"fmt"
	"io"

	"tabular/table"
)

// Constraint requires the columns of one span to supply at least Require
// cells between them. Require is the leading cell's visible width minus
// the space the span's internal separations and separator bars already
// contribute, so it is a demand on the column widths alone.
type Constraint struct {
	Row        int
	Start, End int // column range [Start,End)
	Require    int
}

// Constraints builds the width constraints of every row. Each span
// yields one constraint; rule cells and orphaned continuation cells
// yield zero-requirement single-column constraints so that every column
// of every row is covered.
func Constraints(t *table.Table) []Constraint {
	var cons []Constraint
	for i, row := range t.Rows {
		covered := 0
		for _, sp := range table.Spans(row) {
			for ; covered < sp.Start; covered++ {
				cons = append(cons, Constraint{Row: i, Start: covered, End: covered + 1})
			}
			need := row[sp.Start].Width()
			for b := sp.Start; b < sp.End-1; b++ {
				need -= t.Sep
				if t.Separators[b] != table.NoSeparator {
					need -= t.Sep + 1
				}
			}
			if need < 0 {
				need = 0
			}
			cons = append(cons, Constraint{Row: i, Start: sp.Start, End: sp.End, Require: need})
			covered = sp.End
		}
		for ; covered < len(row); covered++ {
			cons = append(cons, Constraint{Row: i, Start: covered, End: covered + 1})
		}
	}
	return cons
}

// Solve assigns every column a non-negative width satisfying all
// constraints. Starting from zero, it repeatedly widens the column whose
// unit increase reduces the total deficit the most, lowest column index
// winning ties, until no deficit remains. The loop terminates because
// any outstanding constraint has at least one covered column whose
// increment shrinks it.
//
// The result additionally respects each column's largest single-column
// requirement, which spanning constraints alone would not guarantee.
func Solve(ncols int, cons []Constraint, trace io.Writer) []int {
	widths := make([]int, ncols)
	sums := make([]int, len(cons))
	total := 0
	for _, c := range cons {
		total += c.Require
	}
	for total > 0 {
		best, bestRed := -1, 0
		for j := 0; j < ncols; j++ {
			red := 0
			for ci, c := range cons {
				if c.Start <= j && j < c.End && c.Require > sums[ci] {
					red++
				}
			}
			if red > bestRed {
				best, bestRed = j, red
			}
		}
		widths[best]++
		for ci, c := range cons {
			if c.Start <= best && best < c.End {
				if c.Require > sums[ci] {
					total--
				}
				sums[ci]++
			}
		}
		if trace != nil {
			fmt.Fprintf(trace, "solve: column %d -> %d (deficit %d)\n", best, widths[best], total)
		}
	}
	for _, c := range cons {
		if c.End-c.Start == 1 && widths[c.Start] < c.Require {
			widths[c.Start] = c.Require
		}
	}
	return widths
}
