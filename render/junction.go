package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"tabular/ansi"
)

// smooth rewrites the rendered grid in place: every separator boundary
// was drawn as a plain vertical bar, which is wrong wherever spans leave
// the rows above or below without a bar at that column. Each cell is
// checked against an ordered set of local patterns, first match wins,
// over the escape-aware segment grid so embedded formatting never gets
// split.
func smooth(text string, opts Options) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	mat := make([][]string, len(lines))
	for i, line := range lines {
		mat[i] = ansi.Segments(line)
	}
	for i := range mat {
		for j := range mat[i] {
			smoothCell(mat, i, j, opts.Debug)
		}
	}
	var sb strings.Builder
	for _, segs := range mat {
		for _, sc := range segs {
			sb.WriteString(sc)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pure returns the glyph of row's j-th segment when the segment carries
// no escape bytes, and 0 otherwise. Horizontal neighbor checks demand a
// bare glyph: a dash wrapped in formatting is cell content, not a rule.
func pure(row []string, j int) rune {
	if j < 0 || j >= len(row) {
		return 0
	}
	if utf8.RuneCountInString(row[j]) != 1 {
		return 0
	}
	return ansi.Glyph(row[j])
}

// glyphAt returns the visible rune at (i, j), 0 outside the grid.
// Vertical neighbor checks only look at the visible rune, escapes or
// not.
func glyphAt(mat [][]string, i, j int) rune {
	if i < 0 || i >= len(mat) || j < 0 || j >= len(mat[i]) {
		return 0
	}
	return ansi.Glyph(mat[i][j])
}

func smoothCell(mat [][]string, i, j int, trace io.Writer) {
	row := mat[i]
	cur := pure(row, j)
	left := pure(row, j-1)
	right := pure(row, j+1)
	above := glyphAt(mat, i-1, j)
	below := glyphAt(mat, i+1, j)

	var to rune
	switch {
	case isBar(cur) && isDash(left) && isDash(right) &&
		isBar(below) && i > 0 && !isBar(above) && !isTee(above):
		// A vertical starts here: tee, weighted like the bar below.
		to = glyphs[barWeight(below)].tee

	case isBar(cur) && isDash(left) && isDash(right) &&
		i+1 < len(mat) && !isBar(below):
		// Nothing continues below. If nothing connects above either,
		// the bar is just part of a horizontal line.
		if i == 0 || !isBar(above) {
			to = glyphs[dashWeight(left)].dash
		} else {
			to = glyphs[barWeight(above)].upTee
		}

	case isBar(cur) && isDash(left) && isDash(right) &&
		i > 0 && (isBar(above) || isTee(above)):
		to = crossFor(dashWeight(left), verticalWeight(above))

	case isBar(cur) && isDash(right) && !isDash(glyphAt(mat, i, j-1)):
		to = leftTeeFor(dashWeight(right), barWeight(cur))

	case isBar(cur) && isDash(left) && !isDash(right):
		to = rightTeeFor(dashWeight(left), barWeight(cur))

	case isTee(cur) && j > 0 && i+1 < len(mat) && !isBar(below):
		// Tee over a span: no vertical below, demote to a dash of the
		// tee's own weight.
		if cur == '┳' {
			to = glyphs[Bold].dash
		} else {
			to = glyphs[Plain].dash
		}

	default:
		return
	}
	if trace != nil {
		fmt.Fprintf(trace, "smooth: (%d,%d) %c -> %c\n", i, j, cur, to)
	}
	row[j] = string(to)
}
