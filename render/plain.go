package render

import (
	"strings"
	"unicode/utf8"

	"tabular/table"
)

// RenderPlain writes rows as unboxed columns separated by sep spaces,
// the boxed renderer's lightweight companion. Column widths come from
// the widest entry, counted in runes; justify supplies one entry per
// column and ragged or short input falls back to left justification.
// There are no sentinels, spans, or borders here.
func RenderPlain(rows [][]string, sep int, justify []table.Justification) string {
	ncols := 0
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	maxcol := make([]int, ncols)
	for _, row := range rows {
		for j, s := range row {
			if n := utf8.RuneCountInString(s); n > maxcol[j] {
				maxcol[j] = n
			}
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		for j, s := range row {
			n := utf8.RuneCountInString(s)
			if j < len(justify) && justify[j] == table.Right {
				sb.WriteString(strings.Repeat(" ", maxcol[j]-n))
				sb.WriteString(s)
				if j < len(row)-1 {
					sb.WriteString(strings.Repeat(" ", sep))
				}
			} else {
				sb.WriteString(s)
				if j < len(row)-1 {
					sb.WriteString(strings.Repeat(" ", maxcol[j]-n+sep))
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
