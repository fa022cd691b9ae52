// Package terminal shows rendered tables on an interactive screen so
// stroke weights can be compared live before committing to one.
package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tabular/ansi"
	"tabular/render"
	"tabular/table"
)

// Preview renders t on a tcell screen and redraws it as the viewer
// toggles options.
//
// Keys: b toggles all-bold box characters, o toggles a bold outer
// border, q or Esc quits.
func Preview(t *table.Table, opts render.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		out, err := render.Render(t, opts)
		if err != nil {
			return err
		}
		screen.Clear()
		drawText(screen, out)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'b':
				opts.BoxBold = !opts.BoxBold
			case ev.Rune() == 'o':
				opts.BorderBold = !opts.BorderBold
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// drawText paints rendered output onto the screen. Embedded SGR
// sequences are consumed rather than printed: the bold toggle maps onto
// the cell style, everything else is dropped.
func drawText(s tcell.Screen, out string) {
	style := tcell.StyleDefault
	for y, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		x := 0
		for _, seg := range ansi.Segments(line) {
			style = applyEscapes(seg, style)
			r := ansi.Glyph(seg)
			s.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
}

// applyEscapes folds the escape prefix of a segment into a tcell style.
func applyEscapes(seg string, style tcell.Style) tcell.Style {
	for {
		start := strings.IndexRune(seg, ansi.Escape)
		if start < 0 {
			return style
		}
		end := strings.IndexByte(seg[start:], 'm')
		if end < 0 {
			return style
		}
		switch seg[start+1 : start+end] {
		case "[1", "[01":
			style = style.Bold(true)
		case "[0", "[", "[00":
			style = tcell.StyleDefault
		}
		seg = seg[start+end+1:]
	}
}
