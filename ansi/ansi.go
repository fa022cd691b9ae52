// Package ansi measures and segments strings that carry embedded ANSI
// escape sequences. Table cells arrive with formatting already applied,
// so every width computation in the renderer has to see through the
// escape bytes without interpreting them.
package ansi

import "strings"

// Escape introduces a terminal escape sequence. Only the SGR shape is
// recognized: the sequence runs up to and including the next 'm'.
const Escape = '\x1b'

// wideRunes is the fixed allowance of double-width glyphs: the colored
// square and circle pictographs that show up as swatches in table cells.
var wideRunes = map[rune]bool{
	'🟥': true, '🟧': true, '🟨': true, '🟩': true, '🟦': true, '🟪': true,
	'🟫': true, '⬛': true, '⬜': true,
	'🔴': true, '🟠': true, '🟡': true, '🟢': true, '🔵': true, '🟣': true,
	'🟤': true, '⚫': true, '⚪': true,
}

// RuneWidth returns the terminal cell count of a single rune: 2 for the
// fixed wide-glyph set, 1 for everything else.
func RuneWidth(r rune) int {
	if wideRunes[r] {
		return 2
	}
	return 1
}

// VisibleWidth returns the on-screen column count of s. Bytes inside an
// escape sequence contribute nothing. A sequence whose 'm' terminator is
// missing suppresses the remainder of the string; callers measured their
// content the same way, so the rule must not change.
func VisibleWidth(s string) int {
	n := 0
	escaped := false
	for _, r := range s {
		switch {
		case escaped && r != 'm':
		case r == Escape:
			escaped = true
		case escaped && r == 'm':
			escaped = false
		default:
			n += RuneWidth(r)
		}
	}
	return n
}

// Segments splits a rendered line into super-characters: each element is
// one visible rune preceded by any escape-sequence runes that came before
// it. Rewriting a segment wholesale therefore never splits an escape
// sequence. Escape runes with no following visible rune are dropped.
func Segments(line string) []string {
	var segs []string
	var sb strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped && r != 'm':
			sb.WriteRune(r)
		case r == Escape:
			escaped = true
			sb.WriteRune(r)
		case escaped && r == 'm':
			escaped = false
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
			segs = append(segs, sb.String())
			sb.Reset()
		}
	}
	return segs
}

// Glyph returns the visible rune of a super-character, its last rune.
func Glyph(seg string) rune {
	var last rune
	for _, r := range seg {
		last = r
	}
	return last
}
