package render

// Weight selects between the light and heavy box-drawing strokes.
type Weight int

const (
	Plain Weight = iota
	Bold
)

// glyphSet is one stroke weight's worth of box-drawing characters.
type glyphSet struct {
	dash     rune
	bar      rune
	topLeft  rune
	topRight rune
	botLeft  rune
	botRight rune
	tee      rune
	upTee    rune
	cross    rune
	leftTee  rune
	rightTee rune
}

var glyphs = [2]glyphSet{
	Plain: {
		dash: '─', bar: '│',
		topLeft: '┌', topRight: '┐', botLeft: '└', botRight: '┘',
		tee: '┬', upTee: '┴', cross: '┼', leftTee: '├', rightTee: '┤',
	},
	Bold: {
		dash: '━', bar: '┃',
		topLeft: '┏', topRight: '┓', botLeft: '┗', botRight: '┛',
		tee: '┳', upTee: '┻', cross: '╋', leftTee: '┣', rightTee: '┫',
	},
}

func isDash(r rune) bool { return r == '─' || r == '━' }
func isBar(r rune) bool  { return r == '│' || r == '┃' }
func isTee(r rune) bool  { return r == '┬' || r == '┳' }

func dashWeight(r rune) Weight {
	if r == '━' {
		return Bold
	}
	return Plain
}

func barWeight(r rune) Weight {
	if r == '┃' {
		return Bold
	}
	return Plain
}

// verticalWeight reads the stroke weight of a bar or tee glyph's
// vertical arm.
func verticalWeight(r rune) Weight {
	if r == '┃' || r == '┳' {
		return Bold
	}
	return Plain
}

// crossFor picks the cross glyph whose horizontal arm has weight h and
// vertical arm weight v, using the two mixed-weight crosses when the
// arms disagree.
func crossFor(h, v Weight) rune {
	switch {
	case h == Bold && v == Bold:
		return '╋'
	case h == Bold:
		return '┿'
	case v == Bold:
		return '╂'
	}
	return '┼'
}

// leftTeeFor picks the left tee for a bar of weight barW meeting a dash
// of weight dashW: the dash weight wins, with the mixed glyph covering a
// heavy bar against a light dash.
func leftTeeFor(dashW, barW Weight) rune {
	switch {
	case dashW == Bold:
		return '┣'
	case barW == Bold:
		return '┠'
	}
	return '├'
}

func rightTeeFor(dashW, barW Weight) rune {
	switch {
	case dashW == Bold:
		return '┫'
	case barW == Bold:
		return '┨'
	}
	return '┤'
}
