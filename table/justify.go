package table

import "fmt"

// Justification selects which side of a column padding goes on.
type Justification int

const (
	Left Justification = iota
	Right
)

// Separator marks a column boundary with an optional vertical rule.
type Separator int

const (
	NoSeparator Separator = iota
	PlainSeparator
	BoldSeparator
)

// ParseJustify parses a specifier such as "l|r!l": one l or r letter per
// column, reading left to right, with a '|' (plain) or '!' (bold) between
// two letters marking a vertical separator at that column boundary.
// The returned separator slice has one entry per internal boundary,
// entry b describing the boundary between columns b and b+1.
func ParseJustify(spec string, ncols int) ([]Justification, []Separator, error) {
	just := make([]Justification, 0, ncols)
	seps := make([]Separator, 0, ncols)
	for _, r := range spec {
		switch r {
		case 'l':
			just = append(just, Left)
		case 'r':
			just = append(just, Right)
		case '|', '!':
			if len(just) == 0 {
				return nil, nil, fmt.Errorf("justify %q: separator before any column", spec)
			}
			if len(just) >= ncols {
				return nil, nil, fmt.Errorf("justify %q: separator after column %d is outside the table", spec, len(just)-1)
			}
			b := len(just) - 1
			for len(seps) <= b {
				seps = append(seps, NoSeparator)
			}
			if r == '!' {
				seps[b] = BoldSeparator
			} else if seps[b] != BoldSeparator {
				seps[b] = PlainSeparator
			}
		default:
			return nil, nil, fmt.Errorf("justify %q: unknown symbol %q", spec, r)
		}
	}
	if len(just) != ncols {
		return nil, nil, fmt.Errorf("justify %q has %d column letters, table has %d columns", spec, len(just), ncols)
	}
	for len(seps) < ncols-1 {
		seps = append(seps, NoSeparator)
	}
	if ncols == 0 {
		seps = nil
	}
	return just, seps, nil
}
