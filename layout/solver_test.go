package layout

import (
	"reflect"
	"testing"

	"tabular/table"
)

func mustTable(t *testing.T, rows [][]string, sep int, justify string) *table.Table {
	t.Helper()
	tbl, err := table.New(table.FromStrings(rows), sep, justify)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func TestConstraints_Singles(t *testing.T) {
	tbl := mustTable(t, [][]string{{"ab", "c"}, {"d", "efg"}}, 1, "l|l")
	got := Constraints(tbl)
	want := []Constraint{
		{Row: 0, Start: 0, End: 1, Require: 2},
		{Row: 0, Start: 1, End: 2, Require: 1},
		{Row: 1, Start: 0, End: 1, Require: 1},
		{Row: 1, Start: 1, End: 2, Require: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Constraints = %v, want %v", got, want)
	}
}

// A span's requirement is what its content needs minus the space the
// internal separations and separator bars already cover.
func TestConstraints_SpanSubtractsSeparators(t *testing.T) {
	tbl := mustTable(t, [][]string{{"0123456789", `\ext`}, {"x", "y"}}, 2, "l|l")
	got := Constraints(tbl)
	// Internal boundary: sep (2) plus separator bar with its own
	// separation (3), so the columns owe 10-5 = 5.
	want := []Constraint{
		{Row: 0, Start: 0, End: 2, Require: 5},
		{Row: 1, Start: 0, End: 1, Require: 1},
		{Row: 1, Start: 1, End: 2, Require: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Constraints = %v, want %v", got, want)
	}
}

func TestConstraints_RuleRowsCoverColumns(t *testing.T) {
	tbl := mustTable(t, [][]string{{`\hline`, `\hline`}, {"a", "b"}}, 0, "l|l")
	got := Constraints(tbl)
	want := []Constraint{
		{Row: 0, Start: 0, End: 1, Require: 0},
		{Row: 0, Start: 1, End: 2, Require: 0},
		{Row: 1, Start: 0, End: 1, Require: 1},
		{Row: 1, Start: 1, End: 2, Require: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Constraints = %v, want %v", got, want)
	}
}

func TestSolve_SinglesOnly(t *testing.T) {
	cons := []Constraint{
		{Start: 0, End: 1, Require: 3},
		{Start: 1, End: 2, Require: 5},
	}
	if got := Solve(2, cons, nil); !reflect.DeepEqual(got, []int{3, 5}) {
		t.Errorf("Solve = %v, want [3 5]", got)
	}
}

// With reductions tied, the lowest column index wins, so the first
// column of a span absorbs the surplus deficit.
func TestSolve_SpanDeficitGoesLeft(t *testing.T) {
	tbl := mustTable(t, [][]string{{"wide", `\ext`}, {"x", "y"}}, 0, "l|l")
	got := Solve(2, Constraints(tbl), nil)
	if !reflect.DeepEqual(got, []int{2, 1}) {
		t.Errorf("Solve = %v, want [2 1]", got)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	tbl := mustTable(t, [][]string{
		{"omega", "superduperfineexcellent", `\ext`},
		{"woof", "snarl", "octopus"},
		{"a", "b", "c"},
		{"hiccup", "tomatillo", "ddd"},
	}, 2, "r|ll")
	cons := Constraints(tbl)
	first := Solve(3, cons, nil)
	if !reflect.DeepEqual(first, []int{6, 14, 7}) {
		t.Errorf("Solve = %v, want [6 14 7]", first)
	}
	for i := 0; i < 10; i++ {
		if got := Solve(3, Constraints(tbl), nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("Solve run %d = %v, first run %v", i, got, first)
		}
	}
}

// Every column ends at least as wide as its widest non-spanning cell.
func TestSolve_ColumnFloor(t *testing.T) {
	tbl := mustTable(t, [][]string{
		{"header", `\ext`, `\ext`},
		{"aa", "bbb", "c"},
	}, 0, "lll")
	widths := Solve(3, Constraints(tbl), nil)
	floors := []int{2, 3, 1}
	for j, f := range floors {
		if widths[j] < f {
			t.Errorf("column %d width %d below floor %d", j, widths[j], f)
		}
	}
	if total := widths[0] + widths[1] + widths[2]; total < 6 {
		t.Errorf("span columns total %d, need at least 6", total)
	}
}

func TestSolve_ZeroDeficit(t *testing.T) {
	cons := []Constraint{{Start: 0, End: 1, Require: 0}}
	if got := Solve(1, cons, nil); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Solve = %v, want [0]", got)
	}
}
