// Package card lays out ranked rows as SVG cards on a fixed 900 unit wide canvas.
//
// Each view has fixed spacing constants, so the canvas height grows by exactly
// one row height per row:
//
//	height(n) = 2*Padding + TitleHeight + n*RowHeight + Trailing   (n >= 1)
//
// An empty row set uses the view's PlaceholderHeight instead.
package card

import "unicode/utf8"

// Canvas geometry shared by every view.
const (
	Width   = 900
	Padding = 24
	// inset is the margin between the outer background and the inner card.
	inset = 12
)

// Ellipsis marks a shortened label.
const Ellipsis = "…"

// View holds the spacing constants of one card type.
type View struct {
	TitleHeight int
	RowHeight   int
	Trailing    int
	// Track is the bar length of the row with the largest magnitude.
	Track int
	// LabelBudget is the maximum label length in characters.
	LabelBudget int
	// KeepSuffix shortens labels from the front instead of the back.
	KeepSuffix        bool
	PlaceholderHeight int
}

// Commits is the view of the commit contributions card.
var Commits = View{
	TitleHeight:       42,
	RowHeight:         28,
	Trailing:          10,
	Track:             420,
	LabelBudget:       36,
	KeepSuffix:        true,
	PlaceholderHeight: 180,
}

// Overview is the view of the repository overview card.
var Overview = View{
	TitleHeight:       55,
	RowHeight:         30,
	Trailing:          10,
	Track:             280,
	LabelBudget:       28,
	KeepSuffix:        false,
	PlaceholderHeight: 200,
}

// Height returns the canvas height for rows rows.
func (v View) Height(rows int) int {
	if rows <= 0 {
		return v.PlaceholderHeight
	}
	return 2*Padding + v.TitleHeight + rows*v.RowHeight + v.Trailing
}

// Label shortens s to the view's budget.
func (v View) Label(s string) string {
	return Truncate(s, v.LabelBudget, v.KeepSuffix)
}

// Bar scales value against the largest value of the row set.
func (v View) Bar(value, largest int) int {
	return BarWidth(value, largest, v.Track)
}

// BarWidth returns floor(value/largest * track). largest below 1 is treated
// as 1 and non-positive values give 0, so the result is always in [0, track].
func BarWidth(value, largest, track int) int {
	if value <= 0 || track <= 0 {
		return 0
	}
	if largest < 1 {
		largest = 1
	}
	if value >= largest {
		return track
	}
	return value * track / largest
}

// Truncate shortens s to at most budget characters by keeping a prefix (or a
// suffix when keepSuffix is set) and adding a single Ellipsis.
func Truncate(s string, budget int, keepSuffix bool) string {
	n := utf8.RuneCountInString(s)
	if n <= budget {
		return s
	}
	if budget <= 1 {
		return Ellipsis
	}
	runes := []rune(s)
	keep := budget - 1
	if keepSuffix {
		return Ellipsis + string(runes[n-keep:])
	}
	return string(runes[:keep]) + Ellipsis
}

// Largest returns the maximum of values, at least 1.
func Largest(values []int) int {
	largest := 1
	for _, v := range values {
		largest = max(largest, v)
	}
	return largest
}
