// Package glyph maps mood levels to the symbols and colors used on screen.
package glyph

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Color   color.Attribute
}

func (g Glyph) String() string {
	return g.Symbol
}

// Paint renders s in the glyph's color.
func (g Glyph) Paint(s string) string {
	return color.New(g.Color).Sprint(s)
}

// DefaultGlyphs returns one glyph per level, worst first.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)
	for _, l := range entry.Levels() {
		g = append(g, ForLevel(l))
	}
	return g
}

// ForLevel returns the glyph of a level. Invalid levels get a placeholder.
func ForLevel(l entry.Level) Glyph {
	switch l {
	case entry.VeryBad:
		return Glyph{Key: "1", Symbol: "▁", Meaning: l.String(), Color: color.FgRed}
	case entry.Bad:
		return Glyph{Key: "2", Symbol: "▂", Meaning: l.String(), Color: color.FgYellow}
	case entry.Neutral:
		return Glyph{Key: "3", Symbol: "▄", Meaning: l.String(), Color: color.FgWhite}
	case entry.Good:
		return Glyph{Key: "4", Symbol: "▆", Meaning: l.String(), Color: color.FgGreen}
	case entry.VeryGood:
		return Glyph{Key: "5", Symbol: "█", Meaning: l.String(), Color: color.FgHiCyan}
	}
	return Glyph{Key: strconv.Itoa(int(l)), Symbol: "?", Meaning: l.String(), Color: color.Faint}
}

// LevelForAlias parses "4", "good", "very-good" and similar into a level.
func LevelForAlias(alias string) (entry.Level, bool) {
	a := strings.ToLower(strings.TrimSpace(alias))
	a = strings.NewReplacer("-", " ", "_", " ").Replace(a)
	for _, l := range entry.Levels() {
		g := ForLevel(l)
		if a == g.Key || a == strings.ToLower(g.Meaning) {
			return l, true
		}
	}
	return 0, false
}

// Bar draws a proportional bar of at most width cells.
func Bar(n, total, width int) string {
	if total <= 0 || n <= 0 || width <= 0 {
		return ""
	}
	cells := n * width / total
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("■", cells)
}
