package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/glyph"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints one month grid per month touched by [from, to], each day
// colored by its mood.
func (pp *PrettyPrint) Calendar(from, to time.Time, entries ...entry.Entry) {
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	for !month.After(last) {
		pp.PrintMonth(month, entries...)
		month = NextMonth(month)
	}
}

// PrintMonth prints the month containing then.
func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...entry.Entry) {
	days := DaysIn(then)
	moods := make([]entry.Level, days)
	for _, e := range entries {
		if e.Date.Year() == then.Year() && e.Date.Month() == then.Month() {
			moods[e.Date.Day()-1] = e.Mood
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	d := StartDay(then)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	blank := color.New(color.Faint, color.FgWhite)
	for i := 0; i < days; i++ {
		label := fmt.Sprintf("%2d ", i+1)
		if moods[i].Valid() {
			g := glyph.ForLevel(moods[i])
			_, _ = color.New(g.Color, color.Bold).Fprint(pp.out(), label)
		} else {
			_, _ = blank.Fprint(pp.out(), label)
		}
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprintln(pp.out(), "")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	pp.NewLine()
}

// DaysIn is the number of days in the month of then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay is the weekday of the first of the month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}
