// Package printers renders journal data for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/mood/pkg/analytics"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/glyph"
	"tableflip.dev/mood/pkg/journal"
)

const (
	barWidth   = 30
	notesWidth = 60
)

type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// History lists entries in the order given, one row per day.
func (pp *PrettyPrint) History(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		g := glyph.ForLevel(e.Mood)
		tbl.AddRow(
			string(e.Key()),
			e.Date.Format("Mon"),
			g.Paint(g.Symbol),
			g.Paint(e.Mood.String()),
			truncate.StringWithTail(e.Notes, notesWidth, "…"),
		)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Mutation reports the outcome of AddOrUpdate.
func (pp *PrettyPrint) Mutation(res journal.MutationResult) {
	g := glyph.ForLevel(res.Entry.Mood)
	switch res.Kind {
	case journal.Updated:
		was := ""
		if res.Previous != nil {
			was = fmt.Sprintf(" (was %d, %s)", res.Previous.Mood, res.Previous.Mood)
		}
		_, _ = fmt.Fprintf(pp.out(), "Updated %s: %s %s%s\n", res.Entry.Key(), g.Paint(g.Symbol), g.Paint(res.Entry.Mood.String()), was)
	default:
		_, _ = fmt.Fprintf(pp.out(), "Recorded %s: %s %s\n", res.Entry.Key(), g.Paint(g.Symbol), g.Paint(res.Entry.Mood.String()))
	}
}

// Summary prints every statistic of s.
func (pp *PrettyPrint) Summary(s analytics.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	pp.Title(fmt.Sprintf("Mood · %s (%s → %s)", s.Range.Label, entry.KeyOf(s.Range.Start), entry.KeyOf(s.Range.End)))

	most := analytics.NoData
	if s.HasMost {
		g := glyph.ForLevel(s.MostFrequent)
		most = g.Paint(fmt.Sprintf("%s %s", g.Symbol, s.MostFrequent))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Average mood"), s.Average.String())
	tbl.AddRow(bold.Sprint("Most frequent"), most)
	tbl.AddRow(bold.Sprint("Days tracked"), fmt.Sprintf("%d%% (%d of %d)", s.Tracked, len(s.Entries), s.Days))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	if len(s.Entries) == 0 {
		_, _ = faint.Fprintln(pp.out(), "  No entries in this range.")
		pp.NewLine()
		return
	}

	pp.distribution(s.Distribution)
	pp.daily(s.Daily)
	pp.weekday(s.Weekday)
}

func (pp *PrettyPrint) distribution(d analytics.Distribution) {
	pp.Title("Distribution")
	total := d.Total()
	tbl := uitable.New()
	tbl.Separator = "  "
	levels := entry.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		l := levels[i]
		g := glyph.ForLevel(l)
		tbl.AddRow(g.Paint(l.String()), fmt.Sprintf("%d", d[l]), g.Paint(glyph.Bar(d[l], total, barWidth)))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) daily(points []analytics.DailyPoint) {
	pp.Title("Daily")
	var spark strings.Builder
	for _, p := range points {
		g := glyph.ForLevel(p.Mood)
		spark.WriteString(g.Paint(g.Symbol))
	}
	_, _ = fmt.Fprintf(pp.out(), "  %s\n", spark.String())
	if len(points) > 0 {
		faint := color.New(color.Faint)
		_, _ = faint.Fprintf(pp.out(), "  %s … %s\n", points[0].Label, points[len(points)-1].Label)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) weekday(points []analytics.WeekdayPoint) {
	pp.Title("By weekday")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		g := glyph.ForLevel(entry.Level(int(p.Average + 0.5)))
		tbl.AddRow(p.Label, fmt.Sprintf("%.2f", p.Average), g.Paint(glyph.Bar(int(p.Average*10), int(entry.MaxLevel)*10, barWidth)), fmt.Sprintf("(%d)", p.Count))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
