package analytics

import (
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// Summary bundles every statistic for one range, ready for printing.
type Summary struct {
	Range        timeutil.Range
	Days         int
	Entries      []entry.Entry
	Average      Average
	Distribution Distribution
	MostFrequent entry.Level
	HasMost      bool
	Tracked      int
	Daily        []DailyPoint
	Weekday      []WeekdayPoint
}

// Summarize filters entries to r and computes all statistics over them.
func Summarize(entries []entry.Entry, r timeutil.Range) Summary {
	days := DaysInRange(r.Start, r.End)
	inRange := FilterByRange(entries, r.Start, r.End)
	entry.SortOldestFirst(inRange)
	most, ok := MostFrequentMood(inRange)
	return Summary{
		Range:        r,
		Days:         len(days),
		Entries:      inRange,
		Average:      AverageMood(inRange),
		Distribution: MoodDistribution(inRange),
		MostFrequent: most,
		HasMost:      ok,
		Tracked:      DaysTrackedPercentage(inRange, days),
		Daily:        DailySeries(inRange, days),
		Weekday:      WeekdaySeries(inRange),
	}
}

// Report is the serializable form of a Summary used by --json and export.
type Report struct {
	Start        string         `json:"start" yaml:"start"`
	End          string         `json:"end" yaml:"end"`
	Days         int            `json:"days" yaml:"days"`
	Entries      int            `json:"entries" yaml:"entries"`
	Average      string         `json:"average" yaml:"average"`
	MostFrequent *int           `json:"mostFrequent" yaml:"mostFrequent"`
	Tracked      int            `json:"daysTrackedPercent" yaml:"daysTrackedPercent"`
	Distribution map[int]int    `json:"distribution" yaml:"distribution"`
	Daily        []ReportPoint  `json:"daily" yaml:"daily"`
	Weekday      []ReportBucket `json:"weekday" yaml:"weekday"`
}

type ReportPoint struct {
	X    string `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	Date string `json:"date" yaml:"date"`
}

type ReportBucket struct {
	X     string  `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Count int     `json:"count" yaml:"count"`
}

// Report converts the summary to its serializable form.
func (s Summary) Report() Report {
	r := Report{
		Start:        string(entry.KeyOf(s.Range.Start)),
		End:          string(entry.KeyOf(s.Range.End)),
		Days:         s.Days,
		Entries:      len(s.Entries),
		Average:      s.Average.String(),
		Tracked:      s.Tracked,
		Distribution: make(map[int]int, len(s.Distribution)),
		Daily:        make([]ReportPoint, 0, len(s.Daily)),
		Weekday:      make([]ReportBucket, 0, len(s.Weekday)),
	}
	if s.HasMost {
		m := int(s.MostFrequent)
		r.MostFrequent = &m
	}
	for l, n := range s.Distribution {
		r.Distribution[int(l)] = n
	}
	for _, p := range s.Daily {
		r.Daily = append(r.Daily, ReportPoint{X: p.Label, Y: int(p.Mood), Date: string(entry.KeyOf(p.Date))})
	}
	for _, b := range s.Weekday {
		r.Weekday = append(r.Weekday, ReportBucket{X: b.Label, Y: b.Average, Count: b.Count})
	}
	return r
}
