// Package analytics computes mood statistics over a snapshot of entries.
// Every function is pure and safe to call concurrently; degenerate input
// (no entries, empty range) yields defined zero values, never a panic.
package analytics

import (
	"fmt"
	"math"
	"time"

	"tableflip.dev/mood/pkg/entry"
)

// NoData is how an average over no entries is displayed.
const NoData = "N/A"

// FilterByRange keeps entries whose day falls in [start, end], both ends
// included.
func FilterByRange(entries []entry.Entry, start, end time.Time) []entry.Entry {
	from, to := entry.KeyOf(start), entry.KeyOf(end)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if k := e.Key(); k >= from && k <= to {
			out = append(out, e)
		}
	}
	return out
}

// DaysInRange lists every calendar day from start to end inclusive, as
// midnights in start's location, ascending. It is empty when start > end.
func DaysInRange(start, end time.Time) []time.Time {
	first := entry.Normalize(start)
	last := entry.KeyOf(end)
	var days []time.Time
	for d := first; entry.KeyOf(d) <= last; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Average is a mean mood rounded to one decimal. Valid is false when there
// was nothing to average.
type Average struct {
	Value float64
	Valid bool
}

func (a Average) String() string {
	if !a.Valid {
		return NoData
	}
	return fmt.Sprintf("%.1f", a.Value)
}

// AverageMood is the arithmetic mean of the moods.
func AverageMood(entries []entry.Entry) Average {
	if len(entries) == 0 {
		return Average{}
	}
	sum := 0
	for _, e := range entries {
		sum += int(e.Mood)
	}
	return Average{Value: round(float64(sum)/float64(len(entries)), 1), Valid: true}
}

// Distribution counts entries per mood level. All five levels are present.
type Distribution map[entry.Level]int

// Total is the number of entries counted.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// MoodDistribution builds the histogram of moods.
func MoodDistribution(entries []entry.Entry) Distribution {
	d := make(Distribution, len(entry.Levels()))
	for _, l := range entry.Levels() {
		d[l] = 0
	}
	for _, e := range entries {
		if e.Mood.Valid() {
			d[e.Mood]++
		}
	}
	return d
}

// MostFrequentMood returns the most common level, preferring the better mood
// when counts tie. It reports false for no entries.
func MostFrequentMood(entries []entry.Entry) (entry.Level, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	dist := MoodDistribution(entries)
	var best entry.Level
	most := 0
	for _, l := range entry.Levels() {
		if n := dist[l]; n > 0 && n >= most {
			best, most = l, n
		}
	}
	return best, best != 0
}

// DaysTrackedPercentage is the share of days holding an entry, rounded to a
// whole percent. It is 0 for no entries or no days.
func DaysTrackedPercentage(entries []entry.Entry, days []time.Time) int {
	if len(entries) == 0 || len(days) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(entries)) / float64(len(days))))
}

// DailyPoint is one tracked day of the daily chart.
type DailyPoint struct {
	Label string
	Date  time.Time
	Mood  entry.Level
}

// DailySeries emits a point for each day holding an entry, ascending. Days
// without an entry are left out.
func DailySeries(entries []entry.Entry, days []time.Time) []DailyPoint {
	byDay := make(map[entry.DayKey]entry.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byDay[e.Key()]; !ok {
			byDay[e.Key()] = e
		}
	}
	points := make([]DailyPoint, 0, len(entries))
	for _, d := range days {
		e, ok := byDay[entry.KeyOf(d)]
		if !ok {
			continue
		}
		points = append(points, DailyPoint{
			Label: d.Format("Jan 02"),
			Date:  d,
			Mood:  e.Mood,
		})
	}
	return points
}

// WeekdayPoint is the mean mood of one day of the week.
type WeekdayPoint struct {
	Label   string
	Weekday time.Weekday
	Average float64
	Count   int
}

// weekOrder starts the week on Monday.
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdaySeries averages moods per day of the week, Monday through Sunday,
// rounded to two decimals. Weekdays without entries are left out.
func WeekdaySeries(entries []entry.Entry) []WeekdayPoint {
	var total, count [7]int
	for _, e := range entries {
		wd := e.Date.Weekday()
		total[wd] += int(e.Mood)
		count[wd]++
	}
	points := make([]WeekdayPoint, 0, 7)
	for _, wd := range weekOrder {
		if count[wd] == 0 {
			continue
		}
		points = append(points, WeekdayPoint{
			Label:   wd.String(),
			Weekday: wd,
			Average: round(float64(total[wd])/float64(count[wd]), 2),
			Count:   count[wd],
		})
	}
	return points
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
