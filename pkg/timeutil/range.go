package timeutil

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/mood/pkg/entry"
)

// Presets offered by the stats view, in days.
var Presets = []int{7, 30, 90}

// Range is a closed interval of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// LastDays returns [today-n, today], matching the stats presets.
func LastDays(now time.Time, n int) Range {
	end := entry.Normalize(now)
	return Range{
		Start: end.AddDate(0, 0, -n),
		End:   end,
		Label: fmt.Sprintf("last %s", FormatWindow(n)),
	}
}

// Custom builds a range from two dates, swapping them when reversed.
func Custom(start, end time.Time) Range {
	start, end = entry.Normalize(start), entry.Normalize(end)
	if start.After(end) {
		start, end = end, start
	}
	return Range{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s → %s", entry.KeyOf(start), entry.KeyOf(end)),
	}
}

// Resolve picks a range from CLI inputs: an explicit from/to pair wins over
// the window. A missing "to" means today.
func Resolve(now time.Time, window, from, to string) (Range, error) {
	if from == "" && to != "" {
		return Range{}, errors.New("timeutil: --to requires --from")
	}
	if from != "" {
		start, err := entry.ParseDate(from)
		if err != nil {
			return Range{}, err
		}
		end := now
		if to != "" {
			if end, err = entry.ParseDate(to); err != nil {
				return Range{}, err
			}
		}
		r := Custom(start, end)
		if days, ok := r.MatchesPreset(now); ok {
			r.Label = LastDays(now, days).Label
		}
		return r, nil
	}
	days, _, err := ParseWindow(window)
	if err != nil {
		return Range{}, err
	}
	return LastDays(now, days), nil
}

// MatchesPreset reports the preset a range corresponds to, if any.
func (r Range) MatchesPreset(now time.Time) (int, bool) {
	today := entry.KeyOf(now)
	if entry.KeyOf(r.End) != today {
		return 0, false
	}
	for _, p := range Presets {
		if entry.KeyOf(r.End.AddDate(0, 0, -p)) == entry.KeyOf(r.Start) {
			return p, true
		}
	}
	return 0, false
}
