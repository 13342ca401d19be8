// Package entry defines the mood journal record and its day-key identity.
package entry

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"
)

// Level is a mood rating from 1 (worst) to 5 (best).
type Level int

const (
	VeryBad Level = iota + 1
	Bad
	Neutral
	Good
	VeryGood
)

const (
	// MinLevel and MaxLevel bound every stored mood.
	MinLevel = VeryBad
	MaxLevel = VeryGood

	// MaxNotesLength is the note limit, counted in characters.
	MaxNotesLength = 500
)

// Levels returns every valid level, worst first.
func Levels() []Level {
	return []Level{VeryBad, Bad, Neutral, Good, VeryGood}
}

// Valid reports whether l is within [MinLevel, MaxLevel].
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l Level) String() string {
	switch l {
	case VeryBad:
		return "Very Bad"
	case Bad:
		return "Bad"
	case Neutral:
		return "Neutral"
	case Good:
		return "Good"
	case VeryGood:
		return "Very Good"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Entry is the mood recorded for one calendar day.
type Entry struct {
	Date  time.Time
	Mood  Level
	Notes string
}

// New builds an entry with its date normalized to local midnight.
func New(date time.Time, mood Level, notes string) Entry {
	return Entry{
		Date:  Normalize(date),
		Mood:  mood,
		Notes: notes,
	}
}

// Key returns the day-key of the entry date.
func (e Entry) Key() DayKey {
	return KeyOf(e.Date)
}

// Validate checks the mood range and note length.
func (e Entry) Validate() error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}
	if !e.Mood.Valid() {
		return &ValidationError{
			Field:  "mood",
			Reason: fmt.Sprintf("mood %d is outside %d-%d", int(e.Mood), MinLevel, MaxLevel),
		}
	}
	if n := utf8.RuneCountInString(e.Notes); n > MaxNotesLength {
		return &ValidationError{
			Field:  "notes",
			Reason: fmt.Sprintf("notes are %d characters, limit is %d", n, MaxNotesLength),
		}
	}
	return nil
}

// Equal compares entries by day, mood and notes.
func (e Entry) Equal(other Entry) bool {
	return e.Key() == other.Key() && e.Mood == other.Mood && e.Notes == other.Notes
}

func (e Entry) String() string {
	if e.Notes == "" {
		return fmt.Sprintf("%s %d (%s)", e.Key(), int(e.Mood), e.Mood)
	}
	return fmt.Sprintf("%s %d (%s) %s", e.Key(), int(e.Mood), e.Mood, e.Notes)
}

// ValidationError reports an entry that may not be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("entry: invalid %s: %s", v.Field, v.Reason)
}

// FindByDay returns the entry sharing the calendar day of date.
func FindByDay(entries []Entry, date time.Time) (Entry, bool) {
	key := KeyOf(date)
	for _, e := range entries {
		if e.Key() == key {
			return e, true
		}
	}
	return Entry{}, false
}

// SortNewestFirst orders entries by date, most recent day first.
func SortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key() > entries[j].Key()
	})
}

// SortOldestFirst orders entries by date, oldest day first.
func SortOldestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key() < entries[j].Key()
	})
}
