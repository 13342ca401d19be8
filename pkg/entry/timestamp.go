package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// dateLayouts are the day-only forms accepted when reading stored dates.
var dateLayouts = []string{
	layoutISO,
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"1/2/2006",
	"January 2, 2006",
}

// DayKey identifies a calendar day, formatted as 2006-01-02. Keys sort
// chronologically as strings.
type DayKey string

// KeyOf returns the day-key of t in t's own location.
func KeyOf(t time.Time) DayKey {
	return DayKey(t.Format(layoutISO))
}

// Time returns local midnight of the day.
func (k DayKey) Time() (time.Time, error) {
	return time.ParseInLocation(layoutISO, string(k), time.Local)
}

// Normalize truncates t to midnight of its calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate reads a stored date. Timestamps carrying a zone are moved into
// local time before the day is taken; day-only forms are read as local days.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("entry: empty date")
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return Normalize(t.Local()), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("entry: unrecognized date %q", v)
}

// FormatDate renders the persisted form of a date, its day-key. Stored days
// do not move when the journal is read in another zone.
func FormatDate(t time.Time) string {
	return string(KeyOf(t))
}

// record is the persisted shape of an entry.
type record struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Notes string `json:"notes"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Date:  FormatDate(e.Date),
		Mood:  int(e.Mood),
		Notes: e.Notes,
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return err
	}
	*e = Entry{Date: date, Mood: Level(r.Mood), Notes: r.Notes}
	return nil
}

// MarshalYAML renders the same shape as the JSON record.
func (e Entry) MarshalYAML() (interface{}, error) {
	return struct {
		Date  string `yaml:"date"`
		Mood  int    `yaml:"mood"`
		Notes string `yaml:"notes,omitempty"`
	}{
		Date:  string(e.Key()),
		Mood:  int(e.Mood),
		Notes: e.Notes,
	}, nil
}
