// Package journal owns the mood entries and keeps at most one per day.
// All mutations go through a Journal, which persists the full collection to a
// store.KV after each change.
package journal

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

// Kind tells whether AddOrUpdate created a new day or replaced one.
type Kind string

const (
	Created Kind = "created"
	Updated Kind = "updated"
)

// MutationResult describes what AddOrUpdate did. Previous is set only for
// updates and holds the value that was replaced.
type MutationResult struct {
	Kind     Kind
	Entry    entry.Entry
	Previous *entry.Entry
}

// Journal is the entry store. It is not safe for concurrent mutation.
type Journal struct {
	kv      store.KV
	key     string
	logger  *log.Logger
	clock   timeutil.Clock
	entries []entry.Entry
}

// Option configures a Journal.
type Option func(*Journal)

// WithLogger sets where load and save problems are reported.
func WithLogger(l *log.Logger) Option {
	return func(j *Journal) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithClock overrides the source of "today".
func WithClock(c timeutil.Clock) Option {
	return func(j *Journal) {
		if c != nil {
			j.clock = c
		}
	}
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(j *Journal) {
		if key != "" {
			j.key = key
		}
	}
}

// New returns an empty Journal over kv. Call Load to read persisted entries.
func New(kv store.KV, opts ...Option) *Journal {
	j := &Journal{
		kv:     kv,
		key:    store.DefaultKey,
		logger: log.New(io.Discard),
		clock:  timeutil.SystemClock{},
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Key is the storage key holding the entries.
func (j *Journal) Key() string {
	return j.key
}

// Load replaces the in-memory collection with the persisted one. It never
// fails: unreadable data yields an empty collection and unusable records are
// skipped one by one.
func (j *Journal) Load() []entry.Entry {
	j.entries = nil

	raw, err := j.kv.Get(j.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			j.logger.Warn("journal: read failed, starting empty", "key", j.key, "err", err)
		}
		return j.Entries()
	}
	if raw == "" {
		return j.Entries()
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		j.logger.Warn("journal: malformed data, starting empty", "key", j.key, "err", err)
		return j.Entries()
	}

	for i, rec := range records {
		var e entry.Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			j.logger.Warn("journal: skipping record", "index", i, "err", err)
			continue
		}
		if err := e.Validate(); err != nil {
			j.logger.Warn("journal: skipping record", "index", i, "err", err)
			continue
		}
		if idx := j.indexOf(e.Key()); idx >= 0 {
			j.logger.Warn("journal: duplicate day, keeping the later record", "day", e.Key())
			j.entries[idx] = e
			continue
		}
		j.entries = append(j.entries, e)
	}
	return j.Entries()
}

// Entries returns a copy of the collection in storage order.
func (j *Journal) Entries() []entry.Entry {
	out := make([]entry.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len is the number of stored days.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Find returns the entry for the calendar day of date.
func (j *Journal) Find(date time.Time) (entry.Entry, bool) {
	return entry.FindByDay(j.entries, date)
}

// Today returns the entry for the current day, if recorded.
func (j *Journal) Today() (entry.Entry, bool) {
	return j.Find(j.clock.Now())
}

// Now is the journal clock's current time.
func (j *Journal) Now() time.Time {
	return j.clock.Now()
}

// AddOrUpdate stores e, replacing any entry on the same day. Invalid entries
// return a *entry.ValidationError and leave the collection untouched.
func (j *Journal) AddOrUpdate(e entry.Entry) (MutationResult, error) {
	e.Date = entry.Normalize(e.Date)
	if err := e.Validate(); err != nil {
		return MutationResult{}, err
	}

	result := MutationResult{Kind: Created, Entry: e}
	if idx := j.indexOf(e.Key()); idx >= 0 {
		previous := j.entries[idx]
		j.entries[idx] = e
		result.Kind = Updated
		result.Previous = &previous
	} else {
		j.entries = append(j.entries, e)
	}
	j.save()

	change := Change{Kind: ChangeCreated, Entry: &result.Entry}
	if result.Kind == Updated {
		change = Change{Kind: ChangeUpdated, Entry: &result.Entry, Previous: result.Previous}
	}
	j.record(change)
	return result, nil
}

// Delete removes the entry for the day of date and returns it. The second
// result is false when there was nothing to remove.
func (j *Journal) Delete(date time.Time) (entry.Entry, bool) {
	removed, ok := j.remove(entry.KeyOf(date))
	if !ok {
		return entry.Entry{}, false
	}
	j.save()
	j.record(Change{Kind: ChangeDeleted, Entry: &removed})
	return removed, true
}

// Restore puts back an entry that was deleted or overwritten. It refuses,
// returning false, when that day already holds an entry so newer edits are
// never clobbered. Restoring the entry of a recorded delete settles that
// undo record.
func (j *Journal) Restore(e entry.Entry) bool {
	if !j.restore(e) {
		return false
	}
	j.save()
	if c, ok := j.LastChange(); ok && c.Kind == ChangeDeleted && c.Entry != nil && c.Entry.Equal(e) {
		j.forget()
	}
	return true
}

// UndoDelete restores an entry returned by Delete.
func (j *Journal) UndoDelete(removed entry.Entry) bool {
	if !j.Restore(removed) {
		return false
	}
	j.forget()
	return true
}

// UndoUpdate reverts an AddOrUpdate. A created entry is removed; an updated
// entry gets its previous value back. Either only happens while the day still
// holds exactly what the mutation wrote.
func (j *Journal) UndoUpdate(result MutationResult) bool {
	current, ok := j.Find(result.Entry.Date)
	if !ok || !current.Equal(result.Entry) {
		return false
	}
	switch result.Kind {
	case Created:
		j.remove(result.Entry.Key())
		j.save()
		j.forget()
		return true
	case Updated:
		if result.Previous == nil {
			return false
		}
		j.remove(result.Entry.Key())
		if !j.restore(*result.Previous) {
			j.entries = append(j.entries, current)
			return false
		}
		j.save()
		j.forget()
		return true
	}
	return false
}

// ReplaceAll swaps in a whole new collection. Every entry is validated first;
// on error nothing changes. Repeated days keep the last value.
func (j *Journal) ReplaceAll(entries []entry.Entry) error {
	next, err := dedup(entries)
	if err != nil {
		return err
	}
	snapshot := j.Entries()
	j.entries = next
	j.save()
	j.record(Change{Kind: ChangeReplaced, Snapshot: snapshot})
	return nil
}

func dedup(entries []entry.Entry) ([]entry.Entry, error) {
	out := make([]entry.Entry, 0, len(entries))
	index := make(map[entry.DayKey]int, len(entries))
	for _, e := range entries {
		e.Date = entry.Normalize(e.Date)
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if i, ok := index[e.Key()]; ok {
			out[i] = e
			continue
		}
		index[e.Key()] = len(out)
		out = append(out, e)
	}
	return out, nil
}

func (j *Journal) restore(e entry.Entry) bool {
	e.Date = entry.Normalize(e.Date)
	if err := e.Validate(); err != nil {
		j.logger.Warn("journal: refusing to restore invalid entry", "err", err)
		return false
	}
	if j.indexOf(e.Key()) >= 0 {
		return false
	}
	j.entries = append(j.entries, e)
	return true
}

func (j *Journal) remove(key entry.DayKey) (entry.Entry, bool) {
	idx := j.indexOf(key)
	if idx < 0 {
		return entry.Entry{}, false
	}
	removed := j.entries[idx]
	j.entries = append(j.entries[:idx], j.entries[idx+1:]...)
	return removed, true
}

func (j *Journal) indexOf(key entry.DayKey) int {
	for i, e := range j.entries {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// save writes the whole collection. Failures are logged and the in-memory
// collection stays authoritative.
func (j *Journal) save() {
	entries := j.entries
	if entries == nil {
		entries = []entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		j.logger.Error("journal: encode failed", "err", err)
		return
	}
	if err := j.kv.Set(j.key, string(data)); err != nil {
		j.logger.Error("journal: save failed, keeping changes in memory", "key", j.key, "err", err)
	}
}
