package journal

import (
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
)

var (
	// ErrNothingToUndo is returned when no change has been recorded.
	ErrNothingToUndo = errors.New("journal: nothing to undo")
	// ErrUndoConflict is returned when the day was edited after the change.
	ErrUndoConflict = errors.New("journal: day changed since, not undoing")
)

// ChangeKind names the last mutation kept for undo.
type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeUpdated  ChangeKind = "updated"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeReplaced ChangeKind = "replaced"
)

// Change is the single-level undo record, persisted next to the entries so a
// later process can revert it.
type Change struct {
	Kind     ChangeKind    `json:"kind"`
	Entry    *entry.Entry  `json:"entry,omitempty"`
	Previous *entry.Entry  `json:"previous,omitempty"`
	Snapshot []entry.Entry `json:"snapshot,omitempty"`
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeCreated, ChangeDeleted:
		if c.Entry != nil {
			return fmt.Sprintf("%s %s", c.Kind, c.Entry.Key())
		}
	case ChangeUpdated:
		if c.Entry != nil && c.Previous != nil {
			return fmt.Sprintf("updated %s (%d → %d)", c.Entry.Key(), c.Previous.Mood, c.Entry.Mood)
		}
	case ChangeReplaced:
		return fmt.Sprintf("replaced collection (%d entries before)", len(c.Snapshot))
	}
	return string(c.Kind)
}

func (j *Journal) undoKey() string {
	return j.key + ".undo"
}

// LastChange returns the recorded undo change, if any.
func (j *Journal) LastChange() (Change, bool) {
	raw, err := j.kv.Get(j.undoKey())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			j.logger.Warn("journal: read undo record", "err", err)
		}
		return Change{}, false
	}
	if raw == "" {
		return Change{}, false
	}
	var c Change
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		j.logger.Warn("journal: malformed undo record", "err", err)
		return Change{}, false
	}
	return c, true
}

// Undo reverts the last recorded change once. It never overwrites a day that
// was edited after that change.
func (j *Journal) Undo() (Change, error) {
	c, ok := j.LastChange()
	if !ok {
		return Change{}, ErrNothingToUndo
	}

	switch c.Kind {
	case ChangeDeleted:
		if c.Entry == nil {
			return c, ErrNothingToUndo
		}
		if !j.Restore(*c.Entry) {
			return c, ErrUndoConflict
		}
	case ChangeCreated:
		if c.Entry == nil {
			return c, ErrNothingToUndo
		}
		if !j.UndoUpdate(MutationResult{Kind: Created, Entry: *c.Entry}) {
			return c, ErrUndoConflict
		}
	case ChangeUpdated:
		if c.Entry == nil || c.Previous == nil {
			return c, ErrNothingToUndo
		}
		if !j.UndoUpdate(MutationResult{Kind: Updated, Entry: *c.Entry, Previous: c.Previous}) {
			return c, ErrUndoConflict
		}
	case ChangeReplaced:
		next, err := dedup(c.Snapshot)
		if err != nil {
			return c, fmt.Errorf("journal: undo snapshot: %w", err)
		}
		j.entries = next
		j.save()
	default:
		return c, fmt.Errorf("journal: unknown change kind %q", c.Kind)
	}

	j.forget()
	return c, nil
}

func (j *Journal) record(c Change) {
	data, err := json.Marshal(c)
	if err != nil {
		j.logger.Error("journal: encode undo record", "err", err)
		return
	}
	if err := j.kv.Set(j.undoKey(), string(data)); err != nil {
		j.logger.Error("journal: save undo record", "err", err)
	}
}

func (j *Journal) forget() {
	if err := j.kv.Set(j.undoKey(), ""); err != nil {
		j.logger.Error("journal: clear undo record", "err", err)
	}
}
