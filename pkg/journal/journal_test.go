package journal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// failingKV accepts reads but refuses every write.
type failingKV struct {
	store.KV
}

func (failingKV) Set(string, string) error {
	return errors.New("disk full")
}

func newJournal(t *testing.T, entries ...entry.Entry) (*Journal, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	j := New(kv, WithClock(timeutil.FixedClock(day(2024, time.January, 2).Add(15*time.Hour))))
	j.Load()
	for _, e := range entries {
		if _, err := j.AddOrUpdate(e); err != nil {
			t.Fatalf("seed %v: %v", e, err)
		}
	}
	return j, kv
}

func keys(entries []entry.Entry) map[entry.DayKey]entry.Entry {
	out := make(map[entry.DayKey]entry.Entry, len(entries))
	for _, e := range entries {
		out[e.Key()] = e
	}
	return out
}

func TestAddOrUpdateKeepsOneEntryPerDay(t *testing.T) {
	j, _ := newJournal(t)

	first, err := j.AddOrUpdate(entry.Entry{Date: time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local), Mood: entry.Bad})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Kind != Created || first.Previous != nil {
		t.Fatalf("expected created without previous, got %+v", first)
	}

	second, err := j.AddOrUpdate(entry.Entry{Date: time.Date(2024, 1, 1, 22, 0, 0, 0, time.Local), Mood: entry.Good, Notes: "better"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if second.Kind != Updated {
		t.Fatalf("expected updated, got %s", second.Kind)
	}
	if second.Previous == nil || second.Previous.Mood != entry.Bad {
		t.Fatalf("expected previous mood Bad, got %+v", second.Previous)
	}

	all := j.Entries()
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
	if all[0].Mood != entry.Good || all[0].Notes != "better" {
		t.Fatalf("expected latest values, got %v", all[0])
	}
	if !all[0].Date.Equal(day(2024, 1, 1)) {
		t.Fatalf("expected date normalized to midnight, got %v", all[0].Date)
	}
}

func TestAddOrUpdateRejectsInvalid(t *testing.T) {
	j, kv := newJournal(t, entry.New(day(2024, 1, 1), entry.Neutral, ""))
	before, _ := kv.Get(store.DefaultKey)

	for _, e := range []entry.Entry{
		entry.New(day(2024, 1, 1), 0, ""),
		entry.New(day(2024, 1, 2), 6, ""),
		entry.New(day(2024, 1, 2), entry.Good, strings.Repeat("x", entry.MaxNotesLength+1)),
	} {
		_, err := j.AddOrUpdate(e)
		var verr *entry.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %v, got %v", e, err)
		}
	}

	all := j.Entries()
	if len(all) != 1 || all[0].Mood != entry.Neutral {
		t.Fatalf("collection changed: %v", all)
	}
	after, _ := kv.Get(store.DefaultKey)
	if before != after {
		t.Fatalf("persisted value changed")
	}
}

func TestDeleteThenRestore(t *testing.T) {
	j, _ := newJournal(t,
		entry.New(day(2024, 1, 1), entry.Neutral, "a"),
		entry.New(day(2024, 1, 2), entry.VeryGood, "b"),
	)
	before := keys(j.Entries())

	removed, ok := j.Delete(time.Date(2024, 1, 1, 13, 0, 0, 0, time.Local))
	if !ok {
		t.Fatalf("expected delete to find the entry")
	}
	if removed.Notes != "a" {
		t.Fatalf("unexpected removed entry %v", removed)
	}
	if j.Len() != 1 {
		t.Fatalf("expected 1 entry after delete, got %d", j.Len())
	}

	if !j.Restore(removed) {
		t.Fatalf("expected restore to succeed")
	}
	after := keys(j.Entries())
	if len(after) != len(before) {
		t.Fatalf("expected %d entries, got %d", len(before), len(after))
	}
	for k, e := range before {
		if !after[k].Equal(e) {
			t.Fatalf("entry %s differs: %v vs %v", k, after[k], e)
		}
	}
}

func TestRestoreDoesNotClobberNewerEdit(t *testing.T) {
	j, _ := newJournal(t, entry.New(day(2024, 1, 1), entry.Neutral, "old"))

	removed, ok := j.Delete(day(2024, 1, 1))
	if !ok {
		t.Fatalf("expected delete")
	}
	if _, err := j.AddOrUpdate(entry.New(day(2024, 1, 1), entry.VeryGood, "new")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if j.Restore(removed) {
		t.Fatalf("restore should fail while the day is taken")
	}
	got, _ := j.Find(day(2024, 1, 1))
	if got.Notes != "new" || got.Mood != entry.VeryGood {
		t.Fatalf("newer entry was overwritten: %v", got)
	}
}

func TestDeleteMissing(t *testing.T) {
	j, _ := newJournal(t)
	if _, ok := j.Delete(day(2024, 5, 5)); ok {
		t.Fatalf("expected nothing to delete")
	}
}

func TestUndoUpdateHelpers(t *testing.T) {
	j, _ := newJournal(t, entry.New(day(2024, 1, 1), entry.Neutral, ""))

	res, err := j.AddOrUpdate(entry.New(day(2024, 1, 1), entry.Good, ""))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !j.UndoUpdate(res) {
		t.Fatalf("expected undo of update to succeed")
	}
	got, _ := j.Find(day(2024, 1, 1))
	if got.Mood != entry.Neutral {
		t.Fatalf("expected previous mood back, got %v", got)
	}
	if j.UndoUpdate(res) {
		t.Fatalf("second undo should fail, day no longer holds the update")
	}

	created, err := j.AddOrUpdate(entry.New(day(2024, 1, 3), entry.Bad, ""))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !j.UndoUpdate(created) {
		t.Fatalf("expected undo of create to succeed")
	}
	if _, ok := j.Find(day(2024, 1, 3)); ok {
		t.Fatalf("created entry should be gone")
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set(store.DefaultKey, `[
		{"date":"2024-01-01T00:00:00Z","mood":3,"notes":""},
		{"date":"not a date","mood":4,"notes":""},
		{"date":"2024-01-02","mood":9,"notes":""},
		{"date":"Wed Jan 03 2024","mood":5,"notes":"ok"},
		"junk",
		{"date":"2024-01-03","mood":2,"notes":"later"}
	]`)

	j := New(kv)
	all := j.Load()
	byKey := keys(all)
	if len(all) != 2 {
		t.Fatalf("expected 2 usable entries, got %d: %v", len(all), all)
	}
	if got := byKey["2024-01-03"]; got.Notes != "later" {
		t.Fatalf("expected later duplicate to win, got %v", got)
	}
}

func TestLoadFailsSoft(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":     "",
		"not json":  "{{{",
		"not array": `{"date":"2024-01-01","mood":3}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := store.NewMemory()
			_ = kv.Set(store.DefaultKey, raw)
			if all := New(kv).Load(); len(all) != 0 {
				t.Fatalf("expected empty collection, got %v", all)
			}
		})
	}
	if all := New(store.NewMemory()).Load(); len(all) != 0 {
		t.Fatalf("expected empty collection for missing key")
	}
}

func TestPersistRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	j := New(kv, WithKey("custom"))
	j.Load()
	if _, err := j.AddOrUpdate(entry.New(day(2024, 2, 29), entry.VeryBad, "leap")); err != nil {
		t.Fatalf("add: %v", err)
	}

	again := New(kv, WithKey("custom"))
	all := again.Load()
	if len(all) != 1 || all[0].Key() != "2024-02-29" || all[0].Notes != "leap" || all[0].Mood != entry.VeryBad {
		t.Fatalf("unexpected reloaded entries %v", all)
	}
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	j := New(failingKV{KV: store.NewMemory()})
	j.Load()
	res, err := j.AddOrUpdate(entry.New(day(2024, 1, 1), entry.Good, ""))
	if err != nil {
		t.Fatalf("save failures must not surface: %v", err)
	}
	if res.Kind != Created || j.Len() != 1 {
		t.Fatalf("expected entry kept in memory, got %+v len=%d", res, j.Len())
	}
}

func TestReplaceAll(t *testing.T) {
	j, _ := newJournal(t, entry.New(day(2024, 1, 1), entry.Neutral, ""))

	err := j.ReplaceAll([]entry.Entry{
		entry.New(day(2024, 1, 5), entry.Good, ""),
		entry.New(day(2024, 1, 6), 7, ""),
	})
	var verr *entry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("collection changed on invalid replace")
	}

	if err := j.ReplaceAll([]entry.Entry{
		entry.New(day(2024, 1, 5), entry.Good, ""),
		entry.New(day(2024, 1, 6), entry.Bad, ""),
		entry.New(time.Date(2024, 1, 6, 20, 0, 0, 0, time.Local), entry.VeryGood, ""),
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	all := keys(j.Entries())
	if len(all) != 2 || all["2024-01-06"].Mood != entry.VeryGood {
		t.Fatalf("unexpected collection %v", all)
	}
}

func TestToday(t *testing.T) {
	j, _ := newJournal(t, entry.New(day(2024, 1, 2), entry.Good, ""))
	got, ok := j.Today()
	if !ok || got.Mood != entry.Good {
		t.Fatalf("expected today's entry, got %v %v", got, ok)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	j, _ := newJournal(t, entry.New(day(2024, 1, 1), entry.Good, ""))
	snap := j.Entries()
	snap[0].Mood = entry.VeryBad
	if got, _ := j.Find(day(2024, 1, 1)); got.Mood != entry.Good {
		t.Fatalf("snapshot mutation leaked into journal")
	}
}
