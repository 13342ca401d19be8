package add

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)

func TestAddRecordsThenUpdates(t *testing.T) {
	j := journal.New(store.NewMemory(), journal.WithClock(timeutil.FixedClock(now)))
	j.Load()
	var buf bytes.Buffer

	a := Add{Mood: entry.Bad, Notes: "rainy", Journal: j, Printer: &printers.PrettyPrint{Out: &buf}}
	res, err := a.Do(context.Background())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Kind != journal.Created || res.Entry.Key() != "2024-03-10" {
		t.Fatalf("unexpected result %+v", res)
	}

	a = Add{Mood: entry.Good, Journal: j, Printer: &printers.PrettyPrint{Out: &buf}}
	if res, err = a.Do(context.Background()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Kind != journal.Updated {
		t.Fatalf("expected update, got %s", res.Kind)
	}
	out := buf.String()
	if !strings.Contains(out, "Recorded 2024-03-10") || !strings.Contains(out, "(was 2, Bad)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if j.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", j.Len())
	}
}

func TestAddOnAnotherDay(t *testing.T) {
	j := journal.New(store.NewMemory(), journal.WithClock(timeutil.FixedClock(now)))
	j.Load()
	on := now.AddDate(0, 0, -3)
	a := Add{Mood: entry.VeryGood, On: &on, Journal: j}
	if _, err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, ok := j.Find(on); !ok {
		t.Fatalf("expected entry on %s", entry.KeyOf(on))
	}
	if _, ok := j.Today(); ok {
		t.Fatalf("today should be empty")
	}
}

func TestAddRejectsBadMood(t *testing.T) {
	j := journal.New(store.NewMemory(), journal.WithClock(timeutil.FixedClock(now)))
	j.Load()
	a := Add{Mood: 0, Journal: j}
	_, err := a.Do(context.Background())
	var verr *entry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
