package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/store"
)

func fixture(t *testing.T) *journal.Journal {
	t.Helper()
	j := journal.New(store.NewMemory())
	j.Load()
	for _, e := range []entry.Entry{
		entry.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), entry.Bad, ""),
		entry.New(time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local), entry.VeryGood, "party"),
		entry.New(time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), entry.Neutral, "work"),
	} {
		if _, err := j.AddOrUpdate(e); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return j
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	e := Export{Journal: fixture(t), Out: &buf}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 3 || got[0].Key() != "2024-01-03" || got[2].Key() != "2024-01-01" {
		t.Fatalf("expected newest first, got %v", got)
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	e := Export{Format: "YAML", Journal: fixture(t), Out: &buf}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []struct {
		Date  string `yaml:"date"`
		Mood  int    `yaml:"mood"`
		Notes string `yaml:"notes"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 3 || got[0].Date != "2024-01-03" || got[0].Mood != 5 || got[0].Notes != "party" {
		t.Fatalf("unexpected yaml %+v", got)
	}
	if strings.Contains(buf.String(), "notes: \"\"") {
		t.Fatalf("empty notes should be omitted:\n%s", buf.String())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e := Export{Format: "csv", Journal: fixture(t), Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("expected error for csv")
	}
}
