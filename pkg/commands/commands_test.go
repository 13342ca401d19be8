package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) {
	t.Helper()
	t.Setenv("MOOD_CONFIG_PATH", t.TempDir())
	t.Setenv("MOOD_PATH", t.TempDir())
	t.Setenv("MOOD_LOG_LEVEL", "error")
}

func TestAddGetDeleteUndo(t *testing.T) {
	setup(t)

	if out, err := run(t, "add", "4", "long", "walk"); err != nil || !strings.Contains(out, "Recorded") {
		t.Fatalf("add: %v\n%s", err, out)
	}
	if out, err := run(t, "add", "very bad", "--on", "2020-1-2"); err != nil || !strings.Contains(out, "2020-01-02") {
		t.Fatalf("add --on: %v\n%s", err, out)
	}

	out, err := run(t, "get", "--json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var all []entry.Entry
	if err := json.Unmarshal([]byte(out), &all); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(all) != 2 || all[0].Notes != "long walk" || all[1].Mood != entry.VeryBad {
		t.Fatalf("unexpected history %v", all)
	}

	if out, err := run(t, "delete", "--on", "2020-1-2"); err != nil || !strings.Contains(out, "Deleted") {
		t.Fatalf("delete: %v\n%s", err, out)
	}
	if out, err := run(t, "undo"); err != nil || !strings.Contains(out, "Undid: deleted 2020-01-02") {
		t.Fatalf("undo: %v\n%s", err, out)
	}
	if _, err := run(t, "undo"); err == nil {
		t.Fatalf("expected nothing left to undo")
	}
}

func TestAddRejectsUnknownMood(t *testing.T) {
	setup(t)
	if _, err := run(t, "add", "7"); err == nil {
		t.Fatalf("expected error for mood 7")
	}
	if _, err := run(t, "add"); err == nil {
		t.Fatalf("expected error without a mood")
	}
}

func TestJSONErrors(t *testing.T) {
	setup(t)
	out, err := run(t, "undo", "--json")
	if err != nil {
		t.Fatalf("json errors are printed, not returned: %v", err)
	}
	if !strings.Contains(out, `"error"`) {
		t.Fatalf("expected error object, got %q", out)
	}
}

func TestSeedStatsExport(t *testing.T) {
	setup(t)

	if out, err := run(t, "seed", "--seed", "42"); err != nil || !strings.Contains(out, "Generated") {
		t.Fatalf("seed: %v\n%s", err, out)
	}
	if _, err := run(t, "seed"); err == nil {
		t.Fatalf("expected seed to refuse a non-empty journal")
	}

	out, err := run(t, "stats", "--last", "90d", "--json")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var report struct {
		Entries int    `json:"entries"`
		Average string `json:"average"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if report.Entries == 0 || report.Average == "N/A" {
		t.Fatalf("expected seeded stats, got %+v", report)
	}

	out, err = run(t, "export", "-o", "yaml")
	if err != nil || !strings.Contains(out, "mood:") {
		t.Fatalf("export: %v\n%s", err, out)
	}
}

func TestKeyAndVersion(t *testing.T) {
	setup(t)
	if out, err := run(t, "key"); err != nil || !strings.Contains(out, "Very Good") {
		t.Fatalf("key: %v\n%s", err, out)
	}
	if out, err := run(t, "version"); err != nil || !strings.Contains(out, "dev") {
		t.Fatalf("version: %v\n%s", err, out)
	}
}
