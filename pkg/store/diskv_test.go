package store

import (
	"errors"
	"testing"
)

func TestDiskRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if _, err := p.Get(DefaultKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := p.Set(DefaultKey, `[{"date":"2024-01-01","mood":3,"notes":""}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh store over the same directory sees the value.
	again, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	got, err := again.Get(DefaultKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"date":"2024-01-01","mood":3,"notes":""}]` {
		t.Fatalf("unexpected value %q", got)
	}
	keys := again.Keys()
	if len(keys) != 1 || keys[0] != DefaultKey {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestMemory(t *testing.T) {
	var kv KV = NewMemory()
	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, err := kv.Get("k"); err != nil || v != "v" {
		t.Fatalf("unexpected %q %v", v, err)
	}
}

func TestDiskSeesWritesFromAnotherStore(t *testing.T) {
	base := t.TempDir()
	reader, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	writer, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if err := writer.Set(DefaultKey, "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := reader.Get(DefaultKey); got != "one" {
		t.Fatalf("expected one, got %q", got)
	}
	if err := writer.Set(DefaultKey, "two"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := reader.Get(DefaultKey); got != "two" {
		t.Fatalf("expected a fresh read, got %q", got)
	}
}
