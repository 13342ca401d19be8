// Package store holds the string-keyed persistence boundary of the journal.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is a synchronous string-keyed key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Load creates a diskv-backed store using the provided config.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// No read cache: other processes write the same files and the journal
	// keeps its own copy in memory.
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

// Disk stores each key as one file under the base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath is the directory holding the key files.
func (p *Disk) BasePath() string {
	return p.basePath
}

func (p *Disk) Get(key string) (string, error) {
	if !p.d.Has(key) {
		return "", ErrNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), nil
}

func (p *Disk) Set(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Keys lists every key currently on disk.
func (p *Disk) Keys() []string {
	var keys []string
	for key := range p.d.Keys(nil) {
		keys = append(keys, key)
	}
	return keys
}

func flatTransform(string) []string {
	return []string{}
}

// Memory is an in-process KV, used for tests and dry runs.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
