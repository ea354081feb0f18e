package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists the whole keyspace as a single JSON document on disk,
// written through on every mutation. This is the local-storage analog used
// for single-user deployments.
type File struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// NewFile loads the document at path, creating parent directories as needed.
// A missing file starts an empty keyspace.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = "./data/portal.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	f := &File{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("parse storage file: %w", err)
		}
	}

	return f, nil
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

func (f *File) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return f.flush()
}

func (f *File) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = make(map[string]string)
	return f.flush()
}

// flush writes the document via a temp file and rename so a crash mid-write
// cannot truncate the previous state. Caller holds f.mu.
func (f *File) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encode storage document: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
