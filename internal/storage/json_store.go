package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// JSONStore keeps the whole cache in one pretty-printed JSON file. It exists
// for debugging and tests; the SQLite store is the default backend. The
// mutex covers the entries map and the backing file together, since watch
// mode reads from the tick goroutines while the cron refresh writes.
type JSONStore struct {
	path string

	mu   sync.RWMutex
	file *jsonFile
}

func NewJSONStore(cachePath string) *JSONStore {
	return &JSONStore{path: cachePath}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'loyolacal init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.file.Entries == nil {
		s.file.Entries = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save assumes the caller holds mu.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.file == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.file.Entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (s *JSONStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.file.Entries[key] = raw
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.file.Entries, key)
	return s.save()
}

func (s *JSONStore) GetCachePath() string {
	return s.path
}
