package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store provides thread-safe JSON file storage. Each record lives at
// basePath/collection/id.json and is rewritten wholesale on every Save.
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// NewStore creates a new local JSON store rooted at basePath.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Save persists data as a JSON file. The write goes through a temp file
// and rename so a crash mid-write never leaves a truncated snapshot.
func (s *Store) Save(collection, id string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.basePath, collection)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create collection directory: %w", err)
	}

	path := filepath.Join(dir, id+".json")
	tmp, err := os.CreateTemp(dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode json: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}

// Load reads data from a JSON file.
func (s *Store) Load(collection, id string, data interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, collection, id+".json")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(data); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// Delete removes a JSON file.
func (s *Store) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, collection, id+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}

// List returns all IDs in a collection.
func (s *Store) List(collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := filepath.Join(s.basePath, collection)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".json" {
			ids = append(ids, name[:len(name)-5])
		}
	}

	return ids, nil
}

// Exists checks if a record exists.
func (s *Store) Exists(collection, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, collection, id+".json")
	_, err := os.Stat(path)
	return err == nil
}
