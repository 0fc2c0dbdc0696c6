package testutil

import (
	"fmt"
	"io"
	"sync"
)

// MemStorage is an in-memory stand-in for the blob store.
type MemStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{blobs: make(map[string][]byte)}
}

func (m *MemStorage) Save(path string, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[path] = data
	return nil
}

func (m *MemStorage) Delete(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.blobs[path]
	if !ok {
		return fmt.Errorf("no blob at %s", path)
	}
	delete(m.blobs, path)
	return nil
}

func (m *MemStorage) URL(path string) string {
	return "mem://" + path
}

// Len reports how many blobs are stored.
func (m *MemStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}
