package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotExist reports that no object is stored under the requested filename.
var ErrNotExist = errors.New("object does not exist")

// Storage is a flat namespace of artifact files keyed by filename. The will
// service treats it as a cache over rendered documents; the record is the
// source of truth.
type Storage interface {
	Write(ctx context.Context, filename string, data []byte) error
	Read(ctx context.Context, filename string) ([]byte, error)
	Exists(ctx context.Context, filename string) (bool, error)
}

// MemoryStorage is an in-memory Storage used for unit tests and for running
// the service without MinIO.
type MemoryStorage struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{store: make(map[string][]byte)}
}

func (m *MemoryStorage) Write(ctx context.Context, filename string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.store[filename] = cp
	return nil
}

func (m *MemoryStorage) Read(ctx context.Context, filename string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.store[filename]
	if !ok {
		return nil, ErrNotExist
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemoryStorage) Exists(ctx context.Context, filename string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.store[filename]
	return ok, nil
}

// Delete removes an object; used by tests to simulate lost artifacts.
func (m *MemoryStorage) Delete(filename string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, filename)
}
