package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
)

// MemoryRepo is an in-memory Repository used for unit tests and for running
// the service without MongoDB.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*will.Will
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[int64]*will.Will)}
}

func (m *MemoryRepo) Create(ctx context.Context, w *will.Will) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	w.ID = m.nextID
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	cp := *w
	m.store[w.ID] = &cp
	return w.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id int64) (*will.Will, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*will.Will, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*will.Will, 0, len(m.store))
	for _, w := range m.store {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepo) UpdateArtifact(ctx context.Context, id int64, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	w.PDFFilename = filename
	return nil
}
