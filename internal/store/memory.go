package store

import (
	"context"
	"sync"

	"mercado/internal/domain"
)

// Memory is the seeded in-memory fallback store. It is demo-quality on
// purpose: mutations live only as long as the store instance, there is no
// isolation between racing calls, and the last write wins.
type Memory[T any, PT domain.RecordPtr[T]] struct {
	mu    sync.Mutex
	items []T
}

// NewMemory copies the seed so distinct store instances never share state.
func NewMemory[T any, PT domain.RecordPtr[T]](seed []T) *Memory[T, PT] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Memory[T, PT]{items: items}
}

func (m *Memory[T, PT]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory[T, PT]) Get(ctx context.Context, id domain.ID) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		return m.items[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T, PT]) Create(ctx context.Context, item T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	PT(&item).SetRecordID(NewID())
	m.items = append(m.items, item)
	return item, nil
}

func (m *Memory[T, PT]) Update(ctx context.Context, id domain.ID, item T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	PT(&item).SetRecordID(id)
	m.items[i] = item
	return item, nil
}

func (m *Memory[T, PT]) Delete(ctx context.Context, id domain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrNotFound
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

// index returns the position of the record with the given id, or -1.
// Callers must hold the mutex.
func (m *Memory[T, PT]) index(id domain.ID) int {
	for i := range m.items {
		if PT(&m.items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}
