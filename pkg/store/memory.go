package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/schema"
)

// Memory is an in-memory Store. Zero value is not usable; call NewMemory.
type Memory struct {
	mu    sync.RWMutex
	data  map[string]map[uuid.UUID]schema.Record
	order map[string][]uuid.UUID
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:  make(map[string]map[uuid.UUID]schema.Record),
		order: make(map[string][]uuid.UUID),
	}
}

func (m *Memory) SelectAll(_ context.Context, e *schema.Entity) ([]schema.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.order[e.Name()]
	out := make([]schema.Record, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, maps.Clone(m.data[e.Name()][ids[i]]))
	}
	return out, nil
}

func (m *Memory) SelectOne(_ context.Context, e *schema.Entity, id uuid.UUID) (schema.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.data[e.Name()][id]
	if !ok {
		return nil, ErrNotFound
	}
	return maps.Clone(rec), nil
}

func (m *Memory) Insert(_ context.Context, e *schema.Entity, rec schema.Record) error {
	id, err := recordID(e, rec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[e.Name()][id]; ok {
		return fmt.Errorf("%w: %s %s", ErrConflict, e.Name(), id)
	}
	if m.data[e.Name()] == nil {
		m.data[e.Name()] = make(map[uuid.UUID]schema.Record)
	}
	m.data[e.Name()][id] = maps.Clone(rec)
	m.order[e.Name()] = append(m.order[e.Name()], id)
	return nil
}

func (m *Memory) Update(_ context.Context, e *schema.Entity, id uuid.UUID, rec schema.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[e.Name()][id]; !ok {
		return ErrNotFound
	}
	updated := maps.Clone(rec)
	updated[e.IDField().Key()] = id
	m.data[e.Name()][id] = updated
	return nil
}

func (m *Memory) Delete(_ context.Context, e *schema.Entity, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[e.Name()][id]; !ok {
		return ErrNotFound
	}
	delete(m.data[e.Name()], id)

	ids := m.order[e.Name()]
	for i, v := range ids {
		if v == id {
			m.order[e.Name()] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
