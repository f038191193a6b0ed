package entity

import (
	"context"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/schema"
	"github.com/typecms/typecms/pkg/store"
)

// StoreBacked is the standard source: full CRUD on a Store, with hooks run
// before each mutation reaches the store.
type StoreBacked struct {
	schema *schema.Entity
	store  store.Store
	hooks  Hooks
}

// StoreBackedOption configures a StoreBacked source.
type StoreBackedOption func(*StoreBacked)

// WithHooks installs lifecycle hooks.
func WithHooks(h Hooks) StoreBackedOption {
	return func(s *StoreBacked) { s.hooks = h }
}

// NewStoreBacked builds a source exposing all five capabilities over st.
func NewStoreBacked(e *schema.Entity, st store.Store, opts ...StoreBackedOption) *StoreBacked {
	s := &StoreBacked{schema: e, store: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schema returns the entity descriptor the source serves.
func (s *StoreBacked) Schema() *schema.Entity { return s.schema }

func (s *StoreBacked) Get(ctx context.Context, _ Ext, id uuid.UUID) (schema.Record, error) {
	return s.store.SelectOne(ctx, s.schema, id)
}

func (s *StoreBacked) List(ctx context.Context, _ Ext) ([]schema.Record, error) {
	return s.store.SelectAll(ctx, s.schema)
}

func (s *StoreBacked) Create(ctx context.Context, ext Ext, rec schema.Record) (schema.Record, error) {
	if s.hooks.OnCreate != nil {
		var err error
		if rec, err = s.hooks.OnCreate(ctx, ext, rec); err != nil {
			return nil, err
		}
	}
	idKey := s.schema.IDField().Key()
	if _, ok := rec[idKey]; !ok {
		rec[idKey] = uuid.New()
	}
	if err := s.store.Insert(ctx, s.schema, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *StoreBacked) Update(ctx context.Context, ext Ext, id uuid.UUID, rec schema.Record) (schema.Record, error) {
	if s.hooks.OnUpdate != nil {
		old, err := s.store.SelectOne(ctx, s.schema, id)
		if err != nil {
			return nil, err
		}
		if rec, err = s.hooks.OnUpdate(ctx, ext, old, rec); err != nil {
			return nil, err
		}
	}
	if err := s.store.Update(ctx, s.schema, id, rec); err != nil {
		return nil, err
	}
	rec[s.schema.IDField().Key()] = id
	return rec, nil
}

func (s *StoreBacked) Delete(ctx context.Context, ext Ext, id uuid.UUID) error {
	if s.hooks.OnDelete != nil {
		rec, err := s.store.SelectOne(ctx, s.schema, id)
		if err != nil {
			return err
		}
		if err := s.hooks.OnDelete(ctx, ext, rec); err != nil {
			return err
		}
	}
	return s.store.Delete(ctx, s.schema, id)
}
