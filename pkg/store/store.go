// Package store persists entity records. Records are stored as JSON
// documents keyed by entity name and id; the entity schema rehydrates typed
// values when reading back.
//
// Two implementations ship with the package: Memory for tests and small
// tools, Postgres for production.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/schema"
)

var (
	// ErrNotFound is returned when no record matches the id.
	ErrNotFound = errors.New("store: record not found")

	// ErrConflict is returned when inserting an id that already exists.
	ErrConflict = errors.New("store: record already exists")

	// ErrStore wraps backend failures (connection loss, bad documents).
	ErrStore = errors.New("store: backend error")
)

// Store is the persistence interface the entity dispatcher runs on.
// Implementations must be safe for concurrent use.
type Store interface {
	// SelectAll returns every record of the entity, newest first.
	SelectAll(ctx context.Context, e *schema.Entity) ([]schema.Record, error)

	// SelectOne returns the record with the given id or ErrNotFound.
	SelectOne(ctx context.Context, e *schema.Entity, id uuid.UUID) (schema.Record, error)

	// Insert stores a new record. The record must carry its id field.
	Insert(ctx context.Context, e *schema.Entity, rec schema.Record) error

	// Update replaces the record with the given id or returns ErrNotFound.
	Update(ctx context.Context, e *schema.Entity, id uuid.UUID, rec schema.Record) error

	// Delete removes the record with the given id or returns ErrNotFound.
	Delete(ctx context.Context, e *schema.Entity, id uuid.UUID) error
}

// recordID extracts the record's id value.
func recordID(e *schema.Entity, rec schema.Record) (uuid.UUID, error) {
	v, ok := rec[e.IDField().Key()]
	if !ok {
		return uuid.Nil, errors.New("store: record has no id")
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("store: record id is not a uuid")
	}
	return id, nil
}
