// Package entity defines the capability interfaces an entity source can
// implement and the lifecycle hooks that run around mutations.
//
// Each capability is its own interface, so a source may be read-only, write
// only, or any other subset. The HTTP layer checks the capability set once
// at registration and mounts only the matching routes.
package entity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/schema"
)

// Ext is the request-scoped extension passed to sources and hooks, such as
// the authenticated user. Its concrete type is an agreement between the
// application's ExtExtractor and its hooks; the dispatcher never inspects it.
type Ext any

// ExtExtractor produces the extension from the request context. Extraction
// failure rejects the request before any source or hook runs.
type ExtExtractor func(ctx context.Context) (Ext, error)

// ErrExt wraps extension extraction failures so the HTTP layer can tell
// them apart from source and hook errors.
var ErrExt = errors.New("entity: extension extraction failed")

// Getter loads one record by id.
type Getter interface {
	Get(ctx context.Context, ext Ext, id uuid.UUID) (schema.Record, error)
}

// Lister loads every record, newest first.
type Lister interface {
	List(ctx context.Context, ext Ext) ([]schema.Record, error)
}

// Creator stores a new record and returns it with its assigned id.
type Creator interface {
	Create(ctx context.Context, ext Ext, rec schema.Record) (schema.Record, error)
}

// Updater replaces the record with the given id and returns the result.
type Updater interface {
	Update(ctx context.Context, ext Ext, id uuid.UUID, rec schema.Record) (schema.Record, error)
}

// Deleter removes the record with the given id.
type Deleter interface {
	Delete(ctx context.Context, ext Ext, id uuid.UUID) error
}

// Capabilities is the set of operations a source supports.
type Capabilities struct {
	Get    bool
	List   bool
	Create bool
	Update bool
	Delete bool
}

// CapabilitiesOf inspects a source once so routes can be mounted for the
// operations it actually implements.
func CapabilitiesOf(source any) Capabilities {
	var c Capabilities
	_, c.Get = source.(Getter)
	_, c.List = source.(Lister)
	_, c.Create = source.(Creator)
	_, c.Update = source.(Updater)
	_, c.Delete = source.(Deleter)
	return c
}

// Hooks run around mutations. A nil hook is an identity pass-through. A hook
// error aborts the operation before anything is persisted.
type Hooks struct {
	// OnCreate may amend the record before it is stored.
	OnCreate func(ctx context.Context, ext Ext, rec schema.Record) (schema.Record, error)

	// OnUpdate sees the stored record and the incoming one, and may amend
	// the latter.
	OnUpdate func(ctx context.Context, ext Ext, old, updated schema.Record) (schema.Record, error)

	// OnDelete sees the record about to be removed.
	OnDelete func(ctx context.Context, ext Ext, rec schema.Record) error
}

// Extract runs the extractor, defaulting to a nil extension.
func Extract(ctx context.Context, fn ExtExtractor) (Ext, error) {
	if fn == nil {
		return nil, nil
	}
	ext, err := fn(ctx)
	if err != nil {
		return nil, errors.Join(ErrExt, err)
	}
	return ext, nil
}
