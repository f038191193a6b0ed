package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/typecms/typecms/pkg/schema"
)

// Postgres stores records as jsonb documents in the cms_records table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an established connection pool. Run Migrate before
// first use.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SelectAll(ctx context.Context, e *schema.Entity) ([]schema.Record, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT data FROM cms_records WHERE entity = $1 ORDER BY created_at DESC`,
		e.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: select %s: %v", ErrStore, e.Name(), err)
	}
	defer rows.Close()

	var out []schema.Record
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", ErrStore, e.Name(), err)
		}
		rec, err := rehydrate(e, data)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: select %s: %v", ErrStore, e.Name(), err)
	}
	return out, nil
}

func (p *Postgres) SelectOne(ctx context.Context, e *schema.Entity, id uuid.UUID) (schema.Record, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data FROM cms_records WHERE entity = $1 AND id = $2`,
		e.Name(), id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select %s %s: %v", ErrStore, e.Name(), id, err)
	}
	return rehydrate(e, data)
}

func (p *Postgres) Insert(ctx context.Context, e *schema.Entity, rec schema.Record) error {
	id, err := recordID(e, rec)
	if err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStore, e.Name(), err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO cms_records (entity, id, data) VALUES ($1, $2, $3)`,
		e.Name(), id, data)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s %s", ErrConflict, e.Name(), id)
	}
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrStore, e.Name(), err)
	}
	return nil
}

func (p *Postgres) Update(ctx context.Context, e *schema.Entity, id uuid.UUID, rec schema.Record) error {
	updated := make(schema.Record, len(rec)+1)
	for k, v := range rec {
		updated[k] = v
	}
	updated[e.IDField().Key()] = id

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStore, e.Name(), err)
	}
	tag, err := p.pool.Exec(ctx,
		`UPDATE cms_records SET data = $3, updated_at = now() WHERE entity = $1 AND id = $2`,
		e.Name(), id, data)
	if err != nil {
		return fmt.Errorf("%w: update %s %s: %v", ErrStore, e.Name(), id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, e *schema.Entity, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM cms_records WHERE entity = $1 AND id = $2`,
		e.Name(), id)
	if err != nil {
		return fmt.Errorf("%w: delete %s %s: %v", ErrStore, e.Name(), id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// rehydrate turns a stored document back into typed values via the schema.
func rehydrate(e *schema.Entity, data []byte) (schema.Record, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: decode %s document: %v", ErrStore, e.Name(), err)
	}
	rec, err := e.DecodeJSON(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s document does not match schema: %v", ErrStore, e.Name(), err)
	}
	return rec, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
