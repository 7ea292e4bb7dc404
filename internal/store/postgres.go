package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mercado/internal/domain"
)

// Postgres persists records of one kind as jsonb documents in the shared
// resources table. The resource server treats documents as opaque, which
// keeps a single implementation working for every entity kind.
type Postgres[T any, PT domain.RecordPtr[T]] struct {
	db   *sql.DB
	kind string
}

// NewPostgres creates a document store scoped to one entity kind.
func NewPostgres[T any, PT domain.RecordPtr[T]](db *sql.DB, kind string) *Postgres[T, PT] {
	return &Postgres[T, PT]{db: db, kind: kind}
}

func (p *Postgres[T, PT]) List(ctx context.Context) ([]T, error) {
	query := `
		SELECT doc
		FROM resources
		WHERE kind = $1
		ORDER BY id ASC
	`

	rows, err := p.db.QueryContext(ctx, query, p.kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", p.kind, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", p.kind, err)
		}
		var item T
		if err := json.Unmarshal(doc, PT(&item)); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", p.kind, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", p.kind, err)
	}

	return items, nil
}

func (p *Postgres[T, PT]) Get(ctx context.Context, id domain.ID) (T, error) {
	query := `
		SELECT doc
		FROM resources
		WHERE kind = $1 AND id = $2
	`

	var zero T
	var doc []byte
	err := p.db.QueryRowContext(ctx, query, p.kind, id.Int64()).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("failed to find %s by id: %w", p.kind, err)
	}

	var item T
	if err := json.Unmarshal(doc, PT(&item)); err != nil {
		return zero, fmt.Errorf("failed to decode %s document: %w", p.kind, err)
	}
	return item, nil
}

func (p *Postgres[T, PT]) Create(ctx context.Context, item T) (T, error) {
	id := NewID()
	PT(&item).SetRecordID(id)

	doc, err := json.Marshal(PT(&item))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to encode %s document: %w", p.kind, err)
	}

	query := `
		INSERT INTO resources (kind, id, doc)
		VALUES ($1, $2, $3)
	`

	if _, err := p.db.ExecContext(ctx, query, p.kind, id.Int64(), doc); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to create %s: %w", p.kind, err)
	}

	return item, nil
}

func (p *Postgres[T, PT]) Update(ctx context.Context, id domain.ID, item T) (T, error) {
	PT(&item).SetRecordID(id)

	var zero T
	doc, err := json.Marshal(PT(&item))
	if err != nil {
		return zero, fmt.Errorf("failed to encode %s document: %w", p.kind, err)
	}

	query := `
		UPDATE resources
		SET doc = $3, updated_at = now()
		WHERE kind = $1 AND id = $2
	`

	result, err := p.db.ExecContext(ctx, query, p.kind, id.Int64(), doc)
	if err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", p.kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return zero, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return zero, ErrNotFound
	}

	return item, nil
}

func (p *Postgres[T, PT]) Delete(ctx context.Context, id domain.ID) error {
	query := `DELETE FROM resources WHERE kind = $1 AND id = $2`

	result, err := p.db.ExecContext(ctx, query, p.kind, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", p.kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
