package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"overlaycast/internal/model"
	"overlaycast/internal/repository"
)

// OverlayPostgres is a PostgreSQL implementation of repository.OverlayRepository.
// The overlays table plays the role of a document collection: text and position are kept
// as JSONB and never interpreted by SQL.
type OverlayPostgres struct {
	db *sql.DB
}

// NewOverlayPostgres creates a new OverlayPostgres repository.
func NewOverlayPostgres(db *sql.DB) *OverlayPostgres {
	return &OverlayPostgres{db: db}
}

var _ repository.OverlayRepository = (*OverlayPostgres)(nil)

// Insert adds a row and returns the id generated by the database default.
func (r *OverlayPostgres) Insert(ctx context.Context, text, position json.RawMessage) (string, error) {
	const q = `
		INSERT INTO overlays (text, position)
		VALUES ($1, $2)
		RETURNING id
	`
	var id string
	if err := r.db.QueryRowContext(ctx, q, jsonb(text), jsonb(position)).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// FindAll returns all overlays ordered by insertion.
func (r *OverlayPostgres) FindAll(ctx context.Context) ([]model.Overlay, error) {
	const q = `
		SELECT id, text, position
		FROM overlays
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Overlay, 0)
	for rows.Next() {
		var (
			o         model.Overlay
			text, pos []byte
		)
		if err := rows.Scan(&o.ID, &text, &pos); err != nil {
			return nil, err
		}
		if o.Text, err = rawJSON("text", text); err != nil {
			return nil, fmt.Errorf("overlay %s: %w", o.ID, err)
		}
		if o.Position, err = rawJSON("position", pos); err != nil {
			return nil, fmt.Errorf("overlay %s: %w", o.ID, err)
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites text and position. A missing row is not an error.
func (r *OverlayPostgres) Update(ctx context.Context, id string, text, position json.RawMessage) error {
	const q = `UPDATE overlays SET text = $2, position = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, jsonb(text), jsonb(position))
	return err
}

// Delete removes an overlay by ID. It does not return an error if the row does not exist.
func (r *OverlayPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM overlays WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// jsonb renders a raw value as a JSONB parameter. Absent values become JSON null.
func jsonb(v json.RawMessage) string {
	if len(v) == 0 {
		return "null"
	}
	return string(v)
}

func rawJSON(field string, b []byte) (json.RawMessage, error) {
	if len(b) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("decode %s: invalid JSON", field)
	}
	return json.RawMessage(b), nil
}
