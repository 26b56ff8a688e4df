package repository

import (
	"context"
	"encoding/json"

	"overlaycast/internal/model"
)

// OverlayRepository defines data access for overlays. Each method maps to a single store call.
// No business logic here; strictly persistence operations.
type OverlayRepository interface {
	// Insert stores a new overlay and returns the identifier the store assigned to it.
	// text and position are raw JSON values and are persisted without interpretation.
	Insert(ctx context.Context, text, position json.RawMessage) (string, error)

	// FindAll returns every overlay in store order.
	FindAll(ctx context.Context) ([]model.Overlay, error)

	// Update replaces text and position of the overlay with the given id.
	// It returns nil when no row matched.
	Update(ctx context.Context, id string, text, position json.RawMessage) error

	// Delete removes an overlay by id. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
