package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"overlaycast/internal/model"
	"overlaycast/internal/repository"
)

// OverlayMemory is an in-process implementation of repository.OverlayRepository.
// It keeps insertion order and is safe for concurrent use.
type OverlayMemory struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]model.Overlay
}

// NewOverlayMemory returns an empty store.
func NewOverlayMemory() *OverlayMemory {
	return &OverlayMemory{byID: make(map[string]model.Overlay)}
}

var _ repository.OverlayRepository = (*OverlayMemory)(nil)

func (r *OverlayMemory) Insert(_ context.Context, text, position json.RawMessage) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = model.Overlay{ID: id, Text: bytes.Clone(text), Position: bytes.Clone(position)}
	r.order = append(r.order, id)
	return id, nil
}

func (r *OverlayMemory) FindAll(_ context.Context) ([]model.Overlay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.Overlay, 0, len(r.order))
	for _, id := range r.order {
		o := r.byID[id]
		o.Text = bytes.Clone(o.Text)
		o.Position = bytes.Clone(o.Position)
		items = append(items, o)
	}
	return items, nil
}

func (r *OverlayMemory) Update(_ context.Context, id string, text, position json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	r.byID[id] = model.Overlay{ID: id, Text: bytes.Clone(text), Position: bytes.Clone(position)}
	return nil
}

func (r *OverlayMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
