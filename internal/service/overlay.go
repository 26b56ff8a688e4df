package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"overlaycast/internal/model"
	"overlaycast/internal/repository"
)

// OverlayService defines the use cases for managing overlays.
type OverlayService interface {
	// Create stores a new overlay from the client's text and position and returns its id.
	// Both keys must be present; their values are stored untouched.
	Create(ctx context.Context, in model.OverlayInput) (string, error)

	// List returns every overlay currently stored.
	List(ctx context.Context) ([]model.Overlay, error)

	// Update replaces text and position of an existing overlay. Unknown ids succeed silently.
	Update(ctx context.Context, id string, in model.OverlayInput) error

	// Delete removes an overlay. Unknown ids succeed silently.
	Delete(ctx context.Context, id string) error
}

type overlayService struct {
	repo repository.OverlayRepository
}

// NewOverlayService constructs a new OverlayService.
func NewOverlayService(repo repository.OverlayRepository) OverlayService {
	return &overlayService{repo: repo}
}

func (s *overlayService) Create(ctx context.Context, in model.OverlayInput) (string, error) {
	if err := validate(in); err != nil {
		return "", err
	}
	id, err := s.repo.Insert(ctx, in.Text, in.Position)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return id, nil
}

func (s *overlayService) List(ctx context.Context) ([]model.Overlay, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return items, nil
}

func (s *overlayService) Update(ctx context.Context, id string, in model.OverlayInput) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := validate(in); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, oid, in.Text, in.Position); err != nil {
		return &StoreError{Op: "update", Err: err}
	}
	return nil
}

func (s *overlayService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

// parseID converts a client id into the store's canonical form.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return u.String(), nil
}

// validate only checks presence. Any JSON value, null included, is accepted as is.
func validate(in model.OverlayInput) error {
	if in.Text == nil {
		return &ValidationError{Field: "text"}
	}
	if in.Position == nil {
		return &ValidationError{Field: "position"}
	}
	return nil
}
