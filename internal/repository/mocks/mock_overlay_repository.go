package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"overlaycast/internal/model"
)

type MockOverlayRepository struct {
	mock.Mock
}

func (m *MockOverlayRepository) Insert(ctx context.Context, text, position json.RawMessage) (string, error) {
	args := m.Called(ctx, text, position)
	return args.String(0), args.Error(1)
}

func (m *MockOverlayRepository) FindAll(ctx context.Context) ([]model.Overlay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Overlay), args.Error(1)
}

func (m *MockOverlayRepository) Update(ctx context.Context, id string, text, position json.RawMessage) error {
	args := m.Called(ctx, id, text, position)
	return args.Error(0)
}

func (m *MockOverlayRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
