package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"overlaycast/internal/model"
)

type MockOverlayService struct {
	mock.Mock
}

func (m *MockOverlayService) Create(ctx context.Context, in model.OverlayInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockOverlayService) List(ctx context.Context) ([]model.Overlay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Overlay), args.Error(1)
}

func (m *MockOverlayService) Update(ctx context.Context, id string, in model.OverlayInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockOverlayService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
