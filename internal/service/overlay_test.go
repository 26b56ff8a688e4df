package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"overlaycast/internal/model"
	repoMocks "overlaycast/internal/repository/mocks"
)

const validID = "5b0e3c8e-9d4a-4a53-8f0e-2f3f3d1c9a11"

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestOverlayService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         model.OverlayInput
		setupMocks func(mRepo *repoMocks.MockOverlayRepository)
		wantID     string
		wantField  string
		wantStore  bool
	}{
		{
			name: "happy path",
			in:   model.OverlayInput{Text: raw(`"hello"`), Position: raw(`{"x":1,"y":2}`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Insert", ctx, raw(`"hello"`), raw(`{"x":1,"y":2}`)).Return(validID, nil)
			},
			wantID: validID,
		},
		{
			name: "null values are stored as given",
			in:   model.OverlayInput{Text: raw(`null`), Position: raw(`null`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Insert", ctx, raw(`null`), raw(`null`)).Return(validID, nil)
			},
			wantID: validID,
		},
		{
			name: "non-object position",
			in:   model.OverlayInput{Text: raw(`""`), Position: raw(`[10,20]`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Insert", ctx, raw(`""`), raw(`[10,20]`)).Return(validID, nil)
			},
			wantID: validID,
		},
		{
			name:       "missing text",
			in:         model.OverlayInput{Position: raw(`{}`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {},
			wantField:  "text",
		},
		{
			name:       "missing position",
			in:         model.OverlayInput{Text: raw(`"hello"`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {},
			wantField:  "position",
		},
		{
			name: "store failure",
			in:   model.OverlayInput{Text: raw(`"hello"`), Position: raw(`{}`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Insert", ctx, raw(`"hello"`), raw(`{}`)).Return("", errors.New("db fail"))
			},
			wantStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockOverlayRepository)
			svc := NewOverlayService(mRepo)
			tt.setupMocks(mRepo)

			id, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantField != "":
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
			case tt.wantStore:
				var sErr *StoreError
				require.ErrorAs(t, err, &sErr)
				assert.Equal(t, "create", sErr.Op)
				assert.EqualError(t, err, "create overlay: db fail")
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestOverlayService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockOverlayRepository)
		svc := NewOverlayService(mRepo)
		want := []model.Overlay{{ID: validID, Text: raw(`"a"`), Position: raw(`{"top":1}`)}}
		mRepo.On("FindAll", ctx).Return(want, nil)

		got, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		mRepo := new(repoMocks.MockOverlayRepository)
		svc := NewOverlayService(mRepo)
		cause := errors.New("db fail")
		mRepo.On("FindAll", ctx).Return(nil, cause).Once()

		got, err := svc.List(ctx)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, cause)
		var sErr *StoreError
		assert.ErrorAs(t, err, &sErr)
		mRepo.AssertNumberOfCalls(t, "FindAll", 1)
	})
}

func TestOverlayService_Update(t *testing.T) {
	ctx := context.Background()
	in := model.OverlayInput{Text: raw(`"new"`), Position: raw(`{"top":100}`)}

	tests := []struct {
		name       string
		id         string
		in         model.OverlayInput
		setupMocks func(mRepo *repoMocks.MockOverlayRepository)
		check      func(t *testing.T, err error)
	}{
		{
			name: "happy path",
			id:   validID,
			in:   in,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Update", ctx, validID, raw(`"new"`), raw(`{"top":100}`)).Return(nil)
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "id is canonicalized",
			id:   "5B0E3C8E-9D4A-4A53-8F0E-2F3F3D1C9A11",
			in:   in,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Update", ctx, validID, raw(`"new"`), mock.Anything).Return(nil)
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "null text",
			id:   validID,
			in:   model.OverlayInput{Text: raw(`null`), Position: raw(`"center"`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Update", ctx, validID, raw(`null`), raw(`"center"`)).Return(nil)
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:       "malformed id",
			id:         "not-an-id",
			in:         in,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidID)
				assert.Contains(t, err.Error(), "not-an-id")
			},
		},
		{
			name:       "missing fields",
			id:         validID,
			in:         model.OverlayInput{Text: raw(`"only text"`)},
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {},
			check: func(t *testing.T, err error) {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			},
		},
		{
			name: "store failure",
			id:   validID,
			in:   in,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Update", ctx, validID, raw(`"new"`), mock.Anything).Return(errors.New("db fail"))
			},
			check: func(t *testing.T, err error) { assert.EqualError(t, err, "update overlay: db fail") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockOverlayRepository)
			svc := NewOverlayService(mRepo)
			tt.setupMocks(mRepo)

			tt.check(t, svc.Update(ctx, tt.id, tt.in))
			mRepo.AssertExpectations(t)
		})
	}
}

func TestOverlayService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockOverlayRepository)
		wantErr    error
		wantMsg    string
	}{
		{
			name: "happy path",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Delete", ctx, validID).Return(nil)
			},
		},
		{
			name:       "malformed id",
			id:         "123",
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {},
			wantErr:    ErrInvalidID,
		},
		{
			name: "store failure",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockOverlayRepository) {
				mRepo.On("Delete", ctx, validID).Return(errors.New("db fail"))
			},
			wantMsg: "delete overlay: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockOverlayRepository)
			svc := NewOverlayService(mRepo)
			tt.setupMocks(mRepo)

			err := svc.Delete(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
