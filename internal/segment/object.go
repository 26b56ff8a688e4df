package segment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"overlaycast/internal/storage"
)

// ObjectSource reads artifacts mirrored into an object storage bucket.
type ObjectSource struct {
	store  storage.Storage
	prefix string
}

// NewObjectSource returns a Source reading keys "<prefix>/<name>".
func NewObjectSource(store storage.Storage, prefix string) *ObjectSource {
	return &ObjectSource{store: store, prefix: prefix}
}

// Key returns the object key a name is stored under.
func (s *ObjectSource) Key(name string) string {
	return ObjectKey(s.prefix, name)
}

func (s *ObjectSource) Open(ctx context.Context, name string) (io.ReadCloser, Info, error) {
	if !validName(name) {
		return nil, Info{}, ErrNotFound
	}
	rc, info, err := s.store.Get(ctx, s.Key(name))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, Info{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, Info{}, err
	}
	return rc, Info{Name: name, Size: info.Size, ModTime: info.LastModified}, nil
}

// ObjectKey joins a bucket prefix and an artifact name.
func ObjectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
