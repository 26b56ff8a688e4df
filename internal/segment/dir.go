package segment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DirSource reads artifacts from a single directory on local disk.
// Lookups go through os.Root so a name can never resolve outside the directory.
type DirSource struct {
	dir string
}

// NewDirSource returns a Source for dir. The directory may not exist yet;
// lookups fail with ErrNotFound until the transcoder creates it.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, Info, error) {
	if !validName(name) {
		return nil, Info{}, ErrNotFound
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, Info{}, notFoundOr(err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, Info{}, notFoundOr(err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Info{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if st.IsDir() {
		f.Close()
		return nil, Info{}, ErrNotFound
	}
	return f, Info{Name: name, Size: st.Size(), ModTime: st.ModTime()}, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
