package transcoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"overlaycast/internal/hls"
	"overlaycast/internal/segment"
	"overlaycast/internal/storage"
)

// Mirror copies the rolling HLS window from local disk into object storage.
//
// Each pass uploads the segments the manifest references, then the manifest itself,
// then removes objects for segments that fell out of the window. A reader of the
// bucket therefore never sees a manifest naming a segment that is not there yet.
type Mirror struct {
	dir      string
	playlist string
	prefix   string
	store    storage.Storage
	logger   *slog.Logger

	uploaded map[string]struct{}
}

// NewMirror returns a Mirror for the manifest dir/playlist.
func NewMirror(dir, playlist, prefix string, store storage.Storage, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{
		dir:      dir,
		playlist: playlist,
		prefix:   prefix,
		store:    store,
		logger:   logger,
		uploaded: make(map[string]struct{}),
	}
}

// Run calls Sync every interval until ctx is done. Failed passes are logged and retried.
func (m *Mirror) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSegmentSeconds * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := m.Sync(ctx); err != nil && ctx.Err() == nil {
			m.logger.Warn("mirror pass failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sync performs one mirror pass. A missing manifest is not an error.
func (m *Mirror) Sync(ctx context.Context) error {
	raw, err := os.ReadFile(filepath.Join(m.dir, m.playlist))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read manifest: %w", err)
	}
	pl, err := hls.ParseMediaPlaylist(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	live := make(map[string]struct{}, len(pl.Segments))
	for _, name := range pl.URIs() {
		if strings.ContainsAny(name, `/\`) {
			continue
		}
		live[name] = struct{}{}
		if _, done := m.uploaded[name]; done {
			continue
		}
		if err := m.putFile(ctx, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// ffmpeg rotated it away after we read the manifest; the next pass sees a fresh one.
				m.logger.Debug("segment vanished before upload", slog.String("name", name))
				return nil
			}
			return err
		}
		m.uploaded[name] = struct{}{}
	}

	_, err = m.store.Put(ctx, m.key(m.playlist), bytes.NewReader(raw), storage.PutObjectOptions{
		Size:         int64(len(raw)),
		ContentType:  segment.ContentType(m.playlist),
		CacheControl: "no-cache",
	})
	if err != nil {
		return fmt.Errorf("upload manifest: %w", err)
	}

	for name := range m.uploaded {
		if _, ok := live[name]; ok {
			continue
		}
		if err := m.store.Delete(ctx, m.key(name)); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
		delete(m.uploaded, name)
	}
	return nil
}

func (m *Mirror) putFile(ctx context.Context, name string) error {
	f, err := os.Open(filepath.Join(m.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if _, err := m.store.Put(ctx, m.key(name), f, storage.PutObjectOptions{
		Size:        st.Size(),
		ContentType: segment.ContentType(name),
	}); err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	return nil
}

func (m *Mirror) key(name string) string {
	return segment.ObjectKey(m.prefix, name)
}
