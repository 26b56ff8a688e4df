// Package segment serves the transcoder's manifest and media chunks by file name.
// It does not know which segments exist; every lookup goes to the backing Source.
package segment

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned when a name does not resolve to a readable file.
var ErrNotFound = errors.New("segment not found")

// Info describes an opened artifact.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Source resolves artifact names to readable content.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, Info, error)
}

// ContentType maps an HLS artifact name to its media type.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".m3u8":
		return "application/vnd.apple.mpegurl"
	case ".ts":
		return "video/mp2t"
	case ".m4s":
		return "video/iso.segment"
	case ".mp4":
		return "video/mp4"
	case ".aac":
		return "audio/aac"
	default:
		return "application/octet-stream"
	}
}

// IsPlaylist reports whether name is a manifest rather than a media chunk.
func IsPlaylist(name string) bool {
	return strings.EqualFold(path.Ext(name), ".m3u8")
}

// validName accepts a bare file name only.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}
