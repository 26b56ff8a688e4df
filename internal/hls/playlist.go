package hls

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/grafov/m3u8"
)

// ErrNotPlaylist is returned when the input decodes to something other than a media playlist.
var ErrNotPlaylist = errors.New("not an m3u8 media playlist")

// Segment is a single media entry of a playlist.
type Segment struct {
	Duration float64
	URI      string
}

// MediaPlaylist is the subset of an HLS media playlist the server cares about.
type MediaPlaylist struct {
	TargetDuration int
	MediaSequence  int64
	Segments       []Segment
	Ended          bool
}

// URIs returns the segment URIs in playlist order.
func (p *MediaPlaylist) URIs() []string {
	out := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		out = append(out, s.URI)
	}
	return out
}

// ParseMediaPlaylist reads a live or VOD media playlist as written by ffmpeg's hls muxer.
// The #EXTM3U header is required and unknown tags are ignored.
func ParseMediaPlaylist(r io.Reader) (*MediaPlaylist, error) {
	pl, kind, err := m3u8.DecodeFrom(r, true)
	if err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}
	media, ok := pl.(*m3u8.MediaPlaylist)
	if kind != m3u8.MEDIA || !ok || media == nil {
		return nil, ErrNotPlaylist
	}

	p := &MediaPlaylist{
		TargetDuration: int(math.Ceil(float64(media.TargetDuration))),
		MediaSequence:  int64(media.SeqNo),
		Ended:          media.Closed,
	}
	// The decoder backs Segments with a fixed-capacity slice; unused slots are nil.
	for _, s := range media.Segments {
		if s == nil {
			continue
		}
		p.Segments = append(p.Segments, Segment{Duration: s.Duration, URI: s.URI})
	}
	return p, nil
}
