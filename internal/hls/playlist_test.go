package hls

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const livePlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:2
#EXT-X-MEDIA-SEQUENCE:38

#EXTINF:2.000000,
stream00038.ts
#EXTINF:2.002000,
stream00039.ts
#EXTINF:1.998000,
stream00040.ts
`

func TestParseMediaPlaylist_Live(t *testing.T) {
	p, err := ParseMediaPlaylist(strings.NewReader(livePlaylist))
	require.NoError(t, err)

	assert.Equal(t, 2, p.TargetDuration)
	assert.Equal(t, int64(38), p.MediaSequence)
	assert.False(t, p.Ended)
	assert.Equal(t, []string{"stream00038.ts", "stream00039.ts", "stream00040.ts"}, p.URIs())
	assert.InDelta(t, 2.002, p.Segments[1].Duration, 1e-9)
}

func TestParseMediaPlaylist_Ended(t *testing.T) {
	p, err := ParseMediaPlaylist(strings.NewReader("#EXTM3U\n#EXTINF:2,\na.ts\n#EXT-X-ENDLIST\n"))
	require.NoError(t, err)
	assert.True(t, p.Ended)
	assert.Equal(t, []string{"a.ts"}, p.URIs())
}

func TestParseMediaPlaylist_Empty(t *testing.T) {
	p, err := ParseMediaPlaylist(strings.NewReader("#EXTM3U\n#EXT-X-TARGETDURATION:1\n#EXT-X-MEDIA-SEQUENCE:0\n"))
	require.NoError(t, err)
	assert.Empty(t, p.Segments)
	assert.Empty(t, p.URIs())
}

func TestParseMediaPlaylist_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "missing header", input: "#EXT-X-TARGETDURATION:2\n#EXTINF:2,\na.ts\n"},
		{name: "not m3u8 at all", input: "<html>not found</html>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMediaPlaylist(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseMediaPlaylist_MasterRejected(t *testing.T) {
	master := "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=1280x720\nlow/index.m3u8\n"

	_, err := ParseMediaPlaylist(strings.NewReader(master))
	assert.ErrorIs(t, err, ErrNotPlaylist)
}

func TestParseMediaPlaylist_ManySegments(t *testing.T) {
	var b strings.Builder
	b.WriteString("#EXTM3U\n#EXT-X-TARGETDURATION:2\n#EXT-X-MEDIA-SEQUENCE:0\n")
	for i := 0; i < 1500; i++ {
		fmt.Fprintf(&b, "#EXTINF:2.000000,\nstream%05d.ts\n", i)
	}
	b.WriteString("#EXT-X-ENDLIST\n")

	p, err := ParseMediaPlaylist(strings.NewReader(b.String()))
	require.NoError(t, err)

	uris := p.URIs()
	require.Len(t, uris, 1500)
	assert.Equal(t, "stream00000.ts", uris[0])
	assert.Equal(t, "stream01499.ts", uris[1499])
	assert.True(t, p.Ended)
}
