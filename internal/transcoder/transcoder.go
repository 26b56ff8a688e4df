// Package transcoder turns a live RTSP source into a rolling HLS window on disk.
//
// The ffmpeg process is started once and is not supervised: when it exits, Run returns
// and the segment directory simply goes stale.
package transcoder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

const (
	DefaultSegmentSeconds = 2
	DefaultListSize       = 10
	DefaultPlaylist       = "stream.m3u8"
)

// Options configures a single ffmpeg invocation.
type Options struct {
	Binary         string
	Input          string
	OutputDir      string
	Playlist       string
	SegmentSeconds int
	ListSize       int
}

// Validate reports missing or nonsensical settings.
func (o Options) Validate() error {
	var errs []error
	if strings.TrimSpace(o.Input) == "" {
		errs = append(errs, errors.New("input url is required"))
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if o.SegmentSeconds <= 0 {
		errs = append(errs, fmt.Errorf("segment duration must be positive, got %d", o.SegmentSeconds))
	}
	if o.ListSize <= 0 {
		errs = append(errs, fmt.Errorf("list size must be positive, got %d", o.ListSize))
	}
	return errors.Join(errs...)
}

func (o Options) withDefaults() Options {
	if o.Binary == "" {
		o.Binary = "ffmpeg"
	}
	if o.Playlist == "" {
		o.Playlist = DefaultPlaylist
	}
	return o
}

// PlaylistPath is the manifest location inside OutputDir.
func (o Options) PlaylistPath() string {
	return filepath.Join(o.OutputDir, o.withDefaults().Playlist)
}

// Args returns the ffmpeg argument vector. Segment files share the playlist's stem.
func (o Options) Args() []string {
	o = o.withDefaults()
	stem := strings.TrimSuffix(o.Playlist, filepath.Ext(o.Playlist))
	return []string{
		"-hide_banner",
		"-loglevel", "warning",
		"-i", o.Input,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-tune", "zerolatency",
		"-f", "hls",
		"-hls_time", strconv.Itoa(o.SegmentSeconds),
		"-hls_list_size", strconv.Itoa(o.ListSize),
		"-hls_flags", "delete_segments+append_list",
		"-hls_segment_filename", filepath.Join(o.OutputDir, stem+"%05d.ts"),
		filepath.Join(o.OutputDir, o.Playlist),
	}
}

// Transcoder runs ffmpeg with the given options.
type Transcoder struct {
	opts   Options
	logger *slog.Logger
}

// New validates opts and returns a Transcoder.
func New(opts Options, logger *slog.Logger) (*Transcoder, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcoder{opts: opts, logger: logger}, nil
}

// Options returns the effective options.
func (t *Transcoder) Options() Options { return t.opts }

// Run creates the output directory, starts ffmpeg and blocks until it exits
// or ctx is cancelled. ffmpeg's stderr is forwarded to the logger line by line.
func (t *Transcoder) Run(ctx context.Context) error {
	if err := os.MkdirAll(t.opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cmd := commandContext(ctx, t.opts.Binary, t.opts.Args()...) //nolint:gosec
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stderr: %w", err)
	}

	t.logger.Info("transcoder starting",
		slog.String("output_dir", t.opts.OutputDir),
		slog.String("playlist", t.opts.Playlist),
		slog.Int("segment_seconds", t.opts.SegmentSeconds),
		slog.Int("list_size", t.opts.ListSize),
	)
	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("start %s: %w", t.opts.Binary, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		forward(stderr, t.logger)
	}()
	<-done

	err = cmd.Wait()
	if ctx.Err() != nil {
		t.logger.Info("transcoder stopped", slog.String("reason", ctx.Err().Error()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("ffmpeg exited: %w", err)
	}
	t.logger.Warn("transcoder input ended")
	return nil
}

// maxStderrLine caps a single forwarded ffmpeg line.
const maxStderrLine = 1 << 20

// forward logs r line by line and always reads it to EOF, so ffmpeg never blocks on a full pipe.
func forward(r io.Reader, logger *slog.Logger) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxStderrLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		logger.Warn("ffmpeg", slog.String("line", line))
	}
	if err := sc.Err(); err != nil {
		logger.Warn("ffmpeg stderr no longer forwarded", slog.String("error", err.Error()))
	}
	_, _ = io.Copy(io.Discard, r)
}
