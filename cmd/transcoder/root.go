package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"overlaycast/internal/config"
	"overlaycast/internal/logger"
	"overlaycast/internal/storage"
	"overlaycast/internal/transcoder"
)

type flagValues struct {
	rtspURL   string
	outputDir string
	playlist  string
	ffmpeg    string
	hlsTime   int
	listSize  int
	mirror    bool
}

func newRootCommand() *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:           "transcoder",
		Short:         "Transcode an RTSP feed into a rolling HLS window",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			applyFlags(cmd, cfg, flags)
			log := logger.New(cfg.Log.Level, cfg.Log.Format, logger.Location(cfg.Log.Timezone))
			return run(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVar(&flags.rtspURL, "rtsp-url", "", "RTSP source URL (overrides RTSP_URL)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for playlist and segments (overrides HLS_DIR)")
	cmd.Flags().StringVar(&flags.playlist, "playlist", "", "Playlist file name (overrides HLS_PLAYLIST)")
	cmd.Flags().StringVar(&flags.ffmpeg, "ffmpeg", "", "ffmpeg binary (overrides FFMPEG_BIN)")
	cmd.Flags().IntVar(&flags.hlsTime, "hls-time", 0, "Target segment duration in seconds (overrides HLS_TIME)")
	cmd.Flags().IntVar(&flags.listSize, "list-size", 0, "Segments kept in the playlist (overrides HLS_LIST_SIZE)")
	cmd.Flags().BoolVar(&flags.mirror, "mirror", false, "Mirror the window into object storage (overrides MIRROR_ENABLED)")
	return cmd
}

// applyFlags lets explicitly set flags win over environment configuration.
func applyFlags(cmd *cobra.Command, cfg *config.AppConfig, f flagValues) {
	set := cmd.Flags().Changed
	if set("rtsp-url") {
		cfg.Transcoder.RTSPURL = f.rtspURL
	}
	if set("output-dir") {
		cfg.HLS.Dir = f.outputDir
	}
	if set("playlist") {
		cfg.HLS.Playlist = f.playlist
	}
	if set("ffmpeg") {
		cfg.Transcoder.FFmpegBin = f.ffmpeg
	}
	if set("hls-time") {
		cfg.Transcoder.SegmentSeconds = f.hlsTime
	}
	if set("list-size") {
		cfg.Transcoder.ListSize = f.listSize
	}
	if set("mirror") {
		cfg.Transcoder.MirrorEnabled = f.mirror
	}
}

func optionsFromConfig(cfg *config.AppConfig) transcoder.Options {
	return transcoder.Options{
		Binary:         cfg.Transcoder.FFmpegBin,
		Input:          cfg.Transcoder.RTSPURL,
		OutputDir:      cfg.HLS.Dir,
		Playlist:       cfg.HLS.Playlist,
		SegmentSeconds: cfg.Transcoder.SegmentSeconds,
		ListSize:       cfg.Transcoder.ListSize,
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) error {
	tc, err := transcoder.New(optionsFromConfig(cfg), log)
	if err != nil {
		return fmt.Errorf("transcoder options: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if cfg.Transcoder.MirrorEnabled {
		store, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
		opts := tc.Options()
		m := transcoder.NewMirror(opts.OutputDir, opts.Playlist, cfg.MinIO.Prefix, store, log)
		interval := time.Duration(cfg.Transcoder.MirrorIntervalSec) * time.Second

		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Run(ctx, interval)
		}()
		log.Info("mirror started", slog.String("bucket", cfg.MinIO.Bucket), slog.String("prefix", cfg.MinIO.Prefix))
	}

	err = tc.Run(ctx)
	cancel()
	wg.Wait()
	return err
}
