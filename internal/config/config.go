package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings for the overlays store.
// URL, when set, takes precedence over the individual components.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// HLSConfig describes where segment artifacts live and how they are served.
type HLSConfig struct {
	Dir      string
	Playlist string
	// Backend is "fs" to read HLS_DIR directly or "s3" to read the mirrored bucket.
	Backend string
}

// TranscoderConfig holds the settings of the RTSP to HLS process.
type TranscoderConfig struct {
	RTSPURL           string
	FFmpegBin         string
	SegmentSeconds    int
	ListSize          int
	MirrorEnabled     bool
	MirrorIntervalSec int
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level    string
	Format   string
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	StoreDriver string
	Database    DatabaseConfig
	MinIO       MinIOConfig
	HLS         HLSConfig
	Transcoder  TranscoderConfig
	Log         LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "5000"),
		StoreDriver: getEnv("STORE_DRIVER", "postgres"),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Prefix:    getEnv("MINIO_PREFIX", "hls"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		HLS: HLSConfig{
			Dir:      getEnv("HLS_DIR", "static/hls"),
			Playlist: getEnv("HLS_PLAYLIST", "stream.m3u8"),
			Backend:  getEnv("SEGMENT_BACKEND", "fs"),
		},
		Transcoder: TranscoderConfig{
			RTSPURL:           getEnv("RTSP_URL", ""),
			FFmpegBin:         getEnv("FFMPEG_BIN", "ffmpeg"),
			SegmentSeconds:    getEnvInt("HLS_TIME", 2),
			ListSize:          getEnvInt("HLS_LIST_SIZE", 10),
			MirrorEnabled:     getEnvBool("MIRROR_ENABLED", false),
			MirrorIntervalSec: getEnvInt("MIRROR_INTERVAL_SEC", 2),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Format:   getEnv("LOG_FORMAT", "json"),
			Timezone: getEnv("TZ_NAME", "UTC"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
