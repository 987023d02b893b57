package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/docoutline/internal/heading"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Wall-clock budget per document; the analysis itself never blocks,
	// the budget bounds parsing of pathological inputs.
	DocTimeout time.Duration

	// Optional directory where completed outlines are also written as
	// <doc_id>.json. Empty disables the sink.
	OutputDir string

	// Heading engine thresholds.
	MinHeadingScore    float64
	BodyFontPercentile float64
	HeaderFooterRatio  float64
	MaxLevels          int
	MaxHeadingWords    int
}

func Load() Config {
	defaults := heading.DefaultOptions()

	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCOUTLINE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL:     envDuration("JOB_TTL", 1*time.Hour),
		DocTimeout: envDuration("DOC_TIMEOUT", 60*time.Second),

		OutputDir: os.Getenv("OUTPUT_DIR"),

		MinHeadingScore:    envFloat("MIN_HEADING_SCORE", defaults.MinHeadingScore),
		BodyFontPercentile: envFloat("BODY_FONT_PERCENTILE", 0),
		HeaderFooterRatio:  envFloat("HEADER_FOOTER_RATIO", defaults.HeaderFooterRatio),
		MaxLevels:          envInt("MAX_LEVELS", defaults.MaxLevels),
		MaxHeadingWords:    envInt("MAX_HEADING_WORDS", defaults.MaxHeadingWords),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.DocTimeout <= 0 {
		cfg.DocTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCOUTLINE_API_KEY is required")
	}
	if c.HeaderFooterRatio < 0 || c.HeaderFooterRatio > 1 {
		return fmt.Errorf("HEADER_FOOTER_RATIO must be in [0,1], got %g", c.HeaderFooterRatio)
	}
	if c.MaxLevels < 0 || c.MaxLevels > 3 {
		return fmt.Errorf("MAX_LEVELS must be in [1,3], got %d", c.MaxLevels)
	}
	return nil
}

// EngineOptions maps the config onto the heading engine's option set.
// Unset fields fall back to the engine defaults.
func (c Config) EngineOptions() heading.Options {
	return heading.Options{
		MinHeadingScore:    c.MinHeadingScore,
		BodyFontPercentile: c.BodyFontPercentile,
		HeaderFooterRatio:  c.HeaderFooterRatio,
		MaxLevels:          c.MaxLevels,
		MaxHeadingWords:    c.MaxHeadingWords,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
