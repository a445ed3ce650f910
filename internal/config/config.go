package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables API authentication.
	APIKey string

	// Result store connection. Empty disables result publishing.
	ResultstoreURL    string
	ResultstoreAPIKey string

	// Lexicon override file. Empty uses the compiled-in tables.
	LexiconPath string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Analysis defaults
	DefaultTargetTone          string
	DefaultDetailLevel         string
	DefaultTargetSectionLength int
	DefaultMinSections         int
	DefaultMaxSections         int
	DefaultMaxToneShifts       int
	DefaultRewriteIterations   int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCLENS_API_KEY"),

		ResultstoreURL:    os.Getenv("RESULTSTORE_URL"),
		ResultstoreAPIKey: os.Getenv("RESULTSTORE_API_KEY"),

		LexiconPath: os.Getenv("LEXICON_PATH"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		DefaultTargetTone:          envOr("DEFAULT_TARGET_TONE", "neutral"),
		DefaultDetailLevel:         envOr("DEFAULT_DETAIL_LEVEL", "standard"),
		DefaultTargetSectionLength: envInt("DEFAULT_TARGET_SECTION_LENGTH", 300),
		DefaultMinSections:         envInt("DEFAULT_MIN_SECTIONS", 2),
		DefaultMaxSections:         envInt("DEFAULT_MAX_SECTIONS", 20),
		DefaultMaxToneShifts:       envInt("DEFAULT_MAX_TONE_SHIFTS", 3),
		DefaultRewriteIterations:   envInt("DEFAULT_REWRITE_ITERATIONS", 3),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
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
	if cfg.DefaultTargetSectionLength <= 0 {
		cfg.DefaultTargetSectionLength = 300
	}
	if cfg.DefaultMinSections <= 0 {
		cfg.DefaultMinSections = 2
	}
	if cfg.DefaultMaxSections < cfg.DefaultMinSections {
		cfg.DefaultMaxSections = cfg.DefaultMinSections
	}
	if cfg.DefaultMaxToneShifts <= 0 {
		cfg.DefaultMaxToneShifts = 3
	}
	if cfg.DefaultRewriteIterations <= 0 {
		cfg.DefaultRewriteIterations = 3
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ResultstoreURL != "" && c.ResultstoreAPIKey == "" {
		return fmt.Errorf("RESULTSTORE_API_KEY is required when RESULTSTORE_URL is set")
	}
	switch c.DefaultDetailLevel {
	case "brief", "standard", "detailed", "comprehensive":
	default:
		return fmt.Errorf("DEFAULT_DETAIL_LEVEL must be one of brief, standard, detailed, comprehensive")
	}
	return nil
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
