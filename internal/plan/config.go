package plan

import (
	"os"
	"strconv"
	"time"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/document"
)

// Config holds plan generation settings.
type Config struct {
	// MaxAttempts bounds the number of model calls per Generate before the
	// engine surfaces a terminal error.
	MaxAttempts int

	// InitialDelay is the backoff before the second attempt; it doubles on
	// every further attempt.
	InitialDelay time.Duration

	// Timeout bounds each individual model call.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64

	// MaxDocumentBytes rejects oversized source documents before any model
	// call. 0 means the document package default.
	MaxDocumentBytes int
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      3,
		InitialDelay:     2 * time.Second,
		Timeout:          45 * time.Second,
		MaxTokens:        8192,
		Temperature:      0.2,
		MaxDocumentBytes: document.DefaultMaxBytes,
	}
}

// ConfigFromEnv returns DefaultConfig with environment overrides applied.
// FIA_MAX_PLAN_RETRIES bounds the regeneration attempts per plan; it is
// distinct from FIA_LLM_MAX_RETRIES, which governs the transient-failure
// retry decorator around every provider call.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("FIA_MAX_PLAN_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	if v := os.Getenv("FIA_PLAN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
