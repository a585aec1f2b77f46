package fetcher

import "time"

type Config struct {
	// UserAgent is sent on every page request.
	UserAgent string

	// Timeout bounds a single attempt.
	Timeout time.Duration

	// MaxAttempts is the total number of tries for transient upstream
	// statuses (502/503/504).
	MaxAttempts int

	// BackoffBase is the first retry delay; subsequent delays double.
	BackoffBase time.Duration
}

// DefaultConfig returns the standard fetch policy: a desktop browser
// user-agent, 10s per attempt and 3 attempts with 1s/2s/4s backoff.
func DefaultConfig() Config {
	return Config{
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Timeout:     10 * time.Second,
		MaxAttempts: 3,
		BackoffBase: 1 * time.Second,
	}
}
