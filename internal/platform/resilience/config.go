package resilience

import "time"

// CircuitBreakerConfig is shared by every breaker in a BreakerSet.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the number of consecutive failures that opens the
	// breaker.
	FailureThreshold int
	// OpenTimeout is how long an open breaker rejects calls before probing.
	OpenTimeout time.Duration
	// HalfOpenMaxReq caps concurrent probes while half open.
	HalfOpenMaxReq int
}

const (
	defaultFailureThreshold = 3
	defaultOpenTimeout      = 30 * time.Second
	defaultHalfOpenMaxReq   = 1
)

// DefaultCircuitBreakerConfig suits spreadsheet exports, which fail in bursts
// when the publisher throttles.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: defaultFailureThreshold,
		OpenTimeout:      defaultOpenTimeout,
		HalfOpenMaxReq:   defaultHalfOpenMaxReq,
	}
}

// NormalizeCircuitBreakerConfig fills unset or invalid limits with defaults
// and leaves Enabled alone.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	cfg.FailureThreshold = atLeastOne(cfg.FailureThreshold, defaultFailureThreshold)
	cfg.HalfOpenMaxReq = atLeastOne(cfg.HalfOpenMaxReq, defaultHalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	return cfg
}

func atLeastOne(value, fallback int) int {
	if value < 1 {
		return fallback
	}
	return value
}
