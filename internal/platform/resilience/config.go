package resilience

import "time"

// CircuitBreakerConfig tunes a breaker. Zero values fall back to the
// defaults, except Enabled which callers check themselves.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalized returns cfg with every unset limit replaced by its default.
func (cfg CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	cfg.FailureThreshold = firstPositive(cfg.FailureThreshold, defaults.FailureThreshold)
	cfg.HalfOpenMaxReq = firstPositive(cfg.HalfOpenMaxReq, defaults.HalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	return cfg
}

func firstPositive(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
