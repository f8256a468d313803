package cooldown

import (
	"time"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

// Config holds cooldown clock configuration
type Config struct {
	// DevMode bypasses the eligibility check when true; next times still advance
	DevMode bool

	DropCooldown  time.Duration
	TheftCooldown time.Duration
}

// DefaultConfig returns the canonical durations
func DefaultConfig() Config {
	return Config{
		DropCooldown:  domain.DefaultDropCooldown,
		TheftCooldown: domain.DefaultTheftCooldown,
	}
}

// Duration returns the cooldown for action; false for an unknown action.
// Non-positive configured values fall back to the defaults.
func (c Config) Duration(action string) (time.Duration, bool) {
	switch action {
	case domain.ActionDrop:
		if c.DropCooldown > 0 {
			return c.DropCooldown, true
		}
		return domain.DefaultDropCooldown, true
	case domain.ActionTheft:
		if c.TheftCooldown > 0 {
			return c.TheftCooldown, true
		}
		return domain.DefaultTheftCooldown, true
	default:
		return 0, false
	}
}
