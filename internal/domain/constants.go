package domain

import "time"

// Action names tracked by the cooldown clock
const (
	ActionDrop  = "drop"
	ActionTheft = "theft"
)

// Canonical economy constants
const (
	// DefaultDropCooldown is the wait between two drops for the same user
	DefaultDropCooldown = 20 * time.Second

	// DefaultTheftCooldown is the wait between two thefts by the same thief
	DefaultTheftCooldown = 2 * time.Minute

	// DefaultStarterPackSize is the number of commons granted on registration
	DefaultStarterPackSize = 5

	// MaxVictimAttempts bounds the random victim search of a theft
	MaxVictimAttempts = 100
)

// Forge modifier thresholds applied to a single uniform draw in [0,1)
const (
	ForgeHalveBelow  = 0.3
	ForgeDoubleBelow = 0.6
)
