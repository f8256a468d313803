package cooldown

// Storage operation labels
const (
	OpAdvanceCooldown = "advance cooldown"
)

// Error Message Format Strings (for ErrOnCooldown.Error())
const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"

	// ErrFmtUnknownAction is returned for an action the clock does not track
	ErrFmtUnknownAction = "%w: unknown cooldown action %q"
)

// Log messages
const (
	LogMsgDevModeBypass    = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgCooldownAdvanced = "Cooldown advanced"
)
