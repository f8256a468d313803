// Package cooldown tracks per-user "next eligible time" for drops and thefts.
// The timestamps live on the user row; callers lock that row with
// GetUserForUpdate before Check so the check and the advance are one
// read-modify-write inside the caller's transaction.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is matches any ErrOnCooldown and the domain.ErrOnCooldown sentinel
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Clock checks and advances cooldown timestamps
type Clock struct {
	cfg Config
	now func() time.Time
}

// NewClock creates a clock; a nil now uses time.Now
func NewClock(cfg Config, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{cfg: cfg, now: now}
}

// Now returns the clock's current time
func (c *Clock) Now() time.Time {
	return c.now()
}

// NextTime returns the user's stored next eligible time for action
func NextTime(user *domain.User, action string) time.Time {
	if action == domain.ActionTheft {
		return user.NextTheftTime
	}
	return user.NextDropTime
}

// Remaining returns how long until action is available, zero when available
func (c *Clock) Remaining(user *domain.User, action string, now time.Time) time.Duration {
	if d := NextTime(user, action).Sub(now); d > 0 {
		return d
	}
	return 0
}

// Check fails with ErrOnCooldown when now is before the user's next eligible time
func (c *Clock) Check(ctx context.Context, user *domain.User, action string, now time.Time) error {
	if _, ok := c.cfg.Duration(action); !ok {
		return fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidInput, action)
	}
	remaining := c.Remaining(user, action, now)
	if remaining == 0 {
		return nil
	}
	if c.cfg.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "remaining", remaining)
		return nil
	}
	return ErrOnCooldown{Action: action, Remaining: remaining}
}

// Advance stores now plus the action's cooldown as the next eligible time
func (c *Clock) Advance(ctx context.Context, tx repository.UserTx, userID, action string, now time.Time) (time.Time, error) {
	d, ok := c.cfg.Duration(action)
	if !ok {
		return time.Time{}, fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidInput, action)
	}
	next := now.Add(d)

	var err error
	if action == domain.ActionTheft {
		err = tx.UpdateNextTheftTime(ctx, userID, next)
	} else {
		err = tx.UpdateNextDropTime(ctx, userID, next)
	}
	if err != nil {
		return time.Time{}, repository.StorageError(OpAdvanceCooldown, err)
	}

	logger.FromContext(ctx).Debug(LogMsgCooldownAdvanced, "action", action, "next", next)
	return next, nil
}
