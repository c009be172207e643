package label

import (
	"strings"
	"time"

	"preplabel-backend/domain"
)

// Status is a printed label's lifecycle state. Only active, used and wasted
// are ever stored; near_expiry and expired are derived on read from the
// expiry date so no background scheduler is needed.
type Status string

const (
	StatusActive     Status = "active"
	StatusNearExpiry Status = "near_expiry"
	StatusExpired    Status = "expired"
	StatusUsed       Status = "used"
	StatusWasted     Status = "wasted"
)

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusUsed || s == StatusWasted
}

// EffectiveStatus resolves the status a reader should see at the given
// instant. Terminal statuses win over any date arithmetic; otherwise the
// stored active status is refined into near_expiry or expired.
func EffectiveStatus(stored Status, expiry, now time.Time) Status {
	if stored.IsTerminal() {
		return stored
	}
	days := DaysUntil(expiry, now)
	switch {
	case days <= 0:
		return StatusExpired
	case days <= 1:
		return StatusNearExpiry
	default:
		return StatusActive
	}
}

// Action is a user-initiated lifecycle operation.
type Action string

const (
	ActionConsume Action = "consume"
	ActionDiscard Action = "discard"
	ActionExtend  Action = "extend"
)

// Consume transitions a label to used. Terminal labels reject the action.
func Consume(stored Status) (Status, error) {
	if stored.IsTerminal() {
		return stored, domain.ErrLabelTerminal
	}
	return StatusUsed, nil
}

// Discard transitions a label to wasted. The reason is required at this
// boundary; the empty string never reaches the repository.
func Discard(stored Status, reason string) (Status, error) {
	if strings.TrimSpace(reason) == "" {
		return stored, domain.ErrDiscardReasonRequired
	}
	if stored.IsTerminal() {
		return stored, domain.ErrLabelTerminal
	}
	return StatusWasted, nil
}

// Extend validates moving a label's expiry date forward. The status itself
// never changes; only the date does. The new date must not fall before
// today and a reason is mandatory.
func Extend(stored Status, newExpiry, now time.Time, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrExtendReasonRequired
	}
	if stored.IsTerminal() {
		return domain.ErrLabelTerminal
	}
	if DaysUntil(newExpiry, now) < 0 {
		return domain.ErrExtendDateInPast
	}
	return nil
}
