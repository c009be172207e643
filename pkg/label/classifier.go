package label

import (
	"time"
)

// Tier is the urgency classification derived from days until expiry.
type Tier string

const (
	TierCritical Tier = "critical"
	TierUrgent   Tier = "urgent"
	TierWarning  Tier = "warning"
	TierNormal   Tier = "normal"
)

// lookAheadDays bounds the expiring-soon window. Labels further out are
// excluded from classification entirely.
const lookAheadDays = 7

// DaysUntil returns the signed number of calendar days between now and
// expiry, flooring both to midnight so that partial days never shift the
// boundary.
func DaysUntil(expiry, now time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(n).Hours() / 24)
}

// Classify maps days-until-expiry onto a traffic-light tier. The second
// return value is false when the label falls outside the look-ahead window.
// Boundary values resolve to the stricter tier.
func Classify(daysUntilExpiry int) (Tier, bool) {
	switch {
	case daysUntilExpiry <= 0:
		return TierCritical, true
	case daysUntilExpiry == 1:
		return TierUrgent, true
	case daysUntilExpiry <= 3:
		return TierWarning, true
	case daysUntilExpiry <= lookAheadDays:
		return TierNormal, true
	default:
		return "", false
	}
}

// ClassifyLabel classifies a stored label at the given instant. Labels in a
// terminal status are never classified, regardless of date.
func ClassifyLabel(status Status, expiry, now time.Time) (Tier, bool) {
	if status.IsTerminal() {
		return "", false
	}
	return Classify(DaysUntil(expiry, now))
}
