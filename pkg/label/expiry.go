package label

import (
	"time"
)

// Condition is the food-safety handling category that determines shelf life.
type Condition string

const (
	ConditionFresh        Condition = "fresh"
	ConditionCooked       Condition = "cooked"
	ConditionFrozen       Condition = "frozen"
	ConditionDry          Condition = "dry"
	ConditionRefrigerated Condition = "refrigerated"
)

// shelfLifeDays maps a condition to its shelf life offset in days.
var shelfLifeDays = map[Condition]int{
	ConditionFresh:        1,
	ConditionCooked:       3,
	ConditionFrozen:       30,
	ConditionDry:          90,
	ConditionRefrigerated: 7,
}

// ShelfLifeDays returns the shelf-life offset for a condition. The second
// return value is false for unrecognized conditions.
func ShelfLifeDays(cond Condition) (int, bool) {
	days, ok := shelfLifeDays[cond]
	return days, ok
}

// ExpiryDate derives the expiry date from a condition and a prep date.
// An unrecognized condition or a zero prep date yields the zero time,
// meaning "not yet computable" rather than an error.
func ExpiryDate(cond Condition, prepDate time.Time) time.Time {
	days, ok := shelfLifeDays[cond]
	if !ok || prepDate.IsZero() {
		return time.Time{}
	}
	return prepDate.AddDate(0, 0, days)
}
