package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	t.Run("same day is zero regardless of clock time", func(t *testing.T) {
		now := time.Date(2025, time.June, 10, 23, 50, 0, 0, time.UTC)
		expiry := time.Date(2025, time.June, 10, 0, 5, 0, 0, time.UTC)
		assert.Equal(t, 0, DaysUntil(expiry, now))
	})

	t.Run("tomorrow is one", func(t *testing.T) {
		now := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
		expiry := time.Date(2025, time.June, 11, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysUntil(expiry, now))
	})

	t.Run("past dates are negative", func(t *testing.T) {
		assert.Equal(t, -3, DaysUntil(date(2025, time.June, 7), date(2025, time.June, 10)))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		days int
		tier Tier
		ok   bool
	}{
		{"expired today", 0, TierCritical, true},
		{"already past", -5, TierCritical, true},
		{"tomorrow", 1, TierUrgent, true},
		{"two days", 2, TierWarning, true},
		{"three days", 3, TierWarning, true},
		{"four days", 4, TierNormal, true},
		{"seven days", 7, TierNormal, true},
		{"eight days outside window", 8, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := Classify(tt.days)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestClassifyLabel(t *testing.T) {
	now := date(2025, time.June, 10)

	t.Run("same-day expiry is critical", func(t *testing.T) {
		tier, ok := ClassifyLabel(StatusActive, date(2025, time.June, 10), now)
		require.True(t, ok)
		assert.Equal(t, TierCritical, tier)
	})

	t.Run("next-day expiry is urgent", func(t *testing.T) {
		tier, ok := ClassifyLabel(StatusActive, date(2025, time.June, 11), now)
		require.True(t, ok)
		assert.Equal(t, TierUrgent, tier)
	})

	t.Run("terminal labels are excluded", func(t *testing.T) {
		_, ok := ClassifyLabel(StatusUsed, date(2025, time.June, 10), now)
		assert.False(t, ok)

		_, ok = ClassifyLabel(StatusWasted, date(2025, time.June, 11), now)
		assert.False(t, ok)
	})
}
