package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShelfLifeDays(t *testing.T) {
	tests := []struct {
		condition Condition
		days      int
	}{
		{ConditionFresh, 1},
		{ConditionCooked, 3},
		{ConditionFrozen, 30},
		{ConditionDry, 90},
		{ConditionRefrigerated, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			days, ok := ShelfLifeDays(tt.condition)
			require.True(t, ok)
			assert.Equal(t, tt.days, days)
		})
	}

	t.Run("unknown condition", func(t *testing.T) {
		_, ok := ShelfLifeDays("pickled")
		assert.False(t, ok)
	})
}

func TestExpiryDate(t *testing.T) {
	t.Run("frozen adds thirty days", func(t *testing.T) {
		prep := date(2025, time.January, 1)
		assert.Equal(t, date(2025, time.January, 31), ExpiryDate(ConditionFrozen, prep))
	})

	t.Run("fresh adds one day", func(t *testing.T) {
		prep := date(2025, time.March, 15)
		assert.Equal(t, date(2025, time.March, 16), ExpiryDate(ConditionFresh, prep))
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		prep := date(2025, time.February, 27)
		assert.Equal(t, date(2025, time.March, 2), ExpiryDate(ConditionCooked, prep))
	})

	t.Run("unknown condition yields zero time", func(t *testing.T) {
		assert.True(t, ExpiryDate("pickled", date(2025, time.January, 1)).IsZero())
	})

	t.Run("zero prep date yields zero time", func(t *testing.T) {
		assert.True(t, ExpiryDate(ConditionDry, time.Time{}).IsZero())
	})
}
