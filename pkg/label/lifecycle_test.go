package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preplabel-backend/domain"
)

func TestEffectiveStatus(t *testing.T) {
	now := date(2025, time.June, 10)

	tests := []struct {
		name   string
		stored Status
		expiry time.Time
		want   Status
	}{
		{"active well before expiry", StatusActive, date(2025, time.June, 20), StatusActive},
		{"active day before expiry", StatusActive, date(2025, time.June, 11), StatusNearExpiry},
		{"active on expiry day", StatusActive, date(2025, time.June, 10), StatusExpired},
		{"active past expiry", StatusActive, date(2025, time.June, 1), StatusExpired},
		{"used stays used past expiry", StatusUsed, date(2025, time.June, 1), StatusUsed},
		{"wasted stays wasted", StatusWasted, date(2025, time.June, 20), StatusWasted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.stored, tt.expiry, now))
		})
	}
}

func TestConsume(t *testing.T) {
	t.Run("active label becomes used", func(t *testing.T) {
		next, err := Consume(StatusActive)
		require.NoError(t, err)
		assert.Equal(t, StatusUsed, next)
	})

	t.Run("terminal label rejects consume", func(t *testing.T) {
		_, err := Consume(StatusUsed)
		assert.ErrorIs(t, err, domain.ErrLabelTerminal)

		_, err = Consume(StatusWasted)
		assert.ErrorIs(t, err, domain.ErrLabelTerminal)
	})
}

func TestDiscard(t *testing.T) {
	t.Run("active label with reason becomes wasted", func(t *testing.T) {
		next, err := Discard(StatusActive, "dropped on the floor")
		require.NoError(t, err)
		assert.Equal(t, StatusWasted, next)
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		_, err := Discard(StatusActive, "")
		assert.ErrorIs(t, err, domain.ErrDiscardReasonRequired)
	})

	t.Run("whitespace reason is rejected", func(t *testing.T) {
		_, err := Discard(StatusActive, "   ")
		assert.ErrorIs(t, err, domain.ErrDiscardReasonRequired)
	})

	t.Run("terminal label rejects discard", func(t *testing.T) {
		_, err := Discard(StatusUsed, "late discard")
		assert.ErrorIs(t, err, domain.ErrLabelTerminal)
	})
}

func TestExtend(t *testing.T) {
	now := date(2025, time.June, 10)

	t.Run("future date with reason passes", func(t *testing.T) {
		err := Extend(StatusActive, date(2025, time.June, 15), now, "resealed and refrozen")
		assert.NoError(t, err)
	})

	t.Run("today is a valid new expiry", func(t *testing.T) {
		err := Extend(StatusActive, date(2025, time.June, 10), now, "still good")
		assert.NoError(t, err)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		err := Extend(StatusActive, date(2025, time.June, 9), now, "backdating")
		assert.ErrorIs(t, err, domain.ErrExtendDateInPast)
	})

	t.Run("missing reason is rejected", func(t *testing.T) {
		err := Extend(StatusActive, date(2025, time.June, 15), now, "")
		assert.ErrorIs(t, err, domain.ErrExtendReasonRequired)
	})

	t.Run("terminal label rejects extend", func(t *testing.T) {
		err := Extend(StatusWasted, date(2025, time.June, 15), now, "too late")
		assert.ErrorIs(t, err, domain.ErrLabelTerminal)
	})
}
