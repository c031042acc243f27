//go:build unit

package event_test

import (
	"strings"
	"testing"
	"time"

	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	period := daterange.MustParse("2025-10-01", "2025-10-05")
	now := time.Now()

	t.Run("trims the name", func(t *testing.T) {
		e, err := event.NewEvent("  Autumn Market ", period, uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, "Autumn Market", e.Name())
		assert.Equal(t, period, e.Period())
	})

	t.Run("rejects blank and oversized names", func(t *testing.T) {
		_, err := event.NewEvent("", period, uuid.New(), now)
		assert.ErrorIs(t, err, event.ErrInvalidName)

		_, err = event.NewEvent(strings.Repeat("x", event.MaxNameLength+1), period, uuid.New(), now)
		assert.ErrorIs(t, err, event.ErrInvalidName)
	})

	t.Run("covers sub-ranges only", func(t *testing.T) {
		e, err := event.NewEvent("Autumn Market", period, uuid.New(), now)
		require.NoError(t, err)
		assert.True(t, e.Covers(daterange.MustParse("2025-10-05", "2025-10-05")))
		assert.False(t, e.Covers(daterange.MustParse("2025-09-30", "2025-10-02")))
	})
}
