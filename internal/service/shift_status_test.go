package service_test

import (
	"testing"
	"time"

	"choir-management-backend/internal/database/models"
	"choir-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeShift(stored models.ShiftStatus, start, end time.Time) models.LeadershipShift {
	shift := models.LeadershipShift{
		LeaderID:     uuid.New(),
		StartDate:    start,
		EndDate:      end,
		StoredStatus: stored,
	}
	shift.ID = uuid.New()
	return shift
}

func TestResolveShiftStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		stored   models.ShiftStatus
		start    time.Time
		end      time.Time
		expected models.ShiftStatus
	}{
		{
			name:     "Before start is upcoming",
			stored:   models.ShiftStatusUpcoming,
			start:    now.Add(24 * time.Hour),
			end:      now.Add(30 * 24 * time.Hour),
			expected: models.ShiftStatusUpcoming,
		},
		{
			name:     "Within range is active",
			stored:   models.ShiftStatusUpcoming,
			start:    now.Add(-24 * time.Hour),
			end:      now.Add(24 * time.Hour),
			expected: models.ShiftStatusActive,
		},
		{
			name:     "After end is completed",
			stored:   models.ShiftStatusActive,
			start:    now.Add(-30 * 24 * time.Hour),
			end:      now.Add(-24 * time.Hour),
			expected: models.ShiftStatusCompleted,
		},
		{
			name:     "Stored status does not override dates",
			stored:   models.ShiftStatusCompleted,
			start:    now.Add(-24 * time.Hour),
			end:      now.Add(24 * time.Hour),
			expected: models.ShiftStatusActive,
		},
		{
			name:     "Cancelled wins over an in-range window",
			stored:   models.ShiftStatusCancelled,
			start:    now.Add(-24 * time.Hour),
			end:      now.Add(24 * time.Hour),
			expected: models.ShiftStatusCancelled,
		},
		{
			name:     "Cancelled wins over a future window",
			stored:   models.ShiftStatusCancelled,
			start:    now.Add(24 * time.Hour),
			end:      now.Add(48 * time.Hour),
			expected: models.ShiftStatusCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shift := makeShift(tc.stored, tc.start, tc.end)
			assert.Equal(t, tc.expected, service.ResolveShiftStatus(&shift, now))
		})
	}
}

func TestResolveShiftStatusBoundaries(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	shift := makeShift(models.ShiftStatusUpcoming, start, end)

	// The range is inclusive on both ends.
	assert.Equal(t, models.ShiftStatusActive, service.ResolveShiftStatus(&shift, start))
	assert.Equal(t, models.ShiftStatusActive, service.ResolveShiftStatus(&shift, end))
	assert.Equal(t, models.ShiftStatusUpcoming, service.ResolveShiftStatus(&shift, start.Add(-time.Second)))
	assert.Equal(t, models.ShiftStatusCompleted, service.ResolveShiftStatus(&shift, end.Add(time.Second)))
}

func TestEvaluateShiftValidity(t *testing.T) {
	now := time.Now()

	t.Run("Exactly one active shift is valid", func(t *testing.T) {
		shifts := []models.LeadershipShift{
			makeShift(models.ShiftStatusCompleted, now.Add(-60*24*time.Hour), now.Add(-31*24*time.Hour)),
			makeShift(models.ShiftStatusActive, now.Add(-24*time.Hour), now.Add(24*time.Hour)),
			makeShift(models.ShiftStatusUpcoming, now.Add(31*24*time.Hour), now.Add(60*24*time.Hour)),
		}

		validity := service.EvaluateShiftValidity(shifts)
		assert.True(t, validity.IsValid)
		assert.False(t, validity.HasConflict)
		assert.False(t, validity.HasNoActive)
		assert.Equal(t, 1, validity.Count)
		require.NotNil(t, validity.CurrentShift)
		assert.Equal(t, shifts[1].ID, validity.CurrentShift.ID)
	})

	t.Run("No active shift is valid but flagged", func(t *testing.T) {
		shifts := []models.LeadershipShift{
			makeShift(models.ShiftStatusCompleted, now.Add(-60*24*time.Hour), now.Add(-31*24*time.Hour)),
			makeShift(models.ShiftStatusUpcoming, now.Add(31*24*time.Hour), now.Add(60*24*time.Hour)),
		}

		validity := service.EvaluateShiftValidity(shifts)
		assert.True(t, validity.IsValid)
		assert.True(t, validity.HasNoActive)
		assert.False(t, validity.HasConflict)
		assert.Equal(t, 0, validity.Count)
		assert.Nil(t, validity.CurrentShift)
	})

	t.Run("Empty snapshot is valid", func(t *testing.T) {
		validity := service.EvaluateShiftValidity(nil)
		assert.True(t, validity.IsValid)
		assert.True(t, validity.HasNoActive)
		assert.Equal(t, 0, validity.Count)
		assert.Nil(t, validity.CurrentShift)
	})

	t.Run("Two active shifts conflict", func(t *testing.T) {
		first := makeShift(models.ShiftStatusActive, now.Add(-24*time.Hour), now.Add(24*time.Hour))
		second := makeShift(models.ShiftStatusActive, now.Add(-12*time.Hour), now.Add(36*time.Hour))
		shifts := []models.LeadershipShift{first, second}

		validity := service.EvaluateShiftValidity(shifts)
		assert.False(t, validity.IsValid)
		assert.True(t, validity.HasConflict)
		assert.False(t, validity.HasNoActive)
		assert.Equal(t, 2, validity.Count)
		require.NotNil(t, validity.CurrentShift)
		assert.Equal(t, first.ID, validity.CurrentShift.ID)
	})

	t.Run("Classification reads stored status, not dates", func(t *testing.T) {
		// Dates say active, stored says upcoming: the monitor trusts the data.
		stale := makeShift(models.ShiftStatusUpcoming, now.Add(-24*time.Hour), now.Add(24*time.Hour))
		// Dates say long over, stored still says active.
		forgotten := makeShift(models.ShiftStatusActive, now.Add(-60*24*time.Hour), now.Add(-31*24*time.Hour))

		validity := service.EvaluateShiftValidity([]models.LeadershipShift{stale, forgotten})
		assert.Equal(t, 1, validity.Count)
		require.NotNil(t, validity.CurrentShift)
		assert.Equal(t, forgotten.ID, validity.CurrentShift.ID)

		// The same record resolves differently through the date-derived view.
		assert.Equal(t, models.ShiftStatusCompleted, service.ResolveShiftStatus(&forgotten, now))
	})

	t.Run("Input slice is not mutated", func(t *testing.T) {
		shifts := []models.LeadershipShift{
			makeShift(models.ShiftStatusActive, now.Add(-24*time.Hour), now.Add(24*time.Hour)),
			makeShift(models.ShiftStatusActive, now.Add(-12*time.Hour), now.Add(36*time.Hour)),
		}
		before := make([]models.LeadershipShift, len(shifts))
		copy(before, shifts)

		_ = service.EvaluateShiftValidity(shifts)
		_ = service.EvaluateShiftValidity(shifts)
		assert.Equal(t, before, shifts)
	})
}
