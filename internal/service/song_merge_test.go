package service_test

import (
	"testing"

	"choir-management-backend/internal/database/models"
	"choir-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePerformanceSong(songID uuid.UUID, order int) models.PerformanceSong {
	return models.PerformanceSong{
		PerformanceID: uuid.New(),
		SongID:        songID,
		Order:         order,
	}
}

func makeRehearsalSong(songID uuid.UUID, order int) models.RehearsalSong {
	return models.RehearsalSong{
		RehearsalID: uuid.New(),
		SongID:      songID,
		Order:       order,
	}
}

func TestMergeModeIsValid(t *testing.T) {
	assert.True(t, service.MergeModeAdd.IsValid())
	assert.True(t, service.MergeModeReplace.IsValid())
	assert.False(t, service.MergeMode("append").IsValid())
	assert.False(t, service.MergeMode("").IsValid())
}

func TestMergeSongsAdd(t *testing.T) {
	t.Run("New songs append after the existing list", func(t *testing.T) {
		songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
		existing := []models.PerformanceSong{
			makePerformanceSong(songA, 1),
			makePerformanceSong(songB, 2),
		}
		incoming := []models.RehearsalSong{makeRehearsalSong(songC, 1)}

		result := service.MergeSongs(existing, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 3)
		assert.Equal(t, songA, result.Songs[0].SongID)
		assert.Equal(t, songB, result.Songs[1].SongID)
		assert.Equal(t, songC, result.Songs[2].SongID)
		assert.Equal(t, 3, result.Songs[2].Order)
		assert.Zero(t, result.SkippedCount)
	})

	t.Run("Duplicates are skipped and reported, not errored", func(t *testing.T) {
		songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
		existing := []models.PerformanceSong{
			makePerformanceSong(songA, 1),
			makePerformanceSong(songB, 2),
		}
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songB, 1),
			makeRehearsalSong(songC, 2),
			makeRehearsalSong(songA, 3),
		}

		result := service.MergeSongs(existing, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 3)
		assert.Equal(t, 2, result.SkippedCount)
		assert.Equal(t, []uuid.UUID{songB, songA}, result.SkippedSongIDs)
		assert.Equal(t, songC, result.Songs[2].SongID)
	})

	t.Run("All duplicates leaves the list unchanged", func(t *testing.T) {
		songA := uuid.New()
		existing := []models.PerformanceSong{makePerformanceSong(songA, 1)}
		incoming := []models.RehearsalSong{makeRehearsalSong(songA, 5)}

		result := service.MergeSongs(existing, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 1)
		assert.Equal(t, 1, result.SkippedCount)
	})

	t.Run("Duplicates within the incoming list are collapsed", func(t *testing.T) {
		songA := uuid.New()
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songA, 1),
			makeRehearsalSong(songA, 2),
		}

		result := service.MergeSongs(nil, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 1)
		assert.Equal(t, 1, result.SkippedCount)
	})

	t.Run("Appended orders continue above the existing maximum", func(t *testing.T) {
		songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
		// Existing orders are sparse; appends continue from the max.
		existing := []models.PerformanceSong{makePerformanceSong(songA, 7)}
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songB, 1),
			makeRehearsalSong(songC, 2),
		}

		result := service.MergeSongs(existing, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 3)
		assert.Equal(t, 8, result.Songs[1].Order)
		assert.Equal(t, 9, result.Songs[2].Order)
	})

	t.Run("Skipped duplicates do not leave order gaps", func(t *testing.T) {
		songA, songB := uuid.New(), uuid.New()
		existing := []models.PerformanceSong{makePerformanceSong(songA, 1)}
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songA, 1),
			makeRehearsalSong(songB, 2),
		}

		result := service.MergeSongs(existing, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 2)
		assert.Equal(t, 2, result.Songs[1].Order)
	})

	t.Run("Empty performance list takes everything", func(t *testing.T) {
		songA, songB := uuid.New(), uuid.New()
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songA, 1),
			makeRehearsalSong(songB, 2),
		}

		result := service.MergeSongs(nil, incoming, service.MergeModeAdd)
		require.Len(t, result.Songs, 2)
		assert.Equal(t, 1, result.Songs[0].Order)
		assert.Equal(t, 2, result.Songs[1].Order)
		assert.Zero(t, result.SkippedCount)
	})

	t.Run("Empty rehearsal list is a no-op", func(t *testing.T) {
		songA := uuid.New()
		existing := []models.PerformanceSong{makePerformanceSong(songA, 1)}

		result := service.MergeSongs(existing, nil, service.MergeModeAdd)
		require.Len(t, result.Songs, 1)
		assert.Equal(t, songA, result.Songs[0].SongID)
		assert.Zero(t, result.SkippedCount)
	})
}

func TestMergeSongsReplace(t *testing.T) {
	t.Run("Existing list is discarded", func(t *testing.T) {
		songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
		existing := []models.PerformanceSong{
			makePerformanceSong(songA, 1),
			makePerformanceSong(songB, 2),
		}
		incoming := []models.RehearsalSong{makeRehearsalSong(songC, 1)}

		result := service.MergeSongs(existing, incoming, service.MergeModeReplace)
		require.Len(t, result.Songs, 1)
		assert.Equal(t, songC, result.Songs[0].SongID)
		assert.Zero(t, result.SkippedCount)
	})

	t.Run("Replace with empty rehearsal empties the performance", func(t *testing.T) {
		songA := uuid.New()
		existing := []models.PerformanceSong{makePerformanceSong(songA, 1)}

		result := service.MergeSongs(existing, nil, service.MergeModeReplace)
		assert.Empty(t, result.Songs)
	})

	t.Run("Orders are renumbered from one", func(t *testing.T) {
		songA, songB := uuid.New(), uuid.New()
		incoming := []models.RehearsalSong{
			makeRehearsalSong(songA, 4),
			makeRehearsalSong(songB, 9),
		}

		result := service.MergeSongs(nil, incoming, service.MergeModeReplace)
		require.Len(t, result.Songs, 2)
		assert.Equal(t, 1, result.Songs[0].Order)
		assert.Equal(t, 2, result.Songs[1].Order)
	})
}

func TestMergeSongsFieldCopy(t *testing.T) {
	songID := uuid.New()
	leadSinger := uuid.New()
	memberID := uuid.New()

	rs := makeRehearsalSong(songID, 1)
	rs.MusicalKey = "Eb"
	rs.TimeAllocated = 240
	rs.LeadSingerID = &leadSinger
	rs.FocusPoints = "watch the key change into the bridge"
	rs.Notes = "a cappella intro"
	rs.VoiceParts = []models.RehearsalVoicePartAssignment{
		{VoicePart: models.VoicePartSoprano, MemberID: memberID, Order: 1, Notes: "descant"},
	}
	rs.Musicians = []models.RehearsalMusicianAssignment{
		{Instrument: "piano", MemberID: memberID, Order: 1},
	}

	result := service.MergeSongs(nil, []models.RehearsalSong{rs}, service.MergeModeAdd)
	require.Len(t, result.Songs, 1)

	ps := result.Songs[0]
	assert.Equal(t, songID, ps.SongID)
	assert.Equal(t, "Eb", ps.MusicalKey)
	assert.Equal(t, 240, ps.TimeAllocated)
	require.NotNil(t, ps.LeadSingerID)
	assert.Equal(t, leadSinger, *ps.LeadSingerID)
	assert.Equal(t, "watch the key change into the bridge", ps.FocusPoints)
	assert.Equal(t, "a cappella intro", ps.Notes)

	require.Len(t, ps.VoiceParts, 1)
	assert.Equal(t, models.VoicePartSoprano, ps.VoiceParts[0].VoicePart)
	assert.Equal(t, memberID, ps.VoiceParts[0].MemberID)
	assert.Equal(t, "descant", ps.VoiceParts[0].Notes)

	require.Len(t, ps.Musicians, 1)
	assert.Equal(t, "piano", ps.Musicians[0].Instrument)
	assert.Equal(t, memberID, ps.Musicians[0].MemberID)

	// New row identity: the copy is not linked back to the rehearsal row.
	assert.Equal(t, uuid.Nil, ps.ID)
	assert.Equal(t, uuid.Nil, ps.VoiceParts[0].ID)
}

func TestMergeSongsDoesNotMutateInputs(t *testing.T) {
	songA, songB := uuid.New(), uuid.New()
	existing := []models.PerformanceSong{makePerformanceSong(songA, 1)}
	incoming := []models.RehearsalSong{
		makeRehearsalSong(songA, 1),
		makeRehearsalSong(songB, 2),
	}

	existingBefore := make([]models.PerformanceSong, len(existing))
	copy(existingBefore, existing)
	incomingBefore := make([]models.RehearsalSong, len(incoming))
	copy(incomingBefore, incoming)

	_ = service.MergeSongs(existing, incoming, service.MergeModeAdd)
	_ = service.MergeSongs(existing, incoming, service.MergeModeReplace)

	assert.Equal(t, existingBefore, existing)
	assert.Equal(t, incomingBefore, incoming)
}
