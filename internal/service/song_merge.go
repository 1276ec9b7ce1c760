package service

import (
	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// MergeMode selects the semantics for merging rehearsal songs into a
// performance's song list.
type MergeMode string

const (
	// MergeModeAdd appends incoming songs to the existing list, skipping any
	// whose song identity is already present. Idempotent on retry.
	MergeModeAdd MergeMode = "add"
	// MergeModeReplace discards the existing list entirely. Irreversible from
	// the caller's perspective; no snapshot is retained.
	MergeModeReplace MergeMode = "replace"
)

// IsValid checks if the MergeMode is valid
func (m MergeMode) IsValid() bool {
	return m == MergeModeAdd || m == MergeModeReplace
}

// MergeResult is the outcome of a song merge. Skipped duplicates are reported,
// never raised as errors: the same song legitimately shows up in multiple
// rehearsal sessions.
type MergeResult struct {
	Songs          []models.PerformanceSong
	SkippedCount   int
	SkippedSongIDs []uuid.UUID
}

// MergeSongs computes a performance's new song list from its existing songs
// and an incoming rehearsal's songs.
//
// REPLACE maps the incoming songs 1:1 and discards the existing list. ADD
// keeps the existing songs in their original relative order and appends the
// incoming songs, in incoming order, whose SongID is not already present;
// appended entries get orders of max(existing)+1 upward so the sequence stays
// strictly increasing without collisions.
//
// Pure: inputs are not mutated.
func MergeSongs(existing []models.PerformanceSong, incoming []models.RehearsalSong, mode MergeMode) MergeResult {
	if mode == MergeModeReplace {
		songs := make([]models.PerformanceSong, 0, len(incoming))
		for i, rs := range incoming {
			songs = append(songs, performanceSongFromRehearsal(rs, i+1))
		}
		return MergeResult{Songs: songs}
	}

	seen := make(map[uuid.UUID]bool, len(existing))
	maxOrder := 0
	result := MergeResult{Songs: make([]models.PerformanceSong, 0, len(existing)+len(incoming))}
	for _, ps := range existing {
		seen[ps.SongID] = true
		if ps.Order > maxOrder {
			maxOrder = ps.Order
		}
		result.Songs = append(result.Songs, ps)
	}

	offset := 0
	for _, rs := range incoming {
		if seen[rs.SongID] {
			result.SkippedCount++
			result.SkippedSongIDs = append(result.SkippedSongIDs, rs.SongID)
			continue
		}
		seen[rs.SongID] = true
		result.Songs = append(result.Songs, performanceSongFromRehearsal(rs, maxOrder+1+offset))
		offset++
	}

	return result
}

// performanceSongFromRehearsal is the one declared mapping between the two
// song row types. The copied field set is fixed here rather than relying on
// the types sharing a shape: musical key, time allocated, lead singer, voice
// parts, musicians, focus points and notes come over verbatim; order is
// assigned by the caller; row identity is new.
func performanceSongFromRehearsal(rs models.RehearsalSong, order int) models.PerformanceSong {
	ps := models.PerformanceSong{
		SongID:        rs.SongID,
		Order:         order,
		MusicalKey:    rs.MusicalKey,
		TimeAllocated: rs.TimeAllocated,
		LeadSingerID:  rs.LeadSingerID,
		FocusPoints:   rs.FocusPoints,
		Notes:         rs.Notes,
	}

	for _, vp := range rs.VoiceParts {
		ps.VoiceParts = append(ps.VoiceParts, models.VoicePartAssignment{
			VoicePart: vp.VoicePart,
			MemberID:  vp.MemberID,
			Order:     vp.Order,
			Notes:     vp.Notes,
		})
	}
	for _, mu := range rs.Musicians {
		ps.Musicians = append(ps.Musicians, models.MusicianAssignment{
			Instrument: mu.Instrument,
			MemberID:   mu.MemberID,
			Order:      mu.Order,
			Notes:      mu.Notes,
		})
	}

	return ps
}
