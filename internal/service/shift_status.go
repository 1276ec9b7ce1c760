package service

import (
	"time"

	"choir-management-backend/internal/database/models"
)

// ResolveShiftStatus derives the effective status of a shift from the clock
// and its date range. A stored Cancelled is an administrative override and
// wins unconditionally; every other stored value is ignored here, because
// administrators routinely leave shift records un-updated and the dates are
// the source of truth for upcoming/active/completed.
//
// Pure: no side effects, no I/O.
func ResolveShiftStatus(shift *models.LeadershipShift, now time.Time) models.ShiftStatus {
	if shift.StoredStatus == models.ShiftStatusCancelled {
		return models.ShiftStatusCancelled
	}
	if now.Before(shift.StartDate) {
		return models.ShiftStatusUpcoming
	}
	if now.After(shift.EndDate) {
		return models.ShiftStatusCompleted
	}
	return models.ShiftStatusActive
}

// ShiftValidity classifies a snapshot of shifts by how many claim to be
// active. Conflict (more than one active) is a degraded but non-fatal
// condition: callers may proceed with CurrentShift while surfacing a warning.
type ShiftValidity struct {
	ActiveShifts []models.LeadershipShift
	CurrentShift *models.LeadershipShift
	Count        int
	IsValid      bool
	HasConflict  bool
	HasNoActive  bool
}

// EvaluateShiftValidity inspects the STORED status of each shift, not the
// date-derived one: it answers "what does the data say is active", which is a
// different question from what the clock says. The asymmetry with
// ResolveShiftStatus is deliberate input for downstream gating; call sites
// must pick the resolver that matches their question.
//
// Pure: the input slice is not mutated and repeated calls on the same
// snapshot return the same classification.
func EvaluateShiftValidity(shifts []models.LeadershipShift) ShiftValidity {
	var active []models.LeadershipShift
	for _, shift := range shifts {
		if shift.StoredStatus == models.ShiftStatusActive {
			active = append(active, shift)
		}
	}

	validity := ShiftValidity{
		ActiveShifts: active,
		Count:        len(active),
		IsValid:      len(active) <= 1,
		HasConflict:  len(active) > 1,
		HasNoActive:  len(active) == 0,
	}
	if len(active) > 0 {
		validity.CurrentShift = &active[0]
	}
	return validity
}
