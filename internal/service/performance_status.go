package service

import (
	"time"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
)

// CreationCheck is the outcome of gating performance creation on shift
// validity. Allowed with a non-empty Warning means the caller proceeds but
// surfaces the warning (the conflict case).
type CreationCheck struct {
	Allowed bool
	Reason  error
	Warning string
}

// CheckPerformanceCreation gates performance creation on the supplied shift
// validity. Validity is always an explicit argument so synthetic shift lists
// can be evaluated in tests; it is never read from ambient state.
//
//   - no shift claims to be active: refused, no leader can be attributed
//   - the current shift's EFFECTIVE status (date-derived) is terminated:
//     refused, nothing can attach to a finished or cancelled shift
//   - more than one shift claims active: allowed using CurrentShift, with a
//     warning the caller must surface
func CheckPerformanceCreation(validity ShiftValidity, now time.Time) CreationCheck {
	if validity.HasNoActive {
		return CreationCheck{Allowed: false, Reason: apperrors.ErrNoActiveShift}
	}

	if effective := ResolveShiftStatus(validity.CurrentShift, now); effective.IsTerminal() {
		return CreationCheck{Allowed: false, Reason: apperrors.ErrShiftTerminated}
	}

	if validity.HasConflict {
		return CreationCheck{
			Allowed: true,
			Warning: "multiple leadership shifts are marked active; using the first",
		}
	}

	return CreationCheck{Allowed: true}
}

// ValidateStatusTransition enforces the guarded advance path: a performance
// status may only move to its immediate successor in the forward order. The
// administrative force-set path bypasses this entirely and never calls it.
// Transitions never touch the performance's song list; content changes only
// through merging and promotion.
func ValidateStatusTransition(current, target models.PerformanceStatus) error {
	if !target.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if current.IsTerminal() {
		return apperrors.ErrPerformanceCompleted
	}

	next, ok := current.Next()
	if !ok || next != target {
		return apperrors.ErrInvalidStatusTransition
	}
	return nil
}
