package models

// ShiftStatus is the status an administrator stored on a leadership shift.
// It can go stale relative to the clock; date-derived status is computed
// separately (see service.ResolveShiftStatus).
type ShiftStatus string

const (
	ShiftStatusUpcoming  ShiftStatus = "upcoming"
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusUpcoming, ShiftStatusActive, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the shift can no longer host new performances.
func (s ShiftStatus) IsTerminal() bool {
	return s == ShiftStatusCompleted || s == ShiftStatusCancelled
}

// PerformanceStatus is the lifecycle state of a performance. Normal operation
// only moves forward through the declared order; completed is terminal.
type PerformanceStatus string

const (
	PerformanceStatusUpcoming      PerformanceStatus = "upcoming"
	PerformanceStatusInPreparation PerformanceStatus = "in_preparation"
	PerformanceStatusReady         PerformanceStatus = "ready"
	PerformanceStatusCompleted     PerformanceStatus = "completed"
)

// IsValid checks if the PerformanceStatus is valid
func (s PerformanceStatus) IsValid() bool {
	switch s {
	case PerformanceStatusUpcoming, PerformanceStatusInPreparation, PerformanceStatusReady, PerformanceStatusCompleted:
		return true
	}
	return false
}

// Next returns the immediate successor in the forward order, and false when
// the status is terminal.
func (s PerformanceStatus) Next() (PerformanceStatus, bool) {
	switch s {
	case PerformanceStatusUpcoming:
		return PerformanceStatusInPreparation, true
	case PerformanceStatusInPreparation:
		return PerformanceStatusReady, true
	case PerformanceStatusReady:
		return PerformanceStatusCompleted, true
	case PerformanceStatusCompleted:
		return "", false
	}
	return "", false
}

// IsTerminal reports whether no further guarded transitions exist.
func (s PerformanceStatus) IsTerminal() bool {
	return s == PerformanceStatusCompleted
}

// PerformanceType defines the kinds of occasions a performance is held for
type PerformanceType string

const (
	PerformanceTypeSundayService  PerformanceType = "sunday_service"
	PerformanceTypeEveningService PerformanceType = "evening_service"
	PerformanceTypeConcert        PerformanceType = "concert"
	PerformanceTypeWedding        PerformanceType = "wedding"
	PerformanceTypeFuneral        PerformanceType = "funeral"
	PerformanceTypeHoliday        PerformanceType = "holiday"
	PerformanceTypeOutreach       PerformanceType = "outreach"
)

// IsValid checks if the PerformanceType is valid
func (t PerformanceType) IsValid() bool {
	switch t {
	case PerformanceTypeSundayService, PerformanceTypeEveningService, PerformanceTypeConcert,
		PerformanceTypeWedding, PerformanceTypeFuneral, PerformanceTypeHoliday, PerformanceTypeOutreach:
		return true
	}
	return false
}

// RehearsalStatus is the lifecycle state of a rehearsal; completed is terminal
// and is a precondition for promoting rehearsal content to a performance.
type RehearsalStatus string

const (
	RehearsalStatusScheduled  RehearsalStatus = "scheduled"
	RehearsalStatusInProgress RehearsalStatus = "in_progress"
	RehearsalStatusCompleted  RehearsalStatus = "completed"
	RehearsalStatusCancelled  RehearsalStatus = "cancelled"
)

// IsValid checks if the RehearsalStatus is valid
func (s RehearsalStatus) IsValid() bool {
	switch s {
	case RehearsalStatusScheduled, RehearsalStatusInProgress, RehearsalStatusCompleted, RehearsalStatusCancelled:
		return true
	}
	return false
}

// RehearsalType defines the kinds of rehearsals
type RehearsalType string

const (
	RehearsalTypeFull      RehearsalType = "full"
	RehearsalTypeSectional RehearsalType = "sectional"
	RehearsalTypeDress     RehearsalType = "dress"
	RehearsalTypeMusicians RehearsalType = "musicians"
)

// IsValid checks if the RehearsalType is valid
func (t RehearsalType) IsValid() bool {
	switch t {
	case RehearsalTypeFull, RehearsalTypeSectional, RehearsalTypeDress, RehearsalTypeMusicians:
		return true
	}
	return false
}

// MemberRole represents the role of a member in the choir
type MemberRole string

const (
	MemberRoleDirector      MemberRole = "director"
	MemberRoleSectionLeader MemberRole = "section_leader"
	MemberRoleSinger        MemberRole = "singer"
	MemberRoleMusician      MemberRole = "musician"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleDirector, MemberRoleSectionLeader, MemberRoleSinger, MemberRoleMusician:
		return true
	}
	return false
}

// VoicePart represents a choral voice part
type VoicePart string

const (
	VoicePartSoprano VoicePart = "soprano"
	VoicePartAlto    VoicePart = "alto"
	VoicePartTenor   VoicePart = "tenor"
	VoicePartBass    VoicePart = "bass"
)

// IsValid checks if the VoicePart is valid
func (v VoicePart) IsValid() bool {
	switch v {
	case VoicePartSoprano, VoicePartAlto, VoicePartTenor, VoicePartBass:
		return true
	}
	return false
}
