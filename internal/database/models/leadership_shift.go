package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadershipShift represents a leadership assignment window: who is the nominal
// choir leader between StartDate and EndDate. StoredStatus is set by an
// administrator at creation/edit time and can disagree with the dates; the
// date-derived status is computed on read. Shifts are never deleted while
// referenced; performances reference leaders, not shift IDs.
type LeadershipShift struct {
	BaseModel
	LeaderID        uuid.UUID   `json:"leader_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate       time.Time   `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate         time.Time   `json:"end_date" gorm:"type:date;not null" validate:"required"`
	StoredStatus    ShiftStatus `json:"stored_status" gorm:"type:varchar(20);not null;default:'upcoming'" validate:"required"`
	EventsScheduled int         `json:"events_scheduled" gorm:"default:0"`
	EventsCompleted int         `json:"events_completed" gorm:"default:0"`
	Notes           string      `json:"notes" gorm:"type:text"`

	// Relationships
	Leader Member `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
}

// TableName returns the table name for LeadershipShift
func (LeadershipShift) TableName() string {
	return "leadership_shifts"
}
