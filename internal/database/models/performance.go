package models

import (
	"time"

	"github.com/google/uuid"
)

// Performance represents a scheduled choir performance. ShiftLeadID records the
// leader of the shift that was active when the performance was created; the
// shift itself is not referenced, so shift deletion does not cascade here.
type Performance struct {
	BaseModel
	Title            string            `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Date             time.Time         `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Type             PerformanceType   `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Status           PerformanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'upcoming'"`
	ShiftLeadID      *uuid.UUID        `json:"shift_lead_id,omitempty" gorm:"type:uuid;index"`
	Location         string            `json:"location" gorm:"size:200"`
	ExpectedAudience int               `json:"expected_audience"`
	Notes            string            `json:"notes" gorm:"type:text"`

	// Relationships
	ShiftLead  *Member           `json:"shift_lead,omitempty" gorm:"foreignKey:ShiftLeadID"`
	Songs      []PerformanceSong `json:"songs,omitempty" gorm:"foreignKey:PerformanceID;constraint:OnDelete:CASCADE"`
	Rehearsals []Rehearsal       `json:"rehearsals,omitempty" gorm:"foreignKey:PerformanceID"`
}

// TableName returns the table name for Performance
func (Performance) TableName() string {
	return "performances"
}

// PerformanceSong is one entry of a performance's ordered song list. Identity
// for duplicate detection is SongID, not the row ID. Order is a local sequence
// and is not required to be unique.
type PerformanceSong struct {
	RowModel
	PerformanceID uuid.UUID  `json:"performance_id" gorm:"type:uuid;not null;index" validate:"required"`
	SongID        uuid.UUID  `json:"song_id" gorm:"type:uuid;not null;index" validate:"required"`
	Order         int        `json:"order" gorm:"column:sort_order;not null;default:0"`
	MusicalKey    string     `json:"musical_key" gorm:"size:10"`
	TimeAllocated int        `json:"time_allocated"`
	LeadSingerID  *uuid.UUID `json:"lead_singer_id,omitempty" gorm:"type:uuid"`
	FocusPoints   string     `json:"focus_points" gorm:"type:text"`
	Notes         string     `json:"notes" gorm:"type:text"`

	// Relationships
	Song       Song                  `json:"song,omitempty" gorm:"foreignKey:SongID"`
	LeadSinger *Member               `json:"lead_singer,omitempty" gorm:"foreignKey:LeadSingerID"`
	VoiceParts []VoicePartAssignment `json:"voice_parts,omitempty" gorm:"foreignKey:PerformanceSongID;constraint:OnDelete:CASCADE"`
	Musicians  []MusicianAssignment  `json:"musicians,omitempty" gorm:"foreignKey:PerformanceSongID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PerformanceSong
func (PerformanceSong) TableName() string {
	return "performance_songs"
}

// VoicePartAssignment assigns a member to a voice part for one performance song
type VoicePartAssignment struct {
	RowModel
	PerformanceSongID uuid.UUID `json:"performance_song_id" gorm:"type:uuid;not null;index" validate:"required"`
	VoicePart         VoicePart `json:"voice_part" gorm:"type:varchar(20);not null" validate:"required"`
	MemberID          uuid.UUID `json:"member_id" gorm:"type:uuid;not null" validate:"required"`
	Order             int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	Notes             string    `json:"notes" gorm:"size:500"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for VoicePartAssignment
func (VoicePartAssignment) TableName() string {
	return "voice_part_assignments"
}

// MusicianAssignment assigns a member to an instrument for one performance song
type MusicianAssignment struct {
	RowModel
	PerformanceSongID uuid.UUID `json:"performance_song_id" gorm:"type:uuid;not null;index" validate:"required"`
	Instrument        string    `json:"instrument" gorm:"size:100;not null" validate:"required"`
	MemberID          uuid.UUID `json:"member_id" gorm:"type:uuid;not null" validate:"required"`
	Order             int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	Notes             string    `json:"notes" gorm:"size:500"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for MusicianAssignment
func (MusicianAssignment) TableName() string {
	return "musician_assignments"
}
