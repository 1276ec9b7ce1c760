package models

import (
	"time"

	"github.com/google/uuid"
)

// Rehearsal represents a rehearsal session held in preparation for a
// performance. Its song list is authored independently of the performance's
// and is copied over by promotion; after promotion the two lists have no live
// link. IsPromoted is set once the content has been pushed.
type Rehearsal struct {
	BaseModel
	Title         string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Type          RehearsalType   `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Status        RehearsalStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	PerformanceID uuid.UUID       `json:"performance_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsPromoted    bool            `json:"is_promoted" gorm:"default:false"`
	Date          time.Time       `json:"date" gorm:"type:date"`
	Location      string          `json:"location" gorm:"size:200"`
	Notes         string          `json:"notes" gorm:"type:text"`

	// Relationships
	Performance Performance     `json:"performance,omitempty" gorm:"foreignKey:PerformanceID"`
	Songs       []RehearsalSong `json:"songs,omitempty" gorm:"foreignKey:RehearsalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rehearsal
func (Rehearsal) TableName() string {
	return "rehearsals"
}

// RehearsalSong structurally mirrors PerformanceSong but is a distinct type:
// the promotion copy rules are enforced by an explicit mapping function, not
// by the two types sharing a shape.
type RehearsalSong struct {
	RowModel
	RehearsalID   uuid.UUID  `json:"rehearsal_id" gorm:"type:uuid;not null;index" validate:"required"`
	SongID        uuid.UUID  `json:"song_id" gorm:"type:uuid;not null;index" validate:"required"`
	Order         int        `json:"order" gorm:"column:sort_order;not null;default:0"`
	MusicalKey    string     `json:"musical_key" gorm:"size:10"`
	TimeAllocated int        `json:"time_allocated"`
	LeadSingerID  *uuid.UUID `json:"lead_singer_id,omitempty" gorm:"type:uuid"`
	FocusPoints   string     `json:"focus_points" gorm:"type:text"`
	Notes         string     `json:"notes" gorm:"type:text"`

	// Relationships
	Song       Song                           `json:"song,omitempty" gorm:"foreignKey:SongID"`
	LeadSinger *Member                        `json:"lead_singer,omitempty" gorm:"foreignKey:LeadSingerID"`
	VoiceParts []RehearsalVoicePartAssignment `json:"voice_parts,omitempty" gorm:"foreignKey:RehearsalSongID;constraint:OnDelete:CASCADE"`
	Musicians  []RehearsalMusicianAssignment  `json:"musicians,omitempty" gorm:"foreignKey:RehearsalSongID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RehearsalSong
func (RehearsalSong) TableName() string {
	return "rehearsal_songs"
}

// RehearsalVoicePartAssignment assigns a member to a voice part for one rehearsal song
type RehearsalVoicePartAssignment struct {
	RowModel
	RehearsalSongID uuid.UUID `json:"rehearsal_song_id" gorm:"type:uuid;not null;index" validate:"required"`
	VoicePart       VoicePart `json:"voice_part" gorm:"type:varchar(20);not null" validate:"required"`
	MemberID        uuid.UUID `json:"member_id" gorm:"type:uuid;not null" validate:"required"`
	Order           int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	Notes           string    `json:"notes" gorm:"size:500"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for RehearsalVoicePartAssignment
func (RehearsalVoicePartAssignment) TableName() string {
	return "rehearsal_voice_part_assignments"
}

// RehearsalMusicianAssignment assigns a member to an instrument for one rehearsal song
type RehearsalMusicianAssignment struct {
	RowModel
	RehearsalSongID uuid.UUID `json:"rehearsal_song_id" gorm:"type:uuid;not null;index" validate:"required"`
	Instrument      string    `json:"instrument" gorm:"size:100;not null" validate:"required"`
	MemberID        uuid.UUID `json:"member_id" gorm:"type:uuid;not null" validate:"required"`
	Order           int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	Notes           string    `json:"notes" gorm:"size:500"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for RehearsalMusicianAssignment
func (RehearsalMusicianAssignment) TableName() string {
	return "rehearsal_musician_assignments"
}
