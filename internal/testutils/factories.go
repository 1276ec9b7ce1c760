package testutils

import (
	"time"

	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	// Unique email per member to satisfy the unique index
	email := "member-" + id.String()[:8] + "@test.com"

	soprano := models.VoicePartSoprano
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:    "Jane Doe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "+1-555-0123",
		Role:        models.MemberRoleSinger,
		VoicePart:   &soprano,
		IsActive:    true,
		JoinedYear:  2020,
	}
}

// WithRole sets a custom role for the member
func (f *MemberFactory) WithRole(role models.MemberRole) *models.Member {
	m := f.Create()
	m.Role = role
	return m
}

// WithVoicePart sets a custom voice part for the member
func (f *MemberFactory) WithVoicePart(part models.VoicePart) *models.Member {
	m := f.Create()
	m.VoicePart = &part
	return m
}

// Director creates an active member with the director role
func (f *MemberFactory) Director() *models.Member {
	m := f.Create()
	m.FullName = "Pat Director"
	m.FirstName = "Pat"
	m.LastName = "Director"
	m.Role = models.MemberRoleDirector
	m.VoicePart = nil
	return m
}

// SongFactory provides methods to create test Song data
type SongFactory struct{}

// NewSongFactory creates a new SongFactory
func NewSongFactory() *SongFactory {
	return &SongFactory{}
}

// Create creates a test Song with default values
func (f *SongFactory) Create() *models.Song {
	id := uuid.New()
	return &models.Song{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Song " + id.String()[:8],
		Composer:    "Test Composer",
		Author:      "Test Author",
		DefaultKey:  "C",
		DurationSec: 240,
	}
}

// WithTitle sets a custom title for the song
func (f *SongFactory) WithTitle(title string) *models.Song {
	s := f.Create()
	s.Title = title
	return s
}

// LeadershipShiftFactory provides methods to create test LeadershipShift data
type LeadershipShiftFactory struct{}

// NewLeadershipShiftFactory creates a new LeadershipShiftFactory
func NewLeadershipShiftFactory() *LeadershipShiftFactory {
	return &LeadershipShiftFactory{}
}

// Create creates a test LeadershipShift with default values. The window spans
// last week through next week so the shift is active by dates, and the stored
// status agrees.
func (f *LeadershipShiftFactory) Create(leaderID uuid.UUID) *models.LeadershipShift {
	now := time.Now()
	return &models.LeadershipShift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LeaderID:     leaderID,
		StartDate:    now.AddDate(0, 0, -7),
		EndDate:      now.AddDate(0, 0, 7),
		StoredStatus: models.ShiftStatusActive,
	}
}

// WithStatus sets a custom stored status for the shift
func (f *LeadershipShiftFactory) WithStatus(leaderID uuid.UUID, status models.ShiftStatus) *models.LeadershipShift {
	s := f.Create(leaderID)
	s.StoredStatus = status
	return s
}

// WithDates sets a custom date window for the shift
func (f *LeadershipShiftFactory) WithDates(leaderID uuid.UUID, start, end time.Time) *models.LeadershipShift {
	s := f.Create(leaderID)
	s.StartDate = start
	s.EndDate = end
	return s
}

// Upcoming creates a shift starting next month with the upcoming stored status
func (f *LeadershipShiftFactory) Upcoming(leaderID uuid.UUID) *models.LeadershipShift {
	now := time.Now()
	s := f.WithDates(leaderID, now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))
	s.StoredStatus = models.ShiftStatusUpcoming
	return s
}

// PerformanceFactory provides methods to create test Performance data
type PerformanceFactory struct{}

// NewPerformanceFactory creates a new PerformanceFactory
func NewPerformanceFactory() *PerformanceFactory {
	return &PerformanceFactory{}
}

// Create creates a test Performance with default values
func (f *PerformanceFactory) Create() *models.Performance {
	now := time.Now()
	return &models.Performance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    "Test Performance",
		Date:     now.AddDate(0, 0, 14),
		Type:     models.PerformanceTypeSundayService,
		Status:   models.PerformanceStatusUpcoming,
		Location: "Main Hall",
	}
}

// WithStatus sets a custom status for the performance
func (f *PerformanceFactory) WithStatus(status models.PerformanceStatus) *models.Performance {
	p := f.Create()
	p.Status = status
	return p
}

// WithDate sets a custom date for the performance
func (f *PerformanceFactory) WithDate(date time.Time) *models.Performance {
	p := f.Create()
	p.Date = date
	return p
}

// Song creates a PerformanceSong entry attached to the given performance
func (f *PerformanceFactory) Song(performanceID, songID uuid.UUID, order int) *models.PerformanceSong {
	return &models.PerformanceSong{
		PerformanceID: performanceID,
		SongID:        songID,
		Order:         order,
		MusicalKey:    "G",
		TimeAllocated: 300,
	}
}

// RehearsalFactory provides methods to create test Rehearsal data
type RehearsalFactory struct{}

// NewRehearsalFactory creates a new RehearsalFactory
func NewRehearsalFactory() *RehearsalFactory {
	return &RehearsalFactory{}
}

// Create creates a test Rehearsal with default values
func (f *RehearsalFactory) Create(performanceID uuid.UUID) *models.Rehearsal {
	now := time.Now()
	return &models.Rehearsal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         "Test Rehearsal",
		Type:          models.RehearsalTypeFull,
		Status:        models.RehearsalStatusScheduled,
		PerformanceID: performanceID,
		Date:          now.AddDate(0, 0, 7),
		Location:      "Rehearsal Room",
	}
}

// Completed creates a rehearsal in the completed state, ready for promotion
func (f *RehearsalFactory) Completed(performanceID uuid.UUID) *models.Rehearsal {
	r := f.Create(performanceID)
	r.Status = models.RehearsalStatusCompleted
	return r
}

// Song creates a RehearsalSong entry attached to the given rehearsal
func (f *RehearsalFactory) Song(rehearsalID, songID uuid.UUID, order int) *models.RehearsalSong {
	return &models.RehearsalSong{
		RehearsalID:   rehearsalID,
		SongID:        songID,
		Order:         order,
		MusicalKey:    "D",
		TimeAllocated: 300,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Member          *MemberFactory
	Song            *SongFactory
	LeadershipShift *LeadershipShiftFactory
	Performance     *PerformanceFactory
	Rehearsal       *RehearsalFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:          NewMemberFactory(),
		Song:            NewSongFactory(),
		LeadershipShift: NewLeadershipShiftFactory(),
		Performance:     NewPerformanceFactory(),
		Rehearsal:       NewRehearsalFactory(),
	}
}
