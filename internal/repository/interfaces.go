package repository

import (
	"time"

	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetAll(limit, offset int) ([]models.Member, int64, error)
	GetByVoicePart(part models.VoicePart, limit, offset int) ([]models.Member, int64, error)
	GetActive(limit, offset int) ([]models.Member, int64, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// SongRepositoryInterface defines the interface for song repository operations
type SongRepositoryInterface interface {
	Create(song *models.Song) error
	GetByID(id uuid.UUID) (*models.Song, error)
	GetAll(limit, offset int) ([]models.Song, int64, error)
	Search(query string, limit, offset int) ([]models.Song, int64, error)
	GetByTitleAndComposer(title, composer string) (*models.Song, error)
	Update(song *models.Song) error
	Delete(id uuid.UUID) error
}

// LeadershipShiftRepositoryInterface defines the interface for shift repository operations
type LeadershipShiftRepositoryInterface interface {
	Create(shift *models.LeadershipShift) error
	GetByID(id uuid.UUID) (*models.LeadershipShift, error)
	GetAll(limit, offset int) ([]models.LeadershipShift, int64, error)
	GetByLeaderID(leaderID uuid.UUID, limit, offset int) ([]models.LeadershipShift, int64, error)
	GetByStoredStatus(status models.ShiftStatus, limit, offset int) ([]models.LeadershipShift, int64, error)
	GetCurrent(now time.Time) ([]models.LeadershipShift, error)
	GetUpcoming(now time.Time, limit, offset int) ([]models.LeadershipShift, int64, error)
	CheckOverlap(startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error)
	Update(shift *models.LeadershipShift) error
	Delete(id uuid.UUID) error
}

// PerformanceRepositoryInterface defines the interface for performance repository operations
type PerformanceRepositoryInterface interface {
	Create(performance *models.Performance) error
	GetByID(id uuid.UUID) (*models.Performance, error)
	GetWithSongs(id uuid.UUID) (*models.Performance, error)
	GetAll(limit, offset int) ([]models.Performance, int64, error)
	GetByStatus(status models.PerformanceStatus, limit, offset int) ([]models.Performance, int64, error)
	GetByDateRange(from, to time.Time, limit, offset int) ([]models.Performance, int64, error)
	ExistsOnDate(date time.Time, excludeID *uuid.UUID) (bool, error)
	Update(performance *models.Performance) error
	ReplaceSongList(performanceID uuid.UUID, songs []models.PerformanceSong) error
	Delete(id uuid.UUID) error
}

// RehearsalRepositoryInterface defines the interface for rehearsal repository operations
type RehearsalRepositoryInterface interface {
	Create(rehearsal *models.Rehearsal) error
	GetByID(id uuid.UUID) (*models.Rehearsal, error)
	GetWithSongs(id uuid.UUID) (*models.Rehearsal, error)
	GetAll(limit, offset int) ([]models.Rehearsal, int64, error)
	GetByPerformanceID(performanceID uuid.UUID, limit, offset int) ([]models.Rehearsal, int64, error)
	GetPromotable(limit, offset int) ([]models.Rehearsal, int64, error)
	MarkPromoted(id uuid.UUID) error
	Update(rehearsal *models.Rehearsal) error
	ReplaceSongList(rehearsalID uuid.UUID, songs []models.RehearsalSong) error
	Delete(id uuid.UUID) error
}
