package service

import (
	"time"

	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	Create(req *CreateMemberRequest) (*MemberResponse, error)
	GetByID(id uuid.UUID) (*MemberResponse, error)
	List(voicePart *models.VoicePart, activeOnly bool, page, pageSize int) (*MemberListResponse, error)
	Update(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	Delete(id uuid.UUID) error
}

// SongServiceInterface defines the interface for song service
type SongServiceInterface interface {
	Create(req *CreateSongRequest) (*SongResponse, error)
	GetByID(id uuid.UUID) (*SongResponse, error)
	List(query string, page, pageSize int) (*SongListResponse, error)
	Update(id uuid.UUID, req *UpdateSongRequest) (*SongResponse, error)
	Delete(id uuid.UUID) error
}

// LeadershipShiftServiceInterface defines the interface for leadership shift service
type LeadershipShiftServiceInterface interface {
	Create(req *CreateLeadershipShiftRequest) (*LeadershipShiftResponse, error)
	GetByID(id uuid.UUID) (*LeadershipShiftResponse, error)
	List(page, pageSize int) (*LeadershipShiftListResponse, error)
	GetValidity() (ShiftValidity, error)
	GetCurrent() (*LeadershipShiftResponse, error)
	GetUpcoming(page, pageSize int) (*LeadershipShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateLeadershipShiftRequest) (*LeadershipShiftResponse, error)
	Delete(id uuid.UUID) error
	ToValidityResponse(validity ShiftValidity) *ShiftValidityResponse
}

// PerformanceServiceInterface defines the interface for performance service
type PerformanceServiceInterface interface {
	Create(req *CreatePerformanceRequest) (*PerformanceResponse, error)
	GetByID(id uuid.UUID) (*PerformanceResponse, error)
	List(status *models.PerformanceStatus, page, pageSize int) (*PerformanceListResponse, error)
	ListByDateRange(from, to time.Time, page, pageSize int) (*PerformanceListResponse, error)
	Update(id uuid.UUID, req *UpdatePerformanceRequest) (*PerformanceResponse, error)
	Advance(id uuid.UUID, target models.PerformanceStatus) (*PerformanceResponse, error)
	ForceStatus(id uuid.UUID, target models.PerformanceStatus) (*PerformanceResponse, error)
	Delete(id uuid.UUID) error
}

// RehearsalServiceInterface defines the interface for rehearsal service
type RehearsalServiceInterface interface {
	Create(req *CreateRehearsalRequest) (*RehearsalResponse, error)
	GetByID(id uuid.UUID) (*RehearsalResponse, error)
	List(page, pageSize int) (*RehearsalListResponse, error)
	ListByPerformance(performanceID uuid.UUID, page, pageSize int) (*RehearsalListResponse, error)
	Update(id uuid.UUID, req *UpdateRehearsalRequest) (*RehearsalResponse, error)
	Complete(id uuid.UUID) (*RehearsalResponse, error)
	Delete(id uuid.UUID) error
}

// PromotionServiceInterface defines the interface for the rehearsal promotion service
type PromotionServiceInterface interface {
	PromoteOne(rehearsalID uuid.UUID) (*models.Performance, error)
	ReplaceOne(rehearsalID uuid.UUID) (*models.Performance, error)
	PromoteBulk(rehearsalIDs []uuid.UUID, mode MergeMode) (*BulkPromotionResult, error)
	GetPromotable(limit, offset int) ([]models.Rehearsal, int64, error)
}
