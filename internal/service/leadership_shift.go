package service

import (
	"errors"
	"fmt"
	"time"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadershipShiftService handles business logic for leadership shifts
type LeadershipShiftService struct {
	repo       *repository.LeadershipShiftRepository
	memberRepo *repository.MemberRepository
	validator  *validator.Validate
	now        func() time.Time
}

// NewLeadershipShiftService creates a new leadership shift service
func NewLeadershipShiftService(repo *repository.LeadershipShiftRepository, memberRepo *repository.MemberRepository, validator *validator.Validate) *LeadershipShiftService {
	return &LeadershipShiftService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateLeadershipShiftRequest represents the request to create a leadership shift
type CreateLeadershipShiftRequest struct {
	LeaderID     uuid.UUID           `json:"leader_id" validate:"required"`
	StartDate    time.Time           `json:"start_date" validate:"required"`
	EndDate      time.Time           `json:"end_date" validate:"required"`
	StoredStatus *models.ShiftStatus `json:"stored_status,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// UpdateLeadershipShiftRequest represents the request to update a leadership shift
type UpdateLeadershipShiftRequest struct {
	LeaderID        *uuid.UUID          `json:"leader_id,omitempty"`
	StartDate       *time.Time          `json:"start_date,omitempty"`
	EndDate         *time.Time          `json:"end_date,omitempty"`
	StoredStatus    *models.ShiftStatus `json:"stored_status,omitempty"`
	EventsScheduled *int                `json:"events_scheduled,omitempty"`
	EventsCompleted *int                `json:"events_completed,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
}

// LeadershipShiftResponse represents the response for shift operations. It
// always carries both the administrator-entered status and the date-derived
// one so callers never have to guess which is which.
type LeadershipShiftResponse struct {
	ID              uuid.UUID          `json:"id"`
	LeaderID        uuid.UUID          `json:"leader_id"`
	LeaderName      string             `json:"leader_name,omitempty"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	StoredStatus    models.ShiftStatus `json:"stored_status"`
	EffectiveStatus models.ShiftStatus `json:"effective_status"`
	EventsScheduled int                `json:"events_scheduled"`
	EventsCompleted int                `json:"events_completed"`
	Notes           string             `json:"notes"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// LeadershipShiftListResponse represents a paginated list of shifts
type LeadershipShiftListResponse struct {
	Shifts   []LeadershipShiftResponse `json:"shifts"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// ShiftValidityResponse surfaces the validity monitor's classification
type ShiftValidityResponse struct {
	IsValid      bool                     `json:"is_valid"`
	HasConflict  bool                     `json:"has_conflict"`
	HasNoActive  bool                     `json:"has_no_active"`
	Count        int                      `json:"count"`
	CurrentShift *LeadershipShiftResponse `json:"current_shift,omitempty"`
}

// validateShiftDates is the single date-range check every entry point uses
func validateShiftDates(startDate, endDate time.Time) error {
	if !startDate.Before(endDate) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// Create creates a new leadership shift
func (s *LeadershipShiftService) Create(req *CreateLeadershipShiftRequest) (*LeadershipShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := validateShiftDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	storedStatus := models.ShiftStatusUpcoming
	if req.StoredStatus != nil {
		if !req.StoredStatus.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		storedStatus = *req.StoredStatus
	}

	// Validate leader exists
	leader, err := s.memberRepo.GetByID(req.LeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to verify leader: %w", err)
	}

	overlap, err := s.repo.CheckOverlap(req.StartDate, req.EndDate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check shift overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrLeadershipShiftExists
	}

	shift := &models.LeadershipShift{
		LeaderID:     req.LeaderID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StoredStatus: storedStatus,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create leadership shift: %w", err)
	}

	shift.Leader = *leader
	return s.toResponse(shift), nil
}

// GetByID retrieves a leadership shift by ID
func (s *LeadershipShiftService) GetByID(id uuid.UUID) (*LeadershipShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadershipShiftNotFound
		}
		return nil, fmt.Errorf("failed to get leadership shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// List retrieves leadership shifts with pagination
func (s *LeadershipShiftService) List(page, pageSize int) (*LeadershipShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leadership shifts: %w", err)
	}

	responses := make([]LeadershipShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &LeadershipShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetValidity fetches the full shift list and runs the validity monitor on it
func (s *LeadershipShiftService) GetValidity() (ShiftValidity, error) {
	shifts, _, err := s.repo.GetAll(1000, 0)
	if err != nil {
		return ShiftValidity{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	return EvaluateShiftValidity(shifts), nil
}

// GetCurrent returns the shift the stored data marks active. Not found is a
// legitimate outcome the handler maps to 404.
func (s *LeadershipShiftService) GetCurrent() (*LeadershipShiftResponse, error) {
	validity, err := s.GetValidity()
	if err != nil {
		return nil, err
	}
	if validity.CurrentShift == nil {
		return nil, apperrors.ErrActiveShiftNotFound
	}
	return s.toResponse(validity.CurrentShift), nil
}

// GetUpcoming retrieves shifts starting in the future, soonest first. Used as
// the fallback source for the next shift when none is active.
func (s *LeadershipShiftService) GetUpcoming(page, pageSize int) (*LeadershipShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.GetUpcoming(s.now(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming shifts: %w", err)
	}

	responses := make([]LeadershipShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &LeadershipShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a leadership shift
func (s *LeadershipShiftService) Update(id uuid.UUID, req *UpdateLeadershipShiftRequest) (*LeadershipShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadershipShiftNotFound
		}
		return nil, fmt.Errorf("failed to get leadership shift: %w", err)
	}

	if req.LeaderID != nil {
		if _, err := s.memberRepo.GetByID(*req.LeaderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLeaderNotFound
			}
			return nil, fmt.Errorf("failed to verify leader: %w", err)
		}
		shift.LeaderID = *req.LeaderID
	}
	if req.StartDate != nil {
		shift.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		shift.EndDate = *req.EndDate
	}
	if req.StoredStatus != nil {
		if !req.StoredStatus.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		shift.StoredStatus = *req.StoredStatus
	}
	if req.EventsScheduled != nil {
		shift.EventsScheduled = *req.EventsScheduled
	}
	if req.EventsCompleted != nil {
		shift.EventsCompleted = *req.EventsCompleted
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if err := validateShiftDates(shift.StartDate, shift.EndDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update leadership shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a leadership shift. Performances reference leaders rather
// than shift IDs, so deletion does not cascade into them.
func (s *LeadershipShiftService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadershipShiftNotFound
		}
		return fmt.Errorf("failed to get leadership shift: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete leadership shift: %w", err)
	}

	return nil
}

// ToValidityResponse converts a validity classification for the API
func (s *LeadershipShiftService) ToValidityResponse(validity ShiftValidity) *ShiftValidityResponse {
	resp := &ShiftValidityResponse{
		IsValid:     validity.IsValid,
		HasConflict: validity.HasConflict,
		HasNoActive: validity.HasNoActive,
		Count:       validity.Count,
	}
	if validity.CurrentShift != nil {
		resp.CurrentShift = s.toResponse(validity.CurrentShift)
	}
	return resp
}

// toResponse converts a shift model to a response, computing the effective
// status via the date-authoritative resolver
func (s *LeadershipShiftService) toResponse(shift *models.LeadershipShift) *LeadershipShiftResponse {
	response := &LeadershipShiftResponse{
		ID:              shift.ID,
		LeaderID:        shift.LeaderID,
		StartDate:       shift.StartDate.Format("2006-01-02"),
		EndDate:         shift.EndDate.Format("2006-01-02"),
		StoredStatus:    shift.StoredStatus,
		EffectiveStatus: ResolveShiftStatus(shift, s.now()),
		EventsScheduled: shift.EventsScheduled,
		EventsCompleted: shift.EventsCompleted,
		Notes:           shift.Notes,
		CreatedAt:       shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       shift.UpdatedAt.Format(time.RFC3339),
	}
	if shift.Leader.ID != uuid.Nil {
		response.LeaderName = shift.Leader.FullName
	}
	return response
}
