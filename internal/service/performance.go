package service

import (
	"errors"
	"fmt"
	"time"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/logger"
	"choir-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceService handles business logic for performances
type PerformanceService struct {
	repo         *repository.PerformanceRepository
	shiftService *LeadershipShiftService
	validator    *validator.Validate
	log          *logger.Logger
	now          func() time.Time
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(repo *repository.PerformanceRepository, shiftService *LeadershipShiftService, validator *validator.Validate) *PerformanceService {
	return &PerformanceService{
		repo:         repo,
		shiftService: shiftService,
		validator:    validator,
		log:          logger.New(),
		now:          time.Now,
	}
}

// CreatePerformanceRequest represents the request to create a performance
type CreatePerformanceRequest struct {
	Title            string                 `json:"title" validate:"required,max=200"`
	Date             time.Time              `json:"date" validate:"required"`
	Type             models.PerformanceType `json:"type" validate:"required"`
	Location         string                 `json:"location,omitempty"`
	ExpectedAudience int                    `json:"expected_audience,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
}

// UpdatePerformanceRequest represents the request to update a performance
type UpdatePerformanceRequest struct {
	Title            *string                 `json:"title,omitempty"`
	Date             *time.Time              `json:"date,omitempty"`
	Type             *models.PerformanceType `json:"type,omitempty"`
	Location         *string                 `json:"location,omitempty"`
	ExpectedAudience *int                    `json:"expected_audience,omitempty"`
	Notes            *string                 `json:"notes,omitempty"`
}

// PerformanceResponse represents the response for performance operations
type PerformanceResponse struct {
	ID               uuid.UUID                `json:"id"`
	Title            string                   `json:"title"`
	Date             string                   `json:"date"`
	Type             models.PerformanceType   `json:"type"`
	Status           models.PerformanceStatus `json:"status"`
	ShiftLeadID      *uuid.UUID               `json:"shift_lead_id,omitempty"`
	Location         string                   `json:"location"`
	ExpectedAudience int                      `json:"expected_audience"`
	Notes            string                   `json:"notes"`
	Songs            []models.PerformanceSong `json:"songs,omitempty"`
	Warning          string                   `json:"warning,omitempty"`
	CreatedAt        string                   `json:"created_at"`
	UpdatedAt        string                   `json:"updated_at"`
}

// PerformanceListResponse represents a paginated list of performances
type PerformanceListResponse struct {
	Performances []PerformanceResponse `json:"performances"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create creates a performance, gated on the current shift validity. The
// validity is computed from a freshly fetched shift snapshot and handed to
// the creation check explicitly; a conflicted snapshot produces a warning on
// the response rather than a refusal.
func (s *PerformanceService) Create(req *CreatePerformanceRequest) (*PerformanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	validity, err := s.shiftService.GetValidity()
	if err != nil {
		return nil, err
	}

	check := CheckPerformanceCreation(validity, s.now())
	if !check.Allowed {
		return nil, check.Reason
	}
	if check.Warning != "" {
		s.log.WithField("date", req.Date.Format("2006-01-02")).Warn(check.Warning)
	}

	exists, err := s.repo.ExistsOnDate(req.Date, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check performance date: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPerformanceExists
	}

	leaderID := validity.CurrentShift.LeaderID
	performance := &models.Performance{
		Title:            req.Title,
		Date:             req.Date,
		Type:             req.Type,
		Status:           models.PerformanceStatusUpcoming,
		ShiftLeadID:      &leaderID,
		Location:         req.Location,
		ExpectedAudience: req.ExpectedAudience,
		Notes:            req.Notes,
	}

	if err := s.repo.Create(performance); err != nil {
		return nil, fmt.Errorf("failed to create performance: %w", err)
	}

	resp := s.toResponse(performance)
	resp.Warning = check.Warning
	return resp, nil
}

// GetByID retrieves a performance with its ordered song list
func (s *PerformanceService) GetByID(id uuid.UUID) (*PerformanceResponse, error) {
	performance, err := s.repo.GetWithSongs(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	return s.toResponse(performance), nil
}

// List retrieves performances, optionally filtered by status
func (s *PerformanceService) List(status *models.PerformanceStatus, page, pageSize int) (*PerformanceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var performances []models.Performance
	var total int64
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		performances, total, err = s.repo.GetByStatus(*status, pageSize, offset)
	} else {
		performances, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}

	responses := make([]PerformanceResponse, len(performances))
	for i, performance := range performances {
		responses[i] = *s.toResponse(&performance)
	}

	return &PerformanceListResponse{
		Performances: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// ListByDateRange retrieves performances within a date range
func (s *PerformanceService) ListByDateRange(from, to time.Time, page, pageSize int) (*PerformanceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	performances, total, err := s.repo.GetByDateRange(from, to, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}

	responses := make([]PerformanceResponse, len(performances))
	for i, performance := range performances {
		responses[i] = *s.toResponse(&performance)
	}

	return &PerformanceListResponse{
		Performances: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update updates a performance's descriptive fields. Status moves only
// through Advance and ForceStatus; song content only through promotion.
func (s *PerformanceService) Update(id uuid.UUID, req *UpdatePerformanceRequest) (*PerformanceResponse, error) {
	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	if req.Date != nil && !req.Date.Equal(performance.Date) {
		exists, err := s.repo.ExistsOnDate(*req.Date, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check performance date: %w", err)
		}
		if exists {
			return nil, apperrors.ErrPerformanceExists
		}
		performance.Date = *req.Date
	}
	if req.Title != nil {
		performance.Title = *req.Title
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		performance.Type = *req.Type
	}
	if req.Location != nil {
		performance.Location = *req.Location
	}
	if req.ExpectedAudience != nil {
		performance.ExpectedAudience = *req.ExpectedAudience
	}
	if req.Notes != nil {
		performance.Notes = *req.Notes
	}

	if err := s.repo.Update(performance); err != nil {
		return nil, fmt.Errorf("failed to update performance: %w", err)
	}

	return s.toResponse(performance), nil
}

// Advance moves a performance to the given status through the guarded path:
// only the immediate successor is legal
func (s *PerformanceService) Advance(id uuid.UUID, target models.PerformanceStatus) (*PerformanceResponse, error) {
	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	if err := ValidateStatusTransition(performance.Status, target); err != nil {
		return nil, err
	}

	performance.Status = target
	if err := s.repo.Update(performance); err != nil {
		return nil, fmt.Errorf("failed to update performance status: %w", err)
	}

	return s.toResponse(performance), nil
}

// ForceStatus sets any valid status directly, bypassing transition
// validation. This is the administrative override, exposed as a capability
// distinct from the guarded advance.
func (s *PerformanceService) ForceStatus(id uuid.UUID, target models.PerformanceStatus) (*PerformanceResponse, error) {
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"performance_id": id,
		"from":           performance.Status,
		"to":             target,
	}).Warn("force-setting performance status")

	performance.Status = target
	if err := s.repo.Update(performance); err != nil {
		return nil, fmt.Errorf("failed to update performance status: %w", err)
	}

	return s.toResponse(performance), nil
}

// Delete deletes a performance and its owned song list
func (s *PerformanceService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPerformanceNotFound
		}
		return fmt.Errorf("failed to get performance: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete performance: %w", err)
	}

	return nil
}

// toResponse converts a performance model to a response
func (s *PerformanceService) toResponse(performance *models.Performance) *PerformanceResponse {
	return &PerformanceResponse{
		ID:               performance.ID,
		Title:            performance.Title,
		Date:             performance.Date.Format("2006-01-02"),
		Type:             performance.Type,
		Status:           performance.Status,
		ShiftLeadID:      performance.ShiftLeadID,
		Location:         performance.Location,
		ExpectedAudience: performance.ExpectedAudience,
		Notes:            performance.Notes,
		Songs:            performance.Songs,
		CreatedAt:        performance.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        performance.UpdatedAt.Format(time.RFC3339),
	}
}
