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

// MemberService handles business logic for choir members
type MemberService struct {
	repo      *repository.MemberRepository
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo *repository.MemberRepository, validator *validator.Validate) *MemberService {
	return &MemberService{repo: repo, validator: validator}
}

// CreateMemberRequest represents the request to create a member
type CreateMemberRequest struct {
	FirstName   string            `json:"first_name" validate:"required,max=100"`
	LastName    string            `json:"last_name" validate:"required,max=100"`
	Email       string            `json:"email" validate:"required,email,max=255"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	Role        models.MemberRole `json:"role" validate:"required"`
	VoicePart   *models.VoicePart `json:"voice_part,omitempty"`
	Instrument  string            `json:"instrument,omitempty"`
	JoinedYear  int               `json:"joined_year,omitempty"`
}

// UpdateMemberRequest represents the request to update a member
type UpdateMemberRequest struct {
	FirstName   *string            `json:"first_name,omitempty"`
	LastName    *string            `json:"last_name,omitempty"`
	Email       *string            `json:"email,omitempty"`
	PhoneNumber *string            `json:"phone_number,omitempty"`
	Role        *models.MemberRole `json:"role,omitempty"`
	VoicePart   *models.VoicePart  `json:"voice_part,omitempty"`
	Instrument  *string            `json:"instrument,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID          uuid.UUID         `json:"id"`
	FullName    string            `json:"full_name"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number"`
	Role        models.MemberRole `json:"role"`
	VoicePart   *models.VoicePart `json:"voice_part,omitempty"`
	Instrument  string            `json:"instrument,omitempty"`
	IsActive    bool              `json:"is_active"`
	JoinedYear  int               `json:"joined_year,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new member
func (s *MemberService) Create(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.VoicePart != nil && !req.VoicePart.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check member email: %w", err)
	}

	member := &models.Member{
		FullName:    req.FirstName + " " + req.LastName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		VoicePart:   req.VoicePart,
		Instrument:  req.Instrument,
		IsActive:    true,
		JoinedYear:  req.JoinedYear,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetByID retrieves a member by ID
func (s *MemberService) GetByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return s.toResponse(member), nil
}

// List retrieves members, optionally filtered by voice part or active flag
func (s *MemberService) List(voicePart *models.VoicePart, activeOnly bool, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var members []models.Member
	var total int64
	var err error
	switch {
	case voicePart != nil:
		if !voicePart.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		members, total, err = s.repo.GetByVoicePart(*voicePart, pageSize, offset)
	case activeOnly:
		members, total, err = s.repo.GetActive(pageSize, offset)
	default:
		members, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.toResponse(&member)
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a member
func (s *MemberService) Update(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		member.FullName = member.FirstName + " " + member.LastName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		member.Role = *req.Role
	}
	if req.VoicePart != nil {
		if !req.VoicePart.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		member.VoicePart = req.VoicePart
	}
	if req.Instrument != nil {
		member.Instrument = *req.Instrument
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.toResponse(member), nil
}

// Delete deletes a member
func (s *MemberService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// toResponse converts a member model to a response
func (s *MemberService) toResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:          member.ID,
		FullName:    member.FullName,
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
		Role:        member.Role,
		VoicePart:   member.VoicePart,
		Instrument:  member.Instrument,
		IsActive:    member.IsActive,
		JoinedYear:  member.JoinedYear,
		CreatedAt:   member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   member.UpdatedAt.Format(time.RFC3339),
	}
}
