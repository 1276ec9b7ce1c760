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

// RehearsalService handles business logic for rehearsals
type RehearsalService struct {
	repo            *repository.RehearsalRepository
	performanceRepo *repository.PerformanceRepository
	validator       *validator.Validate
}

// NewRehearsalService creates a new rehearsal service
func NewRehearsalService(repo *repository.RehearsalRepository, performanceRepo *repository.PerformanceRepository, validator *validator.Validate) *RehearsalService {
	return &RehearsalService{
		repo:            repo,
		performanceRepo: performanceRepo,
		validator:       validator,
	}
}

// RehearsalSongInput is one song entry of a create/update request
type RehearsalSongInput struct {
	SongID        uuid.UUID                  `json:"song_id" validate:"required"`
	Order         int                        `json:"order"`
	MusicalKey    string                     `json:"musical_key,omitempty"`
	TimeAllocated int                        `json:"time_allocated,omitempty"`
	LeadSingerID  *uuid.UUID                 `json:"lead_singer_id,omitempty"`
	FocusPoints   string                     `json:"focus_points,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	VoiceParts    []VoicePartAssignmentInput `json:"voice_parts,omitempty"`
	Musicians     []MusicianAssignmentInput  `json:"musicians,omitempty"`
}

// VoicePartAssignmentInput is one voice part entry of a rehearsal song
type VoicePartAssignmentInput struct {
	VoicePart models.VoicePart `json:"voice_part" validate:"required"`
	MemberID  uuid.UUID        `json:"member_id" validate:"required"`
	Order     int              `json:"order"`
	Notes     string           `json:"notes,omitempty"`
}

// MusicianAssignmentInput is one musician entry of a rehearsal song
type MusicianAssignmentInput struct {
	Instrument string    `json:"instrument" validate:"required"`
	MemberID   uuid.UUID `json:"member_id" validate:"required"`
	Order      int       `json:"order"`
	Notes      string    `json:"notes,omitempty"`
}

// CreateRehearsalRequest represents the request to create a rehearsal
type CreateRehearsalRequest struct {
	Title         string               `json:"title" validate:"required,max=200"`
	Type          models.RehearsalType `json:"type" validate:"required"`
	PerformanceID uuid.UUID            `json:"performance_id" validate:"required"`
	Date          time.Time            `json:"date,omitempty"`
	Location      string               `json:"location,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Songs         []RehearsalSongInput `json:"songs,omitempty"`
}

// UpdateRehearsalRequest represents the request to update a rehearsal
type UpdateRehearsalRequest struct {
	Title    *string                 `json:"title,omitempty"`
	Type     *models.RehearsalType   `json:"type,omitempty"`
	Status   *models.RehearsalStatus `json:"status,omitempty"`
	Date     *time.Time              `json:"date,omitempty"`
	Location *string                 `json:"location,omitempty"`
	Notes    *string                 `json:"notes,omitempty"`
	Songs    []RehearsalSongInput    `json:"songs,omitempty"`
}

// RehearsalResponse represents the response for rehearsal operations
type RehearsalResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Type          models.RehearsalType   `json:"type"`
	Status        models.RehearsalStatus `json:"status"`
	PerformanceID uuid.UUID              `json:"performance_id"`
	IsPromoted    bool                   `json:"is_promoted"`
	Date          string                 `json:"date"`
	Location      string                 `json:"location"`
	Notes         string                 `json:"notes"`
	Songs         []models.RehearsalSong `json:"songs,omitempty"`
	CreatedAt     string                 `json:"created_at"`
	UpdatedAt     string                 `json:"updated_at"`
}

// RehearsalListResponse represents a paginated list of rehearsals
type RehearsalListResponse struct {
	Rehearsals []RehearsalResponse `json:"rehearsals"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new rehearsal attached to a performance
func (s *RehearsalService) Create(req *CreateRehearsalRequest) (*RehearsalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	// Validate target performance exists
	if _, err := s.performanceRepo.GetByID(req.PerformanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to verify performance: %w", err)
	}

	rehearsal := &models.Rehearsal{
		Title:         req.Title,
		Type:          req.Type,
		Status:        models.RehearsalStatusScheduled,
		PerformanceID: req.PerformanceID,
		Date:          req.Date,
		Location:      req.Location,
		Notes:         req.Notes,
		Songs:         songsFromInputs(req.Songs),
	}

	if err := s.repo.Create(rehearsal); err != nil {
		return nil, fmt.Errorf("failed to create rehearsal: %w", err)
	}

	return s.toResponse(rehearsal), nil
}

// GetByID retrieves a rehearsal with its ordered song list
func (s *RehearsalService) GetByID(id uuid.UUID) (*RehearsalResponse, error) {
	rehearsal, err := s.repo.GetWithSongs(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}

	return s.toResponse(rehearsal), nil
}

// List retrieves rehearsals with pagination
func (s *RehearsalService) List(page, pageSize int) (*RehearsalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	rehearsals, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rehearsals: %w", err)
	}

	return s.toListResponse(rehearsals, total, page, pageSize), nil
}

// ListByPerformance retrieves the rehearsals held for one performance
func (s *RehearsalService) ListByPerformance(performanceID uuid.UUID, page, pageSize int) (*RehearsalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	rehearsals, total, err := s.repo.GetByPerformanceID(performanceID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rehearsals: %w", err)
	}

	return s.toListResponse(rehearsals, total, page, pageSize), nil
}

// Update updates a rehearsal. Replacing the song list is allowed up until the
// content has been promoted.
func (s *RehearsalService) Update(id uuid.UUID, req *UpdateRehearsalRequest) (*RehearsalResponse, error) {
	rehearsal, err := s.repo.GetWithSongs(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}

	if req.Title != nil {
		rehearsal.Title = *req.Title
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		rehearsal.Type = *req.Type
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		rehearsal.Status = *req.Status
	}
	if req.Date != nil {
		rehearsal.Date = *req.Date
	}
	if req.Location != nil {
		rehearsal.Location = *req.Location
	}
	if req.Notes != nil {
		rehearsal.Notes = *req.Notes
	}
	if req.Songs != nil && rehearsal.IsPromoted {
		return nil, apperrors.ErrRehearsalAlreadyPromoted
	}

	if err := s.repo.Update(rehearsal); err != nil {
		return nil, fmt.Errorf("failed to update rehearsal: %w", err)
	}

	if req.Songs != nil {
		if err := s.repo.ReplaceSongList(id, songsFromInputs(req.Songs)); err != nil {
			return nil, fmt.Errorf("failed to replace rehearsal songs: %w", err)
		}
	}

	updated, err := s.repo.GetWithSongs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload rehearsal: %w", err)
	}

	return s.toResponse(updated), nil
}

// Complete marks a rehearsal as completed, making it eligible for promotion
func (s *RehearsalService) Complete(id uuid.UUID) (*RehearsalResponse, error) {
	status := models.RehearsalStatusCompleted
	return s.Update(id, &UpdateRehearsalRequest{Status: &status})
}

// Delete deletes a rehearsal and its owned song list
func (s *RehearsalService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRehearsalNotFound
		}
		return fmt.Errorf("failed to get rehearsal: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rehearsal: %w", err)
	}

	return nil
}

// songsFromInputs builds the owned song rows from request inputs. Missing
// orders fall back to input position.
func songsFromInputs(inputs []RehearsalSongInput) []models.RehearsalSong {
	songs := make([]models.RehearsalSong, 0, len(inputs))
	for i, in := range inputs {
		order := in.Order
		if order == 0 {
			order = i + 1
		}
		song := models.RehearsalSong{
			SongID:        in.SongID,
			Order:         order,
			MusicalKey:    in.MusicalKey,
			TimeAllocated: in.TimeAllocated,
			LeadSingerID:  in.LeadSingerID,
			FocusPoints:   in.FocusPoints,
			Notes:         in.Notes,
		}
		for _, vp := range in.VoiceParts {
			song.VoiceParts = append(song.VoiceParts, models.RehearsalVoicePartAssignment{
				VoicePart: vp.VoicePart,
				MemberID:  vp.MemberID,
				Order:     vp.Order,
				Notes:     vp.Notes,
			})
		}
		for _, mu := range in.Musicians {
			song.Musicians = append(song.Musicians, models.RehearsalMusicianAssignment{
				Instrument: mu.Instrument,
				MemberID:   mu.MemberID,
				Order:      mu.Order,
				Notes:      mu.Notes,
			})
		}
		songs = append(songs, song)
	}
	return songs
}

func (s *RehearsalService) toListResponse(rehearsals []models.Rehearsal, total int64, page, pageSize int) *RehearsalListResponse {
	responses := make([]RehearsalResponse, len(rehearsals))
	for i, rehearsal := range rehearsals {
		responses[i] = *s.toResponse(&rehearsal)
	}
	return &RehearsalListResponse{
		Rehearsals: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
}

// toResponse converts a rehearsal model to a response
func (s *RehearsalService) toResponse(rehearsal *models.Rehearsal) *RehearsalResponse {
	response := &RehearsalResponse{
		ID:            rehearsal.ID,
		Title:         rehearsal.Title,
		Type:          rehearsal.Type,
		Status:        rehearsal.Status,
		PerformanceID: rehearsal.PerformanceID,
		IsPromoted:    rehearsal.IsPromoted,
		Location:      rehearsal.Location,
		Notes:         rehearsal.Notes,
		Songs:         rehearsal.Songs,
		CreatedAt:     rehearsal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rehearsal.UpdatedAt.Format(time.RFC3339),
	}
	if !rehearsal.Date.IsZero() {
		response.Date = rehearsal.Date.Format("2006-01-02")
	}
	return response
}
