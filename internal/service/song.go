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

// SongService handles business logic for the song catalog
type SongService struct {
	repo      *repository.SongRepository
	validator *validator.Validate
}

// NewSongService creates a new song service
func NewSongService(repo *repository.SongRepository, validator *validator.Validate) *SongService {
	return &SongService{repo: repo, validator: validator}
}

// CreateSongRequest represents the request to create a song
type CreateSongRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Composer    string `json:"composer,omitempty" validate:"max=200"`
	Author      string `json:"author,omitempty" validate:"max=200"`
	DefaultKey  string `json:"default_key,omitempty" validate:"max=10"`
	DurationSec int    `json:"duration_sec,omitempty" validate:"gte=0"`
	CCLINumber  string `json:"ccli_number,omitempty" validate:"max=20"`
	Tags        string `json:"tags,omitempty" validate:"max=500"`
}

// UpdateSongRequest represents the request to update a song
type UpdateSongRequest struct {
	Title       *string `json:"title,omitempty"`
	Composer    *string `json:"composer,omitempty"`
	Author      *string `json:"author,omitempty"`
	DefaultKey  *string `json:"default_key,omitempty"`
	DurationSec *int    `json:"duration_sec,omitempty"`
	CCLINumber  *string `json:"ccli_number,omitempty"`
	Tags        *string `json:"tags,omitempty"`
}

// SongResponse represents the response for song operations
type SongResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Composer    string    `json:"composer,omitempty"`
	Author      string    `json:"author,omitempty"`
	DefaultKey  string    `json:"default_key,omitempty"`
	DurationSec int       `json:"duration_sec,omitempty"`
	CCLINumber  string    `json:"ccli_number,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// SongListResponse represents a paginated list of songs
type SongListResponse struct {
	Songs    []SongResponse `json:"songs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new song in the catalog
func (s *SongService) Create(req *CreateSongRequest) (*SongResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByTitleAndComposer(req.Title, req.Composer); err == nil {
		return nil, apperrors.ErrSongExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check song: %w", err)
	}

	song := &models.Song{
		Title:       req.Title,
		Composer:    req.Composer,
		Author:      req.Author,
		DefaultKey:  req.DefaultKey,
		DurationSec: req.DurationSec,
		CCLINumber:  req.CCLINumber,
		Tags:        req.Tags,
	}

	if err := s.repo.Create(song); err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}

	return s.toResponse(song), nil
}

// GetByID retrieves a song by ID
func (s *SongService) GetByID(id uuid.UUID) (*SongResponse, error) {
	song, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	return s.toResponse(song), nil
}

// List retrieves songs, optionally filtered by a search query
func (s *SongService) List(query string, page, pageSize int) (*SongListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var songs []models.Song
	var total int64
	var err error
	if query != "" {
		songs, total, err = s.repo.Search(query, pageSize, offset)
	} else {
		songs, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}

	responses := make([]SongResponse, len(songs))
	for i, song := range songs {
		responses[i] = *s.toResponse(&song)
	}

	return &SongListResponse{
		Songs:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a song
func (s *SongService) Update(id uuid.UUID, req *UpdateSongRequest) (*SongResponse, error) {
	song, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.Composer != nil {
		song.Composer = *req.Composer
	}
	if req.Author != nil {
		song.Author = *req.Author
	}
	if req.DefaultKey != nil {
		song.DefaultKey = *req.DefaultKey
	}
	if req.DurationSec != nil {
		song.DurationSec = *req.DurationSec
	}
	if req.CCLINumber != nil {
		song.CCLINumber = *req.CCLINumber
	}
	if req.Tags != nil {
		song.Tags = *req.Tags
	}

	if err := s.repo.Update(song); err != nil {
		return nil, fmt.Errorf("failed to update song: %w", err)
	}

	return s.toResponse(song), nil
}

// Delete deletes a song from the catalog
func (s *SongService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSongNotFound
		}
		return fmt.Errorf("failed to get song: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return nil
}

// toResponse converts a song model to a response
func (s *SongService) toResponse(song *models.Song) *SongResponse {
	return &SongResponse{
		ID:          song.ID,
		Title:       song.Title,
		Composer:    song.Composer,
		Author:      song.Author,
		DefaultKey:  song.DefaultKey,
		DurationSec: song.DurationSec,
		CCLINumber:  song.CCLINumber,
		Tags:        song.Tags,
		CreatedAt:   song.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   song.UpdatedAt.Format(time.RFC3339),
	}
}
