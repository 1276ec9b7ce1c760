package repository

import (
	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongRepository handles database operations for the song library
type SongRepository struct {
	db *gorm.DB
}

// NewSongRepository creates a new song repository
func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create creates a new song
func (r *SongRepository) Create(song *models.Song) error {
	return r.db.Create(song).Error
}

// GetByID retrieves a song by ID
func (r *SongRepository) GetByID(id uuid.UUID) (*models.Song, error) {
	var song models.Song
	err := r.db.First(&song, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// GetAll retrieves songs with pagination
func (r *SongRepository) GetAll(limit, offset int) ([]models.Song, int64, error) {
	var songs []models.Song
	var total int64

	if err := r.db.Model(&models.Song{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title ASC").Limit(limit).Offset(offset).Find(&songs).Error
	return songs, total, err
}

// Search retrieves songs matching a title or composer fragment
func (r *SongRepository) Search(query string, limit, offset int) ([]models.Song, int64, error) {
	var songs []models.Song
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Song{}).Where("title ILIKE ? OR composer ILIKE ?", pattern, pattern)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("title ASC").Limit(limit).Offset(offset).Find(&songs).Error
	return songs, total, err
}

// GetByTitleAndComposer retrieves a song by exact title and composer
func (r *SongRepository) GetByTitleAndComposer(title, composer string) (*models.Song, error) {
	var song models.Song
	err := r.db.First(&song, "title = ? AND composer = ?", title, composer).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// Update updates a song
func (r *SongRepository) Update(song *models.Song) error {
	return r.db.Save(song).Error
}

// Delete deletes a song
func (r *SongRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Song{}, "id = ?", id).Error
}
