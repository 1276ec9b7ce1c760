package repository

import (
	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RehearsalRepository handles database operations for rehearsals
type RehearsalRepository struct {
	db *gorm.DB
}

// NewRehearsalRepository creates a new rehearsal repository
func NewRehearsalRepository(db *gorm.DB) *RehearsalRepository {
	return &RehearsalRepository{db: db}
}

// Create creates a new rehearsal
func (r *RehearsalRepository) Create(rehearsal *models.Rehearsal) error {
	return r.db.Create(rehearsal).Error
}

// GetByID retrieves a rehearsal by ID without its song list
func (r *RehearsalRepository) GetByID(id uuid.UUID) (*models.Rehearsal, error) {
	var rehearsal models.Rehearsal
	err := r.db.First(&rehearsal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rehearsal, nil
}

// GetWithSongs retrieves a rehearsal with its ordered song list and
// nested assignments
func (r *RehearsalRepository) GetWithSongs(id uuid.UUID) (*models.Rehearsal, error) {
	var rehearsal models.Rehearsal
	err := r.db.
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("rehearsal_songs.sort_order ASC")
		}).
		Preload("Songs.Song").
		Preload("Songs.VoiceParts", func(db *gorm.DB) *gorm.DB {
			return db.Order("rehearsal_voice_part_assignments.sort_order ASC")
		}).
		Preload("Songs.Musicians", func(db *gorm.DB) *gorm.DB {
			return db.Order("rehearsal_musician_assignments.sort_order ASC")
		}).
		First(&rehearsal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rehearsal, nil
}

// GetAll retrieves rehearsals with pagination, newest first
func (r *RehearsalRepository) GetAll(limit, offset int) ([]models.Rehearsal, int64, error) {
	var rehearsals []models.Rehearsal
	var total int64

	if err := r.db.Model(&models.Rehearsal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date DESC").Limit(limit).Offset(offset).Find(&rehearsals).Error
	return rehearsals, total, err
}

// GetByPerformanceID retrieves all rehearsals held for a performance
func (r *RehearsalRepository) GetByPerformanceID(performanceID uuid.UUID, limit, offset int) ([]models.Rehearsal, int64, error) {
	var rehearsals []models.Rehearsal
	var total int64

	query := r.db.Model(&models.Rehearsal{}).Where("performance_id = ?", performanceID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("performance_id = ?", performanceID).
		Order("date ASC").Limit(limit).Offset(offset).Find(&rehearsals).Error
	return rehearsals, total, err
}

// GetPromotable retrieves completed, not-yet-promoted rehearsals. This is the
// server-side pre-filter; the service re-filters on IsPromoted defensively.
func (r *RehearsalRepository) GetPromotable(limit, offset int) ([]models.Rehearsal, int64, error) {
	var rehearsals []models.Rehearsal
	var total int64

	query := r.db.Model(&models.Rehearsal{}).
		Where("status = ? AND is_promoted = ?", models.RehearsalStatusCompleted, false)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ? AND is_promoted = ?", models.RehearsalStatusCompleted, false).
		Order("date ASC").Limit(limit).Offset(offset).Find(&rehearsals).Error
	return rehearsals, total, err
}

// MarkPromoted flips the promoted flag on a rehearsal
func (r *RehearsalRepository) MarkPromoted(id uuid.UUID) error {
	return r.db.Model(&models.Rehearsal{}).Where("id = ?", id).
		Update("is_promoted", true).Error
}

// Update updates a rehearsal's own columns. The song list is owned data and
// is only ever written through ReplaceSongList, so association writes are
// omitted here.
func (r *RehearsalRepository) Update(rehearsal *models.Rehearsal) error {
	return r.db.Omit(clause.Associations).Save(rehearsal).Error
}

// ReplaceSongList swaps a rehearsal's entire song list in one transaction.
// A plain Save would upsert the incoming rows but leave dropped ones behind,
// so the old list is deleted first.
func (r *RehearsalRepository) ReplaceSongList(rehearsalID uuid.UUID, songs []models.RehearsalSong) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rehearsal_id = ?", rehearsalID).Delete(&models.RehearsalSong{}).Error; err != nil {
			return err
		}
		for i := range songs {
			songs[i].RehearsalID = rehearsalID
		}
		if len(songs) == 0 {
			return nil
		}
		return tx.Create(&songs).Error
	})
}

// Delete deletes a rehearsal; its song list cascades
func (r *RehearsalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Rehearsal{}, "id = ?", id).Error
}
