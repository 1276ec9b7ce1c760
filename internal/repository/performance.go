package repository

import (
	"time"

	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceRepository handles database operations for performances and
// their owned song lists
type PerformanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new performance repository
func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Create creates a new performance
func (r *PerformanceRepository) Create(performance *models.Performance) error {
	return r.db.Create(performance).Error
}

// GetByID retrieves a performance by ID without its song list
func (r *PerformanceRepository) GetByID(id uuid.UUID) (*models.Performance, error) {
	var performance models.Performance
	err := r.db.First(&performance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

// GetWithSongs retrieves a performance with its ordered song list and
// nested assignments
func (r *PerformanceRepository) GetWithSongs(id uuid.UUID) (*models.Performance, error) {
	var performance models.Performance
	err := r.db.
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("performance_songs.sort_order ASC")
		}).
		Preload("Songs.Song").
		Preload("Songs.VoiceParts", func(db *gorm.DB) *gorm.DB {
			return db.Order("voice_part_assignments.sort_order ASC")
		}).
		Preload("Songs.Musicians", func(db *gorm.DB) *gorm.DB {
			return db.Order("musician_assignments.sort_order ASC")
		}).
		Preload("ShiftLead").
		First(&performance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

// GetAll retrieves performances with pagination, soonest first
func (r *PerformanceRepository) GetAll(limit, offset int) ([]models.Performance, int64, error) {
	var performances []models.Performance
	var total int64

	if err := r.db.Model(&models.Performance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date ASC").Limit(limit).Offset(offset).Find(&performances).Error
	return performances, total, err
}

// GetByStatus retrieves performances by status
func (r *PerformanceRepository) GetByStatus(status models.PerformanceStatus, limit, offset int) ([]models.Performance, int64, error) {
	var performances []models.Performance
	var total int64

	query := r.db.Model(&models.Performance{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).Order("date ASC").Limit(limit).Offset(offset).Find(&performances).Error
	return performances, total, err
}

// GetByDateRange retrieves performances within a date range
func (r *PerformanceRepository) GetByDateRange(from, to time.Time, limit, offset int) ([]models.Performance, int64, error) {
	var performances []models.Performance
	var total int64

	query := r.db.Model(&models.Performance{}).Where("date >= ? AND date <= ?", from, to)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").Limit(limit).Offset(offset).Find(&performances).Error
	return performances, total, err
}

// ExistsOnDate reports whether a performance already occupies a date
func (r *PerformanceRepository) ExistsOnDate(date time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Performance{}).Where("date = ?", date)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a performance
func (r *PerformanceRepository) Update(performance *models.Performance) error {
	return r.db.Save(performance).Error
}

// ReplaceSongList swaps a performance's entire song list in one transaction.
// Both promotion modes persist through here: the merge resolver always hands
// back the complete post-merge list.
func (r *PerformanceRepository) ReplaceSongList(performanceID uuid.UUID, songs []models.PerformanceSong) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("performance_id = ?", performanceID).Delete(&models.PerformanceSong{}).Error; err != nil {
			return err
		}
		for i := range songs {
			songs[i].PerformanceID = performanceID
		}
		if len(songs) == 0 {
			return nil
		}
		return tx.Create(&songs).Error
	})
}

// Delete deletes a performance; its song list cascades
func (r *PerformanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Performance{}, "id = ?", id).Error
}
