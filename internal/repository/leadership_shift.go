package repository

import (
	"time"

	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadershipShiftRepository handles database operations for leadership shifts
type LeadershipShiftRepository struct {
	db *gorm.DB
}

// NewLeadershipShiftRepository creates a new leadership shift repository
func NewLeadershipShiftRepository(db *gorm.DB) *LeadershipShiftRepository {
	return &LeadershipShiftRepository{db: db}
}

// Create creates a new leadership shift
func (r *LeadershipShiftRepository) Create(shift *models.LeadershipShift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a leadership shift by ID
func (r *LeadershipShiftRepository) GetByID(id uuid.UUID) (*models.LeadershipShift, error) {
	var shift models.LeadershipShift
	err := r.db.Preload("Leader").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves leadership shifts with pagination, newest window first
func (r *LeadershipShiftRepository) GetAll(limit, offset int) ([]models.LeadershipShift, int64, error) {
	var shifts []models.LeadershipShift
	var total int64

	if err := r.db.Model(&models.LeadershipShift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Leader").Order("start_date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByLeaderID retrieves all shifts assigned to a leader
func (r *LeadershipShiftRepository) GetByLeaderID(leaderID uuid.UUID, limit, offset int) ([]models.LeadershipShift, int64, error) {
	var shifts []models.LeadershipShift
	var total int64

	query := r.db.Model(&models.LeadershipShift{}).Where("leader_id = ?", leaderID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("leader_id = ?", leaderID).Order("start_date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByStoredStatus retrieves shifts whose administrator-entered status matches
func (r *LeadershipShiftRepository) GetByStoredStatus(status models.ShiftStatus, limit, offset int) ([]models.LeadershipShift, int64, error) {
	var shifts []models.LeadershipShift
	var total int64

	query := r.db.Model(&models.LeadershipShift{}).Where("stored_status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("stored_status = ?", status).Order("start_date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetCurrent retrieves the shifts whose date window contains now.
// Callers expect at most one; the validity monitor deals with the rest.
func (r *LeadershipShiftRepository) GetCurrent(now time.Time) ([]models.LeadershipShift, error) {
	var shifts []models.LeadershipShift
	err := r.db.Preload("Leader").
		Where("start_date <= ? AND end_date >= ?", now, now).
		Order("start_date ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetUpcoming retrieves shifts starting after now, soonest first
func (r *LeadershipShiftRepository) GetUpcoming(now time.Time, limit, offset int) ([]models.LeadershipShift, int64, error) {
	var shifts []models.LeadershipShift
	var total int64

	query := r.db.Model(&models.LeadershipShift{}).Where("start_date > ?", now)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Leader").Where("start_date > ?", now).
		Order("start_date ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// CheckOverlap reports whether another shift's date window intersects the given range
func (r *LeadershipShiftRepository) CheckOverlap(startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.LeadershipShift{}).Where(
		"stored_status <> ? AND start_date <= ? AND end_date >= ?",
		models.ShiftStatusCancelled, endDate, startDate,
	)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a leadership shift
func (r *LeadershipShiftRepository) Update(shift *models.LeadershipShift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a leadership shift
func (r *LeadershipShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeadershipShift{}, "id = ?", id).Error
}
