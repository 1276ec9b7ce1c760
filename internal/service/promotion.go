package service

import (
	"errors"
	"fmt"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/logger"
	"choir-management-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionService copies rehearsal-authored song content into performances.
// Add and replace are separate, explicitly named operations because their
// data-loss characteristics differ completely; they are never collapsed into
// one ambiguous "promote".
type PromotionService struct {
	rehearsalRepo   repository.RehearsalRepositoryInterface
	performanceRepo repository.PerformanceRepositoryInterface
	log             *logger.Logger
}

// NewPromotionService creates a new promotion service
func NewPromotionService(rehearsalRepo repository.RehearsalRepositoryInterface, performanceRepo repository.PerformanceRepositoryInterface) *PromotionService {
	return &PromotionService{
		rehearsalRepo:   rehearsalRepo,
		performanceRepo: performanceRepo,
		log:             logger.New(),
	}
}

// BulkPromotionError records one failed item of a bulk promotion
type BulkPromotionError struct {
	RehearsalID uuid.UUID `json:"rehearsal_id"`
	Error       string    `json:"error"`
}

// BulkPromotionResult aggregates a bulk promotion. It is always returned,
// even when Success is zero; callers tell "nothing selected" from "everything
// failed" by comparing len(Errors) against the input size.
type BulkPromotionResult struct {
	Success int                  `json:"success"`
	Errors  []BulkPromotionError `json:"errors"`
}

// PromoteOne merges a completed rehearsal's songs into its performance under
// add semantics and marks the rehearsal promoted. Precondition violations are
// typed errors and leave everything untouched. If the promoted flag write
// fails after the song list write succeeded, the rehearsal stays promotable;
// re-running is safe because duplicate songs are skipped on the retry.
func (s *PromotionService) PromoteOne(rehearsalID uuid.UUID) (*models.Performance, error) {
	return s.promote(rehearsalID, MergeModeAdd)
}

// ReplaceOne discards the performance's song list and substitutes the
// rehearsal's, under the same preconditions as PromoteOne. Retry after a
// partial failure is not safe here: the previous content is already gone.
func (s *PromotionService) ReplaceOne(rehearsalID uuid.UUID) (*models.Performance, error) {
	return s.promote(rehearsalID, MergeModeReplace)
}

func (s *PromotionService) promote(rehearsalID uuid.UUID, mode MergeMode) (*models.Performance, error) {
	rehearsal, err := s.rehearsalRepo.GetWithSongs(rehearsalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}

	if rehearsal.Status != models.RehearsalStatusCompleted {
		return nil, apperrors.ErrRehearsalNotCompleted
	}
	if rehearsal.IsPromoted {
		return nil, apperrors.ErrRehearsalAlreadyPromoted
	}

	performance, err := s.performanceRepo.GetWithSongs(rehearsal.PerformanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	merged := MergeSongs(performance.Songs, rehearsal.Songs, mode)
	if merged.SkippedCount > 0 {
		s.log.WithFields(map[string]interface{}{
			"rehearsal_id":   rehearsalID,
			"performance_id": performance.ID,
			"skipped":        merged.SkippedCount,
		}).Info("skipped duplicate songs during promotion")
	}

	if err := s.performanceRepo.ReplaceSongList(performance.ID, merged.Songs); err != nil {
		return nil, fmt.Errorf("failed to persist merged song list: %w", err)
	}
	if err := s.rehearsalRepo.MarkPromoted(rehearsalID); err != nil {
		// The song list is already written. Leaving the flag unset keeps the
		// rehearsal promotable; an add-mode retry skips the duplicates.
		return nil, fmt.Errorf("failed to mark rehearsal promoted: %w", err)
	}

	updated, err := s.performanceRepo.GetWithSongs(performance.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload performance: %w", err)
	}
	return updated, nil
}

// PromoteBulk promotes each rehearsal in isolation, sequentially: one item
// fully completes (success or failure) before the next begins, so errors
// attribute to exactly one rehearsal and two rehearsals targeting the same
// performance never merge from a stale read. A failure never aborts or rolls
// back the rest of the batch. Only add mode is accepted; a bulk replace
// sweep is intentionally not offered.
func (s *PromotionService) PromoteBulk(rehearsalIDs []uuid.UUID, mode MergeMode) (*BulkPromotionResult, error) {
	if !mode.IsValid() {
		return nil, apperrors.ErrInvalidMergeMode
	}
	if mode == MergeModeReplace {
		return nil, apperrors.ErrBulkReplaceNotSupported
	}

	result := &BulkPromotionResult{Errors: []BulkPromotionError{}}
	for _, id := range rehearsalIDs {
		if _, err := s.PromoteOne(id); err != nil {
			result.Errors = append(result.Errors, BulkPromotionError{
				RehearsalID: id,
				Error:       err.Error(),
			})
			continue
		}
		result.Success++
	}
	return result, nil
}

// GetPromotable lists rehearsals eligible for promotion. The repository
// pre-filters on status and flag; the promoted check is repeated here so a
// stale read never offers an already-promoted rehearsal for selection.
func (s *PromotionService) GetPromotable(limit, offset int) ([]models.Rehearsal, int64, error) {
	rehearsals, total, err := s.rehearsalRepo.GetPromotable(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get promotable rehearsals: %w", err)
	}

	eligible := make([]models.Rehearsal, 0, len(rehearsals))
	for _, rehearsal := range rehearsals {
		if rehearsal.IsPromoted {
			total--
			continue
		}
		eligible = append(eligible, rehearsal)
	}
	return eligible, total, nil
}
