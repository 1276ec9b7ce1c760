package service_test

import (
	"errors"
	"testing"
	"time"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/mocks"
	"choir-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeRehearsalRepo is an in-memory RehearsalRepositoryInterface. Reads return
// copies so tests observe only persisted state, the way a real repository would.
type fakeRehearsalRepo struct {
	rehearsals map[uuid.UUID]*models.Rehearsal
	markErr    error
}

func newFakeRehearsalRepo() *fakeRehearsalRepo {
	return &fakeRehearsalRepo{rehearsals: make(map[uuid.UUID]*models.Rehearsal)}
}

func (f *fakeRehearsalRepo) Create(rehearsal *models.Rehearsal) error {
	if rehearsal.ID == uuid.Nil {
		rehearsal.ID = uuid.New()
	}
	stored := *rehearsal
	f.rehearsals[rehearsal.ID] = &stored
	return nil
}

func (f *fakeRehearsalRepo) GetByID(id uuid.UUID) (*models.Rehearsal, error) {
	rehearsal, ok := f.rehearsals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *rehearsal
	return &copied, nil
}

func (f *fakeRehearsalRepo) GetWithSongs(id uuid.UUID) (*models.Rehearsal, error) {
	return f.GetByID(id)
}

func (f *fakeRehearsalRepo) GetAll(limit, offset int) ([]models.Rehearsal, int64, error) {
	var all []models.Rehearsal
	for _, rehearsal := range f.rehearsals {
		all = append(all, *rehearsal)
	}
	return all, int64(len(all)), nil
}

func (f *fakeRehearsalRepo) GetByPerformanceID(performanceID uuid.UUID, limit, offset int) ([]models.Rehearsal, int64, error) {
	var matched []models.Rehearsal
	for _, rehearsal := range f.rehearsals {
		if rehearsal.PerformanceID == performanceID {
			matched = append(matched, *rehearsal)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeRehearsalRepo) GetPromotable(limit, offset int) ([]models.Rehearsal, int64, error) {
	var promotable []models.Rehearsal
	for _, rehearsal := range f.rehearsals {
		if rehearsal.Status == models.RehearsalStatusCompleted && !rehearsal.IsPromoted {
			promotable = append(promotable, *rehearsal)
		}
	}
	return promotable, int64(len(promotable)), nil
}

func (f *fakeRehearsalRepo) MarkPromoted(id uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	rehearsal, ok := f.rehearsals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rehearsal.IsPromoted = true
	return nil
}

func (f *fakeRehearsalRepo) Update(rehearsal *models.Rehearsal) error {
	stored := *rehearsal
	f.rehearsals[rehearsal.ID] = &stored
	return nil
}

func (f *fakeRehearsalRepo) ReplaceSongList(rehearsalID uuid.UUID, songs []models.RehearsalSong) error {
	rehearsal, ok := f.rehearsals[rehearsalID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rehearsal.Songs = append([]models.RehearsalSong(nil), songs...)
	return nil
}

func (f *fakeRehearsalRepo) Delete(id uuid.UUID) error {
	delete(f.rehearsals, id)
	return nil
}

// fakePerformanceRepo is an in-memory PerformanceRepositoryInterface.
type fakePerformanceRepo struct {
	performances map[uuid.UUID]*models.Performance
	replaceErr   error
	replaceCalls int
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{performances: make(map[uuid.UUID]*models.Performance)}
}

func (f *fakePerformanceRepo) Create(performance *models.Performance) error {
	if performance.ID == uuid.Nil {
		performance.ID = uuid.New()
	}
	stored := *performance
	f.performances[performance.ID] = &stored
	return nil
}

func (f *fakePerformanceRepo) GetByID(id uuid.UUID) (*models.Performance, error) {
	performance, ok := f.performances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *performance
	return &copied, nil
}

func (f *fakePerformanceRepo) GetWithSongs(id uuid.UUID) (*models.Performance, error) {
	performance, ok := f.performances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *performance
	copied.Songs = append([]models.PerformanceSong(nil), performance.Songs...)
	return &copied, nil
}

func (f *fakePerformanceRepo) GetAll(limit, offset int) ([]models.Performance, int64, error) {
	var all []models.Performance
	for _, performance := range f.performances {
		all = append(all, *performance)
	}
	return all, int64(len(all)), nil
}

func (f *fakePerformanceRepo) GetByStatus(status models.PerformanceStatus, limit, offset int) ([]models.Performance, int64, error) {
	var matched []models.Performance
	for _, performance := range f.performances {
		if performance.Status == status {
			matched = append(matched, *performance)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakePerformanceRepo) GetByDateRange(from, to time.Time, limit, offset int) ([]models.Performance, int64, error) {
	var matched []models.Performance
	for _, performance := range f.performances {
		if !performance.Date.Before(from) && !performance.Date.After(to) {
			matched = append(matched, *performance)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakePerformanceRepo) ExistsOnDate(date time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, performance := range f.performances {
		if excludeID != nil && performance.ID == *excludeID {
			continue
		}
		if performance.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePerformanceRepo) Update(performance *models.Performance) error {
	stored := *performance
	f.performances[performance.ID] = &stored
	return nil
}

func (f *fakePerformanceRepo) ReplaceSongList(performanceID uuid.UUID, songs []models.PerformanceSong) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	performance, ok := f.performances[performanceID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	replaced := make([]models.PerformanceSong, len(songs))
	copy(replaced, songs)
	for i := range replaced {
		if replaced[i].ID == uuid.Nil {
			replaced[i].ID = uuid.New()
		}
		replaced[i].PerformanceID = performanceID
	}
	performance.Songs = replaced
	return nil
}

func (f *fakePerformanceRepo) Delete(id uuid.UUID) error {
	delete(f.performances, id)
	return nil
}

// PromotionServiceTestSuite exercises promotion end to end against the
// in-memory repositories.
type PromotionServiceTestSuite struct {
	suite.Suite
	rehearsals   *fakeRehearsalRepo
	performances *fakePerformanceRepo
	svc          *service.PromotionService
}

func (suite *PromotionServiceTestSuite) SetupTest() {
	suite.rehearsals = newFakeRehearsalRepo()
	suite.performances = newFakePerformanceRepo()
	suite.svc = service.NewPromotionService(suite.rehearsals, suite.performances)
}

func (suite *PromotionServiceTestSuite) seedPerformance(songIDs ...uuid.UUID) *models.Performance {
	performance := &models.Performance{
		Title:  "Spring Concert",
		Date:   time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
		Type:   models.PerformanceTypeConcert,
		Status: models.PerformanceStatusInPreparation,
	}
	performance.ID = uuid.New()
	for i, songID := range songIDs {
		performance.Songs = append(performance.Songs, models.PerformanceSong{
			PerformanceID: performance.ID,
			SongID:        songID,
			Order:         i + 1,
		})
	}
	suite.Require().NoError(suite.performances.Create(performance))
	return performance
}

func (suite *PromotionServiceTestSuite) seedRehearsal(performanceID uuid.UUID, status models.RehearsalStatus, promoted bool, songIDs ...uuid.UUID) *models.Rehearsal {
	rehearsal := &models.Rehearsal{
		Title:         "Tuesday Run-through",
		Type:          models.RehearsalTypeFull,
		Status:        status,
		PerformanceID: performanceID,
		IsPromoted:    promoted,
		Date:          time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
	}
	rehearsal.ID = uuid.New()
	for i, songID := range songIDs {
		rehearsal.Songs = append(rehearsal.Songs, models.RehearsalSong{
			RehearsalID: rehearsal.ID,
			SongID:      songID,
			Order:       i + 1,
		})
	}
	suite.Require().NoError(suite.rehearsals.Create(rehearsal))
	return rehearsal
}

func (suite *PromotionServiceTestSuite) TestPromoteOneAddsSongsAndMarksPromoted() {
	songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
	performance := suite.seedPerformance(songA)
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songB, songC)

	updated, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().NoError(err)
	suite.Require().Len(updated.Songs, 3)
	suite.Equal(songA, updated.Songs[0].SongID)
	suite.Equal(songB, updated.Songs[1].SongID)
	suite.Equal(songC, updated.Songs[2].SongID)

	stored, err := suite.rehearsals.GetByID(rehearsal.ID)
	suite.Require().NoError(err)
	suite.True(stored.IsPromoted)
}

func (suite *PromotionServiceTestSuite) TestPromoteOneRequiresCompletedRehearsal() {
	performance := suite.seedPerformance()
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusScheduled, false, uuid.New())

	_, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().ErrorIs(err, apperrors.ErrRehearsalNotCompleted)

	// Nothing was touched.
	stored, _ := suite.performances.GetWithSongs(performance.ID)
	suite.Empty(stored.Songs)
	suite.Zero(suite.performances.replaceCalls)
}

func (suite *PromotionServiceTestSuite) TestPromoteOneRejectsAlreadyPromoted() {
	performance := suite.seedPerformance()
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, true, uuid.New())

	_, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().ErrorIs(err, apperrors.ErrRehearsalAlreadyPromoted)
	suite.Zero(suite.performances.replaceCalls)
}

func (suite *PromotionServiceTestSuite) TestPromoteOneUnknownRehearsal() {
	_, err := suite.svc.PromoteOne(uuid.New())
	suite.Require().ErrorIs(err, apperrors.ErrRehearsalNotFound)
}

func (suite *PromotionServiceTestSuite) TestPromoteOneMissingPerformance() {
	rehearsal := suite.seedRehearsal(uuid.New(), models.RehearsalStatusCompleted, false, uuid.New())

	_, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().ErrorIs(err, apperrors.ErrPerformanceNotFound)
}

func (suite *PromotionServiceTestSuite) TestPromoteOneSkipsDuplicates() {
	songA, songB := uuid.New(), uuid.New()
	performance := suite.seedPerformance(songA)
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songA, songB)

	updated, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().NoError(err)
	suite.Require().Len(updated.Songs, 2)
	suite.Equal(songA, updated.Songs[0].SongID)
	suite.Equal(songB, updated.Songs[1].SongID)
}

func (suite *PromotionServiceTestSuite) TestReplaceOneDiscardsExistingList() {
	songA, songB := uuid.New(), uuid.New()
	performance := suite.seedPerformance(songA)
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songB)

	updated, err := suite.svc.ReplaceOne(rehearsal.ID)
	suite.Require().NoError(err)
	suite.Require().Len(updated.Songs, 1)
	suite.Equal(songB, updated.Songs[0].SongID)
	suite.Equal(1, updated.Songs[0].Order)
}

func (suite *PromotionServiceTestSuite) TestRetryAfterFailedFlagWriteIsSafe() {
	songA, songB := uuid.New(), uuid.New()
	performance := suite.seedPerformance(songA)
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songB)

	// Song list write succeeds, flag write fails.
	suite.rehearsals.markErr = errors.New("connection reset")
	_, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().Error(err)

	stored, _ := suite.rehearsals.GetByID(rehearsal.ID)
	suite.False(stored.IsPromoted)

	// Retry succeeds; the already-written song is skipped, not duplicated.
	suite.rehearsals.markErr = nil
	updated, err := suite.svc.PromoteOne(rehearsal.ID)
	suite.Require().NoError(err)
	suite.Len(updated.Songs, 2)
}

func (suite *PromotionServiceTestSuite) TestPromoteBulkIsolatesFailures() {
	songA, songB, songC := uuid.New(), uuid.New(), uuid.New()
	performance := suite.seedPerformance()
	good := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songA)
	notCompleted := suite.seedRehearsal(performance.ID, models.RehearsalStatusScheduled, false, songB)
	alsoGood := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songC)
	missing := uuid.New()

	result, err := suite.svc.PromoteBulk([]uuid.UUID{good.ID, notCompleted.ID, missing, alsoGood.ID}, service.MergeModeAdd)
	suite.Require().NoError(err)
	suite.Equal(2, result.Success)
	suite.Require().Len(result.Errors, 2)
	suite.Equal(notCompleted.ID, result.Errors[0].RehearsalID)
	suite.Equal(missing, result.Errors[1].RehearsalID)

	// Failures did not abort the batch; both good rehearsals landed.
	stored, _ := suite.performances.GetWithSongs(performance.ID)
	suite.Len(stored.Songs, 2)
}

func (suite *PromotionServiceTestSuite) TestPromoteBulkSamePerformanceAccumulates() {
	songA, songB := uuid.New(), uuid.New()
	performance := suite.seedPerformance()
	first := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songA)
	second := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, songA, songB)

	result, err := suite.svc.PromoteBulk([]uuid.UUID{first.ID, second.ID}, service.MergeModeAdd)
	suite.Require().NoError(err)
	suite.Equal(2, result.Success)
	suite.Empty(result.Errors)

	// Sequential processing: the second merge saw the first one's write, so
	// the shared song appears once.
	stored, _ := suite.performances.GetWithSongs(performance.ID)
	suite.Require().Len(stored.Songs, 2)
	suite.Equal(songA, stored.Songs[0].SongID)
	suite.Equal(songB, stored.Songs[1].SongID)
}

func (suite *PromotionServiceTestSuite) TestPromoteBulkEmptyInput() {
	result, err := suite.svc.PromoteBulk(nil, service.MergeModeAdd)
	suite.Require().NoError(err)
	suite.Zero(result.Success)
	suite.Empty(result.Errors)
}

func (suite *PromotionServiceTestSuite) TestPromoteBulkRejectsReplaceMode() {
	performance := suite.seedPerformance()
	rehearsal := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, uuid.New())

	result, err := suite.svc.PromoteBulk([]uuid.UUID{rehearsal.ID}, service.MergeModeReplace)
	suite.ErrorIs(err, apperrors.ErrBulkReplaceNotSupported)
	suite.Nil(result)

	// Rejection happens before any item is touched.
	stored, getErr := suite.rehearsals.GetByID(rehearsal.ID)
	suite.Require().NoError(getErr)
	suite.False(stored.IsPromoted)
}

func (suite *PromotionServiceTestSuite) TestPromoteBulkRejectsUnknownMode() {
	result, err := suite.svc.PromoteBulk([]uuid.UUID{uuid.New()}, service.MergeMode("append"))
	suite.ErrorIs(err, apperrors.ErrInvalidMergeMode)
	suite.Nil(result)
}

func (suite *PromotionServiceTestSuite) TestGetPromotable() {
	performance := suite.seedPerformance()
	eligible := suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, false, uuid.New())
	suite.seedRehearsal(performance.ID, models.RehearsalStatusScheduled, false, uuid.New())
	suite.seedRehearsal(performance.ID, models.RehearsalStatusCompleted, true, uuid.New())

	rehearsals, total, err := suite.svc.GetPromotable(20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(rehearsals, 1)
	suite.Equal(eligible.ID, rehearsals[0].ID)
}

func TestPromotionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PromotionServiceTestSuite))
}

func TestPromotionFakesSatisfyInterfaces(t *testing.T) {
	require.NotNil(t, service.NewPromotionService(newFakeRehearsalRepo(), newFakePerformanceRepo()))
}

// The mock-based tests pin down call ordering that the stateful fakes cannot
// observe: which repository calls happen, and which must never happen.

func TestPromoteOneDoesNotFlagWhenSongWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	rehearsalRepo := mocks.NewMockRehearsalRepositoryInterface(ctrl)
	performanceRepo := mocks.NewMockPerformanceRepositoryInterface(ctrl)
	svc := service.NewPromotionService(rehearsalRepo, performanceRepo)

	performanceID := uuid.New()
	rehearsal := &models.Rehearsal{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		PerformanceID: performanceID,
		Status:        models.RehearsalStatusCompleted,
		Songs:         []models.RehearsalSong{{SongID: uuid.New(), Order: 1}},
	}
	performance := &models.Performance{BaseModel: models.BaseModel{ID: performanceID}}

	rehearsalRepo.EXPECT().GetWithSongs(rehearsal.ID).Return(rehearsal, nil)
	performanceRepo.EXPECT().GetWithSongs(performanceID).Return(performance, nil)
	performanceRepo.EXPECT().ReplaceSongList(performanceID, gomock.Any()).Return(errors.New("connection reset"))
	// No MarkPromoted expectation: the flag must stay untouched when the
	// song write fails, so the rehearsal remains promotable.

	_, err := svc.PromoteOne(rehearsal.ID)
	require.ErrorContains(t, err, "failed to persist merged song list")
}

func TestPromoteOneRehearsalLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	rehearsalRepo := mocks.NewMockRehearsalRepositoryInterface(ctrl)
	performanceRepo := mocks.NewMockPerformanceRepositoryInterface(ctrl)
	svc := service.NewPromotionService(rehearsalRepo, performanceRepo)

	id := uuid.New()
	rehearsalRepo.EXPECT().GetWithSongs(id).Return(nil, errors.New("connection reset"))

	_, err := svc.PromoteOne(id)
	require.ErrorContains(t, err, "failed to get rehearsal")
}
