//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"choir-management-backend/internal/database/models"
	"choir-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadershipShiftRepositoryTestSuite tests the LeadershipShiftRepository
type LeadershipShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadershipShiftRepository
	memberRepo    *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LeadershipShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadershipShiftRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadershipShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadershipShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadershipShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeadershipShiftRepositoryTestSuite) createLeader() *models.Member {
	leader := suite.factories.Member.Director()
	err := suite.memberRepo.Create(leader)
	suite.NoError(err)
	return leader
}

// TestCreate tests creating a new leadership shift
func (suite *LeadershipShiftRepositoryTestSuite) TestCreate() {
	leader := suite.createLeader()

	shift := suite.factories.LeadershipShift.Create(leader.ID)
	err := suite.repo.Create(shift)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, shift.ID)
	suite.NotZero(shift.CreatedAt)
}

// TestGetByIDNotFound tests retrieving a non-existent shift
func (suite *LeadershipShiftRepositoryTestSuite) TestGetByIDNotFound() {
	shift, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(shift)
}

// TestGetByIDPreloadsLeader tests that the leader relationship is loaded
func (suite *LeadershipShiftRepositoryTestSuite) TestGetByIDPreloadsLeader() {
	leader := suite.createLeader()
	shift := suite.factories.LeadershipShift.Create(leader.ID)
	suite.NoError(suite.repo.Create(shift))

	retrieved, err := suite.repo.GetByID(shift.ID)

	suite.NoError(err)
	suite.Equal(leader.ID, retrieved.Leader.ID)
	suite.Equal(leader.FullName, retrieved.Leader.FullName)
}

// TestGetCurrent tests retrieving shifts whose window covers now
func (suite *LeadershipShiftRepositoryTestSuite) TestGetCurrent() {
	leader := suite.createLeader()
	now := time.Now()

	current := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, 0, -7), now.AddDate(0, 0, 7))
	past := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	future := suite.factories.LeadershipShift.Upcoming(leader.ID)
	suite.NoError(suite.repo.Create(current))
	suite.NoError(suite.repo.Create(past))
	suite.NoError(suite.repo.Create(future))

	shifts, err := suite.repo.GetCurrent(now)

	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal(current.ID, shifts[0].ID)
}

// TestGetCurrentReturnsAllOverlapping tests that conflicting windows are all returned
func (suite *LeadershipShiftRepositoryTestSuite) TestGetCurrentReturnsAllOverlapping() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()
	now := time.Now()

	first := suite.factories.LeadershipShift.WithDates(leaderA.ID, now.AddDate(0, 0, -10), now.AddDate(0, 0, 5))
	second := suite.factories.LeadershipShift.WithDates(leaderB.ID, now.AddDate(0, 0, -3), now.AddDate(0, 0, 12))
	suite.NoError(suite.repo.Create(second))
	suite.NoError(suite.repo.Create(first))

	shifts, err := suite.repo.GetCurrent(now)

	suite.NoError(err)
	suite.Len(shifts, 2)
	// Ordered by start date so the earliest-starting shift comes first
	suite.Equal(first.ID, shifts[0].ID)
	suite.Equal(second.ID, shifts[1].ID)
}

// TestGetUpcoming tests retrieving future shifts soonest first
func (suite *LeadershipShiftRepositoryTestSuite) TestGetUpcoming() {
	leader := suite.createLeader()
	now := time.Now()

	nearFuture := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, 0, 10), now.AddDate(0, 0, 20))
	nearFuture.StoredStatus = models.ShiftStatusUpcoming
	farFuture := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, 2, 0), now.AddDate(0, 3, 0))
	farFuture.StoredStatus = models.ShiftStatusUpcoming
	active := suite.factories.LeadershipShift.Create(leader.ID)
	suite.NoError(suite.repo.Create(farFuture))
	suite.NoError(suite.repo.Create(nearFuture))
	suite.NoError(suite.repo.Create(active))

	shifts, total, err := suite.repo.GetUpcoming(now, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(shifts, 2)
	suite.Equal(nearFuture.ID, shifts[0].ID)
	suite.Equal(farFuture.ID, shifts[1].ID)
}

// TestCheckOverlap tests overlap detection against existing windows
func (suite *LeadershipShiftRepositoryTestSuite) TestCheckOverlap() {
	leader := suite.createLeader()
	now := time.Now()

	existing := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, 0, -7), now.AddDate(0, 0, 7))
	suite.NoError(suite.repo.Create(existing))

	// Intersecting window
	overlaps, err := suite.repo.CheckOverlap(now, now.AddDate(0, 0, 14), nil)
	suite.NoError(err)
	suite.True(overlaps)

	// Disjoint window
	overlaps, err = suite.repo.CheckOverlap(now.AddDate(0, 1, 0), now.AddDate(0, 2, 0), nil)
	suite.NoError(err)
	suite.False(overlaps)

	// Same window but excluding the existing shift itself
	overlaps, err = suite.repo.CheckOverlap(now, now.AddDate(0, 0, 14), &existing.ID)
	suite.NoError(err)
	suite.False(overlaps)
}

// TestCheckOverlapIgnoresCancelled tests that cancelled shifts do not block a window
func (suite *LeadershipShiftRepositoryTestSuite) TestCheckOverlapIgnoresCancelled() {
	leader := suite.createLeader()
	now := time.Now()

	cancelled := suite.factories.LeadershipShift.WithDates(leader.ID, now.AddDate(0, 0, -7), now.AddDate(0, 0, 7))
	cancelled.StoredStatus = models.ShiftStatusCancelled
	suite.NoError(suite.repo.Create(cancelled))

	overlaps, err := suite.repo.CheckOverlap(now, now.AddDate(0, 0, 14), nil)

	suite.NoError(err)
	suite.False(overlaps)
}

// TestGetByStoredStatus tests filtering shifts by their stored status
func (suite *LeadershipShiftRepositoryTestSuite) TestGetByStoredStatus() {
	leader := suite.createLeader()

	active := suite.factories.LeadershipShift.Create(leader.ID)
	upcoming := suite.factories.LeadershipShift.Upcoming(leader.ID)
	suite.NoError(suite.repo.Create(active))
	suite.NoError(suite.repo.Create(upcoming))

	shifts, total, err := suite.repo.GetByStoredStatus(models.ShiftStatusActive, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(shifts, 1)
	suite.Equal(active.ID, shifts[0].ID)
}

// TestUpdate tests updating a shift's stored status
func (suite *LeadershipShiftRepositoryTestSuite) TestUpdate() {
	leader := suite.createLeader()
	shift := suite.factories.LeadershipShift.Create(leader.ID)
	suite.NoError(suite.repo.Create(shift))

	shift.StoredStatus = models.ShiftStatusCompleted
	shift.EventsCompleted = 4
	err := suite.repo.Update(shift)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusCompleted, retrieved.StoredStatus)
	suite.Equal(4, retrieved.EventsCompleted)
}

// TestDelete tests deleting a shift
func (suite *LeadershipShiftRepositoryTestSuite) TestDelete() {
	leader := suite.createLeader()
	shift := suite.factories.LeadershipShift.Create(leader.ID)
	suite.NoError(suite.repo.Create(shift))

	err := suite.repo.Delete(shift.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(shift.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestLeadershipShiftRepositoryTestSuite runs the test suite
func TestLeadershipShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadershipShiftRepositoryTestSuite))
}
