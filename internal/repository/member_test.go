//go:build integration
// +build integration

package repository

import (
	"testing"

	"choir-management-backend/internal/database/models"
	"choir-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new member
func (suite *MemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.Member.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.NotZero(member.CreatedAt)
	suite.NotZero(member.UpdatedAt)
}

// TestCreateDuplicateEmail tests creating a member with duplicate email
func (suite *MemberRepositoryTestSuite) TestCreateDuplicateEmail() {
	member1 := suite.factories.Member.Create()
	member1.Email = "duplicate@example.com"
	suite.NoError(suite.repo.Create(member1))

	member2 := suite.factories.Member.Create()
	member2.Email = "duplicate@example.com"

	err := suite.repo.Create(member2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a member by ID
func (suite *MemberRepositoryTestSuite) TestGetByID() {
	member := suite.factories.Member.Create()
	suite.NoError(suite.repo.Create(member))

	retrieved, err := suite.repo.GetByID(member.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(member.ID, retrieved.ID)
	suite.Equal(member.Email, retrieved.Email)
	suite.Equal(member.FullName, retrieved.FullName)
	suite.Equal(member.Role, retrieved.Role)
}

// TestGetByIDNotFound tests retrieving a non-existent member
func (suite *MemberRepositoryTestSuite) TestGetByIDNotFound() {
	member, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(member)
}

// TestGetByEmail tests retrieving a member by email
func (suite *MemberRepositoryTestSuite) TestGetByEmail() {
	member := suite.factories.Member.Create()
	suite.NoError(suite.repo.Create(member))

	retrieved, err := suite.repo.GetByEmail(member.Email)

	suite.NoError(err)
	suite.Equal(member.ID, retrieved.ID)
}

// TestGetByVoicePart tests filtering members by voice part
func (suite *MemberRepositoryTestSuite) TestGetByVoicePart() {
	soprano := suite.factories.Member.WithVoicePart(models.VoicePartSoprano)
	bass := suite.factories.Member.WithVoicePart(models.VoicePartBass)
	suite.NoError(suite.repo.Create(soprano))
	suite.NoError(suite.repo.Create(bass))

	members, total, err := suite.repo.GetByVoicePart(models.VoicePartBass, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(members, 1)
	suite.Equal(bass.ID, members[0].ID)
}

// TestGetActive tests filtering out inactive members
func (suite *MemberRepositoryTestSuite) TestGetActive() {
	active := suite.factories.Member.Create()
	inactive := suite.factories.Member.Create()
	suite.NoError(suite.repo.Create(active))
	suite.NoError(suite.repo.Create(inactive))

	// Deactivate through Update so the column default does not win on insert
	inactive.IsActive = false
	suite.NoError(suite.repo.Update(inactive))

	members, total, err := suite.repo.GetActive(10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(members, 1)
	suite.Equal(active.ID, members[0].ID)
}

// TestUpdate tests updating a member
func (suite *MemberRepositoryTestSuite) TestUpdate() {
	member := suite.factories.Member.Create()
	suite.NoError(suite.repo.Create(member))

	member.Role = models.MemberRoleSectionLeader
	member.Instrument = "organ"
	err := suite.repo.Update(member)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleSectionLeader, retrieved.Role)
	suite.Equal("organ", retrieved.Instrument)
}

// TestDelete tests deleting a member
func (suite *MemberRepositoryTestSuite) TestDelete() {
	member := suite.factories.Member.Create()
	suite.NoError(suite.repo.Create(member))

	err := suite.repo.Delete(member.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(member.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestMemberRepositoryTestSuite runs the test suite
func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
