package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/core/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PipelineServiceTestSuite struct {
	suite.Suite
	tx       *MockTxManager
	repo     *MockPipelineRepository
	service  portssvc.PipelineSvcFacade
	ctx      context.Context
	logs     *bytes.Buffer
	tenantID string
	actorID  string
	rc       *domain.RepCountry
}

func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.tx = &MockTxManager{}
	suite.repo = new(MockPipelineRepository)
	suite.service = services.NewPipelineService(suite.tx, suite.repo)
	suite.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(suite.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.ctx = middleware.WithLogger(context.Background(), logger)
	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.rc = &domain.RepCountry{RepCountryID: uuid.NewString(), TenantID: suite.tenantID, CountryName: "Australia", IsActive: true}
}

func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}

func (suite *PipelineServiceTestSuite) expectRepCountry() {
	suite.repo.On("FindRepCountryByID", suite.ctx, suite.tenantID, suite.rc.RepCountryID).Return(suite.rc, nil)
}

func (suite *PipelineServiceTestSuite) newStatus(name string, order int, protected bool) *domain.RepCountryStatus {
	return &domain.RepCountryStatus{
		StatusID:     uuid.NewString(),
		RepCountryID: suite.rc.RepCountryID,
		StatusName:   name,
		Order:        order,
		IsActive:     true,
		IsProtected:  protected,
	}
}

// --- CreateRepCountry ---

func (suite *PipelineServiceTestSuite) TestCreateRepCountry_SeedsProtectedNewStatus() {
	req := dto.CreateRepCountryRequest{CountryName: " Canada "}
	suite.repo.On("SaveRepCountry", suite.ctx, mock.MatchedBy(func(rc domain.RepCountry) bool {
		return rc.CountryName == "Canada" && rc.TenantID == suite.tenantID && rc.IsActive
	})).Return(nil).Once()
	suite.repo.On("SaveStatus", suite.ctx, mock.MatchedBy(func(s domain.RepCountryStatus) bool {
		return s.StatusName == domain.DefaultStatusName && s.Order == 1 && s.IsProtected && s.IsActive
	})).Return(nil).Once()

	rc, err := suite.service.CreateRepCountry(suite.ctx, suite.tenantID, suite.actorID, req)

	suite.Require().NoError(err)
	suite.Require().Len(rc.Statuses, 1)
	suite.Equal(rc.RepCountryID, rc.Statuses[0].RepCountryID)
	suite.Equal(1, suite.tx.Commits)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestCreateRepCountry_DuplicateCountry() {
	suite.repo.On("SaveRepCountry", suite.ctx, mock.Anything).Return(apperrors.NewConflictError("exists")).Once()

	rc, err := suite.service.CreateRepCountry(suite.ctx, suite.tenantID, suite.actorID, dto.CreateRepCountryRequest{CountryName: "Canada"})

	suite.Nil(rc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	fields, _ := apperrors.FieldErrors(err)
	suite.Contains(fields, "countryName")
	suite.Equal(1, suite.tx.Rollbacks)
	suite.repo.AssertNotCalled(suite.T(), "SaveStatus", mock.Anything, mock.Anything)
}

// --- GetRepCountry ---

func (suite *PipelineServiceTestSuite) TestGetRepCountry_GroupsSubStatuses() {
	suite.expectRepCountry()
	first := suite.newStatus("New", 1, true)
	second := suite.newStatus("Visa Lodged", 2, false)
	suite.repo.On("ListStatuses", suite.ctx, suite.rc.RepCountryID).Return([]domain.RepCountryStatus{*first, *second}, nil).Once()
	suite.repo.On("ListSubStatuses", suite.ctx, []string{first.StatusID, second.StatusID}).Return([]domain.SubStatus{
		{SubStatusID: "a", RepCountryStatusID: second.StatusID, Name: "Biometrics", Order: 1},
		{SubStatusID: "b", RepCountryStatusID: second.StatusID, Name: "Medicals", Order: 2},
	}, nil).Once()

	rc, err := suite.service.GetRepCountry(suite.ctx, suite.tenantID, suite.rc.RepCountryID)

	suite.Require().NoError(err)
	suite.Require().Len(rc.Statuses, 2)
	suite.Empty(rc.Statuses[0].SubStatuses)
	suite.Len(rc.Statuses[1].SubStatuses, 2)
}

func (suite *PipelineServiceTestSuite) TestGetRepCountry_OtherTenant() {
	suite.repo.On("FindRepCountryByID", suite.ctx, "other-tenant", suite.rc.RepCountryID).Return(nil, apperrors.NewNotFoundError("rep country not found")).Once()

	rc, err := suite.service.GetRepCountry(suite.ctx, "other-tenant", suite.rc.RepCountryID)

	suite.Nil(rc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ToggleStatusActive ---

func (suite *PipelineServiceTestSuite) TestToggleStatusActive_ProtectedStatusRejectedBothWays() {
	suite.expectRepCountry()
	protected := suite.newStatus(domain.DefaultStatusName, 1, true)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, protected.StatusID).Return(protected, nil)

	for _, desired := range []bool{false, true} {
		status, err := suite.service.ToggleStatusActive(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, protected.StatusID, desired)

		suite.Nil(status)
		suite.ErrorIs(err, apperrors.ErrValidation)
		fields, ok := apperrors.FieldErrors(err)
		suite.True(ok)
		suite.Contains(fields["isActive"], "protected")
	}
	suite.True(protected.IsActive)
	suite.repo.AssertNotCalled(suite.T(), "UpdateStatusActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PipelineServiceTestSuite) TestToggleStatusActive_PersistsDesiredFlag() {
	suite.expectRepCountry()
	stored := suite.newStatus("Offer Received", 2, false)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, stored.StatusID).Return(stored, nil)

	for _, desired := range []bool{false, true, true} {
		suite.repo.On("UpdateStatusActive", suite.ctx, suite.rc.RepCountryID, stored.StatusID, desired, suite.actorID).
			Run(func(args mock.Arguments) { stored.IsActive = args.Bool(3) }).
			Return(nil).Once()

		status, err := suite.service.ToggleStatusActive(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, stored.StatusID, desired)

		suite.Require().NoError(err)
		suite.Equal(desired, status.IsActive)
	}
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestToggleStatusActive_StatusOfOtherRepCountry() {
	suite.expectRepCountry()
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, "foreign").Return(nil, apperrors.NewNotFoundError("status not found")).Once()

	_, err := suite.service.ToggleStatusActive(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, "foreign", false)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PipelineServiceTestSuite) TestToggleStatusActive_PersistenceFailureIsLogged() {
	suite.expectRepCountry()
	stored := suite.newStatus("Offer Received", 2, false)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, stored.StatusID).Return(stored, nil)
	suite.repo.On("UpdateStatusActive", suite.ctx, suite.rc.RepCountryID, stored.StatusID, false, suite.actorID).Return(assert.AnError).Once()

	_, err := suite.service.ToggleStatusActive(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, stored.StatusID, false)

	suite.ErrorIs(err, assert.AnError)
	suite.Contains(suite.logs.String(), suite.rc.RepCountryID)
	suite.Contains(suite.logs.String(), `"payload"`)
}

// --- SaveStatusOrder ---

func (suite *PipelineServiceTestSuite) TestSaveStatusOrder_MovesNewStatus() {
	suite.expectRepCountry()
	stored := suite.newStatus(domain.DefaultStatusName, 1, true)
	suite.repo.On("UpdateStatusOrderByName", suite.ctx, suite.rc.RepCountryID, domain.DefaultStatusName, 2, suite.actorID).
		Run(func(args mock.Arguments) { stored.Order = args.Int(3) }).
		Return(int64(1), nil).Once()

	req := dto.SaveStatusOrderRequest{Statuses: []dto.StatusOrderItem{{StatusName: domain.DefaultStatusName, Order: 2}}}
	err := suite.service.SaveStatusOrder(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, req)

	suite.Require().NoError(err)
	suite.Equal(2, stored.Order)
	suite.Equal(1, suite.tx.Commits)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestSaveStatusOrder_UnknownNameIsNoOp() {
	suite.expectRepCountry()
	suite.repo.On("UpdateStatusOrderByName", suite.ctx, suite.rc.RepCountryID, "Ghost", 3, suite.actorID).Return(int64(0), nil).Once()
	suite.repo.On("UpdateStatusOrderByName", suite.ctx, suite.rc.RepCountryID, "New", 1, suite.actorID).Return(int64(1), nil).Once()

	req := dto.SaveStatusOrderRequest{Statuses: []dto.StatusOrderItem{
		{StatusName: "Ghost", Order: 3},
		{StatusName: "New", Order: 1},
	}}
	err := suite.service.SaveStatusOrder(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, req)

	suite.NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestSaveStatusOrder_FailureRollsBackAndLogsPayload() {
	suite.expectRepCountry()
	suite.repo.On("UpdateStatusOrderByName", suite.ctx, suite.rc.RepCountryID, "New", 2, suite.actorID).Return(int64(1), nil).Once()
	suite.repo.On("UpdateStatusOrderByName", suite.ctx, suite.rc.RepCountryID, "Offer", 1, suite.actorID).Return(int64(0), assert.AnError).Once()

	req := dto.SaveStatusOrderRequest{Statuses: []dto.StatusOrderItem{
		{StatusName: "New", Order: 2},
		{StatusName: "Offer", Order: 1},
	}}
	err := suite.service.SaveStatusOrder(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, req)

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(1, suite.tx.Rollbacks)
	suite.Equal(0, suite.tx.Commits)
	suite.Contains(suite.logs.String(), suite.rc.RepCountryID)
	suite.Contains(suite.logs.String(), "Offer")
}

// --- AddStatus ---

func (suite *PipelineServiceTestSuite) TestAddStatus_AppendsAfterMax() {
	suite.expectRepCountry()
	suite.repo.On("MaxStatusOrder", suite.ctx, suite.rc.RepCountryID).Return(4, nil).Once()
	suite.repo.On("SaveStatus", suite.ctx, mock.MatchedBy(func(s domain.RepCountryStatus) bool {
		return s.Order == 5 && !s.IsProtected && s.IsActive && s.StatusName == "Enrolled"
	})).Return(nil).Once()

	status, err := suite.service.AddStatus(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, dto.AddStatusRequest{StatusName: "Enrolled"})

	suite.Require().NoError(err)
	suite.Equal(5, status.Order)
}

func (suite *PipelineServiceTestSuite) TestAddStatus_DuplicateName() {
	suite.expectRepCountry()
	suite.repo.On("MaxStatusOrder", suite.ctx, suite.rc.RepCountryID).Return(1, nil).Once()
	suite.repo.On("SaveStatus", suite.ctx, mock.Anything).Return(apperrors.NewConflictError("dup")).Once()

	_, err := suite.service.AddStatus(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, dto.AddStatusRequest{StatusName: "New"})

	fields, ok := apperrors.FieldErrors(err)
	suite.True(ok)
	suite.Contains(fields, "statusName")
}

// --- Sub-statuses ---

func (suite *PipelineServiceTestSuite) TestAddSubStatus_OrderIsMaxPlusOne() {
	cases := []struct {
		name     string
		existing int
		expected int
	}{
		{"empty parent", 0, 1},
		{"single child", 1, 2},
		{"gap in orders", 7, 8},
	}
	suite.expectRepCountry()
	parent := suite.newStatus("Offer", 2, false)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, parent.StatusID).Return(parent, nil)

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.repo.On("MaxSubStatusOrder", suite.ctx, parent.StatusID).Return(tc.existing, nil).Once()
			suite.repo.On("SaveSubStatus", suite.ctx, mock.MatchedBy(func(s domain.SubStatus) bool {
				return s.Order == tc.expected && s.IsActive && s.RepCountryStatusID == parent.StatusID
			})).Return(nil).Once()

			sub, err := suite.service.AddSubStatus(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, parent.StatusID, dto.AddSubStatusRequest{Name: "Conditional"})

			suite.Require().NoError(err)
			suite.Equal(tc.expected, sub.Order)
			suite.True(sub.IsActive)
		})
	}
}

func (suite *PipelineServiceTestSuite) TestEditSubStatus_UpdatesNameOnly() {
	suite.expectRepCountry()
	parent := suite.newStatus("Offer", 2, false)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, parent.StatusID).Return(parent, nil)
	stored := &domain.SubStatus{SubStatusID: uuid.NewString(), RepCountryStatusID: parent.StatusID, Name: "Old", Order: 3, IsActive: false}
	suite.repo.On("FindSubStatusByID", suite.ctx, parent.StatusID, stored.SubStatusID).Return(stored, nil)
	suite.repo.On("UpdateSubStatusName", suite.ctx, parent.StatusID, stored.SubStatusID, "Renamed", suite.actorID).
		Run(func(args mock.Arguments) { stored.Name = args.String(3) }).
		Return(nil).Once()

	sub, err := suite.service.EditSubStatus(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, parent.StatusID, stored.SubStatusID, dto.EditSubStatusRequest{Name: "Renamed"})

	suite.Require().NoError(err)
	suite.Equal("Renamed", sub.Name)
	suite.Equal(3, sub.Order)
	suite.False(sub.IsActive)
	suite.repo.AssertNotCalled(suite.T(), "UpdateSubStatusActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PipelineServiceTestSuite) TestToggleSubStatus_NoProtection() {
	suite.expectRepCountry()
	parent := suite.newStatus(domain.DefaultStatusName, 1, true)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, parent.StatusID).Return(parent, nil)
	stored := &domain.SubStatus{SubStatusID: uuid.NewString(), RepCountryStatusID: parent.StatusID, Name: domain.DefaultStatusName, Order: 1, IsActive: true}
	suite.repo.On("FindSubStatusByID", suite.ctx, parent.StatusID, stored.SubStatusID).Return(stored, nil)
	suite.repo.On("UpdateSubStatusActive", suite.ctx, parent.StatusID, stored.SubStatusID, false, suite.actorID).
		Run(func(args mock.Arguments) { stored.IsActive = args.Bool(3) }).
		Return(nil).Once()

	sub, err := suite.service.ToggleSubStatusActive(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, parent.StatusID, stored.SubStatusID, false)

	suite.Require().NoError(err)
	suite.False(sub.IsActive)
}

func (suite *PipelineServiceTestSuite) TestAddSubStatus_FailureIsLoggedAndReturned() {
	suite.expectRepCountry()
	parent := suite.newStatus("Offer", 2, false)
	suite.repo.On("FindStatusByID", suite.ctx, suite.rc.RepCountryID, parent.StatusID).Return(parent, nil)
	suite.repo.On("MaxSubStatusOrder", suite.ctx, parent.StatusID).Return(0, nil).Once()
	suite.repo.On("SaveSubStatus", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.AddSubStatus(suite.ctx, suite.tenantID, suite.actorID, suite.rc.RepCountryID, parent.StatusID, dto.AddSubStatusRequest{Name: "Conditional"})

	suite.ErrorIs(err, assert.AnError)
	suite.Contains(suite.logs.String(), "Conditional")
	suite.Contains(suite.logs.String(), suite.rc.RepCountryID)
}
