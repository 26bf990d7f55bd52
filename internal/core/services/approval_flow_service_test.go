package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/core/services"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ApprovalFlowServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	flowRepo *MockApprovalFlowRepository
	userRepo *MockUserRepository
	service  portssvc.ApprovalFlowSvcFacade
	admin    *domain.User
}

func (suite *ApprovalFlowServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.flowRepo = new(MockApprovalFlowRepository)
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewApprovalFlowService(suite.flowRepo, suite.userRepo)
	suite.admin = newUser("admin-1", domain.RoleAdmin, nil)
	suite.userRepo.On("FindUserByID", suite.ctx, suite.admin.UserID).Return(suite.admin, nil).Maybe()
}

func (suite *ApprovalFlowServiceTestSuite) existingFlows() []domain.ApprovalFlow {
	return []domain.ApprovalFlow{
		{FlowID: "small", CompanyID: testCompanyID, Name: "Small", MinAmount: dec("0"), MaxAmount: decPtr("999.99"), ApprovalLevels: 1, IsActive: true},
		{FlowID: "large", CompanyID: testCompanyID, Name: "Large", MinAmount: dec("5000"), ApprovalLevels: 3, IsActive: true},
	}
}

func (suite *ApprovalFlowServiceTestSuite) TestCreateFlow_Success() {
	req := dto.CreateApprovalFlowRequest{Name: " Medium ", MinAmount: dec("1000"), MaxAmount: decPtr("4999.99"), ApprovalLevels: 2}

	suite.flowRepo.On("ListActiveFlows", suite.ctx, testCompanyID).Return(suite.existingFlows(), nil).Once()
	suite.flowRepo.On("SaveFlow", suite.ctx, mock.MatchedBy(func(f domain.ApprovalFlow) bool {
		return f.Name == "Medium" && f.CompanyID == testCompanyID && f.IsActive && f.ApprovalLevels == 2 &&
			f.CreatedBy == suite.admin.UserID && f.Version == 1
	})).Return(nil).Once()

	flow, err := suite.service.CreateFlow(suite.ctx, suite.admin.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(flow)
	suite.NotEmpty(flow.FlowID)
	suite.True(flow.MinAmount.Equal(dec("1000")))
	suite.flowRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalFlowServiceTestSuite) TestCreateFlow_OverlappingRange() {
	tests := []struct {
		name string
		req  dto.CreateApprovalFlowRequest
	}{
		{"shares upper bound", dto.CreateApprovalFlowRequest{Name: "Edge", MinAmount: dec("999.99"), MaxAmount: decPtr("2000"), ApprovalLevels: 2}},
		{"unbounded over large", dto.CreateApprovalFlowRequest{Name: "Open", MinAmount: dec("1000"), ApprovalLevels: 2}},
		{"inside small", dto.CreateApprovalFlowRequest{Name: "Inner", MinAmount: dec("10"), MaxAmount: decPtr("20"), ApprovalLevels: 1}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.flowRepo.On("ListActiveFlows", suite.ctx, testCompanyID).Return(suite.existingFlows(), nil).Once()

			flow, err := suite.service.CreateFlow(suite.ctx, suite.admin.UserID, tt.req)

			suite.Require().Error(err)
			suite.Nil(flow)
			suite.ErrorIs(err, apperrors.ErrOverlappingRange)
			suite.flowRepo.AssertNotCalled(suite.T(), "SaveFlow", mock.Anything, mock.Anything)
		})
	}
}

func (suite *ApprovalFlowServiceTestSuite) TestCreateFlow_InvalidInput() {
	tests := []struct {
		name    string
		req     dto.CreateApprovalFlowRequest
		wantErr error
	}{
		{"zero levels", dto.CreateApprovalFlowRequest{Name: "X", MinAmount: dec("1000"), ApprovalLevels: 0}, apperrors.ErrInvalidLevels},
		{"six levels", dto.CreateApprovalFlowRequest{Name: "X", MinAmount: dec("1000"), ApprovalLevels: 6}, apperrors.ErrInvalidLevels},
		{"max below min", dto.CreateApprovalFlowRequest{Name: "X", MinAmount: dec("2000"), MaxAmount: decPtr("1500"), ApprovalLevels: 1}, apperrors.ErrValidation},
		{"blank name", dto.CreateApprovalFlowRequest{Name: "  ", MinAmount: dec("1000"), ApprovalLevels: 1}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()

			flow, err := suite.service.CreateFlow(suite.ctx, suite.admin.UserID, tt.req)

			suite.Require().Error(err)
			suite.Nil(flow)
			suite.ErrorIs(err, tt.wantErr)
			suite.flowRepo.AssertNotCalled(suite.T(), "ListActiveFlows", mock.Anything, mock.Anything)
			suite.flowRepo.AssertNotCalled(suite.T(), "SaveFlow", mock.Anything, mock.Anything)
		})
	}
}

func (suite *ApprovalFlowServiceTestSuite) TestCreateFlow_NonAdminForbidden() {
	manager := newUser("mgr-1", domain.RoleManager, nil)
	suite.userRepo.On("FindUserByID", suite.ctx, manager.UserID).Return(manager, nil).Once()

	flow, err := suite.service.CreateFlow(suite.ctx, manager.UserID, dto.CreateApprovalFlowRequest{Name: "X", ApprovalLevels: 1})

	suite.Require().Error(err)
	suite.Nil(flow)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalFlowServiceTestSuite) TestUpdateFlow_ExcludesItselfFromOverlap() {
	flows := suite.existingFlows()
	current := flows[1]
	current.Version = 3
	suite.flowRepo.On("FindFlowByID", suite.ctx, testCompanyID, "large").Return(&current, nil).Once()
	suite.flowRepo.On("ListActiveFlows", suite.ctx, testCompanyID).Return(flows, nil).Once()
	suite.flowRepo.On("UpdateFlow", suite.ctx, mock.MatchedBy(func(f domain.ApprovalFlow) bool {
		return f.FlowID == "large" && f.MinAmount.Equal(dec("4000")) && f.ApprovalLevels == 4 &&
			f.Version == 3 && f.LastUpdatedBy == suite.admin.UserID
	})).Return(nil).Once()

	levels := 4
	updated, err := suite.service.UpdateFlow(suite.ctx, suite.admin.UserID, "large",
		dto.UpdateApprovalFlowRequest{MinAmount: decPtr("4000"), ApprovalLevels: &levels})

	suite.Require().NoError(err)
	suite.Equal(int64(4), updated.Version)
	suite.flowRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalFlowServiceTestSuite) TestUpdateFlow_ReactivationOverlaps() {
	stale := domain.ApprovalFlow{FlowID: "old", CompanyID: testCompanyID, Name: "Old", MinAmount: dec("500"), MaxAmount: decPtr("1500"), ApprovalLevels: 1, IsActive: false}
	suite.flowRepo.On("FindFlowByID", suite.ctx, testCompanyID, "old").Return(&stale, nil).Once()
	suite.flowRepo.On("ListActiveFlows", suite.ctx, testCompanyID).Return(suite.existingFlows(), nil).Once()

	active := true
	_, err := suite.service.UpdateFlow(suite.ctx, suite.admin.UserID, "old", dto.UpdateApprovalFlowRequest{IsActive: &active})

	suite.ErrorIs(err, apperrors.ErrOverlappingRange)
	suite.flowRepo.AssertNotCalled(suite.T(), "UpdateFlow", mock.Anything, mock.Anything)
}

func (suite *ApprovalFlowServiceTestSuite) TestDeactivateFlow() {
	flow := suite.existingFlows()[0]
	suite.flowRepo.On("FindFlowByID", suite.ctx, testCompanyID, "small").Return(&flow, nil).Once()
	suite.flowRepo.On("UpdateFlow", suite.ctx, mock.MatchedBy(func(f domain.ApprovalFlow) bool {
		return f.FlowID == "small" && !f.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateFlow(suite.ctx, suite.admin.UserID, "small")

	suite.NoError(err)
	suite.flowRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalFlowServiceTestSuite) TestDeactivateFlow_AlreadyInactive() {
	flow := suite.existingFlows()[0]
	flow.IsActive = false
	suite.flowRepo.On("FindFlowByID", suite.ctx, testCompanyID, "small").Return(&flow, nil).Once()

	err := suite.service.DeactivateFlow(suite.ctx, suite.admin.UserID, "small")

	suite.NoError(err)
	suite.flowRepo.AssertNotCalled(suite.T(), "UpdateFlow", mock.Anything, mock.Anything)
}

func (suite *ApprovalFlowServiceTestSuite) TestDeactivateFlow_NotFound() {
	suite.flowRepo.On("FindFlowByID", suite.ctx, testCompanyID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateFlow(suite.ctx, suite.admin.UserID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ApprovalFlowServiceTestSuite) TestListFlows() {
	suite.Run("admin", func() {
		suite.SetupTest()
		suite.flowRepo.On("ListFlowsByCompany", suite.ctx, testCompanyID).Return(suite.existingFlows(), nil).Once()

		flows, err := suite.service.ListFlows(suite.ctx, suite.admin.UserID)

		suite.Require().NoError(err)
		suite.Len(flows, 2)
	})

	suite.Run("employees read their company's flows", func() {
		suite.SetupTest()
		suite.userRepo.On("FindUserByID", suite.ctx, "emp-1").Return(newUser("emp-1", domain.RoleEmployee, nil), nil).Once()
		suite.flowRepo.On("ListFlowsByCompany", suite.ctx, testCompanyID).Return(suite.existingFlows(), nil).Once()

		flows, err := suite.service.ListFlows(suite.ctx, "emp-1")

		suite.Require().NoError(err)
		suite.Len(flows, 2)
	})

	suite.Run("inactive users are refused", func() {
		suite.SetupTest()
		inactive := newUser("emp-2", domain.RoleEmployee, nil)
		inactive.IsActive = false
		suite.userRepo.On("FindUserByID", suite.ctx, "emp-2").Return(inactive, nil).Once()

		_, err := suite.service.ListFlows(suite.ctx, "emp-2")

		suite.ErrorIs(err, apperrors.ErrForbidden)
		suite.flowRepo.AssertNotCalled(suite.T(), "ListFlowsByCompany", mock.Anything, mock.Anything)
	})
}

func TestApprovalFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalFlowServiceTestSuite))
}
