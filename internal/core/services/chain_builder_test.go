package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/SscSPs/expense_approval_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory serves a fixed reporting structure from memory.
type fakeDirectory struct {
	managers     map[string]string // user -> manager
	admin        string
	adminLookups int
}

func (d *fakeDirectory) GetManager(_ context.Context, userID string) (*domain.User, error) {
	managerID, ok := d.managers[userID]
	if !ok {
		return nil, nil
	}
	return newUser(managerID, domain.RoleManager, nil), nil
}

func (d *fakeDirectory) FindActiveAdmin(_ context.Context, _ string) (*domain.User, error) {
	d.adminLookups++
	if d.admin == "" {
		return nil, nil
	}
	return newUser(d.admin, domain.RoleAdmin, nil), nil
}

func TestChainBuilder_BuildChain(t *testing.T) {
	tests := []struct {
		name             string
		managers         map[string]string
		admin            string
		levels           int
		want             []string
		wantErr          error
		wantAdminLookups int
	}{
		{
			name:     "single level uses direct manager",
			managers: map[string]string{"emp": "m1"},
			admin:    "admin",
			levels:   1,
			want:     []string{"m1"},
		},
		{
			name:     "climbs one hop per level",
			managers: map[string]string{"emp": "m1", "m1": "m2", "m2": "m3"},
			admin:    "admin",
			levels:   3,
			want:     []string{"m1", "m2", "m3"},
		},
		{
			name:             "admin fills the remaining levels",
			managers:         map[string]string{"emp": "m1", "m1": "m2"},
			admin:            "admin",
			levels:           4,
			want:             []string{"m1", "m2", "admin", "admin"},
			wantAdminLookups: 1,
		},
		{
			name:             "no manager at all",
			managers:         map[string]string{},
			admin:            "admin",
			levels:           2,
			want:             []string{"admin", "admin"},
			wantAdminLookups: 1,
		},
		{
			name:             "manager cycle ends the climb",
			managers:         map[string]string{"emp": "m1", "m1": "m2", "m2": "m1"},
			admin:            "admin",
			levels:           5,
			want:             []string{"m1", "m2", "admin", "admin", "admin"},
			wantAdminLookups: 1,
		},
		{
			name:             "submitter reachable from own chain",
			managers:         map[string]string{"emp": "m1", "m1": "emp"},
			admin:            "admin",
			levels:           3,
			want:             []string{"m1", "admin", "admin"},
			wantAdminLookups: 1,
		},
		{
			name:             "exhausted chain without admin",
			managers:         map[string]string{},
			levels:           1,
			wantErr:          apperrors.ErrNoApproverAvailable,
			wantAdminLookups: 1,
		},
		{
			name:     "zero levels",
			managers: map[string]string{"emp": "m1"},
			admin:    "admin",
			levels:   0,
			wantErr:  apperrors.ErrInvalidLevels,
		},
		{
			name:     "too many levels",
			managers: map[string]string{"emp": "m1"},
			admin:    "admin",
			levels:   6,
			wantErr:  apperrors.ErrInvalidLevels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &fakeDirectory{managers: tt.managers, admin: tt.admin}
			builder := services.NewChainBuilder(dir)
			submitter := newUser("emp", domain.RoleEmployee, nil)

			chain, err := builder.BuildChain(context.Background(), *submitter, tt.levels)

			assert.Equal(t, tt.wantAdminLookups, dir.adminLookups)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, chain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, chain)
			assert.Len(t, chain, tt.levels)
		})
	}
}

func TestChainBuilder_DirectoryError(t *testing.T) {
	dir := new(MockUserRepository)
	ctx := context.Background()
	dir.On("GetManager", ctx, "emp").Return(nil, assert.AnError).Once()

	chain, err := services.NewChainBuilder(dir).BuildChain(ctx, *newUser("emp", domain.RoleEmployee, nil), 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, chain)
	dir.AssertNotCalled(t, "FindActiveAdmin", ctx, testCompanyID)
}

func TestFlowSelector_SelectFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("largest lower bound among candidates", func(t *testing.T) {
		repo := new(MockApprovalFlowRepository)
		amount := dec("2500")
		repo.On("FindActiveFlowsCovering", ctx, testCompanyID, amount).Return([]domain.ApprovalFlow{
			{FlowID: "mid", MinAmount: dec("1000"), MaxAmount: decPtr("5000"), ApprovalLevels: 2, IsActive: true},
			{FlowID: "base", MinAmount: dec("0"), ApprovalLevels: 1, IsActive: true},
		}, nil).Once()

		flow, err := services.NewFlowSelector(repo).SelectFlow(ctx, testCompanyID, amount)

		require.NoError(t, err)
		require.NotNil(t, flow)
		assert.Equal(t, "mid", flow.FlowID)
		repo.AssertExpectations(t)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		repo := new(MockApprovalFlowRepository)
		amount := dec("10")
		repo.On("FindActiveFlowsCovering", ctx, testCompanyID, amount).Return([]domain.ApprovalFlow{}, nil).Once()

		flow, err := services.NewFlowSelector(repo).SelectFlow(ctx, testCompanyID, amount)

		assert.NoError(t, err)
		assert.Nil(t, flow)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockApprovalFlowRepository)
		amount := dec("10")
		repo.On("FindActiveFlowsCovering", ctx, testCompanyID, amount).Return(nil, assert.AnError).Once()

		flow, err := services.NewFlowSelector(repo).SelectFlow(ctx, testCompanyID, amount)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, flow)
	})
}
