package dto

import (
	"time"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Approval Flow DTOs ---

// CreateApprovalFlowRequest defines data for creating an approval flow.
// Level bounds are checked by the service so that they surface as InvalidLevels.
type CreateApprovalFlowRequest struct {
	Name           string           `json:"name" binding:"required,max=100"`
	MinAmount      decimal.Decimal  `json:"minAmount" binding:"non_negative_amount"`
	MaxAmount      *decimal.Decimal `json:"maxAmount,omitempty"` // Omit for an unbounded range
	ApprovalLevels int              `json:"approvalLevels"`
}

// UpdateApprovalFlowRequest defines the fields that can be changed on a flow.
// Nil fields are left untouched.
type UpdateApprovalFlowRequest struct {
	Name            *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	MinAmount       *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount       *decimal.Decimal `json:"maxAmount,omitempty"`
	RemoveMaxAmount bool             `json:"removeMaxAmount,omitempty"` // Makes the range unbounded
	ApprovalLevels  *int             `json:"approvalLevels,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
}

// ApprovalFlowResponse defines data returned for an approval flow.
type ApprovalFlowResponse struct {
	FlowID         string           `json:"flowID"`
	CompanyID      string           `json:"companyID"`
	Name           string           `json:"name"`
	MinAmount      decimal.Decimal  `json:"minAmount"`
	MaxAmount      *decimal.Decimal `json:"maxAmount,omitempty"`
	ApprovalLevels int              `json:"approvalLevels"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy  string           `json:"lastUpdatedBy"`
	Version        int64            `json:"version"`
}

// ToApprovalFlowResponse converts domain.ApprovalFlow to DTO.
func ToApprovalFlowResponse(f *domain.ApprovalFlow) ApprovalFlowResponse {
	return ApprovalFlowResponse{
		FlowID:         f.FlowID,
		CompanyID:      f.CompanyID,
		Name:           f.Name,
		MinAmount:      f.MinAmount,
		MaxAmount:      f.MaxAmount,
		ApprovalLevels: f.ApprovalLevels,
		IsActive:       f.IsActive,
		CreatedAt:      f.CreatedAt,
		CreatedBy:      f.CreatedBy,
		LastUpdatedAt:  f.LastUpdatedAt,
		LastUpdatedBy:  f.LastUpdatedBy,
		Version:        f.Version,
	}
}

// ListApprovalFlowsResponse wraps a list of approval flows.
type ListApprovalFlowsResponse struct {
	Flows []ApprovalFlowResponse `json:"flows"`
}

// ToListApprovalFlowsResponse converts a slice of domain.ApprovalFlow to DTO.
func ToListApprovalFlowsResponse(fs []domain.ApprovalFlow) ListApprovalFlowsResponse {
	list := make([]ApprovalFlowResponse, len(fs))
	for i := range fs {
		list[i] = ToApprovalFlowResponse(&fs[i])
	}
	return ListApprovalFlowsResponse{Flows: list}
}
