package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
)

type chainBuilder struct {
	BaseService
	directory portsrepo.Directory
}

// NewChainBuilder creates a chain builder that climbs the directory's reporting lines.
func NewChainBuilder(directory portsrepo.Directory) portssvc.ChainBuilderSvc {
	return &chainBuilder{directory: directory}
}

var _ portssvc.ChainBuilderSvc = (*chainBuilder)(nil)

// BuildChain climbs one manager per level starting at the submitter. When the
// line ends, or a manager repeats, the company's active admin fills the
// current and all remaining levels.
func (b *chainBuilder) BuildChain(ctx context.Context, submitter domain.User, levels int) ([]string, error) {
	if levels < domain.MinApprovalLevels || levels > domain.MaxApprovalLevels {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidLevels, levels)
	}

	chain := make([]string, 0, levels)
	visited := map[string]bool{submitter.UserID: true}
	current := submitter.UserID
	climbing := true
	adminID := ""

	for level := 1; level <= levels; level++ {
		if climbing {
			manager, err := b.directory.GetManager(ctx, current)
			if err != nil {
				b.LogError(ctx, err, "Failed to resolve manager", slog.String("user_id", current))
				return nil, fmt.Errorf("failed to resolve manager of %s: %w", current, err)
			}
			if manager != nil && !visited[manager.UserID] {
				visited[manager.UserID] = true
				current = manager.UserID
				chain = append(chain, manager.UserID)
				continue
			}
			if manager != nil {
				b.LogWarn(ctx, "Manager cycle detected, falling back to admin",
					slog.String("submitter_id", submitter.UserID),
					slog.String("manager_id", manager.UserID),
					slog.Int("level", level))
			}
			climbing = false
		}

		if adminID == "" {
			admin, err := b.directory.FindActiveAdmin(ctx, submitter.CompanyID)
			if err != nil {
				b.LogError(ctx, err, "Failed to find fallback admin", slog.String("company_id", submitter.CompanyID))
				return nil, fmt.Errorf("failed to find fallback admin: %w", err)
			}
			if admin == nil {
				return nil, fmt.Errorf("%w: level %d of %d", apperrors.ErrNoApproverAvailable, level, levels)
			}
			adminID = admin.UserID
		}
		chain = append(chain, adminID)
	}

	return chain, nil
}
