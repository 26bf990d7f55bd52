package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	UserReader portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LoadActor fetches the calling user. Unknown or inactive users are forbidden.
func (s *BaseService) LoadActor(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.UserReader.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Acting user not found", slog.String("user_id", userID))
			return nil, fmt.Errorf("%w: unknown user", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to load acting user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		s.LogWarn(ctx, "Inactive user attempted an action", slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrForbidden)
	}
	return user, nil
}

// AuthorizeRole checks that the actor holds one of the allowed roles.
func (s *BaseService) AuthorizeRole(ctx context.Context, actor *domain.User, allowed ...domain.UserRole) error {
	if slices.Contains(allowed, actor.Role) {
		return nil
	}
	s.LogWarn(ctx, "Role not allowed for action",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)))
	return fmt.Errorf("%w: role %s may not perform this action", apperrors.ErrForbidden, actor.Role)
}
