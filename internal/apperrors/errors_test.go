package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKindOfAndHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus int
	}{
		{"overlapping range", fmt.Errorf("create flow: %w", apperrors.ErrOverlappingRange), apperrors.KindOverlappingRange, http.StatusBadRequest},
		{"invalid levels", apperrors.ErrInvalidLevels, apperrors.KindInvalidLevels, http.StatusBadRequest},
		{"no approver", fmt.Errorf("level 2: %w", apperrors.ErrNoApproverAvailable), apperrors.KindNoApproverAvailable, http.StatusBadRequest},
		{"not found or not authorized", apperrors.ErrNotFoundOrNotAuthorized, apperrors.KindNotFoundOrNotAuthorized, http.StatusNotFound},
		{"stale level", apperrors.ErrStaleApprovalLevel, apperrors.KindStaleApprovalLevel, http.StatusBadRequest},
		{"missing comments", apperrors.ErrMissingComments, apperrors.KindMissingComments, http.StatusBadRequest},
		{"validation app error", apperrors.NewValidationFailedError("amount must be positive"), apperrors.KindValidation, http.StatusBadRequest},
		{"not found app error", apperrors.NewNotFoundError("expense not found"), apperrors.KindNotFound, http.StatusNotFound},
		{"forbidden", apperrors.ErrForbidden, apperrors.KindForbidden, http.StatusForbidden},
		{"conflict", apperrors.NewConflictError("version mismatch"), apperrors.KindConflict, http.StatusConflict},
		{"internal", errors.New("connection reset"), apperrors.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, apperrors.KindOf(tt.err))
			assert.Equal(t, tt.wantStatus, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "amount must be positive", apperrors.PublicMessage(apperrors.NewValidationFailedError("amount must be positive")))
	assert.Equal(t, apperrors.ErrMissingComments.Error(), apperrors.PublicMessage(apperrors.ErrMissingComments))
	assert.Equal(t, "internal server error", apperrors.PublicMessage(apperrors.NewAppError(500, "failed to query expenses", errors.New("pq: relation missing"))))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperrors.NewAppError(500, "failed to save flow", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save flow: boom", err.Error())
}
