package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is known but lacks the role for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a concurrent modification was detected.
var ErrConflict = errors.New("conflict")

// Approval workflow errors.
var (
	// ErrOverlappingRange is returned when an active approval flow would overlap another active flow of the same company.
	ErrOverlappingRange = errors.New("approval flow with overlapping amount range already exists")

	// ErrInvalidLevels is returned when approval levels fall outside 1..5.
	ErrInvalidLevels = errors.New("approval levels must be between 1 and 5")

	// ErrNoApproverAvailable is returned when the manager chain is exhausted and the company has no active admin.
	ErrNoApproverAvailable = errors.New("no approver available for approval level")

	// ErrNotFoundOrNotAuthorized is returned when the caller has no pending ledger row for the expense.
	ErrNotFoundOrNotAuthorized = errors.New("pending approval not found or not authorized")

	// ErrStaleApprovalLevel is returned when the ledger row is not at the expense's current level.
	ErrStaleApprovalLevel = errors.New("this is not the current approval level")

	// ErrMissingComments is returned when a rejection carries no comments.
	ErrMissingComments = errors.New("comments are required when rejecting an expense")
)

// Kind values are stable identifiers that clients can branch on.
const (
	KindValidation              = "ValidationError"
	KindOverlappingRange        = "OverlappingRange"
	KindInvalidLevels           = "InvalidLevels"
	KindNoApproverAvailable     = "NoApproverAvailable"
	KindNotFoundOrNotAuthorized = "NotFoundOrNotAuthorized"
	KindStaleApprovalLevel      = "StaleApprovalLevel"
	KindMissingComments         = "MissingComments"
	KindNotFound                = "NotFound"
	KindForbidden               = "Forbidden"
	KindDuplicate               = "Duplicate"
	KindConflict                = "Conflict"
	KindInternal                = "Internal"
)

// kindTable is checked in order; the more specific workflow kinds come first.
var kindTable = []struct {
	err    error
	kind   string
	status int
}{
	{ErrOverlappingRange, KindOverlappingRange, http.StatusBadRequest},
	{ErrInvalidLevels, KindInvalidLevels, http.StatusBadRequest},
	{ErrNoApproverAvailable, KindNoApproverAvailable, http.StatusBadRequest},
	{ErrNotFoundOrNotAuthorized, KindNotFoundOrNotAuthorized, http.StatusNotFound},
	{ErrStaleApprovalLevel, KindStaleApprovalLevel, http.StatusBadRequest},
	{ErrMissingComments, KindMissingComments, http.StatusBadRequest},
	{ErrValidation, KindValidation, http.StatusBadRequest},
	{ErrNotFound, KindNotFound, http.StatusNotFound},
	{ErrForbidden, KindForbidden, http.StatusForbidden},
	{ErrDuplicate, KindDuplicate, http.StatusConflict},
	{ErrConflict, KindConflict, http.StatusConflict},
}

// AppError carries an HTTP-ish code, a user-facing message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError returns an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError returns an AppError wrapping ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// KindOf returns the machine-checkable kind for err.
func KindOf(err error) string {
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// HTTPStatus maps err to the status code handlers should respond with.
func HTTPStatus(err error) int {
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			return k.status
		}
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the message that is safe to show to clients.
// Internal errors collapse to a generic message.
func PublicMessage(err error) string {
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			var appErr *AppError
			if errors.As(err, &appErr) && appErr.Message != "" {
				return appErr.Message
			}
			return err.Error()
		}
	}
	return "internal server error"
}
