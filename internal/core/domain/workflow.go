package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
)

// WorkflowPhase tags a WorkflowState.
type WorkflowPhase string

const (
	PhaseNotStarted WorkflowPhase = "NOT_STARTED"
	PhaseInProgress WorkflowPhase = "IN_PROGRESS"
	PhaseApproved   WorkflowPhase = "APPROVED"
	PhaseRejected   WorkflowPhase = "REJECTED"
)

// WorkflowState is the approval state of one expense. Level is 0 for
// NOT_STARTED and the current (or final) level otherwise.
type WorkflowState struct {
	Phase WorkflowPhase
	Level int
}

func NotStarted() WorkflowState { return WorkflowState{Phase: PhaseNotStarted} }
func InProgress(level int) WorkflowState { return WorkflowState{Phase: PhaseInProgress, Level: level} }
func Approved(finalLevel int) WorkflowState { return WorkflowState{Phase: PhaseApproved, Level: finalLevel} }
func Rejected(atLevel int) WorkflowState { return WorkflowState{Phase: PhaseRejected, Level: atLevel} }

// IsTerminal reports whether the state accepts no further decisions.
func (s WorkflowState) IsTerminal() bool {
	return s.Phase == PhaseApproved || s.Phase == PhaseRejected
}

// Status maps the state onto the persisted expense status.
func (s WorkflowState) Status() ExpenseStatus {
	switch s.Phase {
	case PhaseInProgress:
		return StatusProcessing
	case PhaseApproved:
		return StatusApproved
	case PhaseRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

func (s WorkflowState) String() string {
	if s.Phase == PhaseInProgress {
		return fmt.Sprintf("%s(level=%d)", s.Phase, s.Level)
	}
	return string(s.Phase)
}

// LedgerMutationKind identifies a write against the approval ledger.
type LedgerMutationKind string

const (
	MutationRecordDecision   LedgerMutationKind = "record_decision"
	MutationRejectAllPending LedgerMutationKind = "reject_all_pending"
)

// LedgerMutation is one ledger write produced by a transition.
type LedgerMutation struct {
	Kind     LedgerMutationKind
	EntryID  string // set for MutationRecordDecision
	Action   ApprovalAction
	Comments *string
}

// Transition is the pure result of a workflow step: the next state plus the
// ledger writes that must be applied atomically with it.
type Transition struct {
	From      WorkflowState
	To        WorkflowState
	Mutations []LedgerMutation
	Remarks   *string
}

// Changed reports whether the transition moves the workflow.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// SubmitTransition starts a workflow for a freshly created expense. A zero
// chain length (no matching flow) keeps the expense NOT_STARTED. Ledger rows
// for the chain are created by the caller together with the expense.
func SubmitTransition(chainLength int) Transition {
	if chainLength == 0 {
		return Transition{From: NotStarted(), To: NotStarted()}
	}
	return Transition{From: NotStarted(), To: InProgress(1)}
}

// Decision is an approver's verdict on their ledger row.
type Decision struct {
	Action   ApprovalAction
	Comments string
}

// DecideTransition validates a decision against the current state and the
// approver's ledger row and returns the resulting transition. It performs no
// I/O; nextLevelPending tells whether a pending row exists at entry.Level+1.
func DecideTransition(current WorkflowState, entry ApprovalLedgerEntry, d Decision, nextLevelPending bool) (Transition, error) {
	comments := strings.TrimSpace(d.Comments)

	switch d.Action {
	case ActionApproved, ActionRejected:
	default:
		return Transition{}, apperrors.NewValidationFailedError(fmt.Sprintf("unsupported decision %q", d.Action))
	}

	if d.Action == ActionRejected && comments == "" {
		return Transition{}, apperrors.ErrMissingComments
	}
	if !entry.IsPending() || current.IsTerminal() {
		return Transition{}, apperrors.ErrNotFoundOrNotAuthorized
	}
	if current.Phase != PhaseInProgress || current.Level != entry.Level {
		return Transition{}, fmt.Errorf("%w: row level %d, expense level %d",
			apperrors.ErrStaleApprovalLevel, entry.Level, current.Level)
	}

	var commentsPtr *string
	if comments != "" {
		commentsPtr = &comments
	}

	t := Transition{
		From: current,
		Mutations: []LedgerMutation{{
			Kind:     MutationRecordDecision,
			EntryID:  entry.EntryID,
			Action:   d.Action,
			Comments: commentsPtr,
		}},
	}

	if d.Action == ActionRejected {
		t.To = Rejected(entry.Level)
		t.Remarks = commentsPtr
		t.Mutations = append(t.Mutations, LedgerMutation{Kind: MutationRejectAllPending, Action: ActionRejected})
		return t, nil
	}

	if nextLevelPending {
		t.To = InProgress(entry.Level + 1)
	} else {
		t.To = Approved(entry.Level)
	}
	return t, nil
}
