package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// transferForm is one form instance. All fields are guarded by mu; the lock
// is never held across a network call.
type transferForm struct {
	mu       sync.Mutex
	kind     domain.FormKind
	state    domain.FormState
	draft    domain.TransferDraft
	errMsg   string
	receipt  *domain.FormReceipt
	accounts []domain.Account
	loaded   bool
}

func newTransferForm(kind domain.FormKind) *transferForm {
	return &transferForm{
		kind:  kind,
		state: domain.FormIdle,
		draft: domain.TransferDraft{Kind: kind},
	}
}

// snapshotLocked copies the form. Callers hold mu.
func (f *transferForm) snapshotLocked() *domain.FormSnapshot {
	snap := &domain.FormSnapshot{
		Kind:     f.kind,
		State:    f.state,
		Draft:    f.draft,
		Error:    f.errMsg,
		Accounts: append([]domain.Account{}, f.accounts...),
	}
	if f.receipt != nil {
		r := *f.receipt
		snap.Receipt = &r
	}
	return snap
}

// stageLocked validates draft and moves the form to confirming. An invalid
// draft leaves the form idle with the validation message.
func (f *transferForm) stageLocked(draft domain.TransferDraft) error {
	if f.state == domain.FormSubmitting {
		return apperrors.ErrSubmitInFlight
	}
	if !f.state.AcceptsDraft() {
		return fmt.Errorf("%w: form is %s", apperrors.ErrConflict, f.state)
	}

	f.state = domain.FormValidating
	draft = normalizeDraft(f.kind, draft)
	f.draft = draft
	f.receipt = nil
	if err := validateDraft(draft); err != nil {
		f.state = domain.FormIdle
		f.errMsg = err.Message
		return err
	}
	f.errMsg = ""
	f.state = domain.FormConfirming
	return nil
}

// beginSubmitLocked claims the form for a submission.
func (f *transferForm) beginSubmitLocked() (domain.TransferDraft, error) {
	switch f.state {
	case domain.FormSubmitting:
		return domain.TransferDraft{}, apperrors.ErrSubmitInFlight
	case domain.FormConfirming:
	default:
		return domain.TransferDraft{}, fmt.Errorf("%w: form is %s, nothing to confirm", apperrors.ErrConflict, f.state)
	}
	f.state = domain.FormSubmitting
	return f.draft, nil
}

// finishLocked records the outcome of a submission. A success clears the
// fields; a failure returns the form to idle with the fields and the server
// message kept.
func (f *transferForm) finishLocked(receipt *domain.FormReceipt, err error) {
	if err != nil {
		f.state = domain.FormIdle
		f.errMsg = apperrors.Message(err, "The transaction could not be completed")
		return
	}
	f.state = domain.FormSucceeded
	f.errMsg = ""
	f.receipt = receipt
	f.draft = domain.TransferDraft{Kind: f.kind}
}

func (f *transferForm) resetLocked() error {
	if f.state == domain.FormSubmitting {
		return apperrors.ErrSubmitInFlight
	}
	f.state = domain.FormIdle
	f.draft = domain.TransferDraft{Kind: f.kind}
	f.errMsg = ""
	f.receipt = nil
	return nil
}

func normalizeDraft(kind domain.FormKind, d domain.TransferDraft) domain.TransferDraft {
	d.Kind = kind
	d.Source = strings.TrimSpace(d.Source)
	d.Destination = strings.TrimSpace(d.Destination)
	d.Description = strings.TrimSpace(d.Description)
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
	if kind == domain.FormPayment && d.Currency == "" {
		d.Currency = "USD"
	}
	return d
}

// validateDraft checks a draft before it may reach the network. The core
// banking API validates again; these checks only spare a round trip.
func validateDraft(d domain.TransferDraft) *apperrors.ValidationError {
	if d.Source == "" {
		return apperrors.NewValidationError("source", "source account is required")
	}
	needsDestination := d.Kind != domain.FormDeposit && d.Kind != domain.FormWithdrawal
	if needsDestination && d.Destination == "" {
		if d.Kind == domain.FormPayment {
			return apperrors.NewValidationError("destination", "recipient is required")
		}
		return apperrors.NewValidationError("destination", "destination account is required")
	}
	if d.Kind == domain.FormGroupTransfer && d.GroupID <= 0 {
		return apperrors.NewValidationError("groupId", "group is required")
	}
	if !d.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "amount must be greater than zero")
	}
	if needsDestination && d.Kind != domain.FormPayment && d.Source == d.Destination {
		return apperrors.NewValidationError("destination", "cannot transfer to the same account")
	}
	return nil
}
