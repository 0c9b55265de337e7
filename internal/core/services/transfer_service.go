package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

// TransferAPI is what the transfer forms need from the core banking API.
type TransferAPI interface {
	gateways.AccountReaderAPI
	gateways.TransferAPI
	gateways.GroupTransferAPI
	gateways.PaymentsAPI
	CreateTransaction(ctx context.Context, cmd domain.TransactionCommand) (*domain.Transaction, error)
}

type formKey struct {
	sessionID string
	kind      domain.FormKind
}

// TransferService keeps one form per session and kind and drives it through
// idle, validating, confirming, submitting and succeeded or failed.
type TransferService struct {
	BaseService
	api gateways.Factory[TransferAPI]

	mu    sync.Mutex
	forms map[formKey]*transferForm
}

// NewTransferService creates a new TransferService.
func NewTransferService(api gateways.Factory[TransferAPI]) *TransferService {
	return &TransferService{
		api:   api,
		forms: make(map[formKey]*transferForm),
	}
}

var _ portssvc.TransferFormSvc = (*TransferService)(nil)

func (s *TransferService) form(sess *domain.Session, kind domain.FormKind) *transferForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := formKey{sessionID: sess.ID, kind: kind}
	f, ok := s.forms[key]
	if !ok {
		f = newTransferForm(kind)
		s.forms[key] = f
	}
	return f
}

// authorizeForm rejects unknown kinds and kinds the session may not use.
func (s *TransferService) authorizeForm(ctx context.Context, sess *domain.Session, kind domain.FormKind) error {
	if _, ok := domain.ParseFormKind(string(kind)); !ok {
		return apperrors.NewValidationError("kind", fmt.Sprintf("unknown form kind %q", kind))
	}
	return s.Authorize(ctx, sess, capabilityFor(kind))
}

func capabilityFor(kind domain.FormKind) domain.Capability {
	if kind == domain.FormDeposit || kind == domain.FormWithdrawal {
		return domain.CapCashOperations
	}
	return domain.CapTransfer
}

func (s *TransferService) Snapshot(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	if err := s.authorizeForm(ctx, sess, kind); err != nil {
		return nil, err
	}
	f := s.form(sess, kind)

	f.mu.Lock()
	loaded := f.loaded
	f.mu.Unlock()
	if !loaded {
		accounts, err := s.sourceAccounts(ctx, s.api(sess), sess, kind)
		if err != nil {
			return nil, err
		}
		f.mu.Lock()
		f.accounts = accounts
		f.loaded = true
		f.mu.Unlock()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked(), nil
}

func (s *TransferService) Stage(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error) {
	if err := s.authorizeForm(ctx, sess, draft.Kind); err != nil {
		return nil, err
	}
	f := s.form(sess, draft.Kind)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.stageLocked(draft); err != nil {
		return f.snapshotLocked(), err
	}
	return f.snapshotLocked(), nil
}

func (s *TransferService) Confirm(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	if err := s.authorizeForm(ctx, sess, kind); err != nil {
		return nil, err
	}
	f := s.form(sess, kind)

	f.mu.Lock()
	draft, err := f.beginSubmitLocked()
	if err != nil {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, err
	}
	f.mu.Unlock()
	return s.run(ctx, sess, f, draft)
}

func (s *TransferService) Submit(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error) {
	if err := s.authorizeForm(ctx, sess, draft.Kind); err != nil {
		return nil, err
	}
	f := s.form(sess, draft.Kind)

	// Staging and claiming happen under one lock so a concurrent submit
	// cannot swap the draft in between.
	f.mu.Lock()
	err := f.stageLocked(draft)
	if err == nil {
		draft, err = f.beginSubmitLocked()
	}
	if err != nil {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, err
	}
	f.mu.Unlock()
	return s.run(ctx, sess, f, draft)
}

// run sends a claimed draft and records the outcome.
func (s *TransferService) run(ctx context.Context, sess *domain.Session, f *transferForm, draft domain.TransferDraft) (*domain.FormSnapshot, error) {
	client := s.api(sess)
	receipt, submitErr := s.send(ctx, client, draft)

	f.mu.Lock()
	f.finishLocked(receipt, submitErr)
	f.mu.Unlock()

	if submitErr != nil {
		s.LogInfo(ctx, "Transfer form submission failed",
			slog.String("kind", string(draft.Kind)),
			slog.String("error", submitErr.Error()))
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.snapshotLocked(), submitErr
	}

	s.LogInfo(ctx, "Transfer form submitted",
		slog.String("kind", string(draft.Kind)),
		slog.String("reference", receipt.Reference))

	// Best effort: the transfer already succeeded.
	if accounts, err := s.sourceAccounts(ctx, client, sess, draft.Kind); err != nil {
		s.LogError(ctx, err, "Failed to refetch accounts after transfer", slog.String("kind", string(draft.Kind)))
	} else {
		f.mu.Lock()
		f.accounts = accounts
		f.loaded = true
		f.mu.Unlock()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked(), nil
}

// send issues the command matching the draft's kind.
func (s *TransferService) send(ctx context.Context, client TransferAPI, d domain.TransferDraft) (*domain.FormReceipt, error) {
	switch d.Kind {
	case domain.FormInternalTransfer:
		r, err := client.Transfer(ctx, domain.TransferCommand{
			FromAccountNumber: d.Source,
			ToAccountNumber:   d.Destination,
			Amount:            d.Amount,
			Description:       d.Description,
		})
		if err != nil {
			return nil, err
		}
		if !r.Success {
			return nil, &apperrors.APIError{StatusCode: 200, Message: r.Message, Kind: apperrors.ErrUpstream}
		}
		return &domain.FormReceipt{Reference: r.TransactionID, Status: string(r.Status), Message: r.Message, Amount: r.Amount}, nil

	case domain.FormGroupTransfer:
		err := client.TransferWithinGroup(ctx, domain.GroupTransferCommand{
			GroupID:     d.GroupID,
			FromAccount: d.Source,
			ToAccount:   d.Destination,
			Amount:      d.Amount,
		})
		if err != nil {
			return nil, err
		}
		return &domain.FormReceipt{Status: string(domain.TxnCompleted), Message: "Group transfer completed", Amount: d.Amount}, nil

	case domain.FormPayment:
		r, err := client.ProcessPayment(ctx, domain.PaymentCommand{
			AccountNumber: d.Source,
			Recipient:     d.Destination,
			Amount:        d.Amount,
			Currency:      d.Currency,
			Description:   d.Description,
		})
		if err != nil {
			return nil, err
		}
		return &domain.FormReceipt{Reference: r.TransactionID, Status: r.Status, Message: r.Message, Amount: d.Amount}, nil

	case domain.FormDeposit, domain.FormWithdrawal:
		cmd := domain.TransactionCommand{Amount: d.Amount, Description: d.Description}
		if d.Kind == domain.FormDeposit {
			cmd.TransactionType = domain.Deposit
			cmd.ToAccountNumber = d.Source
		} else {
			cmd.TransactionType = domain.Withdrawal
			cmd.FromAccountNumber = d.Source
		}
		t, err := client.CreateTransaction(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return &domain.FormReceipt{Reference: t.TransactionID, Status: string(t.Status), Amount: t.Amount}, nil
	}
	return nil, fmt.Errorf("%w: unknown form kind %q", apperrors.ErrValidation, d.Kind)
}

// sourceAccounts reads the accounts offered by a form's "from" selector.
func (s *TransferService) sourceAccounts(ctx context.Context, client TransferAPI, sess *domain.Session, kind domain.FormKind) ([]domain.Account, error) {
	if kind == domain.FormDeposit || kind == domain.FormWithdrawal {
		return client.ListAccounts(ctx)
	}
	return client.ListUserAccounts(ctx, sess.User.ID)
}

func (s *TransferService) Cancel(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	if err := s.authorizeForm(ctx, sess, kind); err != nil {
		return nil, err
	}
	f := s.form(sess, kind)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.resetLocked(); err != nil {
		return f.snapshotLocked(), err
	}
	return f.snapshotLocked(), nil
}

// DiscardForms drops every form of a session.
func (s *TransferService) DiscardForms(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.forms {
		if key.sessionID == sessionID {
			delete(s.forms, key)
		}
	}
}
