package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// TransferFormSvc drives the per-session transfer forms.
type TransferFormSvc interface {
	// Snapshot returns the current form of the given kind, loading its account list on first use.
	Snapshot(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error)

	// Stage validates a draft and holds it for confirmation. An invalid draft never reaches the network.
	Stage(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error)

	// Confirm submits the staged draft.
	Confirm(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error)

	// Submit validates and submits a draft without a confirmation step.
	Submit(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error)

	// Cancel clears the form and returns it to idle.
	Cancel(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error)

	// DiscardForms drops every form of a session.
	DiscardForms(sessionID string)
}

// ApprovalSvc is the pending-transaction approval client. Every command is
// followed by a fresh read of the pending list.
type ApprovalSvc interface {
	ListPending(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, sess *domain.Session, transactionID int64) (*domain.Transaction, error)
	Approve(ctx context.Context, sess *domain.Session, transactionID int64, comments string) ([]domain.Transaction, error)
	Reject(ctx context.Context, sess *domain.Session, transactionID int64, reason, comments string) ([]domain.Transaction, error)
	Cancel(ctx context.Context, sess *domain.Session, transactionID int64, reason string) ([]domain.Transaction, error)
	ProcessAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error)
}

// TransactionHistorySvc reads transaction history.
type TransactionHistorySvc interface {
	ListAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error)
	Recent(ctx context.Context, sess *domain.Session, limit int) ([]domain.Transaction, error)
	ForAccount(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Transaction, error)
}
