package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

// cancelRefetchLimit is how many recent transactions a non-approver sees after a cancel.
const cancelRefetchLimit = 10

// ApprovalService is the pending-transaction approval client. It keeps no
// list of its own: every command is followed by a fresh read, whether the
// command succeeded or not.
type ApprovalService struct {
	BaseService
	api gateways.Factory[gateways.TransactionsAPI]
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(api gateways.Factory[gateways.TransactionsAPI]) *ApprovalService {
	return &ApprovalService{api: api}
}

var _ portssvc.ApprovalSvc = (*ApprovalService)(nil)

func (s *ApprovalService) ListPending(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapApproveTxn); err != nil {
		return nil, err
	}
	return s.api(sess).PendingApproval(ctx)
}

func (s *ApprovalService) GetTransaction(ctx context.Context, sess *domain.Session, transactionID int64) (*domain.Transaction, error) {
	return s.api(sess).GetTransaction(ctx, transactionID)
}

func (s *ApprovalService) Approve(ctx context.Context, sess *domain.Session, transactionID int64, comments string) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapApproveTxn); err != nil {
		return nil, err
	}
	client := s.api(sess)
	_, err := client.ApproveTransaction(ctx, transactionID, domain.ApprovalDecision{
		ManagerID: sess.User.ID,
		Comments:  strings.TrimSpace(comments),
	})
	if err != nil {
		s.LogError(ctx, err, "Approve failed", slog.Int64("transaction_id", transactionID))
	} else {
		s.LogInfo(ctx, "Transaction approved", slog.Int64("transaction_id", transactionID))
	}
	return s.refetch(ctx, client, err)
}

func (s *ApprovalService) Reject(ctx context.Context, sess *domain.Session, transactionID int64, reason, comments string) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapApproveTxn); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "a rejection reason is required")
	}
	client := s.api(sess)
	_, err := client.RejectTransaction(ctx, transactionID, domain.ApprovalDecision{
		ManagerID: sess.User.ID,
		Reason:    reason,
		Comments:  strings.TrimSpace(comments),
	})
	if err != nil {
		s.LogError(ctx, err, "Reject failed", slog.Int64("transaction_id", transactionID))
	} else {
		s.LogInfo(ctx, "Transaction rejected", slog.Int64("transaction_id", transactionID))
	}
	return s.refetch(ctx, client, err)
}

// Cancel withdraws a pending transaction. Approvers get the pending list
// back, everyone else their recent transactions.
func (s *ApprovalService) Cancel(ctx context.Context, sess *domain.Session, transactionID int64, reason string) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapTransfer); err != nil {
		return nil, err
	}
	client := s.api(sess)
	_, err := client.CancelTransaction(ctx, transactionID, sess.User.ID, strings.TrimSpace(reason))
	if err != nil {
		s.LogError(ctx, err, "Cancel failed", slog.Int64("transaction_id", transactionID))
	}
	if domain.Can(sess.Roles(), domain.CapApproveTxn) {
		return s.refetch(ctx, client, err)
	}
	list, listErr := client.RecentTransactions(ctx, sess.User.ID, cancelRefetchLimit)
	return settle(list, listErr, err)
}

func (s *ApprovalService) ProcessAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapApproveTxn); err != nil {
		return nil, err
	}
	client := s.api(sess)
	err := client.ProcessPending(ctx)
	if err != nil {
		s.LogError(ctx, err, "Processing pending transactions failed")
	}
	return s.refetch(ctx, client, err)
}

func (s *ApprovalService) refetch(ctx context.Context, client gateways.TransactionsAPI, cmdErr error) ([]domain.Transaction, error) {
	list, listErr := client.PendingApproval(ctx)
	return settle(list, listErr, cmdErr)
}

// settle combines a command error with the re-read that followed it. The
// command error wins; the list is returned whenever the re-read succeeded.
func settle(list []domain.Transaction, listErr, cmdErr error) ([]domain.Transaction, error) {
	if listErr != nil {
		list = nil
		if cmdErr == nil {
			return nil, listErr
		}
	}
	return list, cmdErr
}
