package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

type historyService struct {
	BaseService
	api gateways.Factory[gateways.TransactionReaderAPI]
}

// NewHistoryService creates the transaction history reader.
func NewHistoryService(api gateways.Factory[gateways.TransactionReaderAPI]) portssvc.TransactionHistorySvc {
	return &historyService{api: api}
}

func (s *historyService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewAllAccounts); err != nil {
		return nil, err
	}
	return s.api(sess).ListTransactions(ctx)
}

func (s *historyService) Recent(ctx context.Context, sess *domain.Session, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.api(sess).RecentTransactions(ctx, sess.User.ID, limit)
}

func (s *historyService) ForAccount(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Transaction, error) {
	return s.api(sess).AccountTransactions(ctx, accountID)
}
