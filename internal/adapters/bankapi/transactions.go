package bankapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

func (c *Client) listTransactions(ctx context.Context, path string, query url.Values) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	if err := c.get(ctx, path, query, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return c.listTransactions(ctx, "/transactions", nil)
}

func (c *Client) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.get(ctx, "/transactions/"+pathID(transactionID), nil, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (c *Client) AccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return c.listTransactions(ctx, "/transactions/account/"+pathID(accountID), nil)
}

func (c *Client) RecentTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return c.listTransactions(ctx, "/transactions/user/"+pathID(userID)+"/recent", query)
}

func (c *Client) PendingApproval(ctx context.Context) ([]domain.Transaction, error) {
	return c.listTransactions(ctx, "/transactions/pending-approval", nil)
}

func (c *Client) CreateTransaction(ctx context.Context, cmd domain.TransactionCommand) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.post(ctx, "/transactions", nil, cmd, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (c *Client) ApproveTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.post(ctx, "/transactions/"+pathID(transactionID)+"/approve", nil, decision, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (c *Client) RejectTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.post(ctx, "/transactions/"+pathID(transactionID)+"/reject", nil, decision, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (c *Client) CancelTransaction(ctx context.Context, transactionID int64, userID int64, reason string) (*domain.Transaction, error) {
	var txn domain.Transaction
	query := url.Values{"userId": {pathID(userID)}, "reason": {reason}}
	if err := c.post(ctx, "/transactions/"+pathID(transactionID)+"/cancel", query, nil, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (c *Client) ProcessPending(ctx context.Context) error {
	return c.post(ctx, "/transactions/process-pending", nil, nil, nil)
}
