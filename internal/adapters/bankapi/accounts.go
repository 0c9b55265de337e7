package bankapi

import (
	"context"
	"net/url"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.get(ctx, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	var account domain.Account
	if err := c.get(ctx, "/accounts/"+pathID(accountID), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) ListUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.get(ctx, "/accounts/user/"+pathID(userID), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) TotalBalance(ctx context.Context, userID int64) (*domain.TotalBalance, error) {
	var total domain.TotalBalance
	if err := c.get(ctx, "/accounts/user/"+pathID(userID)+"/total-balance", nil, &total); err != nil {
		return nil, err
	}
	return &total, nil
}

func (c *Client) AccountBalance(ctx context.Context, accountID int64) (*domain.Balance, error) {
	var balance domain.Balance
	if err := c.get(ctx, "/accounts/"+pathID(accountID)+"/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) AccountExists(ctx context.Context, accountNumber string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.get(ctx, "/accounts/exists/"+accountNumber, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

func (c *Client) CreateAccount(ctx context.Context, cmd domain.NewAccount) (*domain.Account, error) {
	var account domain.Account
	if err := c.post(ctx, "/accounts", nil, cmd, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error) {
	var account domain.Account
	if err := c.put(ctx, "/accounts/"+pathID(accountID), cmd, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) SetAccountStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	var account domain.Account
	query := url.Values{"status": {string(status)}}
	if err := c.patch(ctx, "/accounts/"+pathID(accountID)+"/status", query, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CloseAccount(ctx context.Context, accountID int64) error {
	return c.delete(ctx, "/accounts/"+pathID(accountID))
}

func (c *Client) Transfer(ctx context.Context, cmd domain.TransferCommand) (*domain.TransferReceipt, error) {
	var receipt domain.TransferReceipt
	if err := c.post(ctx, "/accounts/transfer", nil, cmd, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
