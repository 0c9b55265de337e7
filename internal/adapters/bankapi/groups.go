package bankapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (c *Client) CreateGroup(ctx context.Context, cmd domain.NewGroup) (*domain.Group, error) {
	var g domain.Group
	if err := c.post(ctx, "/groups", nil, cmd, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) ListGroups(ctx context.Context) ([]domain.Group, error) {
	var gs []domain.Group
	if err := c.get(ctx, "/groups", nil, &gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func (c *Client) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	var g domain.Group
	if err := c.get(ctx, "/groups/"+pathID(groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UserGroups(ctx context.Context, userID int64) ([]domain.Group, error) {
	var gs []domain.Group
	if err := c.get(ctx, "/groups/user/"+pathID(userID), nil, &gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func (c *Client) AddAccountToGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error) {
	var g domain.Group
	if err := c.post(ctx, "/groups/"+pathID(groupID)+"/accounts/"+pathID(accountID), nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) RemoveAccountFromGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error) {
	var g domain.Group
	err := c.do(ctx, request{method: http.MethodDelete, prefix: apiPrefix, path: "/groups/" + pathID(groupID) + "/accounts/" + pathID(accountID)}, &g)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) GroupAccounts(ctx context.Context, groupID int64) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.get(ctx, "/groups/"+pathID(groupID)+"/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GroupBalance(ctx context.Context, groupID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := c.get(ctx, "/groups/"+pathID(groupID)+"/balance", nil, &balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (c *Client) GroupStatistics(ctx context.Context, groupID int64) (*domain.GroupStatistics, error) {
	var stats domain.GroupStatistics
	if err := c.get(ctx, "/groups/"+pathID(groupID)+"/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SetGroupStatus(ctx context.Context, groupID int64, status domain.AccountStatus) (*domain.Group, error) {
	var g domain.Group
	query := url.Values{"status": {string(status)}}
	if err := c.patch(ctx, "/groups/"+pathID(groupID)+"/status", query, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) DeleteGroup(ctx context.Context, groupID int64) error {
	return c.delete(ctx, "/groups/"+pathID(groupID))
}

// TransferWithinGroup sends its parameters as query values, as the group
// endpoint takes no body.
func (c *Client) TransferWithinGroup(ctx context.Context, cmd domain.GroupTransferCommand) error {
	query := url.Values{
		"fromAccount": {cmd.FromAccount},
		"toAccount":   {cmd.ToAccount},
		"amount":      {cmd.Amount.String()},
	}
	return c.post(ctx, "/groups/"+pathID(cmd.GroupID)+"/transfer", query, nil, nil)
}
