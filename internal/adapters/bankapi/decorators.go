package bankapi

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

func (c *Client) AddDecorator(ctx context.Context, cmd domain.NewDecorator) (*domain.Decorator, error) {
	var d domain.Decorator
	if err := c.post(ctx, "/decorators", nil, cmd, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) AccountDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error) {
	var ds []domain.Decorator
	if err := c.get(ctx, "/decorators/account/"+pathID(accountID), nil, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *Client) ActiveDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error) {
	var ds []domain.Decorator
	if err := c.get(ctx, "/decorators/account/"+pathID(accountID)+"/active", nil, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *Client) AccountFeatures(ctx context.Context, accountID int64) ([]string, error) {
	var features []string
	if err := c.get(ctx, "/decorators/account/"+pathID(accountID)+"/features", nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) ActivateDecorator(ctx context.Context, decoratorID int64) (*domain.Decorator, error) {
	var d domain.Decorator
	if err := c.patch(ctx, "/decorators/"+pathID(decoratorID)+"/activate", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) RemoveDecorator(ctx context.Context, decoratorID int64) error {
	return c.delete(ctx, "/decorators/"+pathID(decoratorID))
}

func (c *Client) ApplyMonthlyFees(ctx context.Context) error {
	return c.post(ctx, "/decorators/apply-fees", nil, nil, nil)
}

func (c *Client) DecoratorsInfo(ctx context.Context) (string, error) {
	var info string
	if err := c.get(ctx, "/decorators/info", nil, &info); err != nil {
		return "", err
	}
	return info, nil
}
