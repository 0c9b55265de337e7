package bankapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

func (c *Client) CreateUser(ctx context.Context, cmd domain.NewUser) (*domain.User, error) {
	var u domain.User
	if err := c.post(ctx, "/users", nil, cmd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var us []domain.User
	if err := c.get(ctx, "/users", nil, &us); err != nil {
		return nil, err
	}
	return us, nil
}

func (c *Client) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/users/"+pathID(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/users/username/"+username, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) SearchUsers(ctx context.Context, name string) ([]domain.User, error) {
	var us []domain.User
	if err := c.get(ctx, "/users/search", url.Values{"name": {name}}, &us); err != nil {
		return nil, err
	}
	return us, nil
}

func (c *Client) SetUserActive(ctx context.Context, userID int64, active bool) (*domain.User, error) {
	var u domain.User
	query := url.Values{"isActive": {strconv.FormatBool(active)}}
	if err := c.patch(ctx, "/users/"+pathID(userID)+"/status", query, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) AddRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error) {
	var u domain.User
	query := url.Values{"role": {role.WireName()}}
	if err := c.patch(ctx, "/users/"+pathID(userID)+"/role", query, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
