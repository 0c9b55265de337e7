package bankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// authEnvelope is the token part of the core banking API's auth response.
// The same payload also carries the flat user profile.
type authEnvelope struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

func decodeAuthResult(raw json.RawMessage) (*domain.AuthResult, error) {
	var env authEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed auth response: %v", apperrors.ErrUpstream, err)
	}
	if env.Token == "" {
		return nil, fmt.Errorf("%w: auth response carries no token", apperrors.ErrUpstream)
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: malformed auth profile: %v", apperrors.ErrUpstream, err)
	}
	return &domain.AuthResult{
		Token:     env.Token,
		TokenType: env.TokenType,
		ExpiresIn: env.ExpiresIn,
		User:      user,
	}, nil
}

// Login implements gateways.AuthAPI.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodPost, prefix: authPrefix, path: "/login", body: creds}, &raw); err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

// Register implements gateways.AuthAPI.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodPost, prefix: authPrefix, path: "/register", body: reg}, &raw); err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

// Me implements gateways.AuthAPI.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, request{method: http.MethodGet, prefix: authPrefix, path: "/me"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
