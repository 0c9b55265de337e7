package bankapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/bank_portal/internal/adapters/bankapi"
	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newConnector(t *testing.T, handler http.HandlerFunc) *bankapi.Connector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conn, err := bankapi.NewConnector(bankapi.Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return conn
}

func session() *domain.Session {
	return &domain.Session{ID: "sess-1", Token: "upstream-token", User: domain.User{ID: 7, Roles: []string{"ROLE_CUSTOMER"}}}
}

func TestNewConnector_RejectsBadBaseURL(t *testing.T) {
	_, err := bankapi.NewConnector(bankapi.Options{})
	assert.Error(t, err)

	_, err = bankapi.NewConnector(bankapi.Options{BaseURL: "localhost"})
	assert.Error(t, err)
}

func TestClient_SendsBearerTokenAndAPIPrefix(t *testing.T) {
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/accounts/user/7", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"accountNumber":"ACC-1","accountType":"SAVINGS","status":"ACTIVE","balance":120.5}]`)
	})

	accounts, err := conn.For(session()).ListUserAccounts(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ACC-1", accounts[0].AccountNumber)
	assert.True(t, decimal.RequireFromString("120.5").Equal(accounts[0].Balance))
}

func TestClient_UnauthorizedClearsSessionExactlyOnce(t *testing.T) {
	var upstreamCalls atomic.Int32
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Unauthorized","message":"JWT expired"}`)
	})

	var expired atomic.Int32
	var expiredID string
	conn.OnSessionExpired(func(ctx context.Context, sess *domain.Session) {
		expired.Add(1)
		expiredID = sess.ID
	})

	client := conn.For(session())
	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListAccounts(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(5), upstreamCalls.Load())
	assert.Equal(t, int32(1), expired.Load())
	assert.Equal(t, "sess-1", expiredID)
	for _, err := range errs {
		assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
		assert.True(t, bankapi.IsSessionExpired(err))
	}
}

func TestClient_UnauthorizedLoginDoesNotExpireAnything(t *testing.T) {
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Bad credentials"}`)
	})
	conn.OnSessionExpired(func(context.Context, *domain.Session) {
		t.Fatal("login failure must not clear a session")
	})

	_, err := conn.For(nil).Login(context.Background(), domain.Credentials{Username: "sara", Password: "nope"})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.Equal(t, "Bad credentials", apperrors.Message(err, ""))
}

func TestClient_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{"forbidden uses message", http.StatusForbidden, `{"message":"Access denied","error":"Forbidden"}`, apperrors.ErrForbidden, "Access denied"},
		{"not found falls back to error", http.StatusNotFound, `{"error":"Account not found"}`, apperrors.ErrNotFound, "Account not found"},
		{"validation falls back to details", http.StatusBadRequest, `{"details":"amount must be positive"}`, apperrors.ErrValidation, "amount must be positive"},
		{"conflict plain text", http.StatusConflict, `account already exists`, apperrors.ErrConflict, "account already exists"},
		{"server error without message", http.StatusInternalServerError, `{}`, apperrors.ErrUpstream, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := conn.For(session()).GetAccount(context.Background(), 3)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var apiErr *apperrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	conn, err := bankapi.NewConnector(bankapi.Options{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = conn.For(session()).ListAccounts(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestClient_CancelledContextIsNotTransportError(t *testing.T) {
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.For(session()).ListAccounts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_LoginDecodesAuthResponse(t *testing.T) {
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "sara", gjson.GetBytes(body, "username").String())
		assert.Equal(t, "secret", gjson.GetBytes(body, "password").String())
		_, _ = io.WriteString(w, `{
			"token": "jwt-abc", "tokenType": "Bearer", "expiresIn": 86400000,
			"userId": 12, "username": "sara", "email": "sara@bank.test",
			"fullName": "Sara Haddad", "roles": ["ROLE_MANAGER"], "lastLogin": "2024-05-01T08:00:00"
		}`)
	})

	res, err := conn.For(nil).Login(context.Background(), domain.Credentials{Username: "sara", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", res.Token)
	assert.Equal(t, int64(12), res.User.ID)
	assert.Equal(t, "Sara Haddad", res.User.DisplayName())
	assert.True(t, res.User.RoleSet().Has(domain.RoleManager))
}

func TestClient_LoginWithoutTokenIsUpstreamError(t *testing.T) {
	conn := newConnector(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"username":"sara"}`)
	})

	_, err := conn.For(nil).Login(context.Background(), domain.Credentials{Username: "sara", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
