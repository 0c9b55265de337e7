package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboard_CustomerView(t *testing.T) {
	api := new(MockBankAPI)
	svc := services.NewDashboardService(gateways.Narrow[services.DashboardAPI](api.factory()))
	sess := sessionWithRoles("c1", 10, "ROLE_CUSTOMER")

	accounts := []domain.Account{{ID: 1, AccountNumber: "ACC1", Balance: decimal.NewFromInt(250)}}
	api.On("ListUserAccounts", mock.Anything, int64(10)).Return(accounts, nil).Once()
	api.On("TotalBalance", mock.Anything, int64(10)).Return(&domain.TotalBalance{UserID: 10, TotalBalance: decimal.NewFromInt(250), Currency: "USD"}, nil).Once()
	api.On("RecentTransactions", mock.Anything, int64(10), 10).Return([]domain.Transaction{{ID: 3}}, nil).Once()
	api.On("UnreadNotifications", mock.Anything, int64(10)).Return(nil, apperrors.ErrTransport).Once()
	logs := &bytes.Buffer{}
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, nil)))

	dash, err := svc.Dashboard(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "customer", dash.Layout)
	assert.Equal(t, accounts, dash.Accounts)
	assert.True(t, dash.TotalBalance.Equal(decimal.NewFromInt(250)))
	assert.Len(t, dash.RecentTransactions, 1)
	assert.Zero(t, dash.UnreadNotifications, "a failed inbox read leaves the count empty")
	assert.Contains(t, logs.String(), "Dashboard failed to read notifications")
	assert.Nil(t, dash.PendingApprovals)
	api.AssertNotCalled(t, "PendingApproval", mock.Anything)
	api.AssertExpectations(t)
}

func TestDashboard_ManagerSeesPendingApprovals(t *testing.T) {
	api := new(MockBankAPI)
	svc := services.NewDashboardService(gateways.Narrow[services.DashboardAPI](api.factory()))
	sess := sessionWithRoles("m1", 20, "ROLE_MANAGER")

	api.On("ListUserAccounts", mock.Anything, int64(20)).Return([]domain.Account{}, nil).Once()
	api.On("TotalBalance", mock.Anything, int64(20)).Return(&domain.TotalBalance{TotalBalance: decimal.Zero}, nil).Once()
	api.On("RecentTransactions", mock.Anything, int64(20), 10).Return([]domain.Transaction{}, nil).Once()
	api.On("UnreadNotifications", mock.Anything, int64(20)).Return([]domain.Notification{{ID: 1}}, nil).Once()
	api.On("PendingApproval", mock.Anything).Return([]domain.Transaction{{ID: 1}, {ID: 2}}, nil).Once()

	dash, err := svc.Dashboard(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "manager", dash.Layout)
	assert.Equal(t, 1, dash.UnreadNotifications)
	require.NotNil(t, dash.PendingApprovals)
	assert.Equal(t, 2, *dash.PendingApprovals)
}

func TestDashboard_RequiredReadFails(t *testing.T) {
	api := new(MockBankAPI)
	svc := services.NewDashboardService(gateways.Narrow[services.DashboardAPI](api.factory()))
	sess := sessionWithRoles("c1", 10, "ROLE_CUSTOMER")

	api.On("ListUserAccounts", mock.Anything, int64(10)).Return(nil, apperrors.ErrSessionExpired).Maybe()
	api.On("TotalBalance", mock.Anything, int64(10)).Return(&domain.TotalBalance{}, nil).Maybe()
	api.On("RecentTransactions", mock.Anything, int64(10), 10).Return([]domain.Transaction{}, nil).Maybe()
	api.On("UnreadNotifications", mock.Anything, int64(10)).Return([]domain.Notification{}, nil).Maybe()

	dash, err := svc.Dashboard(context.Background(), sess)
	assert.Nil(t, dash)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestDashboard_CancelledOptionalReadIsNotLogged(t *testing.T) {
	api := new(MockBankAPI)
	svc := services.NewDashboardService(gateways.Narrow[services.DashboardAPI](api.factory()))
	sess := sessionWithRoles("m1", 20, "ROLE_MANAGER")

	waitForCancel := func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}
	api.On("ListUserAccounts", mock.Anything, int64(20)).Return(nil, apperrors.ErrSessionExpired).Once()
	api.On("TotalBalance", mock.Anything, int64(20)).Run(waitForCancel).Return(nil, context.Canceled).Once()
	api.On("RecentTransactions", mock.Anything, int64(20), 10).Run(waitForCancel).Return(nil, context.Canceled).Once()
	api.On("UnreadNotifications", mock.Anything, int64(20)).Run(waitForCancel).Return(nil, context.Canceled).Once()
	api.On("PendingApproval", mock.Anything).Run(waitForCancel).Return(nil, context.Canceled).Once()
	logs := &bytes.Buffer{}
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, nil)))

	dash, err := svc.Dashboard(ctx, sess)
	assert.Nil(t, dash)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.NotContains(t, logs.String(), "Dashboard failed")
	api.AssertExpectations(t)
}
