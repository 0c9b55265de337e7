package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// DashboardAPI is what the landing view reads from the core banking API.
type DashboardAPI interface {
	gateways.AccountReaderAPI
	RecentTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	PendingApproval(ctx context.Context) ([]domain.Transaction, error)
	UnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
}

type dashboardService struct {
	BaseService
	api gateways.Factory[DashboardAPI]
}

// NewDashboardService creates the landing view aggregator.
func NewDashboardService(api gateways.Factory[DashboardAPI]) portssvc.DashboardSvc {
	return &dashboardService{api: api}
}

// Dashboard reads the landing view concurrently through one client, so a
// rejected token clears the session once however many reads fail.
func (s *dashboardService) Dashboard(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error) {
	roles := sess.Roles()
	layout, _ := domain.LayoutFor(roles)
	client := s.api(sess)

	dash := &domain.Dashboard{User: sess.User, Layout: layout.Name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := client.ListUserAccounts(gctx, sess.User.ID)
		dash.Accounts = accounts
		return err
	})
	g.Go(func() error {
		total, err := client.TotalBalance(gctx, sess.User.ID)
		if err != nil {
			return err
		}
		dash.TotalBalance = total.TotalBalance
		dash.Currency = total.Currency
		return nil
	})
	g.Go(func() error {
		recent, err := client.RecentTransactions(gctx, sess.User.ID, defaultRecentLimit)
		dash.RecentTransactions = recent
		return err
	})
	// The inbox and approval queue are secondary: their failures leave the
	// counts empty, and are not logged once a required read has failed.
	g.Go(func() error {
		unread, err := client.UnreadNotifications(gctx, sess.User.ID)
		if err != nil {
			if gctx.Err() == nil {
				s.LogError(gctx, err, "Dashboard failed to read notifications")
			}
			return nil
		}
		dash.UnreadNotifications = len(unread)
		return nil
	})
	if domain.Can(roles, domain.CapApproveTxn) {
		g.Go(func() error {
			pending, err := client.PendingApproval(gctx)
			if err != nil {
				if gctx.Err() == nil {
					s.LogError(gctx, err, "Dashboard failed to read pending approvals")
				}
				return nil
			}
			n := len(pending)
			dash.PendingApprovals = &n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}
