package services

import (
	"log/slog"

	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Sessions that end by logout or expiry drop their transfer forms and notification poller.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, api gateways.Factory[gateways.BankAPI], logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	sessions := NewSessionService(repos.SessionRepo, gateways.Narrow[gateways.AuthAPI](api), cfg.JWTExpiryDuration)
	container.Session = sessions
	container.Token = NewTokenService(cfg)
	container.Navigation = NewNavigationService(sessions)

	container.Dashboard = NewDashboardService(gateways.Narrow[DashboardAPI](api))
	container.Account = NewAccountService(
		gateways.Narrow[gateways.AccountsAPI](api),
		WithBankingAPI(gateways.Narrow[gateways.BankingAPI](api)),
	)

	transfers := NewTransferService(gateways.Narrow[TransferAPI](api))
	container.Transfer = transfers
	container.Approval = NewApprovalService(gateways.Narrow[gateways.TransactionsAPI](api))
	container.History = NewHistoryService(gateways.Narrow[gateways.TransactionReaderAPI](api))
	container.Interest = NewInterestService(gateways.Narrow[gateways.InterestAPI](api))
	container.Group = NewGroupService(gateways.Narrow[gateways.GroupsAPI](api))
	container.Decorator = NewDecoratorService(gateways.Narrow[gateways.DecoratorsAPI](api))
	container.User = NewUserService(gateways.Narrow[gateways.UsersAPI](api))

	notifications := NewNotificationService(gateways.Narrow[gateways.NotificationsAPI](api), cfg.NotificationPollInterval, logger)
	container.Notification = notifications

	sessions.OnSessionEnd(transfers.DiscardForms)
	sessions.OnSessionEnd(notifications.StopPolling)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.GroupSvcFacade        = (*groupService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.InterestSvc           = (*interestService)(nil)
	_ portssvc.DecoratorSvc          = (*decoratorService)(nil)
	_ portssvc.TransactionHistorySvc = (*historyService)(nil)
	_ portssvc.DashboardSvc          = (*dashboardService)(nil)
	_ portssvc.NavigationSvc         = (*navigationService)(nil)
)
