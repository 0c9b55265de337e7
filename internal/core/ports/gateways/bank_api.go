package gateways

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuthAPI covers the identity endpoints of the core banking API.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the user profile.
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)

	// Register creates a user and logs them in.
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)

	// Me returns the profile of the token holder.
	Me(ctx context.Context) (*domain.User, error)
}

// AccountReaderAPI defines read operations for accounts.
type AccountReaderAPI interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	ListUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	TotalBalance(ctx context.Context, userID int64) (*domain.TotalBalance, error)
	AccountBalance(ctx context.Context, accountID int64) (*domain.Balance, error)
	AccountExists(ctx context.Context, accountNumber string) (bool, error)
}

// AccountWriterAPI defines account commands.
type AccountWriterAPI interface {
	CreateAccount(ctx context.Context, cmd domain.NewAccount) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error)
	SetAccountStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error)
	CloseAccount(ctx context.Context, accountID int64) error
}

// TransferAPI moves money between two account numbers.
type TransferAPI interface {
	Transfer(ctx context.Context, cmd domain.TransferCommand) (*domain.TransferReceipt, error)
}

// AccountsAPI combines all account operations.
type AccountsAPI interface {
	AccountReaderAPI
	AccountWriterAPI
	TransferAPI
}

// TransactionReaderAPI defines read operations for transactions.
type TransactionReaderAPI interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	AccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	RecentTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	PendingApproval(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterAPI defines transaction commands.
type TransactionWriterAPI interface {
	CreateTransaction(ctx context.Context, cmd domain.TransactionCommand) (*domain.Transaction, error)
	ApproveTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error)
	CancelTransaction(ctx context.Context, transactionID int64, userID int64, reason string) (*domain.Transaction, error)
	ProcessPending(ctx context.Context) error
}

// TransactionsAPI combines all transaction operations.
type TransactionsAPI interface {
	TransactionReaderAPI
	TransactionWriterAPI
}

// InterestAPI covers the interest-strategy endpoints. Every figure is
// computed by the remote service.
type InterestAPI interface {
	ApplyInterest(ctx context.Context, accountID int64) (decimal.Decimal, error)
	ApplyInterestToAll(ctx context.Context) error
	ChangeStrategy(ctx context.Context, accountID int64, strategyName string) error
	InterestReport(ctx context.Context, accountID int64) (*domain.InterestReport, error)
	FutureInterest(ctx context.Context, accountID int64, months int) (decimal.Decimal, error)
	Strategies(ctx context.Context) ([]domain.InterestStrategy, error)
	StrategiesFor(ctx context.Context, accountType domain.AccountType) ([]domain.InterestStrategy, error)
	CompareStrategies(ctx context.Context, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error)
	EffectiveRate(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// DecoratorsAPI covers the account feature add-ons.
type DecoratorsAPI interface {
	AddDecorator(ctx context.Context, cmd domain.NewDecorator) (*domain.Decorator, error)
	AccountDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error)
	ActiveDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error)
	AccountFeatures(ctx context.Context, accountID int64) ([]string, error)
	ActivateDecorator(ctx context.Context, decoratorID int64) (*domain.Decorator, error)
	RemoveDecorator(ctx context.Context, decoratorID int64) error
	ApplyMonthlyFees(ctx context.Context) error
	DecoratorsInfo(ctx context.Context) (string, error)
}

// GroupsAPI covers account groups.
type GroupsAPI interface {
	CreateGroup(ctx context.Context, cmd domain.NewGroup) (*domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*domain.Group, error)
	UserGroups(ctx context.Context, userID int64) ([]domain.Group, error)
	AddAccountToGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error)
	RemoveAccountFromGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error)
	GroupAccounts(ctx context.Context, groupID int64) ([]domain.Account, error)
	GroupBalance(ctx context.Context, groupID int64) (decimal.Decimal, error)
	GroupStatistics(ctx context.Context, groupID int64) (*domain.GroupStatistics, error)
	SetGroupStatus(ctx context.Context, groupID int64, status domain.AccountStatus) (*domain.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error
}

// GroupTransferAPI moves money between two members of a group.
type GroupTransferAPI interface {
	TransferWithinGroup(ctx context.Context, cmd domain.GroupTransferCommand) error
}

// UsersAPI covers user administration.
type UsersAPI interface {
	CreateUser(ctx context.Context, cmd domain.NewUser) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	SearchUsers(ctx context.Context, name string) ([]domain.User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (*domain.User, error)
	AddRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error)
}

// NotificationsAPI covers a user's notification inbox.
type NotificationsAPI interface {
	UserNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
	UnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, notificationID int64) error
}

// BankingAPI covers the facade endpoints that wrap several operations in one call.
type BankingAPI interface {
	OpenAccount(ctx context.Context, cmd domain.NewAccount) (*domain.AccountOpening, error)
	Deposit(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error)
	Withdraw(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error)
	AccountSummary(ctx context.Context, accountNumber string) (*domain.AccountSummary, error)
	UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error)
}

// PaymentsAPI covers payments to external recipients.
type PaymentsAPI interface {
	ProcessPayment(ctx context.Context, cmd domain.PaymentCommand) (*domain.PaymentReceipt, error)
}

// BankAPI is the full typed client of the core banking API.
type BankAPI interface {
	AuthAPI
	AccountsAPI
	TransactionsAPI
	InterestAPI
	DecoratorsAPI
	GroupsAPI
	GroupTransferAPI
	UsersAPI
	NotificationsAPI
	BankingAPI
	PaymentsAPI
}

// Factory binds a client to the bearer token of a session. A nil session
// yields an anonymous client, usable only for login and registration.
type Factory[T any] func(sess *domain.Session) T

// Narrow restricts a full client factory to one of the interfaces BankAPI embeds.
func Narrow[T any](f Factory[BankAPI]) Factory[T] {
	return func(sess *domain.Session) T {
		return any(f(sess)).(T)
	}
}
