package services_test

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBankAPI is a mock type for the gateways.BankAPI interface
type MockBankAPI struct {
	mock.Mock
}

var _ gateways.BankAPI = (*MockBankAPI)(nil)

// factory returns a client factory that always yields m.
func (m *MockBankAPI) factory() gateways.Factory[gateways.BankAPI] {
	return func(*domain.Session) gateways.BankAPI { return m }
}

// --- Implement mock methods for BankAPI ---

func (m *MockBankAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockBankAPI) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockBankAPI) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBankAPI) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankAPI) ListUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBankAPI) TotalBalance(ctx context.Context, userID int64) (*domain.TotalBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TotalBalance), args.Error(1)
}

func (m *MockBankAPI) AccountBalance(ctx context.Context, accountID int64) (*domain.Balance, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBankAPI) AccountExists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankAPI) CreateAccount(ctx context.Context, cmd domain.NewAccount) (*domain.Account, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankAPI) UpdateAccount(ctx context.Context, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error) {
	args := m.Called(ctx, accountID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankAPI) SetAccountStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	args := m.Called(ctx, accountID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBankAPI) CloseAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockBankAPI) Transfer(ctx context.Context, cmd domain.TransferCommand) (*domain.TransferReceipt, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReceipt), args.Error(1)
}

func (m *MockBankAPI) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) AccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) RecentTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) PendingApproval(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) CreateTransaction(ctx context.Context, cmd domain.TransactionCommand) (*domain.Transaction, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) ApproveTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) RejectTransaction(ctx context.Context, transactionID int64, decision domain.ApprovalDecision) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) CancelTransaction(ctx context.Context, transactionID int64, userID int64, reason string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAPI) ProcessPending(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAPI) ApplyInterest(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankAPI) ApplyInterestToAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAPI) ChangeStrategy(ctx context.Context, accountID int64, strategyName string) error {
	args := m.Called(ctx, accountID, strategyName)
	return args.Error(0)
}

func (m *MockBankAPI) InterestReport(ctx context.Context, accountID int64) (*domain.InterestReport, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestReport), args.Error(1)
}

func (m *MockBankAPI) FutureInterest(ctx context.Context, accountID int64, months int) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, months)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankAPI) Strategies(ctx context.Context) ([]domain.InterestStrategy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestStrategy), args.Error(1)
}

func (m *MockBankAPI) StrategiesFor(ctx context.Context, accountType domain.AccountType) ([]domain.InterestStrategy, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestStrategy), args.Error(1)
}

func (m *MockBankAPI) CompareStrategies(ctx context.Context, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error) {
	args := m.Called(ctx, accountID, strategy1, strategy2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrategyComparison), args.Error(1)
}

func (m *MockBankAPI) EffectiveRate(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankAPI) AddDecorator(ctx context.Context, cmd domain.NewDecorator) (*domain.Decorator, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Decorator), args.Error(1)
}

func (m *MockBankAPI) AccountDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Decorator), args.Error(1)
}

func (m *MockBankAPI) ActiveDecorators(ctx context.Context, accountID int64) ([]domain.Decorator, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Decorator), args.Error(1)
}

func (m *MockBankAPI) AccountFeatures(ctx context.Context, accountID int64) ([]string, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBankAPI) ActivateDecorator(ctx context.Context, decoratorID int64) (*domain.Decorator, error) {
	args := m.Called(ctx, decoratorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Decorator), args.Error(1)
}

func (m *MockBankAPI) RemoveDecorator(ctx context.Context, decoratorID int64) error {
	args := m.Called(ctx, decoratorID)
	return args.Error(0)
}

func (m *MockBankAPI) ApplyMonthlyFees(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBankAPI) DecoratorsInfo(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBankAPI) CreateGroup(ctx context.Context, cmd domain.NewGroup) (*domain.Group, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockBankAPI) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockBankAPI) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockBankAPI) UserGroups(ctx context.Context, userID int64) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockBankAPI) AddAccountToGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error) {
	args := m.Called(ctx, groupID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockBankAPI) RemoveAccountFromGroup(ctx context.Context, groupID, accountID int64) (*domain.Group, error) {
	args := m.Called(ctx, groupID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockBankAPI) GroupAccounts(ctx context.Context, groupID int64) ([]domain.Account, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBankAPI) GroupBalance(ctx context.Context, groupID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBankAPI) GroupStatistics(ctx context.Context, groupID int64) (*domain.GroupStatistics, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupStatistics), args.Error(1)
}

func (m *MockBankAPI) SetGroupStatus(ctx context.Context, groupID int64, status domain.AccountStatus) (*domain.Group, error) {
	args := m.Called(ctx, groupID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockBankAPI) DeleteGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockBankAPI) TransferWithinGroup(ctx context.Context, cmd domain.GroupTransferCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockBankAPI) CreateUser(ctx context.Context, cmd domain.NewUser) (*domain.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockBankAPI) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) SearchUsers(ctx context.Context, name string) ([]domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockBankAPI) SetUserActive(ctx context.Context, userID int64, active bool) (*domain.User, error) {
	args := m.Called(ctx, userID, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) AddRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBankAPI) UserNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockBankAPI) UnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockBankAPI) MarkRead(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockBankAPI) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockBankAPI) DeleteNotification(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockBankAPI) OpenAccount(ctx context.Context, cmd domain.NewAccount) (*domain.AccountOpening, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountOpening), args.Error(1)
}

func (m *MockBankAPI) Deposit(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashReceipt), args.Error(1)
}

func (m *MockBankAPI) Withdraw(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashReceipt), args.Error(1)
}

func (m *MockBankAPI) AccountSummary(ctx context.Context, accountNumber string) (*domain.AccountSummary, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSummary), args.Error(1)
}

func (m *MockBankAPI) UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSummary), args.Error(1)
}

func (m *MockBankAPI) ProcessPayment(ctx context.Context, cmd domain.PaymentCommand) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}

// sessionWithRoles builds a signed-in session for a user holding roles.
func sessionWithRoles(id string, userID int64, roles ...string) *domain.Session {
	return &domain.Session{
		ID:    id,
		Token: "upstream-token-" + id,
		User:  domain.User{ID: userID, Username: "user" + id, Roles: roles, IsActive: true},
	}
}
