package handlers_test

import (
	"context"
	"sync"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) session(args mock.Arguments) (*domain.Session, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID))
}
func (m *MockSessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return m.session(m.Called(ctx, creds))
}
func (m *MockSessionService) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	return m.session(m.Called(ctx, reg))
}
func (m *MockSessionService) RefreshIdentity(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	return m.session(m.Called(ctx, sess))
}
func (m *MockSessionService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
func (m *MockSessionService) ExpireSession(ctx context.Context, sess *domain.Session) {
	m.Called(ctx, sess)
}

// Ensure mock implements the interface
var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock NavigationService ---
type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) Menu(ctx context.Context, sess *domain.Session) (*domain.Menu, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

var _ portssvc.NavigationSvc = (*MockNavigationService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) accounts(args mock.Arguments) ([]domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) account(args mock.Arguments) (*domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess))
}
func (m *MockAccountService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess))
}
func (m *MockAccountService) ListForUser(ctx context.Context, sess *domain.Session, userID int64) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess, userID))
}
func (m *MockAccountService) GetAccount(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Account, error) {
	return m.account(m.Called(ctx, sess, accountID))
}
func (m *MockAccountService) GetBalance(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Balance, error) {
	args := m.Called(ctx, sess, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}
func (m *MockAccountService) TotalBalance(ctx context.Context, sess *domain.Session) (*domain.TotalBalance, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TotalBalance), args.Error(1)
}
func (m *MockAccountService) Exists(ctx context.Context, sess *domain.Session, accountNumber string) (bool, error) {
	args := m.Called(ctx, sess, accountNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) AccountSummary(ctx context.Context, sess *domain.Session, accountNumber string) (*domain.AccountSummary, error) {
	args := m.Called(ctx, sess, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSummary), args.Error(1)
}
func (m *MockAccountService) UserSummary(ctx context.Context, sess *domain.Session, userID int64) (*domain.UserSummary, error) {
	args := m.Called(ctx, sess, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSummary), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.Account, error) {
	return m.account(m.Called(ctx, sess, cmd))
}
func (m *MockAccountService) OpenAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.AccountOpening, error) {
	args := m.Called(ctx, sess, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountOpening), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, sess *domain.Session, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error) {
	return m.account(m.Called(ctx, sess, accountID, cmd))
}
func (m *MockAccountService) SetStatus(ctx context.Context, sess *domain.Session, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	return m.account(m.Called(ctx, sess, accountID, status))
}
func (m *MockAccountService) CloseAccount(ctx context.Context, sess *domain.Session, accountID int64) error {
	return m.Called(ctx, sess, accountID).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) snapshot(args mock.Arguments) (*domain.FormSnapshot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormSnapshot), args.Error(1)
}

func (m *MockTransferService) Snapshot(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	return m.snapshot(m.Called(ctx, sess, kind))
}
func (m *MockTransferService) Stage(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error) {
	return m.snapshot(m.Called(ctx, sess, draft))
}
func (m *MockTransferService) Confirm(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	return m.snapshot(m.Called(ctx, sess, kind))
}
func (m *MockTransferService) Submit(ctx context.Context, sess *domain.Session, draft domain.TransferDraft) (*domain.FormSnapshot, error) {
	return m.snapshot(m.Called(ctx, sess, draft))
}
func (m *MockTransferService) Cancel(ctx context.Context, sess *domain.Session, kind domain.FormKind) (*domain.FormSnapshot, error) {
	return m.snapshot(m.Called(ctx, sess, kind))
}
func (m *MockTransferService) DiscardForms(sessionID string) {
	m.Called(sessionID)
}

var _ portssvc.TransferFormSvc = (*MockTransferService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) transactions(args mock.Arguments) ([]domain.Transaction, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockHistoryService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	return m.transactions(m.Called(ctx, sess))
}
func (m *MockHistoryService) Recent(ctx context.Context, sess *domain.Session, limit int) ([]domain.Transaction, error) {
	return m.transactions(m.Called(ctx, sess, limit))
}
func (m *MockHistoryService) ForAccount(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Transaction, error) {
	return m.transactions(m.Called(ctx, sess, accountID))
}

var _ portssvc.TransactionHistorySvc = (*MockHistoryService)(nil)

func transactions(args mock.Arguments) ([]domain.Transaction, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) ListPending(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	return transactions(m.Called(ctx, sess))
}
func (m *MockApprovalService) GetTransaction(ctx context.Context, sess *domain.Session, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, sess, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockApprovalService) Approve(ctx context.Context, sess *domain.Session, transactionID int64, comments string) ([]domain.Transaction, error) {
	return transactions(m.Called(ctx, sess, transactionID, comments))
}
func (m *MockApprovalService) Reject(ctx context.Context, sess *domain.Session, transactionID int64, reason, comments string) ([]domain.Transaction, error) {
	return transactions(m.Called(ctx, sess, transactionID, reason, comments))
}
func (m *MockApprovalService) Cancel(ctx context.Context, sess *domain.Session, transactionID int64, reason string) ([]domain.Transaction, error) {
	return transactions(m.Called(ctx, sess, transactionID, reason))
}
func (m *MockApprovalService) ProcessAll(ctx context.Context, sess *domain.Session) ([]domain.Transaction, error) {
	return transactions(m.Called(ctx, sess))
}

var _ portssvc.ApprovalSvc = (*MockApprovalService)(nil)

// --- Mock InterestService ---
type MockInterestService struct {
	mock.Mock
}

func (m *MockInterestService) report(args mock.Arguments) (*domain.InterestReport, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestReport), args.Error(1)
}

func (m *MockInterestService) strategies(args mock.Arguments) ([]domain.InterestStrategy, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestStrategy), args.Error(1)
}

func (m *MockInterestService) GetReport(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error) {
	return m.report(m.Called(ctx, sess, accountID))
}
func (m *MockInterestService) ChangeStrategy(ctx context.Context, sess *domain.Session, accountID int64, strategyKey string) (*domain.InterestReport, error) {
	return m.report(m.Called(ctx, sess, accountID, strategyKey))
}
func (m *MockInterestService) Strategies(ctx context.Context, sess *domain.Session) ([]domain.InterestStrategy, error) {
	return m.strategies(m.Called(ctx, sess))
}
func (m *MockInterestService) SupportedStrategies(ctx context.Context, sess *domain.Session, accountType domain.AccountType) ([]domain.InterestStrategy, error) {
	return m.strategies(m.Called(ctx, sess, accountType))
}
func (m *MockInterestService) Compare(ctx context.Context, sess *domain.Session, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error) {
	args := m.Called(ctx, sess, accountID, strategy1, strategy2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrategyComparison), args.Error(1)
}
func (m *MockInterestService) FutureInterest(ctx context.Context, sess *domain.Session, accountID int64, months int) (decimal.Decimal, error) {
	args := m.Called(ctx, sess, accountID, months)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockInterestService) EffectiveRate(ctx context.Context, sess *domain.Session, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, sess, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockInterestService) Apply(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error) {
	return m.report(m.Called(ctx, sess, accountID))
}
func (m *MockInterestService) ApplyAll(ctx context.Context, sess *domain.Session) error {
	return m.Called(ctx, sess).Error(0)
}

var _ portssvc.InterestSvc = (*MockInterestService)(nil)

// --- Mock GroupService ---
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) groups(args mock.Arguments) ([]domain.Group, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupService) group(args mock.Arguments) (*domain.Group, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupService) accounts(args mock.Arguments) ([]domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockGroupService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Group, error) {
	return m.groups(m.Called(ctx, sess))
}
func (m *MockGroupService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.Group, error) {
	return m.groups(m.Called(ctx, sess))
}
func (m *MockGroupService) GetGroup(ctx context.Context, sess *domain.Session, groupID int64) (*domain.Group, error) {
	return m.group(m.Called(ctx, sess, groupID))
}
func (m *MockGroupService) Accounts(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess, groupID))
}
func (m *MockGroupService) Balance(ctx context.Context, sess *domain.Session, groupID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, sess, groupID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockGroupService) Statistics(ctx context.Context, sess *domain.Session, groupID int64) (*domain.GroupStatistics, error) {
	args := m.Called(ctx, sess, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupStatistics), args.Error(1)
}
func (m *MockGroupService) CreateGroup(ctx context.Context, sess *domain.Session, cmd domain.NewGroup) (*domain.Group, error) {
	return m.group(m.Called(ctx, sess, cmd))
}
func (m *MockGroupService) DeleteGroup(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Group, error) {
	return m.groups(m.Called(ctx, sess, groupID))
}
func (m *MockGroupService) AddAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess, groupID, accountID))
}
func (m *MockGroupService) RemoveAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, sess, groupID, accountID))
}
func (m *MockGroupService) SetStatus(ctx context.Context, sess *domain.Session, groupID int64, status domain.AccountStatus) (*domain.Group, error) {
	return m.group(m.Called(ctx, sess, groupID, status))
}

var _ portssvc.GroupSvcFacade = (*MockGroupService)(nil)

// --- Mock DecoratorService ---
type MockDecoratorService struct {
	mock.Mock
}

func (m *MockDecoratorService) decorators(args mock.Arguments) ([]domain.Decorator, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Decorator), args.Error(1)
}

func (m *MockDecoratorService) List(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error) {
	return m.decorators(m.Called(ctx, sess, accountID))
}
func (m *MockDecoratorService) Active(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error) {
	return m.decorators(m.Called(ctx, sess, accountID))
}
func (m *MockDecoratorService) Features(ctx context.Context, sess *domain.Session, accountID int64) ([]string, error) {
	args := m.Called(ctx, sess, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockDecoratorService) Info(ctx context.Context, sess *domain.Session) (string, error) {
	args := m.Called(ctx, sess)
	return args.String(0), args.Error(1)
}
func (m *MockDecoratorService) Add(ctx context.Context, sess *domain.Session, cmd domain.NewDecorator) ([]domain.Decorator, error) {
	return m.decorators(m.Called(ctx, sess, cmd))
}
func (m *MockDecoratorService) Activate(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error) {
	return m.decorators(m.Called(ctx, sess, accountID, decoratorID))
}
func (m *MockDecoratorService) Remove(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error) {
	return m.decorators(m.Called(ctx, sess, accountID, decoratorID))
}
func (m *MockDecoratorService) ApplyMonthlyFees(ctx context.Context, sess *domain.Session) error {
	return m.Called(ctx, sess).Error(0)
}

var _ portssvc.DecoratorSvc = (*MockDecoratorService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) users(args mock.Arguments) ([]domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error) {
	return m.users(m.Called(ctx, sess))
}
func (m *MockUserService) GetUser(ctx context.Context, sess *domain.Session, userID int64) (*domain.User, error) {
	return m.user(m.Called(ctx, sess, userID))
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, sess *domain.Session, username string) (*domain.User, error) {
	return m.user(m.Called(ctx, sess, username))
}
func (m *MockUserService) SearchUsers(ctx context.Context, sess *domain.Session, name string) ([]domain.User, error) {
	return m.users(m.Called(ctx, sess, name))
}
func (m *MockUserService) CreateUser(ctx context.Context, sess *domain.Session, cmd domain.NewUser) (*domain.User, error) {
	return m.user(m.Called(ctx, sess, cmd))
}
func (m *MockUserService) SetActive(ctx context.Context, sess *domain.Session, userID int64, active bool) (*domain.User, error) {
	return m.user(m.Called(ctx, sess, userID, active))
}
func (m *MockUserService) AddRole(ctx context.Context, sess *domain.Session, userID int64, role domain.Role) (*domain.User, error) {
	return m.user(m.Called(ctx, sess, userID, role))
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) notifications(args mock.Arguments) ([]domain.Notification, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	return m.notifications(m.Called(ctx, sess))
}
func (m *MockNotificationService) Unread(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	return m.notifications(m.Called(ctx, sess))
}
func (m *MockNotificationService) MarkRead(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error) {
	return m.notifications(m.Called(ctx, sess, notificationID))
}
func (m *MockNotificationService) MarkAllRead(ctx context.Context, sess *domain.Session) ([]domain.Notification, error) {
	return m.notifications(m.Called(ctx, sess))
}
func (m *MockNotificationService) Delete(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error) {
	return m.notifications(m.Called(ctx, sess, notificationID))
}
func (m *MockNotificationService) UnreadCount(ctx context.Context, sess *domain.Session) (int, error) {
	args := m.Called(ctx, sess)
	return args.Int(0), args.Error(1)
}
func (m *MockNotificationService) StopPolling(sessionID string) {
	m.Called(sessionID)
}
func (m *MockNotificationService) Close(ctx context.Context) {
	m.Called(ctx)
}

var _ portssvc.NotificationSvc = (*MockNotificationService)(nil)

// --- Event recorder ---
type recordedEvent struct {
	UserID string
	Name   string
	Props  map[string]any
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *eventRecorder) Enqueue(distinctID string, event string, properties map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{UserID: distinctID, Name: event, Props: properties})
}

func (r *eventRecorder) named(name string) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

var _ middleware.EventSink = (*eventRecorder)(nil)
