package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accounts gateways.Factory[gateways.AccountsAPI]
	banking  gateways.Factory[gateways.BankingAPI]
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithBankingAPI adds the facade endpoints used for summaries and one-call account opening.
func WithBankingAPI(banking gateways.Factory[gateways.BankingAPI]) AccountServiceOption {
	return func(s *accountService) {
		s.banking = banking
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accounts gateways.Factory[gateways.AccountsAPI], options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accounts: accounts}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *accountService) bankingAPI(sess *domain.Session) (gateways.BankingAPI, error) {
	if s.banking == nil {
		return nil, fmt.Errorf("%w: banking facade not configured", apperrors.ErrUpstream)
	}
	return s.banking(sess), nil
}

// authorizeOwnerOrStaff lets users read their own records and staff read anyone's.
func (s *accountService) authorizeOwnerOrStaff(ctx context.Context, sess *domain.Session, userID int64) error {
	if sess != nil && sess.User.ID == userID {
		return nil
	}
	return s.Authorize(ctx, sess, domain.CapViewAllAccounts)
}

func (s *accountService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Account, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewAllAccounts); err != nil {
		return nil, err
	}
	return s.accounts(sess).ListAccounts(ctx)
}

func (s *accountService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.Account, error) {
	return s.accounts(sess).ListUserAccounts(ctx, sess.User.ID)
}

func (s *accountService) ListForUser(ctx context.Context, sess *domain.Session, userID int64) ([]domain.Account, error) {
	if err := s.authorizeOwnerOrStaff(ctx, sess, userID); err != nil {
		return nil, err
	}
	return s.accounts(sess).ListUserAccounts(ctx, userID)
}

func (s *accountService) GetAccount(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Account, error) {
	return s.accounts(sess).GetAccount(ctx, accountID)
}

func (s *accountService) GetBalance(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Balance, error) {
	return s.accounts(sess).AccountBalance(ctx, accountID)
}

func (s *accountService) TotalBalance(ctx context.Context, sess *domain.Session) (*domain.TotalBalance, error) {
	return s.accounts(sess).TotalBalance(ctx, sess.User.ID)
}

func (s *accountService) Exists(ctx context.Context, sess *domain.Session, accountNumber string) (bool, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewAllAccounts); err != nil {
		return false, err
	}
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return false, apperrors.NewValidationError("accountNumber", "account number is required")
	}
	return s.accounts(sess).AccountExists(ctx, accountNumber)
}

func (s *accountService) AccountSummary(ctx context.Context, sess *domain.Session, accountNumber string) (*domain.AccountSummary, error) {
	api, err := s.bankingAPI(sess)
	if err != nil {
		return nil, err
	}
	return api.AccountSummary(ctx, accountNumber)
}

func (s *accountService) UserSummary(ctx context.Context, sess *domain.Session, userID int64) (*domain.UserSummary, error) {
	if err := s.authorizeOwnerOrStaff(ctx, sess, userID); err != nil {
		return nil, err
	}
	api, err := s.bankingAPI(sess)
	if err != nil {
		return nil, err
	}
	return api.UserSummary(ctx, userID)
}

func validateNewAccount(cmd domain.NewAccount) error {
	if cmd.AccountType == "" {
		return apperrors.NewValidationError("accountType", "account type is required")
	}
	if cmd.UserID <= 0 {
		return apperrors.NewValidationError("userId", "account owner is required")
	}
	if cmd.InitialBalance.IsNegative() {
		return apperrors.NewValidationError("initialBalance", "initial balance cannot be negative")
	}
	return nil
}

func (s *accountService) CreateAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.Account, error) {
	if err := s.Authorize(ctx, sess, domain.CapCreateAccount); err != nil {
		return nil, err
	}
	if err := validateNewAccount(cmd); err != nil {
		return nil, err
	}
	client := s.accounts(sess)
	created, err := client.CreateAccount(ctx, cmd)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.Int64("owner_id", cmd.UserID))
		return nil, err
	}
	s.LogInfo(ctx, "Account created", slog.Int64("account_id", created.ID), slog.String("account_number", created.AccountNumber))
	return client.GetAccount(ctx, created.ID)
}

func (s *accountService) OpenAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.AccountOpening, error) {
	if err := s.Authorize(ctx, sess, domain.CapCreateAccount); err != nil {
		return nil, err
	}
	if err := validateNewAccount(cmd); err != nil {
		return nil, err
	}
	api, err := s.bankingAPI(sess)
	if err != nil {
		return nil, err
	}
	opening, err := api.OpenAccount(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !opening.Success {
		return nil, &apperrors.APIError{StatusCode: 200, Message: opening.Message, Kind: apperrors.ErrUpstream}
	}
	return opening, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, sess *domain.Session, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	client := s.accounts(sess)
	if _, err := client.UpdateAccount(ctx, accountID, cmd); err != nil {
		return nil, err
	}
	return client.GetAccount(ctx, accountID)
}

// SetStatus moves an account to status. A closed account cannot change status again.
func (s *accountService) SetStatus(ctx context.Context, sess *domain.Session, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	client := s.accounts(sess)
	current, err := client.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: account %s is %s", apperrors.ErrConflict, current.AccountNumber, current.Status)
	}
	if _, err := client.SetAccountStatus(ctx, accountID, status); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account status changed", slog.Int64("account_id", accountID), slog.String("status", string(status)))
	return client.GetAccount(ctx, accountID)
}

func (s *accountService) CloseAccount(ctx context.Context, sess *domain.Session, accountID int64) error {
	if err := s.Authorize(ctx, sess, domain.CapManageAccounts); err != nil {
		return err
	}
	if err := s.accounts(sess).CloseAccount(ctx, accountID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account closed", slog.Int64("account_id", accountID))
	return nil
}
