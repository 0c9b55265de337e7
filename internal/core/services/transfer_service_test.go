package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	api      *MockBankAPI
	service  *services.TransferService
	customer *domain.Session
	manager  *domain.Session
	ctx      context.Context
}

func (s *TransferServiceTestSuite) SetupTest() {
	s.api = new(MockBankAPI)
	s.service = services.NewTransferService(gateways.Narrow[services.TransferAPI](s.api.factory()))
	s.customer = sessionWithRoles("c1", 10, "ROLE_CUSTOMER")
	s.manager = sessionWithRoles("m1", 20, "ROLE_MANAGER")
	s.ctx = context.Background()
}

func (s *TransferServiceTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func internalDraft(from, to, amount string) domain.TransferDraft {
	return domain.TransferDraft{
		Kind:        domain.FormInternalTransfer,
		Source:      from,
		Destination: to,
		Amount:      decimal.RequireFromString(amount),
		Description: "rent",
	}
}

func (s *TransferServiceTestSuite) TestSubmit_NegativeAmountMakesNoCall() {
	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "-5"))

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(domain.FormIdle, snap.State)
	s.Equal("amount must be greater than zero", snap.Error)
	s.Equal("ACC1", snap.Draft.Source, "the draft is kept for correction")
	s.api.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
}

func (s *TransferServiceTestSuite) TestSubmit_SameAccountMakesNoCall() {
	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC1", "10"))

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("cannot transfer to the same account", snap.Error)
	s.api.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
}

func (s *TransferServiceTestSuite) TestSubmit_SuccessClearsFieldsAndRefetches() {
	s.api.On("Transfer", mock.Anything, domain.TransferCommand{
		FromAccountNumber: "ACC1",
		ToAccountNumber:   "ACC2",
		Amount:            decimal.RequireFromString("10"),
		Description:       "rent",
	}).Return(&domain.TransferReceipt{
		Success:       true,
		TransactionID: "TXN-1",
		Amount:        decimal.RequireFromString("10"),
		Status:        domain.TxnCompleted,
		Message:       "Transfer completed",
	}, nil).Once()
	refreshed := []domain.Account{{ID: 1, AccountNumber: "ACC1", Balance: decimal.RequireFromString("90")}}
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return(refreshed, nil).Once()

	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "10"))
	s.Require().NoError(err)
	s.Equal(domain.FormSucceeded, snap.State)
	s.True(snap.Draft.IsZero())
	s.Require().NotNil(snap.Receipt)
	s.Equal("TXN-1", snap.Receipt.Reference)
	s.Equal(refreshed, snap.Accounts)
}

func (s *TransferServiceTestSuite) TestSubmit_FailureKeepsFields() {
	s.api.On("Transfer", mock.Anything, mock.AnythingOfType("domain.TransferCommand")).
		Return(nil, apperrors.NewAPIError(400, "Insufficient funds")).Once()

	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "5000"))
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(domain.FormIdle, snap.State)
	s.Equal("Insufficient funds", snap.Error)
	s.Equal("ACC2", snap.Draft.Destination)
	s.True(snap.Draft.Amount.Equal(decimal.RequireFromString("5000")))
	s.api.AssertNotCalled(s.T(), "ListUserAccounts", mock.Anything, mock.Anything)
}

func (s *TransferServiceTestSuite) TestSubmit_CorrectedAfterFailure() {
	s.api.On("Transfer", mock.Anything, mock.MatchedBy(func(cmd domain.TransferCommand) bool {
		return cmd.Amount.Equal(decimal.RequireFromString("5000"))
	})).Return(nil, apperrors.NewAPIError(400, "Insufficient funds")).Once()
	s.api.On("Transfer", mock.Anything, mock.MatchedBy(func(cmd domain.TransferCommand) bool {
		return cmd.Amount.Equal(decimal.RequireFromString("50"))
	})).Return(&domain.TransferReceipt{Success: true, TransactionID: "TXN-9"}, nil).Once()
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return([]domain.Account{}, nil).Once()

	_, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "5000"))
	s.Require().Error(err)

	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "50"))
	s.Require().NoError(err)
	s.Equal(domain.FormSucceeded, snap.State)
	s.Empty(snap.Error)
	s.Equal("TXN-9", snap.Receipt.Reference)
}

func (s *TransferServiceTestSuite) TestSubmit_UnsuccessfulReceipt() {
	s.api.On("Transfer", mock.Anything, mock.Anything).
		Return(&domain.TransferReceipt{Success: false, Message: "Account frozen"}, nil).Once()

	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "1"))
	s.ErrorIs(err, apperrors.ErrUpstream)
	s.Equal("Account frozen", snap.Error)
}

func (s *TransferServiceTestSuite) TestSubmit_SecondSubmitWhileInFlight() {
	entered := make(chan struct{})
	release := make(chan struct{})
	s.api.On("Transfer", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&domain.TransferReceipt{Success: true, TransactionID: "TXN-2"}, nil).Once()
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return([]domain.Account{}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "10"))
		done <- err
	}()
	<-entered

	snap, err := s.service.Submit(s.ctx, s.customer, internalDraft("ACC1", "ACC3", "20"))
	s.ErrorIs(err, apperrors.ErrSubmitInFlight)
	s.Equal(domain.FormSubmitting, snap.State)
	s.Equal("ACC2", snap.Draft.Destination, "the in-flight draft is untouched")

	_, err = s.service.Cancel(s.ctx, s.customer, domain.FormInternalTransfer)
	s.ErrorIs(err, apperrors.ErrSubmitInFlight)

	close(release)
	s.NoError(<-done)
}

func (s *TransferServiceTestSuite) TestStageThenConfirm() {
	snap, err := s.service.Stage(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "15"))
	s.Require().NoError(err)
	s.Equal(domain.FormConfirming, snap.State)

	s.api.On("Transfer", mock.Anything, mock.Anything).
		Return(&domain.TransferReceipt{Success: true, TransactionID: "TXN-3"}, nil).Once()
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return([]domain.Account{}, nil).Once()

	snap, err = s.service.Confirm(s.ctx, s.customer, domain.FormInternalTransfer)
	s.Require().NoError(err)
	s.Equal(domain.FormSucceeded, snap.State)

	_, err = s.service.Confirm(s.ctx, s.customer, domain.FormInternalTransfer)
	s.ErrorIs(err, apperrors.ErrConflict, "nothing is staged any more")
}

func (s *TransferServiceTestSuite) TestCancel_ResetsForm() {
	_, err := s.service.Stage(s.ctx, s.customer, internalDraft("ACC1", "ACC2", "15"))
	s.Require().NoError(err)

	snap, err := s.service.Cancel(s.ctx, s.customer, domain.FormInternalTransfer)
	s.Require().NoError(err)
	s.Equal(domain.FormIdle, snap.State)
	s.True(snap.Draft.IsZero())
}

func (s *TransferServiceTestSuite) TestDeposit_RequiresCashCapability() {
	draft := domain.TransferDraft{Kind: domain.FormDeposit, Source: "ACC1", Amount: decimal.NewFromInt(100)}

	_, err := s.service.Submit(s.ctx, s.customer, draft)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.api.On("CreateTransaction", mock.Anything, domain.TransactionCommand{
		TransactionType: domain.Deposit,
		ToAccountNumber: "ACC1",
		Amount:          decimal.NewFromInt(100),
	}).Return(&domain.Transaction{TransactionID: "TXN-4", Status: domain.TxnCompleted, Amount: decimal.NewFromInt(100)}, nil).Once()
	s.api.On("ListAccounts", mock.Anything).Return([]domain.Account{{AccountNumber: "ACC1"}}, nil).Once()

	snap, err := s.service.Submit(s.ctx, s.manager, draft)
	s.Require().NoError(err)
	s.Equal("TXN-4", snap.Receipt.Reference)
}

func (s *TransferServiceTestSuite) TestPayment_DefaultsCurrency() {
	s.api.On("ProcessPayment", mock.Anything, domain.PaymentCommand{
		AccountNumber: "ACC1",
		Recipient:     "ACME Utilities",
		Amount:        decimal.NewFromInt(42),
		Currency:      "USD",
	}).Return(&domain.PaymentReceipt{Status: "SUCCESS", TransactionID: "PAY-1"}, nil).Once()
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return([]domain.Account{}, nil).Once()

	snap, err := s.service.Submit(s.ctx, s.customer, domain.TransferDraft{
		Kind:        domain.FormPayment,
		Source:      "ACC1",
		Destination: "ACME Utilities",
		Amount:      decimal.NewFromInt(42),
	})
	s.Require().NoError(err)
	s.Equal("PAY-1", snap.Receipt.Reference)
}

func (s *TransferServiceTestSuite) TestSnapshot_LoadsAccountsOnce() {
	s.api.On("ListUserAccounts", mock.Anything, int64(10)).Return([]domain.Account{{AccountNumber: "ACC1"}}, nil).Once()

	first, err := s.service.Snapshot(s.ctx, s.customer, domain.FormInternalTransfer)
	s.Require().NoError(err)
	second, err := s.service.Snapshot(s.ctx, s.customer, domain.FormInternalTransfer)
	s.Require().NoError(err)
	s.Equal(first.Accounts, second.Accounts)
}

func (s *TransferServiceTestSuite) TestUnknownKind() {
	_, err := s.service.Snapshot(s.ctx, s.customer, domain.FormKind("wire"))
	s.ErrorIs(err, apperrors.ErrValidation)
}
