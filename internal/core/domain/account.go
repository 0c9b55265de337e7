package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the product family of an account.
type AccountType string

const (
	Savings    AccountType = "SAVINGS"
	Checking   AccountType = "CHECKING"
	Loan       AccountType = "LOAN"
	Investment AccountType = "INVESTMENT"
	Business   AccountType = "BUSINESS"
)

// AccountStatus is the lifecycle state of an account. CLOSED is terminal.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountFrozen    AccountStatus = "FROZEN"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
	AccountPending   AccountStatus = "PENDING"
)

// IsTerminal reports whether no further status change is possible.
func (s AccountStatus) IsTerminal() bool {
	return s == AccountClosed
}

// Account is a bank account as reported by the core banking API.
type Account struct {
	ID               int64           `json:"id"`
	AccountNumber    string          `json:"accountNumber"`
	AccountType      AccountType     `json:"accountType"`
	Status           AccountStatus   `json:"status"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	OverdraftLimit   decimal.Decimal `json:"overdraftLimit"`
	MinimumBalance   decimal.Decimal `json:"minimumBalance"`
	UserID           int64           `json:"userId,omitempty"`
	CreatedAt        Timestamp       `json:"createdAt"`
	UpdatedAt        Timestamp       `json:"updatedAt"`
}

// TotalBalance is the aggregate balance of a user's accounts.
type TotalBalance struct {
	UserID       int64           `json:"userId"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Currency     string          `json:"currency"`
}

// AccountSummary is the facade view of one account.
type AccountSummary struct {
	AccountNumber      string          `json:"accountNumber"`
	AccountType        AccountType     `json:"accountType"`
	Balance            decimal.Decimal `json:"balance"`
	Status             AccountStatus   `json:"status"`
	OwnerName          string          `json:"ownerName,omitempty"`
	RecentTransactions []Transaction   `json:"recentTransactions,omitempty"`
}

// UserSummary is the facade view of a user and their holdings.
type UserSummary struct {
	UserID             int64           `json:"userId"`
	UserName           string          `json:"userName"`
	UserEmail          string          `json:"userEmail"`
	TotalAccounts      int             `json:"totalAccounts"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	Accounts           []Account       `json:"accounts"`
	Groups             []Group         `json:"groups"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
	LastLogin          Timestamp       `json:"lastLogin"`
	MemberSince        Timestamp       `json:"memberSince"`
}

// Balance is the balance view of one account.
type Balance struct {
	AccountID        int64           `json:"accountId"`
	AccountNumber    string          `json:"accountNumber"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Currency         string          `json:"currency"`
}

// AccountOpening is the facade's answer to an open-account command.
type AccountOpening struct {
	Success          bool            `json:"success"`
	AccountNumber    string          `json:"accountNumber"`
	AccountType      AccountType     `json:"accountType"`
	Balance          decimal.Decimal `json:"balance"`
	Message          string          `json:"message"`
	ProcessingTimeMs int64           `json:"processingTimeMs,omitempty"`
	Timestamp        Timestamp       `json:"timestamp"`
}
