package domain

import "github.com/shopspring/decimal"

// Commands are the request bodies the portal sends to the core banking API.
// They carry no behaviour; the remote service validates them again.

// Credentials is a username/password pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration creates a new user profile.
type Registration struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Address     string   `json:"address,omitempty"`
	NationalID  string   `json:"nationalId,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token     string
	TokenType string
	ExpiresIn int64
	User      User
}

// NewAccount opens an account for a user.
type NewAccount struct {
	AccountType    AccountType      `json:"accountType"`
	UserID         int64            `json:"userId"`
	InitialBalance decimal.Decimal  `json:"initialBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`
	MinimumBalance *decimal.Decimal `json:"minimumBalance,omitempty"`
}

// AccountUpdate changes mutable account attributes. Nil fields are left untouched.
type AccountUpdate struct {
	Status         AccountStatus    `json:"status,omitempty"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`
	MinimumBalance *decimal.Decimal `json:"minimumBalance,omitempty"`
}

// TransferCommand moves money between two account numbers.
type TransferCommand struct {
	FromAccountNumber string          `json:"fromAccountNumber"`
	ToAccountNumber   string          `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description,omitempty"`
}

// TransactionCommand creates a transaction of any type.
type TransactionCommand struct {
	TransactionType   TransactionType `json:"transactionType"`
	FromAccountNumber string          `json:"fromAccountNumber,omitempty"`
	ToAccountNumber   string          `json:"toAccountNumber,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description,omitempty"`
}

// CashCommand deposits into or withdraws from one account.
type CashCommand struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
}

// PaymentCommand pays an external recipient.
type PaymentCommand struct {
	AccountNumber string          `json:"accountNumber"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description,omitempty"`
}

// GroupTransferCommand moves money between two members of a group.
type GroupTransferCommand struct {
	GroupID     int64
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
}

// ApprovalDecision is a manager's verdict on a pending transaction.
type ApprovalDecision struct {
	ManagerID int64  `json:"managerId"`
	Reason    string `json:"reason,omitempty"`
	Comments  string `json:"comments,omitempty"`
}

// NewDecorator attaches a feature to an account.
type NewDecorator struct {
	DecoratorType  DecoratorType    `json:"decoratorType"`
	AccountID      int64            `json:"accountId"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`
	CoverageAmount *decimal.Decimal `json:"coverageAmount,omitempty"`
	InsuranceType  string           `json:"insuranceType,omitempty"`
	TierLevel      string           `json:"tierLevel,omitempty"`
	Description    string           `json:"description,omitempty"`
}

// NewGroup creates an account group.
type NewGroup struct {
	GroupName   string    `json:"groupName"`
	Description string    `json:"description,omitempty"`
	GroupType   GroupType `json:"groupType"`
	OwnerID     int64     `json:"ownerId"`
	MaxAccounts int       `json:"maxAccounts,omitempty"`
}

// NewUser creates a user from the staff side.
type NewUser struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}
