package domain

import "github.com/shopspring/decimal"

// TransactionType is the kind of money movement.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Transfer   TransactionType = "TRANSFER"
	Payment    TransactionType = "PAYMENT"
	Interest   TransactionType = "INTEREST"
	Fee        TransactionType = "FEE"
)

// TransactionStatus is the approval state of a transaction.
type TransactionStatus string

const (
	TxnPending         TransactionStatus = "PENDING"
	TxnPendingApproval TransactionStatus = "PENDING_APPROVAL"
	TxnCompleted       TransactionStatus = "COMPLETED"
	TxnRejected        TransactionStatus = "REJECTED"
	TxnFailed          TransactionStatus = "FAILED"
	TxnCancelled       TransactionStatus = "CANCELLED"
)

// IsPending reports whether the transaction still awaits processing.
func (s TransactionStatus) IsPending() bool {
	return s == TxnPending || s == TxnPendingApproval
}

// IsFinal reports whether the status can no longer change.
func (s TransactionStatus) IsFinal() bool {
	switch s {
	case TxnCompleted, TxnRejected, TxnFailed, TxnCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s.
// Transitions only leave a pending state and never return to it.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if !s.IsPending() {
		return false
	}
	if s == TxnPending && next == TxnPendingApproval {
		return true
	}
	return next.IsFinal()
}

// Transaction is a money movement as reported by the core banking API.
type Transaction struct {
	ID              int64             `json:"id"`
	TransactionID   string            `json:"transactionId"`
	TransactionType TransactionType   `json:"transactionType"`
	Status          TransactionStatus `json:"status"`
	Amount          decimal.Decimal   `json:"amount"`
	FromAccount     string            `json:"fromAccount,omitempty"`
	ToAccount       string            `json:"toAccount,omitempty"`
	Description     string            `json:"description,omitempty"`
	ReferenceNumber string            `json:"referenceNumber,omitempty"`
	InitiatedBy     int64             `json:"initiatedBy,omitempty"`
	ApprovedBy      int64             `json:"approvedBy,omitempty"`
	CreatedAt       Timestamp         `json:"createdAt"`
	ProcessedAt     Timestamp         `json:"processedAt"`
	FailureReason   string            `json:"failureReason,omitempty"`
}

// TransferReceipt is the core banking API's answer to a transfer command.
type TransferReceipt struct {
	Success          bool              `json:"success"`
	TransactionID    string            `json:"transactionId,omitempty"`
	FromAccount      string            `json:"fromAccount,omitempty"`
	ToAccount        string            `json:"toAccount,omitempty"`
	Amount           decimal.Decimal   `json:"amount"`
	NewFromBalance   decimal.Decimal   `json:"newFromBalance"`
	NewToBalance     decimal.Decimal   `json:"newToBalance"`
	Status           TransactionStatus `json:"status,omitempty"`
	Message          string            `json:"message,omitempty"`
	ProcessingTimeMs int64             `json:"processingTimeMs,omitempty"`
	Timestamp        Timestamp         `json:"timestamp"`
}

// PaymentReceipt is the payment gateway's answer to a payment command.
type PaymentReceipt struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

// CashReceipt is the facade's answer to a deposit or withdrawal.
type CashReceipt struct {
	Success          bool              `json:"success"`
	TransactionID    string            `json:"transactionId,omitempty"`
	AccountNumber    string            `json:"accountNumber"`
	Amount           decimal.Decimal   `json:"amount"`
	OldBalance       decimal.Decimal   `json:"oldBalance"`
	NewBalance       decimal.Decimal   `json:"newBalance"`
	Status           TransactionStatus `json:"status,omitempty"`
	Message          string            `json:"message,omitempty"`
	ProcessingTimeMs int64             `json:"processingTimeMs,omitempty"`
	Timestamp        Timestamp         `json:"timestamp"`
}
