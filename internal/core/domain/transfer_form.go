package domain

import "github.com/shopspring/decimal"

// FormKind selects which command a transfer form submits.
type FormKind string

const (
	FormInternalTransfer FormKind = "internal-transfer"
	FormGroupTransfer    FormKind = "group-transfer"
	FormPayment          FormKind = "payment"
	FormDeposit          FormKind = "deposit"
	FormWithdrawal       FormKind = "withdrawal"
)

// ParseFormKind returns the kind named by s.
func ParseFormKind(s string) (FormKind, bool) {
	switch k := FormKind(s); k {
	case FormInternalTransfer, FormGroupTransfer, FormPayment, FormDeposit, FormWithdrawal:
		return k, true
	}
	return "", false
}

// FormState is the lifecycle state of a transfer form.
//
//	idle -> validating -> confirming -> submitting -> succeeded | idle
//
// A failed submission lands back in idle with the server message set.
// succeeded accepts a new draft just like idle.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormValidating FormState = "validating"
	FormConfirming FormState = "confirming"
	FormSubmitting FormState = "submitting"
	FormSucceeded  FormState = "succeeded"
)

// AcceptsDraft reports whether a new draft may be staged in state s.
func (s FormState) AcceptsDraft() bool {
	switch s {
	case FormIdle, FormSucceeded, FormConfirming:
		return true
	}
	return false
}

// TransferDraft holds the fields of a transfer form.
// Source is the debited account number, Destination the credited account
// number (or the recipient of a payment).
type TransferDraft struct {
	Kind        FormKind        `json:"kind"`
	Source      string          `json:"source,omitempty"`
	Destination string          `json:"destination,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	GroupID     int64           `json:"groupId,omitempty"`
}

// IsZero reports whether the draft has been cleared.
func (d TransferDraft) IsZero() bool {
	return d.Source == "" && d.Destination == "" && d.Amount.IsZero() && d.Description == "" && d.GroupID == 0
}

// FormReceipt is the outcome of the last successful submission.
type FormReceipt struct {
	Reference string          `json:"reference,omitempty"`
	Status    string          `json:"status,omitempty"`
	Message   string          `json:"message,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// FormSnapshot is a point-in-time copy of a transfer form.
type FormSnapshot struct {
	Kind     FormKind      `json:"kind"`
	State    FormState     `json:"state"`
	Draft    TransferDraft `json:"draft"`
	Error    string        `json:"error,omitempty"`
	Receipt  *FormReceipt  `json:"receipt,omitempty"`
	Accounts []Account     `json:"accounts"`
}
