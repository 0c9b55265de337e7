package dto

import (
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferDraftRequest carries the fields of a transfer form. Field rules
// are enforced by the form itself so an invalid draft is reflected in the
// form's state.
type TransferDraftRequest struct {
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Description string          `json:"description" binding:"max=255"`
	GroupID     int64           `json:"groupId" binding:"gte=0"`
}

// ToDomain converts the request to a draft of kind.
func (r TransferDraftRequest) ToDomain(kind domain.FormKind) domain.TransferDraft {
	return domain.TransferDraft{
		Kind:        kind,
		Source:      r.Source,
		Destination: r.Destination,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		GroupID:     r.GroupID,
	}
}

// FormErrorResponse is returned when a form command fails. Form holds the
// form as it is after the failure.
type FormErrorResponse struct {
	Error string               `json:"error"`
	Form  *domain.FormSnapshot `json:"form,omitempty"`
}
