package dto

// ApproveRequest is the body of an approval.
type ApproveRequest struct {
	Comments string `json:"comments" binding:"max=500"`
}

// RejectRequest is the body of a rejection. A reason is mandatory.
type RejectRequest struct {
	Reason   string `json:"reason" binding:"required,max=500"`
	Comments string `json:"comments" binding:"max=500"`
}

// CancelRequest is the body of a cancellation.
type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ListTransactionsParams bounds the recent-transactions read.
type ListTransactionsParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
