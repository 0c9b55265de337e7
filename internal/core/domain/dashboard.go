package domain

import "github.com/shopspring/decimal"

// Dashboard is the landing view of a signed-in user.
type Dashboard struct {
	User                User            `json:"user"`
	Layout              string          `json:"layout"`
	Accounts            []Account       `json:"accounts"`
	TotalBalance        decimal.Decimal `json:"totalBalance"`
	Currency            string          `json:"currency,omitempty"`
	RecentTransactions  []Transaction   `json:"recentTransactions"`
	UnreadNotifications int             `json:"unreadNotifications"`
	PendingApprovals    *int            `json:"pendingApprovals,omitempty"`
}
