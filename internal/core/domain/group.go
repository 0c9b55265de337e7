package domain

import "github.com/shopspring/decimal"

// GroupType is the kind of account group.
type GroupType string

const (
	GroupFamily   GroupType = "FAMILY"
	GroupBusiness GroupType = "BUSINESS"
	GroupJoint    GroupType = "JOINT"
)

// Group is a named collection of accounts owned by one user.
type Group struct {
	ID           int64           `json:"id"`
	GroupName    string          `json:"groupName"`
	Description  string          `json:"description,omitempty"`
	GroupType    GroupType       `json:"groupType"`
	Owner        *User           `json:"owner,omitempty"`
	Accounts     []Account       `json:"accounts,omitempty"`
	MaxAccounts  int             `json:"maxAccounts,omitempty"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	CreatedAt    Timestamp       `json:"createdAt"`
}

// GroupStatistics is the server-computed aggregate of a group.
type GroupStatistics struct {
	GroupID                int64           `json:"groupId"`
	GroupName              string          `json:"groupName"`
	TotalAccounts          int             `json:"totalAccounts"`
	ActiveAccounts         int64           `json:"activeAccounts"`
	FrozenAccounts         int64           `json:"frozenAccounts"`
	TotalBalance           decimal.Decimal `json:"totalBalance"`
	AverageBalance         decimal.Decimal `json:"averageBalance"`
	LargestAccountNumber   string          `json:"largestAccountNumber"`
	LargestAccountBalance  decimal.Decimal `json:"largestAccountBalance"`
	SmallestAccountNumber  string          `json:"smallestAccountNumber"`
	SmallestAccountBalance decimal.Decimal `json:"smallestAccountBalance"`
}
