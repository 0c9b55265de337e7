package domain

import "github.com/shopspring/decimal"

// InterestReport is the server-computed interest summary of an account.
// Every figure is rendered as received.
type InterestReport struct {
	AccountNumber          string          `json:"accountNumber"`
	AccountType            AccountType     `json:"accountType"`
	CurrentBalance         decimal.Decimal `json:"currentBalance"`
	CurrentStrategy        string          `json:"currentStrategy"`
	EffectiveAnnualRate    decimal.Decimal `json:"effectiveAnnualRate"`
	MonthlyInterest        decimal.Decimal `json:"monthlyInterest"`
	YearlyInterest         decimal.Decimal `json:"yearlyInterest"`
	Projected5YearInterest decimal.Decimal `json:"projected5YearInterest"`
	LastInterestCalc       Timestamp       `json:"lastInterestCalculation"`
	NextInterestDate       Timestamp       `json:"nextInterestDate"`
}

// StrategyComparison is the server-computed comparison of two interest strategies.
type StrategyComparison struct {
	Strategy1Name  string          `json:"strategy1Name"`
	Strategy2Name  string          `json:"strategy2Name"`
	Interest1      decimal.Decimal `json:"interest1"`
	Interest2      decimal.Decimal `json:"interest2"`
	Difference     decimal.Decimal `json:"difference"`
	BetterStrategy string          `json:"betterStrategy"`
}

// InterestStrategy describes one strategy offered by the core banking API.
// Key is the name used to select it in ChangeStrategy and Compare.
type InterestStrategy struct {
	Key                   string          `json:"key"`
	Name                  string          `json:"strategyName,omitempty"`
	Description           string          `json:"description,omitempty"`
	AnnualInterestRate    decimal.Decimal `json:"annualInterestRate"`
	SupportedAccountTypes []AccountType   `json:"supportedAccountTypes,omitempty"`
}
