package utils

import (
	"github.com/shopspring/decimal"
)

// currencyPrecision lists currencies whose minor unit differs from two digits.
var currencyPrecision = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"BHD": 3,
	"KWD": 3,
}

// FormatMoney formats an amount with the precision of its currency.
// Example: 12.3456 USD returns "12.35 USD"
// Example: 12.3456 JPY returns "12 JPY"
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(precisionFor(currency))
	if currency == "" {
		return s
	}
	return s + " " + currency
}

func precisionFor(currency string) int32 {
	if p, ok := currencyPrecision[currency]; ok {
		return p
	}
	return 2
}
