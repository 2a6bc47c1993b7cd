package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places of BRL amounts.
const MoneyPrecision = 2

// RoundMoney rounds an amount to MoneyPrecision places.
// Example: 12.345 returns 12.35
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatMoney formats an amount with exactly MoneyPrecision places.
// Example: 12.3 returns "12.30"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// MoneyFloat returns the rounded amount as a float64 for spreadsheet cells.
func MoneyFloat(amount decimal.Decimal) float64 {
	f, _ := RoundMoney(amount).Float64()
	return f
}
