package types

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount of money, counted in minor currency units (pence).
//
// Amounts never leave minor units, so all arithmetic on Money is plain
// integer arithmetic and there is nothing to round.
type Money int64

// CategoryName is the name of a spending category. Allocations, spending
// and budgets are all keyed by it.
type CategoryName string

func (c CategoryName) String() string {
	return string(c)
}

// Abs returns the amount with a positive sign.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Decimal returns the amount in major units as a decimal, for ratio
// calculations. Money arithmetic itself stays in integers.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

var moneyPrinter = message.NewPrinter(language.BritishEnglish)

// String formats the amount for messages, e.g. "£1,234.56" or "-£0.01".
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return moneyPrinter.Sprintf("%s£%d.%02d", sign, int64(m/100), int64(m%100))
}
