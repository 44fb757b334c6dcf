// Package report implements the calculation core for spending and income
// reports. Like the budget package it is pure: the transaction breakdown
// comes in as a map, the derived view objects go out, and nothing here
// performs I/O.
package report

import (
	"github.com/shopspring/decimal"
	"github.com/ynam/backend/internal/types"
	"golang.org/x/exp/slices"
)

// SortOrder determines how report categories are ordered.
type SortOrder string

const (
	// SortValue orders expenses ascending by signed amount (largest
	// expense first) and income descending by amount (largest income
	// first).
	SortValue SortOrder = "value"
	// SortAlpha orders categories by name.
	SortAlpha SortOrder = "alpha"
)

// Band is the presentation severity of an expense category relative to
// its budget.
type Band string

const (
	BandOnTrack    Band = "on-track"
	BandNearLimit  Band = "near-limit"
	BandOverBudget Band = "over-budget"
)

var (
	nearLimitThreshold  = decimal.NewFromInt(90)
	overBudgetThreshold = decimal.NewFromInt(100)
)

// CategoryReport is one category line in a report.
type CategoryReport struct {
	Category   types.CategoryName `json:"category"`
	Amount     types.Money        `json:"amount"`               // Signed: negative for expenses, positive for income
	Budget     *types.Money       `json:"budget,omitempty"`     // The category's budget, when one is known
	Percentage *decimal.Decimal   `json:"percentage,omitempty"` // Percent of budget used, when a positive budget is known
	Band       Band               `json:"band,omitempty"`       // Severity band, when a percentage is known
}

// ExpenseReport lists all categories with negative amounts.
type ExpenseReport struct {
	Categories  []CategoryReport `json:"categories"`
	Total       types.Money      `json:"total"`       // Sum of all expense amounts (negative)
	TotalBudget types.Money      `json:"totalBudget"` // Sum of the budgets of all expense categories
}

// IncomeReport lists all categories with positive amounts.
type IncomeReport struct {
	Categories []CategoryReport `json:"categories"`
	Total      types.Money      `json:"total"`
}

// FullReport is the complete report for a period.
type FullReport struct {
	Expenses ExpenseReport `json:"expenses"`
	Income   IncomeReport  `json:"income"`
	Net      types.Money   `json:"net"` // Sum over expenses and income together
}

// Percentage returns how much of a budget an actual amount uses, in
// percent. A budget of zero or less yields zero.
func Percentage(actual, budget types.Money) decimal.Decimal {
	if budget <= 0 {
		return decimal.Zero
	}

	return actual.Abs().Decimal().Div(budget.Decimal()).Mul(decimal.NewFromInt(100))
}

// BandFor classifies a budget percentage. The cut points are >90 for
// near-limit and >100 for over-budget; exactly 90 and exactly 100 fall to
// the lower band.
func BandFor(percentage decimal.Decimal) Band {
	switch {
	case percentage.GreaterThan(overBudgetThreshold):
		return BandOverBudget
	case percentage.GreaterThan(nearLimitThreshold):
		return BandNearLimit
	default:
		return BandOnTrack
	}
}

// Split separates a signed category breakdown into expenses (amount < 0)
// and income (amount > 0). Categories with a zero amount appear in
// neither.
func Split(breakdown map[types.CategoryName]types.Money) (expenses, income map[types.CategoryName]types.Money) {
	expenses = make(map[types.CategoryName]types.Money)
	income = make(map[types.CategoryName]types.Money)

	for category, amount := range breakdown {
		if amount < 0 {
			expenses[category] = amount
		} else if amount > 0 {
			income[category] = amount
		}
	}

	return expenses, income
}

// BarLength returns the histogram bar length for an amount, scaled so that
// the largest amount in the dataset fills the full width.
func BarLength(amount, maxAmount types.Money, width int) int {
	if maxAmount <= 0 {
		return 0
	}

	return int(int64(amount.Abs()) * int64(width) / int64(maxAmount))
}

// sortEntries orders report lines for presentation. Value order sorts
// expenses ascending and income descending by signed amount; ties are
// broken by name either way.
func sortEntries(entries []CategoryReport, sortBy SortOrder, descending bool) {
	slices.SortFunc(entries, func(a, b CategoryReport) int {
		if sortBy != SortAlpha && a.Amount != b.Amount {
			if (a.Amount < b.Amount) != descending {
				return -1
			}
			return 1
		}

		if a.Category < b.Category {
			return -1
		}
		if a.Category > b.Category {
			return 1
		}
		return 0
	})
}

// newCategoryReport builds one report line, attaching percentage and band
// when a usable budget is known.
func newCategoryReport(category types.CategoryName, amount types.Money, budget *types.Money) CategoryReport {
	r := CategoryReport{
		Category: category,
		Amount:   amount,
		Budget:   budget,
	}

	if budget != nil && *budget > 0 {
		percentage := Percentage(amount, *budget)
		r.Percentage = &percentage
		r.Band = BandFor(percentage)
	}

	return r
}

// ComposeExpenses builds the expense sub-report with budget comparisons.
func ComposeExpenses(expenses, budgets map[types.CategoryName]types.Money, sortBy SortOrder) ExpenseReport {
	categories := make([]CategoryReport, 0, len(expenses))
	var total, totalBudget types.Money

	for category, amount := range expenses {
		var budget *types.Money
		if b, ok := budgets[category]; ok {
			budget = &b
			totalBudget += b
		}

		categories = append(categories, newCategoryReport(category, amount, budget))
		total += amount
	}

	sortEntries(categories, sortBy, false)

	return ExpenseReport{
		Categories:  categories,
		Total:       total,
		TotalBudget: totalBudget,
	}
}

// ComposeIncome builds the income sub-report. Income is never measured
// against a budget.
func ComposeIncome(income map[types.CategoryName]types.Money, sortBy SortOrder) IncomeReport {
	categories := make([]CategoryReport, 0, len(income))
	var total types.Money

	for category, amount := range income {
		categories = append(categories, newCategoryReport(category, amount, nil))
		total += amount
	}

	sortEntries(categories, sortBy, true)

	return IncomeReport{
		Categories: categories,
		Total:      total,
	}
}

// Compose builds the full report for a period from the signed category
// breakdown and the budgets in effect.
func Compose(breakdown, budgets map[types.CategoryName]types.Money, sortBy SortOrder) FullReport {
	expenses, income := Split(breakdown)

	var net types.Money
	for _, amount := range breakdown {
		net += amount
	}

	return FullReport{
		Expenses: ComposeExpenses(expenses, budgets, sortBy),
		Income:   ComposeIncome(income, sortBy),
		Net:      net,
	}
}
