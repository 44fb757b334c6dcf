package models

import (
	"github.com/ynam/backend/internal/budget"
	"github.com/ynam/backend/internal/report"
	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
)

// The functions in this file are the imperative shell around the budget
// and report packages: they read the current state, run the pure
// calculation and persist the result. Every multi-step mutation runs in a
// single database transaction so that a crash can not leave the invariant
// tbb = Σ(allocations) + remaining_tbb violated.

// monthState reads the TBB pool and allocation map for a month. A month
// without a TBB value has a pool of zero.
func monthState(db *gorm.DB, month types.Month) (tbb types.Money, allocations map[types.CategoryName]types.Money, err error) {
	tbb, _, err = MonthlyTBB(db, month)
	if err != nil {
		return 0, nil, err
	}

	allocations, err = Allocations(db, month)
	if err != nil {
		return 0, nil, err
	}

	return tbb, allocations, nil
}

// SetBudget sets a category's allocation for a month to a target amount,
// validating it against the remaining TBB.
func SetBudget(db *gorm.DB, month types.Month, category types.CategoryName, target types.Money) (budget.Allocation, error) {
	var result budget.Allocation

	err := db.Transaction(func(tx *gorm.DB) error {
		tbb, allocations, err := monthState(tx, month)
		if err != nil {
			return err
		}

		result, err = budget.Set(target, allocations[category], budget.RemainingTBB(tbb, allocations))
		if err != nil {
			return err
		}

		return SetAllocation(tx, month, category, result.Allocated)
	})

	return result, err
}

// AddToBudget moves an amount from a month's TBB pool into a category.
func AddToBudget(db *gorm.DB, month types.Month, category types.CategoryName, amount types.Money) (budget.Allocation, error) {
	var result budget.Allocation

	err := db.Transaction(func(tx *gorm.DB) error {
		tbb, allocations, err := monthState(tx, month)
		if err != nil {
			return err
		}

		result, err = budget.Add(amount, allocations[category], budget.RemainingTBB(tbb, allocations))
		if err != nil {
			return err
		}

		return SetAllocation(tx, month, category, result.Allocated)
	})

	return result, err
}

// RemoveFromBudget returns an amount from a category to the month's TBB
// pool.
func RemoveFromBudget(db *gorm.DB, month types.Month, category types.CategoryName, amount types.Money) (budget.Allocation, error) {
	var result budget.Allocation

	err := db.Transaction(func(tx *gorm.DB) error {
		tbb, allocations, err := monthState(tx, month)
		if err != nil {
			return err
		}

		result, err = budget.Remove(amount, allocations[category], budget.RemainingTBB(tbb, allocations))
		if err != nil {
			return err
		}

		return SetAllocation(tx, month, category, result.Allocated)
	})

	return result, err
}

// TransferBudget moves an amount between two categories in the same
// month. The move is zero-sum and leaves the TBB pool untouched; both
// allocation rows are written in one transaction.
func TransferBudget(db *gorm.DB, month types.Month, from, to types.CategoryName, amount types.Money) (budget.TransferResult, error) {
	var result budget.TransferResult

	if from == to {
		return result, ErrSameCategory
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		allocations, err := Allocations(tx, month)
		if err != nil {
			return err
		}

		result, err = budget.Transfer(amount, allocations[from], allocations[to])
		if err != nil {
			return err
		}

		if err := SetAllocation(tx, month, from, result.FromAllocated); err != nil {
			return err
		}

		return SetAllocation(tx, month, to, result.ToAllocated)
	})

	return result, err
}

// BudgetStatus builds the consolidated budget snapshot for a month.
func BudgetStatus(db *gorm.DB, month types.Month) (budget.Status, error) {
	tbb, allocations, err := monthState(db, month)
	if err != nil {
		return budget.Status{}, err
	}

	since, until := month.Bounds()
	spending, err := CategoryBreakdown(db, since, until)
	if err != nil {
		return budget.Status{}, err
	}

	return budget.ComputeStatus(tbb, allocations, spending), nil
}

// RolloverToNextMonth copies a month's allocations verbatim into the
// following month and sets that month's TBB pool to the source pool plus
// all unspent category amounts.
//
// The source month must have allocations and a TBB value. The allocation
// rows and the TBB value are written in a single transaction.
func RolloverToNextMonth(db *gorm.DB, month types.Month) (budget.RolloverSummary, error) {
	var summary budget.RolloverSummary

	err := db.Transaction(func(tx *gorm.DB) error {
		allocations, err := Allocations(tx, month)
		if err != nil {
			return err
		}
		if len(allocations) == 0 {
			return ErrNoAllocations
		}

		tbb, ok, err := MonthlyTBB(tx, month)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMonthHasNoTBB
		}

		since, until := month.Bounds()
		spending, err := CategoryBreakdown(tx, since, until)
		if err != nil {
			return err
		}

		summary = budget.Rollover(tbb, allocations, spending)

		target := month.AddDate(0, 1)
		for category, amount := range allocations {
			if err := SetAllocation(tx, target, category, amount); err != nil {
				return err
			}
		}

		return SetMonthlyTBB(tx, target, summary.NewTBB)
	})

	return summary, err
}

// MonthReport builds the full spending and income report for a month,
// with percentage annotations against the month's allocations.
func MonthReport(db *gorm.DB, month types.Month, sortBy report.SortOrder) (report.FullReport, error) {
	since, until := month.Bounds()
	breakdown, err := CategoryBreakdown(db, since, until)
	if err != nil {
		return report.FullReport{}, err
	}

	budgets, err := Allocations(db, month)
	if err != nil {
		return report.FullReport{}, err
	}

	return report.Compose(breakdown, budgets, sortBy), nil
}
