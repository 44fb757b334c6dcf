package budget

import (
	"github.com/ynam/backend/internal/types"
	"golang.org/x/exp/slices"
)

// CategoryStatus is the budget status of a single category for a month.
type CategoryStatus struct {
	Category  types.CategoryName `json:"category"`
	Allocated types.Money        `json:"allocated"` // Amount allocated for the month
	Spent     types.Money        `json:"spent"`     // Absolute amount spent against the allocation
	Available types.Money        `json:"available"` // Allocated minus spent, negative when overspent
}

// Status is the consolidated budget snapshot for a month.
type Status struct {
	TBB            types.Money      `json:"tbb"`            // The To Be Budgeted pool for the month
	TotalAllocated types.Money      `json:"totalAllocated"` // Sum of all category allocations
	RemainingTBB   types.Money      `json:"remainingTbb"`   // TBB minus allocations, negative when over-allocated
	Categories     []CategoryStatus `json:"categories"`     // Per-category status, sorted by name
}

// Available returns how much of an allocation is left after spending.
// Spending is signed: only negative amounts count against the allocation,
// income and inactivity leave it untouched.
func Available(allocated, spent types.Money) types.Money {
	if spent < 0 {
		return allocated + spent
	}
	return allocated
}

// spentAgainstBudget returns the absolute amount a signed spending value
// counts against a budget. Income counts as zero.
func spentAgainstBudget(spent types.Money) types.Money {
	if spent < 0 {
		return -spent
	}
	return 0
}

// RemainingTBB returns how much of the pool is left to allocate. It may be
// negative, which is an over-allocation warning, not an error.
func RemainingTBB(tbb types.Money, allocations map[types.CategoryName]types.Money) types.Money {
	var total types.Money
	for _, amount := range allocations {
		total += amount
	}
	return tbb - total
}

// sortedCategories returns the keys of a category map in alphabetical
// order, for deterministic output.
func sortedCategories(m map[types.CategoryName]types.Money) []types.CategoryName {
	categories := make([]types.CategoryName, 0, len(m))
	for category := range m {
		categories = append(categories, category)
	}
	slices.Sort(categories)
	return categories
}

// ComputeStatus builds the budget snapshot for a month from its TBB pool,
// its allocations and the signed per-category spending for its date range.
func ComputeStatus(tbb types.Money, allocations, spending map[types.CategoryName]types.Money) Status {
	var totalAllocated types.Money
	for _, amount := range allocations {
		totalAllocated += amount
	}

	categories := make([]CategoryStatus, 0, len(allocations))
	for _, category := range sortedCategories(allocations) {
		allocated := allocations[category]
		spent := spentAgainstBudget(spending[category])

		categories = append(categories, CategoryStatus{
			Category:  category,
			Allocated: allocated,
			Spent:     spent,
			Available: allocated - spent,
		})
	}

	return Status{
		TBB:            tbb,
		TotalAllocated: totalAllocated,
		RemainingTBB:   tbb - totalAllocated,
		Categories:     categories,
	}
}
