package budget

import (
	"github.com/ynam/backend/internal/types"
)

// CategoryRollover is the unspent amount a single category carries into
// the following month.
type CategoryRollover struct {
	Category  types.CategoryName `json:"category"`
	Allocated types.Money        `json:"allocated"` // Allocation in the source month
	Spent     types.Money        `json:"spent"`     // Signed spending in the source month
	Available types.Money        `json:"available"` // The amount that rolls over
}

// RolloverSummary is the TBB adjustment for rolling a month into the next
// one. It covers the pool only, copying the source month's allocations
// into the target month is the caller's responsibility.
type RolloverSummary struct {
	BaseTBB       types.Money        `json:"baseTbb"`       // The source month's TBB pool
	TotalRollover types.Money        `json:"totalRollover"` // Sum of all rolled-over amounts, never negative
	NewTBB        types.Money        `json:"newTbb"`        // The target month's TBB pool
	Rollovers     []CategoryRollover `json:"rollovers"`     // Categories with unspent money, sorted by name
}

// Rollover computes the new TBB pool for the month following the one the
// inputs describe.
//
// Only categories with a positive available amount contribute. Overspent
// and exactly-spent categories carry zero rollover, they never subtract
// from the pool.
func Rollover(baseTBB types.Money, allocations, spending map[types.CategoryName]types.Money) RolloverSummary {
	rollovers := make([]CategoryRollover, 0)
	var total types.Money

	for _, category := range sortedCategories(allocations) {
		allocated := allocations[category]
		spent := spending[category]
		available := Available(allocated, spent)

		if available <= 0 {
			continue
		}

		rollovers = append(rollovers, CategoryRollover{
			Category:  category,
			Allocated: allocated,
			Spent:     spent,
			Available: available,
		})
		total += available
	}

	return RolloverSummary{
		BaseTBB:       baseTBB,
		TotalRollover: total,
		NewTBB:        baseTBB + total,
		Rollovers:     rollovers,
	}
}
