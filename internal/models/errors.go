package models

import "errors"

var (
	// ErrMonthHasNoTBB is returned when an operation needs a TBB value for
	// a month that has none.
	ErrMonthHasNoTBB = errors.New("no TBB value is set for this month")

	// ErrNoAllocations is returned when a rollover is requested for a
	// month without any allocations.
	ErrNoAllocations = errors.New("there are no allocations for this month")

	// ErrSameCategory is returned for transfers where source and
	// destination are the same category.
	ErrSameCategory = errors.New("Source and destination must be different categories")

	// ErrTransactionExists is returned when an identical transaction
	// (same date, description and amount) has already been recorded.
	ErrTransactionExists = errors.New("an identical transaction already exists")

	// ErrCategoryNotFound is returned when a category is referenced by a
	// name that does not exist.
	ErrCategoryNotFound = errors.New("there is no category with this name")
)
