// Package budget implements the calculation core for envelope budgeting.
//
// Everything in this package is a pure function of its arguments: no I/O,
// no shared state, no side effects. The imperative shell reads the current
// state from storage, calls into this package, and is solely responsible
// for persisting the result.
package budget

import (
	"errors"
	"fmt"

	"github.com/ynam/backend/internal/types"
)

// Validation errors returned by the allocation operations. The dynamic
// messages wrap these sentinels so callers can match with errors.Is.
var (
	ErrAmountNotPositive         = errors.New("Amount must be positive")
	ErrNotEnoughTBB              = errors.New("Not enough TBB")
	ErrRemoveMoreThanAllocated   = errors.New("Can't remove more than allocated")
	ErrTransferMoreThanAllocated = errors.New("Can't transfer more than allocated")
)

// Allocation is the state of a single category allocation together with
// the remaining To Be Budgeted pool it was computed against.
type Allocation struct {
	Allocated    types.Money `json:"allocated"`    // Amount allocated to the category
	RemainingTBB types.Money `json:"remainingTbb"` // TBB left after the operation
}

// TransferResult is the state of both category allocations after a
// transfer.
type TransferResult struct {
	FromAllocated types.Money `json:"fromAllocated"` // New allocation of the source category
	ToAllocated   types.Money `json:"toAllocated"`   // New allocation of the destination category
}

// Set computes the allocation and remaining TBB after setting a category's
// allocation to target.
//
// Setting to the current value is a legal no-op, setting to zero returns
// the full allocation to TBB. On error the returned Allocation equals the
// inputs, so persisting it blindly cannot change state.
func Set(target, current, remainingTBB types.Money) (Allocation, error) {
	if target < 0 {
		return Allocation{current, remainingTBB}, ErrAmountNotPositive
	}

	difference := target - current

	// Only increasing an allocation can run the pool dry
	if difference > 0 && difference > remainingTBB {
		return Allocation{current, remainingTBB}, fmt.Errorf("%w. Need %s but only %s available", ErrNotEnoughTBB, difference, remainingTBB)
	}

	return Allocation{target, remainingTBB - difference}, nil
}

// Add computes the allocation and remaining TBB after moving amount from
// TBB into a category.
func Add(amount, current, remainingTBB types.Money) (Allocation, error) {
	if amount <= 0 {
		return Allocation{current, remainingTBB}, ErrAmountNotPositive
	}

	if amount > remainingTBB {
		return Allocation{current, remainingTBB}, fmt.Errorf("%w (only %s available)", ErrNotEnoughTBB, remainingTBB)
	}

	return Allocation{current + amount, remainingTBB - amount}, nil
}

// Remove computes the allocation and remaining TBB after returning amount
// from a category to TBB.
func Remove(amount, current, remainingTBB types.Money) (Allocation, error) {
	if amount <= 0 {
		return Allocation{current, remainingTBB}, ErrAmountNotPositive
	}

	if amount > current {
		return Allocation{current, remainingTBB}, fmt.Errorf("%w (only %s)", ErrRemoveMoreThanAllocated, current)
	}

	return Allocation{current - amount, remainingTBB + amount}, nil
}

// Transfer computes both allocations after moving amount from one category
// to another. A transfer is zero-sum between the two categories and never
// touches TBB.
//
// Transfers where source and destination are the same category must be
// rejected by the caller, this function only sees the two amounts.
func Transfer(amount, from, to types.Money) (TransferResult, error) {
	if amount <= 0 {
		return TransferResult{from, to}, ErrAmountNotPositive
	}

	if amount > from {
		return TransferResult{from, to}, fmt.Errorf("%w (only %s)", ErrTransferMoreThanAllocated, from)
	}

	return TransferResult{from - amount, to + amount}, nil
}
