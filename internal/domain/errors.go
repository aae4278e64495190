package domain

import "fmt"

// ValidationError reports bad input; the caller can correct and resubmit.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced id does not resolve.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InsufficientStockError rejects an out-movement that would drive an item's
// quantity negative. Carries both quantities for a precise user message.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: have %d, requested %d", e.Available, e.Requested)
}

// CorruptStateError means a stored collection payload could not be decoded.
// It is surfaced, never auto-repaired; the caller decides whether to reset.
type CorruptStateError struct {
	Collection string
	Err        error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("collection %q is corrupt: %v", e.Collection, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// PartialCommitError means the item quantity was written but the matching
// ledger append failed, leaving the two collections inconsistent.
type PartialCommitError struct {
	ItemID string
	Err    error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("stock updated for item %q but the movement was not recorded: %v", e.ItemID, e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }
