package payout

import "errors"

var (
	ErrPayoutNotFound = errors.New("payout not found")
	ErrEmptyPeriod    = errors.New("no eligible payments in period")
	ErrAlreadyPaid    = errors.New("payout already marked as paid")
	ErrInvalidPeriod  = errors.New("period end must not precede period start")
	ErrNotOwner       = errors.New("payout belongs to another therapist")
)
