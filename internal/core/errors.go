// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrPrecondition = errors.New("precondition failed")
	ErrInternal     = errors.New("internal error")
)

// Precondition failures. Each one unwraps to ErrPrecondition.
var (
	ErrInsufficientBalance = fmt.Errorf("insufficient balance: %w", ErrPrecondition)
	ErrOutOfStock          = fmt.Errorf("reward out of stock: %w", ErrPrecondition)
	ErrAlreadyReviewed     = fmt.Errorf("submission already reviewed: %w", ErrPrecondition)
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindPrecondition Kind = "precondition_failed"
	KindInternal     Kind = "internal"
)

// KindOf classifies err. Anything outside the known sentinels is internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDuplicateKey):
		return KindInvalidInput
	case errors.Is(err, ErrPrecondition):
		return KindPrecondition
	default:
		return KindInternal
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
