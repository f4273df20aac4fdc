package reservationRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrStoreUnavailable covers connectivity failures and timeouts.
	ErrStoreUnavailable = errors.New("reservation store unavailable")
	// ErrQuery covers rejected queries and documents that cannot be projected.
	ErrQuery = errors.New("reservation query failed")
)

// StoreError records which repository operation failed and why.
type StoreError struct {
	Op   string
	Kind error // ErrStoreUnavailable or ErrQuery
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classify wraps err in a StoreError of the matching kind.
func classify(op string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	kind := ErrQuery
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		kind = ErrStoreUnavailable
	}
	return &StoreError{Op: op, Kind: kind, Err: err}
}
