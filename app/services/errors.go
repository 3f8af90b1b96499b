package services

import (
	"errors"

	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// Service-level failure taxonomy. Authorization failures short-circuit
// before any mutation; store and provider failures propagate wrapped.
var (
	// ErrForbidden — credential present but insufficient: wrong identity
	// or wrong role.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict — duplicate submission or an invalid lifecycle
	// transition.
	ErrConflict = errors.New("conflict")
)

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
