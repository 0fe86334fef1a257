package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

// Store is the persistence port: a key-value store holding opaque JSON
// records, one value per key. Every write replaces the whole value; there are
// no partial updates and no transactions across keys.
type Store interface {
	// Get decodes the value at key into dst. A missing key or a value that
	// fails to decode reports (false, nil): corrupt data reads as absent.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Del(ctx context.Context, key string) error

	// Watch emits a signal whenever the value at key changes, including
	// changes made by other processes. Callers re-read the full value on each
	// signal. The returned func unsubscribes.
	Watch(ctx context.Context, key string) (<-chan struct{}, func())
}

// Storage keys. Values under these keys are whole serialized records.
const (
	KeyDraft      = "bookingDraft"
	KeyBookings   = "bookings_v1"
	KeyFavorites  = "favorites"
	KeyShortlist  = "shortlist"
	KeyMembership = "membershipPlan"
	KeyAuthUser   = "auth.user"
	KeyAuthFlag   = "auth.session"
)
