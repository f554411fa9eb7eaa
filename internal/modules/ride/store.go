// README: Ride store contract; implemented by the memory and postgres stores.
package ride

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("ride not found")
	ErrBadRequest        = errors.New("bad request")
	ErrUnknownStatus     = errors.New("unknown ride status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Store is the keyed record store behind the lifecycle manager. Every write
// touches exactly one record; concurrent writers to the same ride are
// last-write-wins by design (no version token).
type Store interface {
	Create(ctx context.Context, r *Ride) error
	Get(ctx context.Context, id string) (*Ride, error)
	// UpdateStatus overwrites the status and, when driverID is non-nil,
	// assigns the driver in the same write.
	UpdateStatus(ctx context.Context, id string, status Status, driverID *string) (*Ride, error)
	List(ctx context.Context) ([]*Ride, error)
	ListByDriver(ctx context.Context, driverID string) ([]*Ride, error)
	ListByUser(ctx context.Context, userID string) ([]*Ride, error)
}
