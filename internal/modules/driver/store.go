// README: Driver store contract; implemented by the memory and postgres stores.
package driver

import (
	"context"
	"errors"

	"campusride/internal/types"
)

var (
	ErrNotFound      = errors.New("driver not found")
	ErrBadRequest    = errors.New("bad request")
	ErrUnknownStatus = errors.New("unknown driver status")
	ErrCodeTaken     = errors.New("driver code already registered")
)

type Store interface {
	Create(ctx context.Context, d *Driver) error
	Get(ctx context.Context, id string) (*Driver, error)
	// GetByCode looks a driver up by the human-facing code (e.g. "A101").
	GetByCode(ctx context.Context, code string) (*Driver, error)
	List(ctx context.Context) ([]*Driver, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Driver, error)
	// UpdateLocation overwrites both coordinates as a pair.
	UpdateLocation(ctx context.Context, id string, pos types.Point) (*Driver, error)
}
