// README: Ride lifecycle service; validates bookings and status transitions.
package ride

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID         *string
	PickupLocation string
	DropLocation   string
	Passengers     int
	RideType       string
	// Fare is the estimate total the rider confirmed; it is stored verbatim
	// and never recomputed after acceptance.
	Fare        int64
	ScheduledAt *time.Time
}

// Create appends a new booking in the requested state. It never mutates an
// existing record.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Ride, error) {
	if cmd.PickupLocation == "" || cmd.DropLocation == "" {
		return nil, ErrBadRequest
	}
	if cmd.Passengers < 1 {
		return nil, ErrBadRequest
	}
	if cmd.RideType != RideTypeSingle && cmd.RideType != RideTypeShared {
		return nil, ErrBadRequest
	}
	if cmd.Fare < 0 {
		return nil, ErrBadRequest
	}

	r := &Ride{
		ID:             uuid.NewString(),
		UserID:         cmd.UserID,
		PickupLocation: cmd.PickupLocation,
		DropLocation:   cmd.DropLocation,
		Passengers:     cmd.Passengers,
		RideType:       cmd.RideType,
		Fare:           cmd.Fare,
		Status:         StatusRequested,
		ScheduledAt:    cmd.ScheduledAt,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Accept moves a requested ride to accepted and assigns the driver. The
// driver linkage lives only on the ride record; the driver's own presence
// state is tracked separately.
func (s *Service) Accept(ctx context.Context, rideID, driverID string) (*Ride, error) {
	if driverID == "" {
		return nil, ErrBadRequest
	}
	r, err := s.store.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(r.Status, StatusAccepted) {
		return nil, ErrInvalidTransition
	}
	return s.store.UpdateStatus(ctx, rideID, StatusAccepted, &driverID)
}

// SetStatus validates and applies an externally triggered transition. The
// caller supplies the raw wire status; strings outside the enum are rejected
// before any store access.
func (s *Service) SetStatus(ctx context.Context, rideID, rawStatus string) (*Ride, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	r, err := s.store.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(r.Status, status) {
		return nil, ErrInvalidTransition
	}
	return s.store.UpdateStatus(ctx, rideID, status, nil)
}

func (s *Service) Get(ctx context.Context, id string) (*Ride, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Ride, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByDriver(ctx context.Context, driverID string) ([]*Ride, error) {
	return s.store.ListByDriver(ctx, driverID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Ride, error) {
	return s.store.ListByUser(ctx, userID)
}
