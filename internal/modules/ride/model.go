// README: Ride record and status state machine.
package ride

import (
	"time"
)

type Status string

const (
	StatusRequested  Status = "requested"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// AllowedTransitions represents the ride state flow as code. Terminal states
// (completed, cancelled) have no outgoing edges; cancellation is only open
// before the trip starts.
var AllowedTransitions = map[Status][]Status{
	StatusRequested:  {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// ParseStatus maps a wire string onto the closed status enum.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusRequested, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(raw), nil
	}
	return "", ErrUnknownStatus
}

const (
	RideTypeSingle = "single"
	RideTypeShared = "shared"
)

// Ride is one booking. Fare is frozen at creation and never recomputed;
// DriverID stays nil until a driver accepts. JSON names are the wire contract
// shared with the web client.
type Ride struct {
	ID             string     `json:"id"`
	UserID         *string    `json:"userId"`
	DriverID       *string    `json:"driverId"`
	PickupLocation string     `json:"pickupLocation"`
	DropLocation   string     `json:"dropLocation"`
	Passengers     int        `json:"passengers"`
	RideType       string     `json:"rideType"`
	Fare           int64      `json:"fare"`
	Status         Status     `json:"status"`
	ScheduledAt    *time.Time `json:"scheduledAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
