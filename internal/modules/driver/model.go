// README: Driver record and presence status enum.
package driver

import (
	"time"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusOnRide    Status = "on-ride"
	StatusOffline   Status = "offline"
)

// ParseStatus maps a wire string onto the closed status enum. There are no
// transition rules between presence states; any known value may be written
// at any time.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusAvailable, StatusOnRide, StatusOffline:
		return Status(raw), nil
	}
	return "", ErrUnknownStatus
}

// Driver is a registered vehicle operator. Code is the human-facing driver
// id painted on the auto (serialized as driverId for the web client); ID is
// the record key. Status and location are independently mutable and carry no
// reference to any in-flight ride — that linkage lives on the ride record.
type Driver struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"userId"`
	Code       string    `json:"driverId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	AutoNumber string    `json:"autoNumber"`
	Rating     float64   `json:"rating"`
	Status     Status    `json:"status"`
	Lat        *float64  `json:"lat"`
	Lng        *float64  `json:"lng"`
	CreatedAt  time.Time `json:"createdAt"`
}
