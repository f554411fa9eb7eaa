// README: Fare calculator; tiered distance/time pricing with discount and night surcharge.
package fare

import (
	"math"
	"time"

	"campusride/internal/config"
)

const (
	// minutesPerKm converts route distance into the ride-time estimate.
	minutesPerKm = 3.2
	// freeDistanceKm is covered by the base fare; per-km charges apply beyond it.
	freeDistanceKm = 2.0
	// Night window is [22:00, 06:00) in the scheduled time's own location.
	nightStartHour = 22
	nightEndHour   = 6
)

// DistanceResolver supplies route distances. It never fails; unknown routes
// resolve to a default so an estimate is always produced.
type DistanceResolver interface {
	Resolve(origin, destination string) float64
}

type Service struct {
	cfg      config.FareConfig
	distance DistanceResolver
}

func NewService(cfg config.FareConfig, distance DistanceResolver) *Service {
	return &Service{cfg: cfg, distance: distance}
}

// Calculate prices a trip. The student discount applies to every booking
// regardless of who books it — the tariff has no rider-role input today.
// Passenger counts below 1 are treated as 1. scheduledAt is optional; when
// set it decides the night surcharge, otherwise the ride is priced as daytime.
func (s *Service) Calculate(origin, destination string, passengers int, scheduledAt *time.Time) Estimate {
	dist := s.distance.Resolve(origin, destination)
	estimatedTime := int(math.Ceil(dist * minutesPerKm))

	baseFare := float64(s.cfg.BaseFare)
	distanceFare := 0.0
	if dist > freeDistanceKm {
		distanceFare = (dist - freeDistanceKm) * float64(s.cfg.PerKmRate)
	}
	timeFare := float64(estimatedTime) * float64(s.cfg.PerMinuteRate)

	discount := 1 - s.cfg.StudentDiscount
	subtotal := (baseFare + distanceFare + timeFare) * discount
	if scheduledAt != nil && isNight(*scheduledAt) {
		subtotal *= 1 + s.cfg.NightSurcharge
	}

	total := round(subtotal)
	if passengers < 1 {
		passengers = 1
	}

	return Estimate{
		BaseFare:      round(baseFare * discount),
		DistanceFare:  round(distanceFare * discount),
		TimeFare:      round(timeFare * discount),
		Total:         total,
		SharedTotal:   round(float64(total) / float64(passengers)),
		Distance:      dist,
		EstimatedTime: estimatedTime,
		Currency:      s.cfg.Currency,
	}
}

// round is half-up, applied independently to every published amount.
func round(v float64) int64 {
	return int64(math.Round(v))
}

func isNight(t time.Time) bool {
	h := t.Hour()
	return h >= nightStartHour || h < nightEndHour
}
