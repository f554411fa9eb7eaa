// README: Distance resolver; directed table lookup with a default fallback.
package distance

// DefaultKm is assumed whenever a route is missing from the table. Booking
// must never fail on an unsurveyed pair.
const DefaultKm = 3.2

type Resolver struct {
	table map[string]map[string]float64
}

func NewResolver() *Resolver {
	return &Resolver{table: campusDistances}
}

// Resolve returns the surveyed distance from origin to destination in km.
// Lookups are directional; the reverse pair is never consulted. Unknown
// locations and unsurveyed pairs resolve to DefaultKm rather than erroring.
func (r *Resolver) Resolve(origin, destination string) float64 {
	if legs, ok := r.table[origin]; ok {
		if km, ok := legs[destination]; ok {
			return km
		}
	}
	return DefaultKm
}

// Locations lists the known campus landmarks in display order.
func (r *Resolver) Locations() []Location {
	out := make([]Location, len(campusLocations))
	copy(out, campusLocations)
	return out
}
