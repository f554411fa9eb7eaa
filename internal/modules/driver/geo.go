// README: Geo index contract and the in-memory fallback index.
package driver

import (
	"context"
	"math"
	"sync"

	"campusride/internal/types"
)

// NearbyDriver is one geo index hit, nearest first.
type NearbyDriver struct {
	ID         string
	DistanceKm float64
}

// GeoIndex answers "which drivers are near this point". It is presence
// infrastructure only and plays no part in fare distances, which come from
// the campus distance table.
type GeoIndex interface {
	Add(ctx context.Context, id string, pos types.Point) error
	Remove(ctx context.Context, id string) error
	Nearby(ctx context.Context, pos types.Point, radiusKm float64) ([]NearbyDriver, error)
}

// MemoryGeo is the fallback index used when no Redis address is configured.
type MemoryGeo struct {
	mu     sync.RWMutex
	coords map[string]types.Point
}

func NewMemoryGeo() *MemoryGeo {
	return &MemoryGeo{coords: make(map[string]types.Point)}
}

func (g *MemoryGeo) Add(ctx context.Context, id string, pos types.Point) error {
	g.mu.Lock()
	g.coords[id] = pos
	g.mu.Unlock()
	return nil
}

func (g *MemoryGeo) Remove(ctx context.Context, id string) error {
	g.mu.Lock()
	delete(g.coords, id)
	g.mu.Unlock()
	return nil
}

func (g *MemoryGeo) Nearby(ctx context.Context, pos types.Point, radiusKm float64) ([]NearbyDriver, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var hits []NearbyDriver
	for id, pt := range g.coords {
		if d := haversineKm(pos.Lat, pos.Lng, pt.Lat, pt.Lng); d <= radiusKm {
			hits = append(hits, NearbyDriver{ID: id, DistanceKm: d})
		}
	}
	sortByDistance(hits, func(n NearbyDriver) float64 { return n.DistanceKm })
	return hits, nil
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// sortByDistance performs an insertion sort (fine for small N) on any slice
// where each element exposes a distance via the accessor function.
func sortByDistance[T any](items []T, dist func(T) float64) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && dist(items[j]) > dist(key) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
