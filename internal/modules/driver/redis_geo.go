// README: Driver geo index backed by Redis GEO.
package driver

import (
	"context"

	"github.com/redis/go-redis/v9"

	"campusride/internal/types"
)

const driverGeoKey = "presence:drivers"

type RedisGeo struct {
	redis *redis.Client
}

func NewRedisGeo(client *redis.Client) *RedisGeo {
	return &RedisGeo{redis: client}
}

func (g *RedisGeo) Add(ctx context.Context, id string, pos types.Point) error {
	return g.redis.GeoAdd(ctx, driverGeoKey, &redis.GeoLocation{
		Name:      id,
		Longitude: pos.Lng,
		Latitude:  pos.Lat,
	}).Err()
}

func (g *RedisGeo) Remove(ctx context.Context, id string) error {
	return g.redis.ZRem(ctx, driverGeoKey, id).Err()
}

func (g *RedisGeo) Nearby(ctx context.Context, pos types.Point, radiusKm float64) ([]NearbyDriver, error) {
	results, err := g.redis.GeoSearchLocation(ctx, driverGeoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  pos.Lng,
			Latitude:   pos.Lat,
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
		},
		WithDist: true,
	}).Result()
	if err != nil {
		return nil, err
	}
	hits := make([]NearbyDriver, len(results))
	for i, r := range results {
		hits[i] = NearbyDriver{ID: r.Name, DistanceKm: r.Dist}
	}
	return hits, nil
}
