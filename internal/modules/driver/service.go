// README: Driver presence service; status/location reports, geo sync, live fan-out.
package driver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campusride/internal/types"
)

// Publisher receives presence events for live tracking clients. Publishing
// is best-effort; a slow or absent publisher never blocks a report.
type Publisher interface {
	Publish(event PresenceEvent)
}

type PresenceEvent struct {
	Type   string  `json:"type"` // "status" or "location"
	Driver *Driver `json:"driver"`
}

type Service struct {
	store Store
	geo   GeoIndex
	pub   Publisher
	log   *logrus.Logger
}

func NewService(store Store, geo GeoIndex, log *logrus.Logger) *Service {
	return &Service{store: store, geo: geo, log: log}
}

// SetPublisher attaches the live tracking fan-out. Called once during wiring.
func (s *Service) SetPublisher(pub Publisher) {
	s.pub = pub
}

type CreateCommand struct {
	UserID     *string
	Code       string
	Name       string
	Phone      string
	AutoNumber string
	// Optional; zero values take the registration defaults
	// (offline, unrated, no location).
	Rating   float64
	Status   Status
	Location *types.Point
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Driver, error) {
	if cmd.Code == "" || cmd.Name == "" || cmd.Phone == "" || cmd.AutoNumber == "" {
		return nil, ErrBadRequest
	}
	status := cmd.Status
	if status == "" {
		status = StatusOffline
	} else if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	d := &Driver{
		ID:         uuid.NewString(),
		UserID:     cmd.UserID,
		Code:       cmd.Code,
		Name:       cmd.Name,
		Phone:      cmd.Phone,
		AutoNumber: cmd.AutoNumber,
		Rating:     cmd.Rating,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}
	if cmd.Location != nil {
		lat, lng := cmd.Location.Lat, cmd.Location.Lng
		d.Lat = &lat
		d.Lng = &lng
	}
	if err := s.store.Create(ctx, d); err != nil {
		return nil, err
	}
	if cmd.Location != nil {
		s.syncGeo(ctx, d)
	}
	return d, nil
}

// UpdateStatus overwrites the presence status. Any known status may replace
// any other; there is no transition table for presence.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (*Driver, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	d, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if status == StatusOffline {
		if err := s.geo.Remove(ctx, id); err != nil {
			s.log.WithError(err).WithField("driver_id", id).Warn("geo index remove failed")
		}
	} else {
		s.syncGeo(ctx, d)
	}
	s.publish(PresenceEvent{Type: "status", Driver: d})
	return d, nil
}

// UpdateLocation overwrites both coordinates as a pair. Coordinates are
// accepted as reported; range validation is left to the reporting device.
func (s *Service) UpdateLocation(ctx context.Context, id string, pos types.Point) (*Driver, error) {
	d, err := s.store.UpdateLocation(ctx, id, pos)
	if err != nil {
		return nil, err
	}
	s.syncGeo(ctx, d)
	s.publish(PresenceEvent{Type: "location", Driver: d})
	return d, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Driver, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Driver, error) {
	return s.store.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]*Driver, error) {
	return s.store.List(ctx)
}

// NearbyResult pairs a driver with their distance from the query point.
type NearbyResult struct {
	Driver     *Driver `json:"driver"`
	DistanceKm float64 `json:"distanceKm"`
}

// Nearby lists available drivers around a point, nearest first. Drivers in
// the geo index that have since gone on-ride or offline are filtered out.
func (s *Service) Nearby(ctx context.Context, pos types.Point, radiusKm float64) ([]NearbyResult, error) {
	hits, err := s.geo.Nearby(ctx, pos, radiusKm)
	if err != nil {
		return nil, err
	}
	out := make([]NearbyResult, 0, len(hits))
	for _, hit := range hits {
		d, err := s.store.Get(ctx, hit.ID)
		if err != nil {
			continue // index entry for a deleted/unknown driver
		}
		if d.Status != StatusAvailable {
			continue
		}
		out = append(out, NearbyResult{Driver: d, DistanceKm: hit.DistanceKm})
	}
	return out, nil
}

// syncGeo mirrors the latest known coordinates into the geo index. Index
// failures are logged, never surfaced: presence reports must not fail on
// index trouble.
func (s *Service) syncGeo(ctx context.Context, d *Driver) {
	if d.Lat == nil || d.Lng == nil {
		return
	}
	if err := s.geo.Add(ctx, d.ID, types.Point{Lat: *d.Lat, Lng: *d.Lng}); err != nil {
		s.log.WithError(err).WithField("driver_id", d.ID).Warn("geo index update failed")
	}
}

func (s *Service) publish(event PresenceEvent) {
	if s.pub != nil {
		s.pub.Publish(event)
	}
}
