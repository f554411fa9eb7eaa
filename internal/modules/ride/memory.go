// README: In-memory ride store; the default deployment mode and the test store.
package ride

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rides map[string]*Ride
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rides: make(map[string]*Ride)}
}

func (s *MemoryStore) Create(ctx context.Context, r *Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.rides[r.ID] = &cp
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rides[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status Status, driverID *string) (*Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rides[id]
	if !ok {
		return nil, ErrNotFound
	}
	r.Status = status
	if driverID != nil {
		r.DriverID = driverID
	}
	cp := *r
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Ride, error) {
	return s.listWhere(func(*Ride) bool { return true }), nil
}

func (s *MemoryStore) ListByDriver(ctx context.Context, driverID string) ([]*Ride, error) {
	return s.listWhere(func(r *Ride) bool {
		return r.DriverID != nil && *r.DriverID == driverID
	}), nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID string) ([]*Ride, error) {
	return s.listWhere(func(r *Ride) bool {
		return r.UserID != nil && *r.UserID == userID
	}), nil
}

func (s *MemoryStore) listWhere(match func(*Ride) bool) []*Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Ride, 0, len(s.rides))
	for _, r := range s.rides {
		if match(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}
