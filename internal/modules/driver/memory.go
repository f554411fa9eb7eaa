// README: In-memory driver store; the default deployment mode and the test store.
package driver

import (
	"context"
	"sync"

	"campusride/internal/types"
)

type MemoryStore struct {
	mu      sync.RWMutex
	drivers map[string]*Driver
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drivers: make(map[string]*Driver)}
}

func (s *MemoryStore) Create(ctx context.Context, d *Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.drivers {
		if existing.Code == d.Code {
			return ErrCodeTaken
		}
	}
	cp := *d
	s.drivers[d.ID] = &cp
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) GetByCode(ctx context.Context, code string) (*Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drivers {
		if d.Code == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]*Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status Status) (*Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	d.Status = status
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) UpdateLocation(ctx context.Context, id string, pos types.Point) (*Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	lat, lng := pos.Lat, pos.Lng
	d.Lat = &lat
	d.Lng = &lng
	cp := *d
	return &cp, nil
}
