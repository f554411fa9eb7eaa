// README: Feedback service; create and list, nothing else.
package feedback

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
	Name      string
	StudentID *string
	Type      string
	Message   string
	Rating    *int
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Feedback, error) {
	if cmd.Name == "" || cmd.Type == "" || cmd.Message == "" {
		return nil, ErrBadRequest
	}
	f := &Feedback{
		ID:        uuid.NewString(),
		Name:      cmd.Name,
		StudentID: cmd.StudentID,
		Type:      cmd.Type,
		Message:   cmd.Message,
		Rating:    cmd.Rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]*Feedback, error) {
	return s.store.List(ctx)
}
