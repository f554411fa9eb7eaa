// README: Feedback stores (memory and postgres) behind one contract.
package feedback

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBadRequest = errors.New("bad request")

type Store interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context) ([]*Feedback, error)
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Feedback
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, f *Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Feedback, len(s.entries))
	for i, f := range s.entries {
		cp := *f
		out[i] = &cp
	}
	return out, nil
}

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, f *Feedback) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO feedback (id, name, student_id, type, message, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, f.StudentID, f.Type, f.Message, f.Rating, f.CreatedAt,
	)
	return err
}

func (s *PostgresStore) List(ctx context.Context) ([]*Feedback, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, student_id, type, message, rating, created_at FROM feedback`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFeedback(row pgx.Row) (*Feedback, error) {
	var f Feedback
	var studentID *string
	var rating *int
	if err := row.Scan(&f.ID, &f.Name, &studentID, &f.Type, &f.Message, &rating, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.StudentID = studentID
	f.Rating = rating
	return &f, nil
}
