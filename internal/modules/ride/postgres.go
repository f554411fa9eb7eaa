// README: Ride store backed by PostgreSQL.
package ride

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, r *Ride) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO rides (
			id, user_id, driver_id, pickup_location, drop_location,
			passengers, ride_type, fare, status, scheduled_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		r.ID, r.UserID, r.DriverID, r.PickupLocation, r.DropLocation,
		r.Passengers, r.RideType, r.Fare, string(r.Status), r.ScheduledAt, r.CreatedAt,
	)
	return err
}

const rideColumns = `id, user_id, driver_id, pickup_location, drop_location,
		passengers, ride_type, fare, status, scheduled_at, created_at`

func (s *PostgresStore) Get(ctx context.Context, id string) (*Ride, error) {
	row := s.db.QueryRow(ctx, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, id)
	r, err := scanRide(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status Status, driverID *string) (*Ride, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE rides
		SET status = $1,
		    driver_id = COALESCE($2, driver_id)
		WHERE id = $3
		RETURNING `+rideColumns,
		string(status), driverID, id,
	)
	r, err := scanRide(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *PostgresStore) List(ctx context.Context) ([]*Ride, error) {
	rows, err := s.db.Query(ctx, `SELECT `+rideColumns+` FROM rides`)
	if err != nil {
		return nil, err
	}
	return collectRides(rows)
}

func (s *PostgresStore) ListByDriver(ctx context.Context, driverID string) ([]*Ride, error) {
	rows, err := s.db.Query(ctx, `SELECT `+rideColumns+` FROM rides WHERE driver_id = $1`, driverID)
	if err != nil {
		return nil, err
	}
	return collectRides(rows)
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]*Ride, error) {
	rows, err := s.db.Query(ctx, `SELECT `+rideColumns+` FROM rides WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return collectRides(rows)
}

func scanRide(row pgx.Row) (*Ride, error) {
	var r Ride
	var userID, driverID sql.NullString
	var status string
	var scheduledAt sql.NullTime

	err := row.Scan(
		&r.ID, &userID, &driverID, &r.PickupLocation, &r.DropLocation,
		&r.Passengers, &r.RideType, &r.Fare, &status, &scheduledAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		r.UserID = &userID.String
	}
	if driverID.Valid {
		r.DriverID = &driverID.String
	}
	r.Status = Status(status)
	r.ScheduledAt = toTimePtr(scheduledAt)
	return &r, nil
}

func collectRides(rows pgx.Rows) ([]*Ride, error) {
	defer rows.Close()
	var out []*Ride
	for rows.Next() {
		r, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
