// README: Driver store backed by PostgreSQL.
package driver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusride/internal/types"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const driverColumns = `id, user_id, driver_code, name, phone, auto_number,
		rating, status, lat, lng, created_at`

func (s *PostgresStore) Create(ctx context.Context, d *Driver) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO drivers (
			id, user_id, driver_code, name, phone, auto_number,
			rating, status, lat, lng, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.UserID, d.Code, d.Name, d.Phone, d.AutoNumber,
		d.Rating, string(d.Status), d.Lat, d.Lng, d.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrCodeTaken
	}
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Driver, error) {
	row := s.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id)
	return scanDriver(row)
}

func (s *PostgresStore) GetByCode(ctx context.Context, code string) (*Driver, error) {
	row := s.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE driver_code = $1`, code)
	return scanDriver(row)
}

func (s *PostgresStore) List(ctx context.Context) ([]*Driver, error) {
	rows, err := s.db.Query(ctx, `SELECT `+driverColumns+` FROM drivers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status Status) (*Driver, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE drivers SET status = $1 WHERE id = $2
		RETURNING `+driverColumns,
		string(status), id,
	)
	return scanDriver(row)
}

func (s *PostgresStore) UpdateLocation(ctx context.Context, id string, pos types.Point) (*Driver, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE drivers SET lat = $1, lng = $2 WHERE id = $3
		RETURNING `+driverColumns,
		pos.Lat, pos.Lng, id,
	)
	return scanDriver(row)
}

func scanDriver(row pgx.Row) (*Driver, error) {
	var d Driver
	var userID sql.NullString
	var status string
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&d.ID, &userID, &d.Code, &d.Name, &d.Phone, &d.AutoNumber,
		&d.Rating, &status, &lat, &lng, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		d.UserID = &userID.String
	}
	d.Status = Status(status)
	if lat.Valid {
		d.Lat = &lat.Float64
	}
	if lng.Valid {
		d.Lng = &lng.Float64
	}
	return &d, nil
}
