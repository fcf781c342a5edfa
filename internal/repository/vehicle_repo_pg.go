package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PGVehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) VehicleRepository {
	return &PGVehicleRepository{db: db}
}

const vehicleColumns = `public_id, model, category, price_per_day, image, specs, availability, created_at, updated_at`

func (r *PGVehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *PGVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE public_id=$1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *PGVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	specs, err := json.Marshal(v.Specs)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO vehicles (public_id, model, category, price_per_day, image, specs, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		v.ID, v.Model, v.Category, v.PricePerDay, v.Image, specs, v.Availability).
		Scan(&v.CreatedAt, &v.UpdatedAt)
}

// Delete removes a vehicle unless an active booking still references it.
// The existence check and the delete run in one transaction so a booking
// created in between cannot orphan the conflict check.
func (r *PGVehicleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var hasActive bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE vehicle_id=$1 AND status=$2)`,
		id, domain.BookingStatusActive).Scan(&hasActive); err != nil {
		return err
	}
	if hasActive {
		return ErrActiveBooking
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE public_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PGVehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var specs []byte
	if err := row.Scan(&v.ID, &v.Model, &v.Category, &v.PricePerDay, &v.Image, &specs, &v.Availability, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &v.Specs); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

var _ VehicleRepository = (*PGVehicleRepository)(nil)
