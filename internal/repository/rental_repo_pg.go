package repository

import (
	"context"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RentalRepository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	// CompleteFinishedBefore flips active rentals whose period ended on or
	// before the cutoff date to Completed and returns the flipped entries.
	CompleteFinishedBefore(ctx context.Context, cutoff domain.Date) ([]domain.Rental, error)
}

type PGRentalRepository struct {
	db *pgxpool.Pool
}

func NewRentalRepository(db *pgxpool.Pool) RentalRepository {
	return &PGRentalRepository{db: db}
}

const rentalColumns = `public_id, booking_id, vehicle_id, vehicle_name, customer_id, customer_name, start_date, end_date, total_price, status, created_at, cancelled_at`

func (r *PGRentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *PGRentalRepository) CompleteFinishedBefore(ctx context.Context, cutoff domain.Date) ([]domain.Rental, error) {
	rows, err := r.db.Query(ctx, `UPDATE rentals SET status=$1 WHERE status=$2 AND end_date <= $3 RETURNING `+rentalColumns,
		domain.RentalStatusCompleted, domain.RentalStatusActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func collectRentals(rows pgx.Rows) ([]domain.Rental, error) {
	rentals := make([]domain.Rental, 0)
	for rows.Next() {
		var r domain.Rental
		if err := rows.Scan(&r.ID, &r.BookingID, &r.VehicleID, &r.VehicleName, &r.CustomerID, &r.CustomerName, &r.StartDate, &r.EndDate, &r.TotalPrice, &r.Status, &r.CreatedAt, &r.CancelledAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, r)
	}
	return rentals, rows.Err()
}

var _ RentalRepository = (*PGRentalRepository)(nil)
