package repository

import (
	"context"
	"errors"
	"time"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create persists a booking, its ledger mirror and, when newCustomer is
	// non-nil, the implicitly created customer, all in one transaction.
	Create(ctx context.Context, b *domain.Booking, rental *domain.Rental, newCustomer *domain.Customer) error
	ListActive(ctx context.Context) ([]domain.Booking, error)
	// Cancel flips the booking to Cancelled, frees the vehicle and cancels
	// every ledger entry for the booking. It returns the updated booking and
	// the public id of the first matching ledger entry, "" when none exists.
	Cancel(ctx context.Context, id string, at time.Time) (*domain.Booking, string, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `public_id, vehicle_id, vehicle_name, customer_id, customer_name, start_date, days, end_date, total_price, status, created_at, cancelled_at`

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking, rental *domain.Rental, newCustomer *domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Availability flip doubles as the double-booking guard: two concurrent
	// transactions cannot both match availability='Available'.
	cmd, err := tx.Exec(ctx, `UPDATE vehicles SET availability=$1, updated_at=now() WHERE public_id=$2 AND availability=$3`,
		domain.AvailabilityBooked, b.VehicleID, domain.AvailabilityAvailable)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrVehicleUnavailable
	}

	if newCustomer != nil {
		if _, err := tx.Exec(ctx, `INSERT INTO customers (public_id, name, joined_date, bookings_count) VALUES ($1, $2, $3, 0)`,
			newCustomer.ID, newCustomer.Name, newCustomer.JoinedDate); err != nil {
			return err
		}
	}

	cmd, err = tx.Exec(ctx, `UPDATE customers SET bookings_count = bookings_count + 1 WHERE public_id=$1`, b.CustomerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (public_id, vehicle_id, vehicle_name, customer_id, customer_name, start_date, days, end_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		b.ID, b.VehicleID, b.VehicleName, b.CustomerID, b.CustomerName, b.StartDate, b.Days, b.EndDate, b.TotalPrice, b.Status).
		Scan(&b.CreatedAt); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO rentals (public_id, booking_id, vehicle_id, vehicle_name, customer_id, customer_name, start_date, end_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		rental.ID, rental.BookingID, rental.VehicleID, rental.VehicleName, rental.CustomerID, rental.CustomerName, rental.StartDate, rental.EndDate, rental.TotalPrice, rental.Status).
		Scan(&rental.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ListActive(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE status=$1 ORDER BY created_at DESC`, domain.BookingStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id string, at time.Time) (*domain.Booking, string, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, cancelled_at=$2 WHERE public_id=$3 AND status=$4 RETURNING `+bookingColumns,
		domain.BookingStatusCancelled, at, id, domain.BookingStatusActive)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	// Unconditional: at most one open booking per vehicle by invariant.
	if _, err := tx.Exec(ctx, `UPDATE vehicles SET availability=$1, updated_at=now() WHERE public_id=$2`,
		domain.AvailabilityAvailable, b.VehicleID); err != nil {
		return nil, "", err
	}

	rows, err := tx.Query(ctx, `UPDATE rentals SET status=$1, cancelled_at=$2 WHERE booking_id=$3 RETURNING public_id`,
		domain.RentalStatusCancelled, at, id)
	if err != nil {
		return nil, "", err
	}
	var rentalID string
	for rows.Next() {
		var rid string
		if err := rows.Scan(&rid); err != nil {
			rows.Close()
			return nil, "", err
		}
		if rentalID == "" {
			rentalID = rid
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", err
	}
	return b, rentalID, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.VehicleID, &b.VehicleName, &b.CustomerID, &b.CustomerName, &b.StartDate, &b.Days, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.CancelledAt); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
