package repository

import (
	"context"
	"errors"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT public_id, name, joined_date, bookings_count FROM customers ORDER BY joined_date, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.JoinedDate, &c.BookingsCount); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT public_id, name, joined_date, bookings_count FROM customers WHERE public_id=$1`, id)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.JoinedDate, &c.BookingsCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.Exec(ctx, `INSERT INTO customers (public_id, name, joined_date, bookings_count) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.JoinedDate, c.BookingsCount)
	return err
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
