package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/google/uuid"
)

var ErrCustomerNotFound = errors.New("invalid customer id")

type DirectoryUseCase interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Add(ctx context.Context, name string) (*domain.Customer, error)
	Resolve(ctx context.Context, id string) (*domain.Customer, error)
	ResolveOrNew(ctx context.Context, id, name string) (*domain.Customer, bool, error)
}

type Directory struct {
	repo repository.CustomerRepository
}

func NewDirectory(repo repository.CustomerRepository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) List(ctx context.Context) ([]domain.Customer, error) {
	return d.repo.List(ctx)
}

// Add is the explicit creation path, independent of booking-triggered
// creation. The join date is always today.
func (d *Directory) Add(ctx context.Context, name string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	c := newCustomer(name)
	if err := d.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Directory) Resolve(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := d.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
		}
		return nil, err
	}
	return c, nil
}

// ResolveOrNew resolves an existing customer by id, or prepares a fresh
// record for the supplied name. The returned flag is true for a fresh
// record, which is NOT persisted here: the caller commits it as part of
// its own transaction so a failed booking leaves no orphan customer.
// When id is given the stored name wins over any client-supplied one.
func (d *Directory) ResolveOrNew(ctx context.Context, id, name string) (*domain.Customer, bool, error) {
	if id != "" {
		c, err := d.Resolve(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return c, false, nil
	}
	return newCustomer(strings.TrimSpace(name)), true, nil
}

func newCustomer(name string) *domain.Customer {
	return &domain.Customer{
		ID:            uuid.NewString(),
		Name:          name,
		JoinedDate:    domain.Today(),
		BookingsCount: 0,
	}
}

var _ DirectoryUseCase = (*Directory)(nil)
