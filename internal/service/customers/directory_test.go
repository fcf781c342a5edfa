package customers

import (
	"context"
	"testing"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func TestDirectory_Add(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	directory := NewDirectory(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil).Once()

	c, err := directory.Add(ctx, "  Priya Sharma  ")

	assert.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Priya Sharma", c.Name)
	assert.Equal(t, domain.Today(), c.JoinedDate)
	assert.Zero(t, c.BookingsCount)
	mockRepo.AssertExpectations(t)
}

func TestDirectory_Add_EmptyName(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	directory := NewDirectory(mockRepo)

	_, err := directory.Add(context.Background(), "   ")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestDirectory_ResolveOrNew_ExistingCustomer(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	directory := NewDirectory(mockRepo)

	ctx := context.Background()
	stored := &domain.Customer{ID: "cust-1", Name: "Arjun Kapoor", BookingsCount: 3}
	mockRepo.On("GetByID", ctx, "cust-1").Return(stored, nil).Once()

	c, isNew, err := directory.ResolveOrNew(ctx, "cust-1", "Someone Else")

	assert.NoError(t, err)
	assert.False(t, isNew)
	// The stored record wins over the client-supplied name.
	assert.Equal(t, "Arjun Kapoor", c.Name)
	mockRepo.AssertExpectations(t)
}

func TestDirectory_ResolveOrNew_UnknownID(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	directory := NewDirectory(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	c, isNew, err := directory.ResolveOrNew(ctx, "ghost", "Someone")

	assert.Nil(t, c)
	assert.False(t, isNew)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	mockRepo.AssertExpectations(t)
}

func TestDirectory_ResolveOrNew_PreparesWithoutPersisting(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	directory := NewDirectory(mockRepo)

	c, isNew, err := directory.ResolveOrNew(context.Background(), "", "Test User")

	assert.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Test User", c.Name)
	assert.Equal(t, domain.Today(), c.JoinedDate)
	// Persistence is left to the booking transaction.
	mockRepo.AssertNotCalled(t, "Create")
}
