package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// FindAll returns every customer ordered by creation time
	FindAll(ctx context.Context) ([]Customer, error)

	// FindByID finds a customer by its ID, shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by email address, shared.ErrNotFound if absent
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// ExistsByEmail checks if any customer uses the email address
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEmailExcluding checks if a customer other than id uses the email address
	ExistsByEmailExcluding(ctx context.Context, email string, id uuid.UUID) (bool, error)

	// Add inserts a new customer
	Add(ctx context.Context, customer *Customer) error

	// Update persists changes to an existing customer
	Update(ctx context.Context, customer *Customer) error

	// Remove deletes a customer
	Remove(ctx context.Context, customer *Customer) error
}

// UnitOfWork runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repo Repository) error) error
}
