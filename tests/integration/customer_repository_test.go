package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence"
)

func newCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()
	c, err := customer.New(customer.Profile{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: email,
		PhoneNumber:  customer.PhoneNumber{CountryCode: "+1", AreaCode: "555", Number: "1234567"},
		DateOfBirth:  time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Address:      customer.Address{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
		CustomerType: "Retail",
	})
	require.NoError(t, err)
	return c
}

// TestCustomerRepository_Integration tests the customer repository against a real PostgreSQL database
func TestCustomerRepository_Integration(t *testing.T) {
	testDB := NewTestDB(t)
	repo := persistence.NewGormCustomerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("Add and FindByID", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "jane@example.com")

		require.NoError(t, repo.Add(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, "jane@example.com", found.EmailAddress)
		assert.True(t, c.PhoneNumber.Equals(found.PhoneNumber))
		assert.True(t, c.Address.Equals(found.Address))
		assert.True(t, c.DateOfBirth.Equal(found.DateOfBirth))
		assert.Equal(t, customer.StatusActive, found.Status)
		assert.Nil(t, found.UpdatedAt)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindByEmail and ExistsByEmail", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "lookup@example.com")
		require.NoError(t, repo.Add(ctx, c))

		found, err := repo.FindByEmail(ctx, "lookup@example.com")
		require.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		exists, err := repo.ExistsByEmail(ctx, "lookup@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmailExcluding(ctx, "lookup@example.com", c.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByEmailExcluding(ctx, "lookup@example.com", uuid.New())
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("FindAll ordered by creation", func(t *testing.T) {
		testDB.CleanTables()
		first := newCustomer(t, "first@example.com")
		require.NoError(t, repo.Add(ctx, first))
		second := newCustomer(t, "second@example.com")
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		require.NoError(t, repo.Add(ctx, second))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("Update keeps created_at", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "update@example.com")
		require.NoError(t, repo.Add(ctx, c))

		require.NoError(t, c.ChangeStatus(customer.StatusSuspended))
		require.NoError(t, c.ChangeAddress(customer.Address{
			Street: "9 Elm St", City: "Shelbyville", State: "IL", PostalCode: "62565-1234",
		}))
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, customer.StatusSuspended, found.Status)
		assert.Equal(t, "Shelbyville", found.Address.City)
		assert.Equal(t, "62565-1234", found.Address.PostalCode)
		require.NotNil(t, found.UpdatedAt)
		assert.WithinDuration(t, c.CreatedAt, found.CreatedAt, time.Millisecond)
	})

	t.Run("Update missing customer", func(t *testing.T) {
		c := newCustomer(t, "ghost@example.com")
		assert.ErrorIs(t, repo.Update(ctx, c), shared.ErrNotFound)
	})

	t.Run("unique email index", func(t *testing.T) {
		testDB.CleanTables()
		require.NoError(t, repo.Add(ctx, newCustomer(t, "dup@example.com")))

		err := repo.Add(ctx, newCustomer(t, "dup@example.com"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("Remove", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "remove@example.com")
		require.NoError(t, repo.Add(ctx, c))

		require.NoError(t, repo.Remove(ctx, c))

		_, err := repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Remove(ctx, c), shared.ErrNotFound)
	})
}

func TestUnitOfWork_Integration(t *testing.T) {
	testDB := NewTestDB(t)
	repo := persistence.NewGormCustomerRepository(testDB.DB)
	uow := persistence.NewGormUnitOfWork(testDB.DB)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "commit@example.com")

		err := uow.Do(ctx, func(tx customer.Repository) error {
			return tx.Add(ctx, c)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		testDB.CleanTables()
		c := newCustomer(t, "rollback@example.com")
		boom := errors.New("boom")

		err := uow.Do(ctx, func(tx customer.Repository) error {
			if err := tx.Add(ctx, c); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rolls back a failed second insert", func(t *testing.T) {
		testDB.CleanTables()
		first := newCustomer(t, "pair@example.com")
		second := newCustomer(t, "pair@example.com")

		err := uow.Do(ctx, func(tx customer.Repository) error {
			if err := tx.Add(ctx, first); err != nil {
				return err
			}
			return tx.Add(ctx, second)
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
