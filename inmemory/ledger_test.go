package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

// White-box coverage of the availability ledger: reserveCopy must refuse at
// the floor and releaseCopy must refuse above the shelf total instead of
// clamping.

func Test_ReserveCopy_RefusesAtFloor(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	b := &models.Book{Title: "1984", Author: "George Orwell", Copies: 1, Available: 1}
	require.NoError(t, m.CreateBook(ctx, b))

	txn := m.db.Txn(true)
	defer txn.Abort()

	require.NoError(t, reserveCopy(txn, b.ID))
	assert.ErrorIs(t, reserveCopy(txn, b.ID), store.ErrBookUnavailable)
	txn.Commit()

	got, err := m.BookByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Available)
}

func Test_ReleaseCopy_RefusesAboveCeiling(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	b := &models.Book{Title: "1984", Author: "George Orwell", Copies: 2, Available: 2}
	require.NoError(t, m.CreateBook(ctx, b))

	txn := m.db.Txn(true)
	assert.ErrorIs(t, releaseCopy(txn, b.ID), store.ErrConsistency)
	assert.ErrorIs(t, releaseCopy(txn, 999), store.ErrConsistency)
	txn.Abort()

	got, err := m.BookByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Available)
}

// A rental open against a book whose ledger already reads full surfaces as
// ErrConsistency on close, and the failed close leaves the rental untouched.
func Test_CloseRental_LedgerCorruption(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	u := &models.User{Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, m.CreateUser(ctx, u))

	// Mis-provisioned row: a copy on the shelf that the total says cannot
	// exist. Renting it drives Available to the Copies ceiling with a loan
	// still open.
	b := &models.Book{Title: "1984", Author: "George Orwell", Copies: 0, Available: 1}
	require.NoError(t, m.CreateBook(ctx, b))

	now := time.Now().UTC()
	rt, err := m.RentBook(ctx, u.ID, b.ID, now, now.Add(models.DefaultLoanPeriod))
	require.NoError(t, err)

	_, err = m.CloseRental(ctx, rt.ID, now.Add(time.Hour), 50)
	assert.ErrorIs(t, err, store.ErrConsistency)

	// The aborted close leaves the rental open and the ledger as it was.
	again, err := m.RentalByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.True(t, again.Active())

	got, err := m.BookByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Available)
}
