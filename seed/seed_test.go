package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/inmemory"
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/seed"
	"github.com/the1kimko/book-rental-management-system/service"
	"github.com/the1kimko/book-rental-management-system/store"
)

func Test_Seed_PopulatesDemoData(t *testing.T) {
	ctx := context.Background()
	st, err := inmemory.New()
	require.NoError(t, err)

	users := service.NewUserService(st)
	books := service.NewBookService(st, nil)
	rentals := service.NewRentalService(st, nil, models.DefaultLoanPeriod, models.DefaultLateFeePerDay)

	require.NoError(t, seed.Run(ctx, st, users, books, rentals))

	us, err := st.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, us, 3)

	bs, err := st.ListBooks(ctx, store.BookQuery{})
	require.NoError(t, err)
	assert.Len(t, bs, 5)

	log, err := st.ListRentals(ctx)
	require.NoError(t, err)
	assert.Len(t, log.Active, 2)
	require.Len(t, log.Closed, 1)
	assert.Equal(t, float64(500), log.Closed[0].Penalty)

	// Re-running must not duplicate anything.
	require.NoError(t, seed.Run(ctx, st, users, books, rentals))

	us, err = st.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, us, 3)
	log, err = st.ListRentals(ctx)
	require.NoError(t, err)
	assert.Len(t, log.Active, 2)
	assert.Len(t, log.Closed, 1)
}
