package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/inmemory"
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/service"
)

var ctx = context.Background()

type fixture struct {
	store   *inmemory.Memory
	users   *service.UserService
	books   *service.BookService
	rentals *service.RentalService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := inmemory.New()
	require.NoError(t, err)
	return &fixture{
		store:   st,
		users:   service.NewUserService(st),
		books:   service.NewBookService(st, nil),
		rentals: service.NewRentalService(st, nil, models.DefaultLoanPeriod, models.DefaultLateFeePerDay),
	}
}

func (f *fixture) user(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := f.users.Create(ctx, name, email)
	require.NoError(t, err)
	return u
}

func (f *fixture) book(t *testing.T, title, author string, copies int) *models.Book {
	t.Helper()
	b, err := f.books.Create(ctx, title, author, copies, nil)
	require.NoError(t, err)
	return b
}

func (f *fixture) available(t *testing.T, id uint) int {
	t.Helper()
	b, err := f.books.Get(ctx, id)
	require.NoError(t, err)
	return b.Available
}
