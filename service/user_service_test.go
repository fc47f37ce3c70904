package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/store"
)

func Test_CreateUser_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, userName, email string
	}{
		{"empty_name", "", "a@example.com"},
		{"empty_email", "John Doe", ""},
		{"blank_name", "   ", "a@example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.users.Create(ctx, tc.userName, tc.email)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}

func Test_CreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.user(t, "John Doe", "john@example.com")

	_, err := f.users.Create(ctx, "Johnny", "john@example.com")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func Test_FindUsers(t *testing.T) {
	f := newFixture(t)
	f.user(t, "John Doe", "john@example.com")
	f.user(t, "Jane Smith", "jane@example.com")

	found, err := f.users.Find(ctx, store.ByEmail, "EXAMPLE.COM")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = f.users.Find(ctx, store.ByName, "smith")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Smith", found[0].Name)

	_, err = f.users.Find(ctx, "phone", "555")
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func Test_DeleteUser(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "John Doe", "john@example.com")

	require.NoError(t, f.users.Delete(ctx, u.ID))
	assert.ErrorIs(t, f.users.Delete(ctx, u.ID), store.ErrUserNotFound)
}

func Test_DeleteUser_WithActiveRental(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "John Doe", "john@example.com")
	b := f.book(t, "1984", "George Orwell", 2)

	rt, err := f.rentals.Rent(ctx, u.ID, b.ID)
	require.NoError(t, err)

	// Deletion is refused while a copy is out; the ledger stays consistent.
	assert.ErrorIs(t, f.users.Delete(ctx, u.ID), store.ErrUserHasActiveRentals)
	assert.Equal(t, 1, f.available(t, b.ID))

	_, err = f.rentals.Return(ctx, rt.ID)
	require.NoError(t, err)
	require.NoError(t, f.users.Delete(ctx, u.ID))
	assert.Equal(t, 2, f.available(t, b.ID))
}
