package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/store"
)

func Test_CreateBook_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Create(ctx, "", "George Orwell", 1, nil)
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = f.books.Create(ctx, "1984", "", 1, nil)
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = f.books.Create(ctx, "1984", "George Orwell", 0, nil)
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func Test_CreateBook_ProvisionsAllCopies(t *testing.T) {
	f := newFixture(t)
	genre := "Dystopian"
	b, err := f.books.Create(ctx, "1984", "George Orwell", 5, &genre)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Copies)
	assert.Equal(t, 5, b.Available)
	require.NotNil(t, b.Genre)
	assert.Equal(t, "Dystopian", *b.Genre)
}

func Test_DeleteBook(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "1984", "George Orwell", 1)

	require.NoError(t, f.books.Delete(ctx, b.ID))
	assert.ErrorIs(t, f.books.Delete(ctx, b.ID), store.ErrBookNotFound)
}

func Test_DeleteBook_WithActiveRental(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "John Doe", "john@example.com")
	b := f.book(t, "1984", "George Orwell", 1)

	rt, err := f.rentals.Rent(ctx, u.ID, b.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, f.books.Delete(ctx, b.ID), store.ErrBookHasActiveRentals)

	// The borrower still has a book to return against.
	_, err = f.rentals.Return(ctx, rt.ID)
	require.NoError(t, err)
	require.NoError(t, f.books.Delete(ctx, b.ID))
}

func Test_SearchBooks_ThroughService(t *testing.T) {
	f := newFixture(t)
	f.book(t, "1984", "George Orwell", 1)
	f.book(t, "Animal Farm", "George Orwell", 1)
	f.book(t, "The Great Gatsby", "F. Scott Fitzgerald", 1)

	books, err := f.books.Search(ctx, "", "orwell")
	require.NoError(t, err)
	assert.Len(t, books, 2)

	books, err = f.books.Search(ctx, "gatsby", "fitzgerald")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Great Gatsby", books[0].Title)

	books, err = f.books.Search(ctx, "no such book", "")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func Test_ListBooks_SortKeys(t *testing.T) {
	f := newFixture(t)
	f.book(t, "Zorba the Greek", "Nikos Kazantzakis", 1)
	f.book(t, "Animal Farm", "George Orwell", 1)

	books, err := f.books.List(ctx, store.BookQuery{Sort: store.SortAuthor})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "George Orwell", books[0].Author)

	// default listing keeps insertion order
	books, err = f.books.List(ctx, store.BookQuery{})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Zorba the Greek", books[0].Title)
}
