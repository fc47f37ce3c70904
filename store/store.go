// Package store defines the contract every rental store implements: the
// Postgres store in db and the memdb store in inmemory. All mutation of a
// book's available counter happens inside these operations; nothing else in
// the codebase writes it.
package store

import (
	"context"
	"time"

	"github.com/the1kimko/book-rental-management-system/models"
)

// UserSearchField selects which column FindUsers matches against.
type UserSearchField string

const (
	ByName  UserSearchField = "name"
	ByEmail UserSearchField = "email"
)

// BookSort is an optional ordering for ListBooks. Empty means insertion
// order.
type BookSort string

const (
	SortNone   BookSort = ""
	SortGenre  BookSort = "genre"
	SortAuthor BookSort = "author"
)

type BookQuery struct {
	AvailableOnly bool
	Sort          BookSort
}

// RentalLog partitions rentals by state. Closed is sorted by return date
// ascending, ties broken by id.
type RentalLog struct {
	Active []models.Rental `json:"active"`
	Closed []models.Rental `json:"closed"`
}

type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByName(ctx context.Context, name string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUsers(ctx context.Context, by UserSearchField, substring string) ([]models.User, error)

	// Books
	CreateBook(ctx context.Context, b *models.Book) error
	DeleteBook(ctx context.Context, id uint) error
	BookByID(ctx context.Context, id uint) (*models.Book, error)
	BookByTitle(ctx context.Context, title string) (*models.Book, error)
	ListBooks(ctx context.Context, q BookQuery) ([]models.Book, error)
	SearchBooks(ctx context.Context, title, author string) ([]models.Book, error)

	// Rentals. RentBook and CloseRental are each a single atomic unit: no
	// caller ever observes a reserved copy without its rental row, or a
	// return date without its penalty and released copy.
	RentBook(ctx context.Context, userID, bookID uint, rentedAt, dueAt time.Time) (*models.Rental, error)
	CloseRental(ctx context.Context, rentalID uint, returnedAt time.Time, ratePerDay float64) (*models.Rental, error)
	RentalByID(ctx context.Context, id uint) (*models.Rental, error)
	ListRentals(ctx context.Context) (*RentalLog, error)
}
