package store

import "errors"

// Typed failures returned by every store implementation. Callers branch with
// errors.Is; anything else coming out of a store is an infrastructure error.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrBookUnavailable = errors.New("book is unavailable")
	ErrAlreadyRented   = errors.New("user already has this book on loan")
	ErrAlreadyReturned = errors.New("rental already returned")

	// ErrUserHasActiveRentals blocks deletion of a user who still holds
	// copies; the caller has to get them returned first.
	ErrUserHasActiveRentals = errors.New("user has active rentals")

	// ErrBookHasActiveRentals blocks deletion of a book with copies still on
	// loan; deleting it would leave rentals that can never be closed.
	ErrBookHasActiveRentals = errors.New("book has active rentals")

	// ErrConsistency means the availability ledger would leave a book with a
	// negative count or more copies than were ever provisioned. It is a bug,
	// not a user error, and always aborts the enclosing transaction.
	ErrConsistency = errors.New("availability ledger consistency violation")
)
