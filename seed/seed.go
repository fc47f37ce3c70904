// Package seed populates the demo catalog through the service layer, so the
// data goes through the same validation and lifecycle rules as live traffic.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/the1kimko/book-rental-management-system/service"
	"github.com/the1kimko/book-rental-management-system/store"
)

func ptr(s string) *string { return &s }

// Run is idempotent per email/title: re-running skips what already exists.
func Run(ctx context.Context, st store.Store, users *service.UserService, books *service.BookService, rentals *service.RentalService) error {
	demoUsers := []struct{ name, email string }{
		{"John Doe", "john@example.com"},
		{"Jane Smith", "jane@example.com"},
		{"Alice Johnson", "alice@example.com"},
	}
	for _, u := range demoUsers {
		if _, err := users.Create(ctx, u.name, u.email); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				slog.Info("seed: user exists", "email", u.email)
				continue
			}
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	demoBooks := []struct {
		title, author string
		copies        int
		genre         *string
	}{
		{"1984", "George Orwell", 5, ptr("Dystopian")},
		{"To Kill a Mockingbird", "Harper Lee", 3, ptr("Classic")},
		{"The Great Gatsby", "F. Scott Fitzgerald", 4, ptr("Classic")},
		{"The Hitchhiker's Guide to the Galaxy", "Douglas Adams", 2, ptr("Sci-Fi")},
		{"Brave New World", "Aldous Huxley", 5, nil},
	}
	for _, b := range demoBooks {
		if _, err := st.BookByTitle(ctx, b.title); err == nil {
			slog.Info("seed: book exists", "title", b.title)
			continue
		} else if !errors.Is(err, store.ErrBookNotFound) {
			return err
		}
		if _, err := books.Create(ctx, b.title, b.author, b.copies, b.genre); err != nil {
			return fmt.Errorf("seed book %s: %w", b.title, err)
		}
	}

	// Rentals are seeded only into an empty log; a closed demo rental would
	// otherwise duplicate on every run.
	if log, err := st.ListRentals(ctx); err != nil {
		return err
	} else if len(log.Active)+len(log.Closed) > 0 {
		slog.Info("seed: rentals already present, skipping")
		return nil
	}

	// A fresh rental, one mid-loan, and one closed 10 days overdue (penalty
	// 10 days * rate).
	demoRentals := []struct {
		user, title             string
		rentedDaysAgo, overdueDays int
	}{
		{"John Doe", "1984", 0, 0},
		{"Jane Smith", "To Kill a Mockingbird", 3, 0},
		{"Alice Johnson", "The Great Gatsby", 20, 10},
	}
	for _, r := range demoRentals {
		if _, err := rentals.RentBackdated(ctx, r.user, r.title, r.rentedDaysAgo, r.overdueDays); err != nil {
			if errors.Is(err, store.ErrAlreadyRented) {
				slog.Info("seed: rental exists", "user", r.user, "title", r.title)
				continue
			}
			return fmt.Errorf("seed rental %s/%s: %w", r.user, r.title, err)
		}
	}

	slog.Info("seed complete")
	return nil
}
