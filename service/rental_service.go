package service

import (
	"context"
	"fmt"
	"time"

	"github.com/the1kimko/book-rental-management-system/cache"
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

// RentalService drives the rental lifecycle. The store guarantees atomicity
// of each transition; this layer owns the clock, the loan period and the
// late-fee rate, and keeps the catalog cache honest.
type RentalService struct {
	store      store.Store
	catalog    *cache.Catalog
	loanPeriod time.Duration
	ratePerDay float64
}

func NewRentalService(st store.Store, catalog *cache.Catalog, loanPeriod time.Duration, ratePerDay float64) *RentalService {
	if loanPeriod <= 0 {
		loanPeriod = models.DefaultLoanPeriod
	}
	if ratePerDay < 0 {
		ratePerDay = models.DefaultLateFeePerDay
	}
	return &RentalService{store: st, catalog: catalog, loanPeriod: loanPeriod, ratePerDay: ratePerDay}
}

func (s *RentalService) Rent(ctx context.Context, userID, bookID uint) (*models.Rental, error) {
	now := time.Now().UTC()
	rt, err := s.store.RentBook(ctx, userID, bookID, now, now.Add(s.loanPeriod))
	if err != nil {
		return nil, err
	}
	s.catalog.Bump(ctx)
	return rt, nil
}

func (s *RentalService) Return(ctx context.Context, rentalID uint) (*models.Rental, error) {
	rt, err := s.store.CloseRental(ctx, rentalID, time.Now().UTC(), s.ratePerDay)
	if err != nil {
		return nil, err
	}
	s.catalog.Bump(ctx)
	return rt, nil
}

func (s *RentalService) List(ctx context.Context) (*store.RentalLog, error) {
	return s.store.ListRentals(ctx)
}

// RentBackdated is the seeding variant: the rental starts daysRentedAgo in
// the past and, when daysOverdue > 0, the due date sits daysOverdue before
// now and the rental is closed immediately, so the stored penalty is
// daysOverdue * rate. Same RentBook/CloseRental steps as the live paths, just
// with shifted clocks.
func (s *RentalService) RentBackdated(ctx context.Context, userName, bookTitle string, daysRentedAgo, daysOverdue int) (*models.Rental, error) {
	if daysRentedAgo < 0 || daysOverdue < 0 {
		return nil, fmt.Errorf("%w: day offsets cannot be negative", store.ErrInvalidInput)
	}

	u, err := s.store.UserByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	b, err := s.store.BookByTitle(ctx, bookTitle)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rentedAt := now.AddDate(0, 0, -daysRentedAgo)
	dueAt := rentedAt.Add(s.loanPeriod)
	if daysOverdue > 0 {
		dueAt = now.AddDate(0, 0, -daysOverdue)
	}

	rt, err := s.store.RentBook(ctx, u.ID, b.ID, rentedAt, dueAt)
	if err != nil {
		return nil, err
	}
	if daysOverdue > 0 {
		if rt, err = s.store.CloseRental(ctx, rt.ID, now, s.ratePerDay); err != nil {
			return nil, err
		}
	}
	s.catalog.Bump(ctx)
	return rt, nil
}
