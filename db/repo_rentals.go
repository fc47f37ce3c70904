package db

import (
	"context"
	"errors"
	"time"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RentBook is one atomic unit: lock the book row, reject a duplicate open
// rental, reserve a copy, insert the rental and the borrow-log row. Any
// failure rolls the reservation back with the rest of the transaction.
func (r *Repo) RentBook(ctx context.Context, userID, bookID uint, rentedAt, dueAt time.Time) (*models.Rental, error) {
	var rental *models.Rental
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrBookNotFound
			}
			return err
		}

		var u models.User
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrUserNotFound
			}
			return err
		}

		// The book row is locked, so this check and the insert below cannot
		// race another rent of the same book.
		var open int64
		if err := tx.Model(&models.Rental{}).
			Where("user_id = ? AND book_id = ? AND returned_at IS NULL", userID, bookID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return store.ErrAlreadyRented
		}

		if err := reserveCopy(tx, b.ID); err != nil {
			return err
		}

		rt := &models.Rental{
			UserID:   userID,
			BookID:   bookID,
			RentedAt: rentedAt,
			DueAt:    dueAt,
		}
		if err := tx.Create(rt).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserBook{UserID: userID, BookID: bookID}).Error; err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// CloseRental sets the return date, computes the penalty once, and releases
// the copy, all in one transaction. A closed rental never reopens.
func (r *Repo) CloseRental(ctx context.Context, rentalID uint, returnedAt time.Time, ratePerDay float64) (*models.Rental, error) {
	var rt models.Rental
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rt, "id = ?", rentalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrRentalNotFound
			}
			return err
		}
		if rt.ReturnedAt != nil {
			return store.ErrAlreadyReturned
		}

		rt.ReturnedAt = &returnedAt
		rt.Penalty = models.Penalty(rt.DueAt, returnedAt, ratePerDay)
		if err := tx.Save(&rt).Error; err != nil {
			return err
		}

		return releaseCopy(tx, rt.BookID)
	})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *Repo) RentalByID(ctx context.Context, id uint) (*models.Rental, error) {
	var rt models.Rental
	if err := r.DB.WithContext(ctx).First(&rt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrRentalNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *Repo) ListRentals(ctx context.Context) (*store.RentalLog, error) {
	log := &store.RentalLog{
		Active: []models.Rental{},
		Closed: []models.Rental{},
	}

	if err := r.DB.WithContext(ctx).
		Where("returned_at IS NULL").
		Order("id").
		Find(&log.Active).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).
		Where("returned_at IS NOT NULL").
		Order("returned_at ASC").Order("id ASC").
		Find(&log.Closed).Error; err != nil {
		return nil, err
	}
	return log, nil
}
