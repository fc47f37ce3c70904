package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

func (m *Memory) RentBook(_ context.Context, userID, bookID uint, rentedAt, dueAt time.Time) (*models.Rental, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if _, err := getBook(txn, bookID); err != nil {
		return nil, err
	}
	if raw, err := txn.First(userTable, "id", userID); err != nil {
		return nil, err
	} else if raw == nil {
		return nil, store.ErrUserNotFound
	}

	it, err := txn.Get(rentalTable, "book_id", bookID)
	if err != nil {
		return nil, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rt := obj.(*models.Rental)
		if rt.UserID == userID && rt.Active() {
			return nil, store.ErrAlreadyRented
		}
	}

	if err := reserveCopy(txn, bookID); err != nil {
		return nil, err
	}

	m.rentalSeq++
	m.userBookSeq++
	now := time.Now().UTC()
	rt := &models.Rental{
		ID:        m.rentalSeq,
		UserID:    userID,
		BookID:    bookID,
		RentedAt:  rentedAt,
		DueAt:     dueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := txn.Insert(rentalTable, rt); err != nil {
		return nil, err
	}
	ub := &models.UserBook{ID: m.userBookSeq, UserID: userID, BookID: bookID, CreatedAt: now}
	if err := txn.Insert(userBookTable, ub); err != nil {
		return nil, err
	}

	txn.Commit()
	cp := *rt
	return &cp, nil
}

func (m *Memory) CloseRental(_ context.Context, rentalID uint, returnedAt time.Time, ratePerDay float64) (*models.Rental, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(rentalTable, "id", rentalID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, store.ErrRentalNotFound
	}
	rt := *raw.(*models.Rental)
	if rt.ReturnedAt != nil {
		return nil, store.ErrAlreadyReturned
	}

	at := returnedAt
	rt.ReturnedAt = &at
	rt.Penalty = models.Penalty(rt.DueAt, returnedAt, ratePerDay)
	rt.UpdatedAt = time.Now().UTC()
	if err := txn.Insert(rentalTable, &rt); err != nil {
		return nil, err
	}

	if err := releaseCopy(txn, rt.BookID); err != nil {
		return nil, err
	}

	txn.Commit()
	cp := rt
	return &cp, nil
}

func (m *Memory) RentalByID(_ context.Context, id uint) (*models.Rental, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(rentalTable, "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, store.ErrRentalNotFound
	}
	cp := *raw.(*models.Rental)
	return &cp, nil
}

func (m *Memory) ListRentals(_ context.Context) (*store.RentalLog, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(rentalTable, "id")
	if err != nil {
		return nil, err
	}
	log := &store.RentalLog{
		Active: []models.Rental{},
		Closed: []models.Rental{},
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rt := obj.(*models.Rental)
		if rt.Active() {
			log.Active = append(log.Active, *rt)
		} else {
			log.Closed = append(log.Closed, *rt)
		}
	}

	sort.SliceStable(log.Closed, func(i, j int) bool {
		ri, rj := log.Closed[i], log.Closed[j]
		if ri.ReturnedAt.Equal(*rj.ReturnedAt) {
			return ri.ID < rj.ID
		}
		return ri.ReturnedAt.Before(*rj.ReturnedAt)
	})
	return log, nil
}
