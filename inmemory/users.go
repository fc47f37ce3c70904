package inmemory

import (
	"context"
	"strings"
	"time"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

func (m *Memory) CreateUser(_ context.Context, u *models.User) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	// memdb does not reject a second object under a unique secondary index,
	// so the email check is explicit.
	if existing, err := txn.First(userTable, "email", u.Email); err != nil {
		return err
	} else if existing != nil {
		return store.ErrDuplicateEmail
	}

	m.userSeq++
	now := time.Now().UTC()
	u.ID = m.userSeq
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	if err := txn.Insert(userTable, &cp); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id uint) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(userTable, "id", id)
	if err != nil {
		return err
	}
	if raw == nil {
		return store.ErrUserNotFound
	}

	it, err := txn.Get(rentalTable, "id")
	if err != nil {
		return err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rt := obj.(*models.Rental)
		if rt.UserID == id && rt.Active() {
			return store.ErrUserHasActiveRentals
		}
	}

	if _, err := txn.DeleteAll(userBookTable, "user_id", id); err != nil {
		return err
	}
	it, err = txn.Get(rentalTable, "id")
	if err != nil {
		return err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if rt := obj.(*models.Rental); rt.UserID == id {
			if err := txn.Delete(rentalTable, rt); err != nil {
				return err
			}
		}
	}
	if err := txn.Delete(userTable, raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *Memory) UserByID(_ context.Context, id uint) (*models.User, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(userTable, "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, store.ErrUserNotFound
	}
	cp := *raw.(*models.User)
	return &cp, nil
}

func (m *Memory) UserByName(_ context.Context, name string) (*models.User, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(userTable, "id")
	if err != nil {
		return nil, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if u := obj.(*models.User); u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *Memory) ListUsers(_ context.Context) ([]models.User, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(userTable, "id")
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		users = append(users, *obj.(*models.User))
	}
	return users, nil
}

func (m *Memory) FindUsers(_ context.Context, by store.UserSearchField, substring string) ([]models.User, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	needle := strings.ToLower(strings.TrimSpace(substring))
	it, err := txn.Get(userTable, "id")
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		u := obj.(*models.User)
		field := u.Name
		if by == store.ByEmail {
			field = u.Email
		}
		if strings.Contains(strings.ToLower(field), needle) {
			users = append(users, *u)
		}
	}
	return users, nil
}
