package db

import (
	"context"
	"errors"
	"strings"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"

	"gorm.io/gorm"
)

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// DeleteUser refuses while the user still holds copies; otherwise it removes
// the user together with their closed rentals and borrow-log rows.
func (r *Repo) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrUserNotFound
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Rental{}).
			Where("user_id = ? AND returned_at IS NULL", id).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return store.ErrUserHasActiveRentals
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.UserBook{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Rental{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
}

func (r *Repo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) UserByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *Repo) FindUsers(ctx context.Context, by store.UserSearchField, substring string) ([]models.User, error) {
	col := "name"
	if by == store.ByEmail {
		col = "email"
	}
	like := "%" + strings.ToLower(strings.TrimSpace(substring)) + "%"

	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("LOWER("+col+") LIKE ?", like).
		Order("id").
		Find(&users).Error
	return users, err
}
