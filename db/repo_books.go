package db

import (
	"context"
	"errors"
	"strings"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"

	"gorm.io/gorm"
)

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

// DeleteBook refuses while any copy is still on loan; a deleted book would
// leave those rentals with nothing to return against.
func (r *Repo) DeleteBook(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrBookNotFound
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Rental{}).
			Where("book_id = ? AND returned_at IS NULL", id).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return store.ErrBookHasActiveRentals
		}

		return tx.Delete(&b).Error
	})
}

func (r *Repo) BookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) BookByTitle(ctx context.Context, title string) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).Where("title = ?", title).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBooks(ctx context.Context, q store.BookQuery) ([]models.Book, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Book{})
	if q.AvailableOnly {
		tx = tx.Where("available > 0")
	}
	switch q.Sort {
	case store.SortGenre:
		tx = tx.Order("genre NULLS LAST").Order("id")
	case store.SortAuthor:
		tx = tx.Order("author").Order("id")
	default:
		tx = tx.Order("id")
	}

	var books []models.Book
	err := tx.Find(&books).Error
	return books, err
}

// SearchBooks matches case-insensitive substrings and only returns titles
// with at least one copy on the shelf.
func (r *Repo) SearchBooks(ctx context.Context, title, author string) ([]models.Book, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Book{}).Where("available > 0")
	if s := strings.TrimSpace(title); s != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(author); s != "" {
		tx = tx.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var books []models.Book
	err := tx.Order("id").Find(&books).Error
	return books, err
}
