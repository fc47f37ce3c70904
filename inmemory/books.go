package inmemory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

func (m *Memory) CreateBook(_ context.Context, b *models.Book) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	m.bookSeq++
	now := time.Now().UTC()
	b.ID = m.bookSeq
	b.CreatedAt = now
	b.UpdatedAt = now

	cp := *b
	if err := txn.Insert(bookTable, &cp); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *Memory) DeleteBook(_ context.Context, id uint) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return err
	}
	if raw == nil {
		return store.ErrBookNotFound
	}

	it, err := txn.Get(rentalTable, "book_id", id)
	if err != nil {
		return err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if obj.(*models.Rental).Active() {
			return store.ErrBookHasActiveRentals
		}
	}

	if err := txn.Delete(bookTable, raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *Memory) BookByID(_ context.Context, id uint) (*models.Book, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()
	return getBook(txn, id)
}

func (m *Memory) BookByTitle(_ context.Context, title string) (*models.Book, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return nil, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if b := obj.(*models.Book); b.Title == title {
			cp := *b
			return &cp, nil
		}
	}
	return nil, store.ErrBookNotFound
}

func (m *Memory) ListBooks(_ context.Context, q store.BookQuery) ([]models.Book, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return nil, err
	}
	books := []models.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := obj.(*models.Book)
		if q.AvailableOnly && b.Available <= 0 {
			continue
		}
		books = append(books, *b)
	}

	switch q.Sort {
	case store.SortGenre:
		sort.SliceStable(books, func(i, j int) bool {
			gi, gj := books[i].Genre, books[j].Genre
			switch {
			case gi == nil:
				return false // nil genres sort last
			case gj == nil:
				return true
			default:
				return *gi < *gj
			}
		})
	case store.SortAuthor:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Author < books[j].Author
		})
	}
	return books, nil
}

func (m *Memory) SearchBooks(_ context.Context, title, author string) ([]models.Book, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	t := strings.ToLower(strings.TrimSpace(title))
	a := strings.ToLower(strings.TrimSpace(author))

	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return nil, err
	}
	books := []models.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := obj.(*models.Book)
		if b.Available <= 0 {
			continue
		}
		if t != "" && !strings.Contains(strings.ToLower(b.Title), t) {
			continue
		}
		if a != "" && !strings.Contains(strings.ToLower(b.Author), a) {
			continue
		}
		books = append(books, *b)
	}
	return books, nil
}
