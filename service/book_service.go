package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/the1kimko/book-rental-management-system/cache"
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

type BookService struct {
	store   store.Store
	catalog *cache.Catalog
}

func NewBookService(st store.Store, catalog *cache.Catalog) *BookService {
	return &BookService{store: st, catalog: catalog}
}

func (s *BookService) Create(ctx context.Context, title, author string, copies int, genre *string) (*models.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return nil, fmt.Errorf("%w: title and author are required", store.ErrInvalidInput)
	}
	if copies < 1 {
		return nil, fmt.Errorf("%w: copies must be at least 1", store.ErrInvalidInput)
	}

	b := &models.Book{
		Title:     title,
		Author:    author,
		Genre:     genre,
		Copies:    copies,
		Available: copies,
	}
	if err := s.store.CreateBook(ctx, b); err != nil {
		return nil, err
	}
	s.catalog.Bump(ctx)
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.catalog.Bump(ctx)
	return nil
}

func (s *BookService) Get(ctx context.Context, id uint) (*models.Book, error) {
	return s.store.BookByID(ctx, id)
}

func (s *BookService) List(ctx context.Context, q store.BookQuery) ([]models.Book, error) {
	key := fmt.Sprintf("list:%s:%t", q.Sort, q.AvailableOnly)
	if books, ok := s.catalog.GetBooks(ctx, key); ok {
		return books, nil
	}
	books, err := s.store.ListBooks(ctx, q)
	if err != nil {
		return nil, err
	}
	s.catalog.SetBooks(ctx, key, books)
	return books, nil
}

func (s *BookService) Search(ctx context.Context, title, author string) ([]models.Book, error) {
	key := fmt.Sprintf("search:%s|%s", strings.ToLower(title), strings.ToLower(author))
	if books, ok := s.catalog.GetBooks(ctx, key); ok {
		return books, nil
	}
	books, err := s.store.SearchBooks(ctx, title, author)
	if err != nil {
		return nil, err
	}
	s.catalog.SetBooks(ctx, key, books)
	return books, nil
}
