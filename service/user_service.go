package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService { return &UserService{store: st} }

func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", store.ErrInvalidInput)
	}

	u := &models.User{Name: name, Email: email}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteUser(ctx, id)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *UserService) Find(ctx context.Context, by store.UserSearchField, substring string) ([]models.User, error) {
	if by != store.ByName && by != store.ByEmail {
		return nil, fmt.Errorf("%w: search field must be %q or %q", store.ErrInvalidInput, store.ByName, store.ByEmail)
	}
	return s.store.FindUsers(ctx, by, substring)
}
