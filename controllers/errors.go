package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/store"
)

// renderError maps the store taxonomy onto HTTP codes in one place so every
// endpoint fails the same way.
func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrBookNotFound),
		errors.Is(err, store.ErrRentalNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, store.ErrBookUnavailable),
		errors.Is(err, store.ErrAlreadyRented),
		errors.Is(err, store.ErrAlreadyReturned),
		errors.Is(err, store.ErrUserHasActiveRentals),
		errors.Is(err, store.ErrBookHasActiveRentals):
		status = http.StatusConflict
	}
	c.JSON(status, app.H{"error": err.Error()})
}
