package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/service"
)

type RentalController struct {
	rentals *service.RentalService
}

func NewRentalController(rentals *service.RentalService) *RentalController {
	return &RentalController{rentals: rentals}
}

func (rc *RentalController) Rent(c *gin.Context) {
	var in struct {
		UserID uint `json:"userId" binding:"required"`
		BookID uint `json:"bookId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rt, err := rc.rentals.Rent(c.Request.Context(), in.UserID, in.BookID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func (rc *RentalController) Return(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rt, err := rc.rentals.Return(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// ListRentals returns the log partitioned into active and closed; closed is
// sorted by return date ascending.
func (rc *RentalController) ListRentals(c *gin.Context) {
	log, err := rc.rentals.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
