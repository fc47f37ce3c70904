package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/the1kimko/book-rental-management-system/app"
	"github.com/the1kimko/book-rental-management-system/service"
	"github.com/the1kimko/book-rental-management-system/store"
)

type UserController struct {
	users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.users.Create(c.Request.Context(), in.Name, in.Email)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"users": users})
}

// SearchUsers matches a case-insensitive substring: ?by=name|email&q=...
func (uc *UserController) SearchUsers(c *gin.Context) {
	by := store.UserSearchField(c.DefaultQuery("by", string(store.ByName)))
	users, err := uc.users.Find(c.Request.Context(), by, c.Query("q"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"users": users})
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
