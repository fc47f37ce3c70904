package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the1kimko/book-rental-management-system/controllers"
	"github.com/the1kimko/book-rental-management-system/inmemory"
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/service"
)

func newBookRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := inmemory.New()
	require.NoError(t, err)

	bc := controllers.NewBookController(service.NewBookService(st, nil))
	r := gin.New()
	r.POST("/api/books", bc.CreateBook)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func Test_CreateBook_CopiesOmittedDefaultsToOne(t *testing.T) {
	r := newBookRouter(t)

	w := postJSON(r, "/api/books", `{"title":"1984","author":"George Orwell"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var b models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, 1, b.Copies)
	assert.Equal(t, 1, b.Available)
}

func Test_CreateBook_ExplicitZeroCopiesRejected(t *testing.T) {
	r := newBookRouter(t)

	w := postJSON(r, "/api/books", `{"title":"1984","author":"George Orwell","copies":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
