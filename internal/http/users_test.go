package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

func TestUsersController_AddAndGet(t *testing.T) {
	router, _ := setupTestRouter(t, false)

	w := doRequest(router, http.MethodPost, "/api/users", AddUserRequest{Name: "Carol"})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created entities.User
	decode(t, w, &created)
	assert.Equal(t, 3, created.ID)
	assert.Empty(t, created.Borrowed)

	w = doRequest(router, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count": 3`)

	w = doRequest(router, http.MethodGet, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")

	w = doRequest(router, http.MethodPost, "/api/users", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsersController_BorrowReturn(t *testing.T) {
	router, _ := setupTestRouter(t, false)

	t.Run("borrow then show the user", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/1/borrow/2", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/api/users/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var view services.UserView
		decode(t, w, &view)
		assert.Equal(t, "Alice", view.Name)
		assert.Equal(t, []int{2}, view.Borrowed)
		require.Len(t, view.Books, 1)
		assert.Equal(t, "1984", view.Books[0].Title)
	})

	t.Run("second borrower gets a conflict", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/2/borrow/2", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "unavailable")
	})

	t.Run("unknown book and user are not found", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/1/borrow/9", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(router, http.MethodPost, "/api/users/9/borrow/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("return by non-holder conflicts", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/2/return/2", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "not_borrowed")
	})

	t.Run("return restores availability", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/1/return/2", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/api/books/2", nil)
		var book entities.Book
		decode(t, w, &book)
		assert.True(t, book.Available)
	})

	t.Run("malformed book id", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/1/borrow/x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid bookId")
	})
}
