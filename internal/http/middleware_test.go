package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadOnlyMiddleware(t *testing.T) {
	router, svc := setupTestRouter(t, true)

	t.Run("allows reads", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blocks writes without touching state", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/users/1/borrow/1", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "read_only")
		book, err := svc.Book(1)
		assert.NoError(t, err)
		assert.True(t, book.Available)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router, _ := setupTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}
