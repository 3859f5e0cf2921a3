package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type BooksController struct {
	library LibraryStore
}

func NewBooksController(library LibraryStore) *BooksController {
	return &BooksController{
		library: library,
	}
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.library.Books()
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.library.Book(id)
	if err != nil {
		respondNotFound(c, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and author are required")
		return
	}

	respondCreated(c, controller.library.AddBook(req.Title, req.Author))
}
