package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type UsersController struct {
	library LibraryStore
}

func NewUsersController(library LibraryStore) *UsersController {
	return &UsersController{
		library: library,
	}
}

func (controller *UsersController) GetAllUsers(c *gin.Context) {
	users := controller.library.Users()
	c.IndentedJSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (controller *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := controller.library.User(id)
	if err != nil {
		respondNotFound(c, "user")
		return
	}
	c.IndentedJSON(http.StatusOK, user)
}

func (controller *UsersController) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	respondCreated(c, controller.library.AddUser(req.Name))
}

func (controller *UsersController) Borrow(c *gin.Context) {
	userID, bookID, ok := parseUserBookParams(c)
	if !ok {
		return
	}

	if err := controller.library.Borrow(userID, bookID); err != nil {
		respondOutcomeError(c, err)
		return
	}
	respondSuccess(c, "book borrowed", gin.H{"user_id": userID, "book_id": bookID})
}

func (controller *UsersController) Return(c *gin.Context) {
	userID, bookID, ok := parseUserBookParams(c)
	if !ok {
		return
	}

	if err := controller.library.Return(userID, bookID); err != nil {
		respondOutcomeError(c, err)
		return
	}
	respondSuccess(c, "book returned", gin.H{"user_id": userID, "book_id": bookID})
}

func parseUserBookParams(c *gin.Context) (int, int, bool) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return 0, 0, false
	}
	return userID, bookID, true
}
