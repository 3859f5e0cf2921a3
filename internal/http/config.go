package http

import (
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/library"
	"github.com/mrlokans/library/internal/services"
)

// LibraryStore is the library surface the controllers use.
// *services.LibraryService implements it.
type LibraryStore interface {
	AddBook(title, author string) entities.Book
	AddUser(name string) entities.User
	Books() []entities.Book
	Book(id int) (entities.Book, error)
	Users() []entities.User
	User(id int) (services.UserView, error)
	Borrow(userID, bookID int) error
	Return(userID, bookID int) error
	Request(userID, bookID int)
	PendingRequests() []entities.Request
}

// RequestRunner drains the request queue on demand.
// *scheduler.RequestProcessor implements it.
type RequestRunner interface {
	RunNow(trigger string) []library.Processed
	IsRunning() bool
}

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Library   LibraryStore
	Processor RequestRunner

	// Reject write API requests
	ReadOnly bool

	// Application info
	Version string
}
