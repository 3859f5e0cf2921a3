// Package library is the coordinating façade over the book catalog, the user
// directory and the borrow request queue.
package library

import (
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/directory"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/requests"
)

// Processed records one request drained by ProcessRequests.
type Processed struct {
	Request entities.Request `json:"request"`
	Outcome entities.Outcome `json:"outcome"`
}

// System owns every container and the id sequences. It is not safe for
// concurrent use.
type System struct {
	catalog   *catalog.Catalog
	directory *directory.Directory
	queue     *requests.Queue
	out       io.Writer

	nextBookID int
	nextUserID int
}

// NewSystem creates an empty library writing display output to out.
// A nil writer means os.Stdout.
func NewSystem(out io.Writer) *System {
	if out == nil {
		out = os.Stdout
	}
	return &System{
		catalog:    catalog.New(),
		directory:  directory.New(),
		queue:      requests.New(),
		out:        out,
		nextBookID: 1,
		nextUserID: 1,
	}
}

// AddBook mints the next book id. Every call creates a new book.
func (s *System) AddBook(title, author string) int {
	id := s.nextBookID
	s.nextBookID++
	s.catalog.Add(entities.NewBook(id, title, author))
	return id
}

func (s *System) AddUser(name string) int {
	id := s.nextUserID
	s.nextUserID++
	s.directory.AddUser(id, name)
	return id
}

// BorrowBook looks the book up and lets the directory decide. An unknown
// book reaches the directory as nil.
func (s *System) BorrowBook(userID, bookID int) entities.Outcome {
	book := s.catalog.FindByID(bookID)
	return s.directory.Borrow(userID, book)
}

func (s *System) ReturnBook(userID, bookID int) entities.Outcome {
	return s.directory.ReturnBook(userID, bookID)
}

func (s *System) RequestBook(userID, bookID int) {
	s.queue.Enqueue(userID, bookID)
}

// ProcessRequests drains the queue in FIFO order, borrowing for each request.
func (s *System) ProcessRequests() []Processed {
	processed := []Processed{}
	for req := s.queue.Dequeue(); !req.IsNone(); req = s.queue.Dequeue() {
		fmt.Fprintf(s.out, "Processing request: User %d for Book %d\n", req.UserID, req.BookID)
		processed = append(processed, Processed{
			Request: req,
			Outcome: s.BorrowBook(req.UserID, req.BookID),
		})
	}
	return processed
}

func (s *System) DisplayBooks() {
	s.catalog.Display(s.out)
}

func (s *System) DisplayUser(userID int) {
	s.directory.Display(s.out, userID)
}

// Books returns the catalog listing in ascending id order.
func (s *System) Books() []entities.Book {
	return s.catalog.ListAll()
}

// Book returns a copy of the book, or false if the catalog has no such id.
func (s *System) Book(id int) (entities.Book, bool) {
	book := s.catalog.FindByID(id)
	if book == nil {
		return entities.Book{}, false
	}
	return *book, true
}

func (s *System) Users() []entities.User {
	return s.directory.Users()
}

// User returns a copy of the user with borrowed books resolved.
func (s *System) User(id int) (entities.User, []entities.Book, bool) {
	user := s.directory.GetUser(id)
	if user == nil {
		return entities.User{}, nil, false
	}
	cp := *user
	cp.Borrowed = append([]int{}, user.Borrowed...)
	return cp, s.directory.BorrowedBooks(id), true
}

func (s *System) PendingRequests() []entities.Request {
	return s.queue.Pending()
}
