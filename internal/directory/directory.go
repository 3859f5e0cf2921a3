// Package directory keeps library users in a map keyed by id and applies
// borrow and return mutations to the books they hold.
package directory

import (
	"fmt"
	"io"
	"sort"

	"github.com/mrlokans/library/internal/entities"
)

// Directory owns every user. Alongside each user's id list it keeps the
// exact book values that were borrowed, so returns and displays act on the
// held book even when the catalog carries duplicate ids.
type Directory struct {
	users map[int]*entities.User
	held  map[int][]*entities.Book
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{
		users: make(map[int]*entities.User),
		held:  make(map[int][]*entities.Book),
	}
}

// AddUser inserts a user unless the id is taken, in which case the existing
// user is left untouched.
func (d *Directory) AddUser(id int, name string) entities.Outcome {
	if _, exists := d.users[id]; exists {
		return entities.OutcomeDuplicateUser
	}
	d.users[id] = entities.NewUser(id, name)
	return entities.OutcomeOK
}

// GetUser returns nil for an unknown id.
func (d *Directory) GetUser(id int) *entities.User {
	return d.users[id]
}

// Borrow attaches the book to the user and marks it unavailable. Nothing
// changes when the user is unknown, the book is nil or the book is out.
func (d *Directory) Borrow(userID int, book *entities.Book) entities.Outcome {
	user, ok := d.users[userID]
	if !ok {
		return entities.OutcomeUserNotFound
	}
	if book == nil {
		return entities.OutcomeBookNotFound
	}
	if !book.Available {
		return entities.OutcomeUnavailable
	}

	user.Borrowed = append(user.Borrowed, book.ID)
	d.held[userID] = append(d.held[userID], book)
	book.Available = false
	return entities.OutcomeOK
}

// ReturnBook detaches the first borrowed entry matching bookID and marks
// that same book available again.
func (d *Directory) ReturnBook(userID, bookID int) entities.Outcome {
	user, ok := d.users[userID]
	if !ok {
		return entities.OutcomeUserNotFound
	}
	if !user.Holds(bookID) {
		return entities.OutcomeNotBorrowed
	}

	held := d.held[userID]
	for i, book := range held {
		if book.ID != bookID {
			continue
		}
		book.Available = true
		d.held[userID] = append(held[:i], held[i+1:]...)
		user.Borrowed = append(user.Borrowed[:i], user.Borrowed[i+1:]...)
		break
	}
	return entities.OutcomeOK
}

// BorrowedBooks returns copies of the user's held books in borrow order.
func (d *Directory) BorrowedBooks(userID int) []entities.Book {
	if _, ok := d.users[userID]; !ok {
		return nil
	}
	books := make([]entities.Book, 0, len(d.held[userID]))
	for _, book := range d.held[userID] {
		books = append(books, *book)
	}
	return books
}

// Users returns copies of all users ordered by id.
func (d *Directory) Users() []entities.User {
	users := make([]entities.User, 0, len(d.users))
	for _, u := range d.users {
		cp := *u
		cp.Borrowed = append([]int{}, u.Borrowed...)
		users = append(users, cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Len is the number of users.
func (d *Directory) Len() int {
	return len(d.users)
}

// Display writes the user's record followed by each borrowed book.
func (d *Directory) Display(w io.Writer, userID int) {
	user, ok := d.users[userID]
	if !ok {
		fmt.Fprintln(w, "User not found.")
		return
	}

	fmt.Fprintf(w, "User ID: %d, Name: %s\n", user.ID, user.Name)
	fmt.Fprintln(w, "Borrowed Books:")
	for _, book := range d.held[userID] {
		fmt.Fprintf(w, "  ID: %d, Title: %s, Author: %s\n", book.ID, book.Title, book.Author)
	}
}
