package entities

// Book is a catalog entry. Available is false while a user holds the book.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

func NewBook(id int, title, author string) *Book {
	return &Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Available: true,
	}
}

// User is a directory entry. Borrowed holds book ids in borrow order;
// the books themselves stay owned by the catalog.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Borrowed []int  `json:"borrowed"`
}

func NewUser(id int, name string) *User {
	return &User{
		ID:       id,
		Name:     name,
		Borrowed: []int{},
	}
}

// Holds reports whether the user currently has the given book id.
func (u *User) Holds(bookID int) bool {
	for _, id := range u.Borrowed {
		if id == bookID {
			return true
		}
	}
	return false
}

// Request is a pending borrow intent.
type Request struct {
	UserID int `json:"user_id"`
	BookID int `json:"book_id"`
}

// NoRequest is returned by an empty request queue.
var NoRequest = Request{UserID: -1, BookID: -1}

// IsNone reports whether r is the empty-queue sentinel.
// Only UserID is checked, matching how the queue is drained.
func (r Request) IsNone() bool {
	return r.UserID == -1
}
