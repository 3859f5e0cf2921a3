// Package catalog stores books in an unbalanced binary search tree keyed by id.
//
// Ids smaller than a node's id descend left; everything else, including an
// equal id, descends right. Sequential ids therefore build a right-leaning
// chain, and duplicate ids are kept rather than rejected.
package catalog

import (
	"fmt"
	"io"

	"github.com/mrlokans/library/internal/entities"
)

type node struct {
	book        *entities.Book
	left, right *node
}

// Catalog owns every book. It is not safe for concurrent use.
type Catalog struct {
	root *node
	size int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add inserts the book. It never deduplicates.
func (c *Catalog) Add(book *entities.Book) {
	c.root = insert(c.root, book)
	c.size++
}

func insert(n *node, book *entities.Book) *node {
	if n == nil {
		return &node{book: book}
	}
	if book.ID < n.book.ID {
		n.left = insert(n.left, book)
	} else {
		n.right = insert(n.right, book)
	}
	return n
}

// FindByID returns the first book met on the descent path whose id matches,
// or nil.
func (c *Catalog) FindByID(id int) *entities.Book {
	n := search(c.root, id)
	if n == nil {
		return nil
	}
	return n.book
}

func search(n *node, id int) *node {
	if n == nil || n.book.ID == id {
		return n
	}
	if id < n.book.ID {
		return search(n.left, id)
	}
	return search(n.right, id)
}

// ListAll returns copies of every book in ascending id order.
func (c *Catalog) ListAll() []entities.Book {
	books := make([]entities.Book, 0, c.size)
	inorder(c.root, func(b *entities.Book) {
		books = append(books, *b)
	})
	return books
}

func inorder(n *node, visit func(*entities.Book)) {
	if n == nil {
		return
	}
	inorder(n.left, visit)
	visit(n.book)
	inorder(n.right, visit)
}

// Len counts stored books, duplicates included.
func (c *Catalog) Len() int {
	return c.size
}

// Height is the number of nodes on the longest root-to-leaf path.
func (c *Catalog) Height() int {
	return height(c.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Display writes one line per book in ascending id order.
func (c *Catalog) Display(w io.Writer) {
	inorder(c.root, func(b *entities.Book) {
		fmt.Fprintf(w, "ID: %d, Title: %s, Author: %s, Available: %s\n",
			b.ID, b.Title, b.Author, yesNo(b.Available))
	})
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
