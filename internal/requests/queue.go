// Package requests holds pending borrow requests in arrival order.
package requests

import "github.com/mrlokans/library/internal/entities"

// Queue is a FIFO of borrow requests. The zero value is ready to use.
type Queue struct {
	items []entities.Request
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue appends a request at the tail. Ids are not checked.
func (q *Queue) Enqueue(userID, bookID int) {
	q.items = append(q.items, entities.Request{UserID: userID, BookID: bookID})
}

// Dequeue removes the head request. An empty queue yields entities.NoRequest.
func (q *Queue) Dequeue() entities.Request {
	if len(q.items) == 0 {
		return entities.NoRequest
	}
	head := q.items[0]
	q.items[0] = entities.Request{}
	q.items = q.items[1:]
	return head
}

// Len is the number of pending requests.
func (q *Queue) Len() int {
	return len(q.items)
}

// Pending returns a copy of the queued requests, head first.
func (q *Queue) Pending() []entities.Request {
	return append([]entities.Request{}, q.items...)
}
