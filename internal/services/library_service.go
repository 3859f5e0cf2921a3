package services

import (
	"log"
	"sync"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/library"
)

// Trigger values recorded in the audit journal.
const (
	TriggerAPI       = "api"
	TriggerScheduler = "scheduler"
)

// UserView is a user together with the books it currently holds.
type UserView struct {
	entities.User
	Books []entities.Book `json:"books"`
}

// LibraryService serializes access to a library.System so the HTTP API and
// the request processor can share it, and journals every state change.
type LibraryService struct {
	mu      sync.Mutex
	system  *library.System
	journal Journal
}

// NewLibraryService wraps system. journal may be nil.
func NewLibraryService(system *library.System, journal Journal) *LibraryService {
	return &LibraryService{
		system:  system,
		journal: journal,
	}
}

func (s *LibraryService) AddBook(title, author string) entities.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.system.AddBook(title, author)
	book, _ := s.system.Book(id)
	return book
}

func (s *LibraryService) AddUser(name string) entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.system.AddUser(name)
	user, _, _ := s.system.User(id)
	return user
}

func (s *LibraryService) Books() []entities.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.Books()
}

// Book returns entities.ErrBookNotFound for an unknown id.
func (s *LibraryService) Book(id int) (entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.system.Book(id)
	if !ok {
		return entities.Book{}, entities.ErrBookNotFound
	}
	return book, nil
}

func (s *LibraryService) Users() []entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.Users()
}

// User returns entities.ErrUserNotFound for an unknown id.
func (s *LibraryService) User(id int) (UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, books, ok := s.system.User(id)
	if !ok {
		return UserView{}, entities.ErrUserNotFound
	}
	return UserView{User: user, Books: books}, nil
}

// Borrow returns the sentinel error matching the borrow outcome.
func (s *LibraryService) Borrow(userID, bookID int) error {
	s.mu.Lock()
	outcome := s.system.BorrowBook(userID, bookID)
	s.mu.Unlock()

	s.record(audit.Event{
		Action:  audit.ActionBorrow,
		UserID:  userID,
		BookID:  bookID,
		Outcome: outcome,
		Trigger: TriggerAPI,
	})
	return outcome.Err()
}

// Return returns the sentinel error matching the return outcome.
func (s *LibraryService) Return(userID, bookID int) error {
	s.mu.Lock()
	outcome := s.system.ReturnBook(userID, bookID)
	s.mu.Unlock()

	s.record(audit.Event{
		Action:  audit.ActionReturn,
		UserID:  userID,
		BookID:  bookID,
		Outcome: outcome,
		Trigger: TriggerAPI,
	})
	return outcome.Err()
}

// Request queues a borrow intent. Ids are not checked until processing.
func (s *LibraryService) Request(userID, bookID int) {
	s.mu.Lock()
	s.system.RequestBook(userID, bookID)
	s.mu.Unlock()

	s.record(audit.Event{
		Action:  audit.ActionRequest,
		UserID:  userID,
		BookID:  bookID,
		Trigger: TriggerAPI,
	})
}

func (s *LibraryService) PendingRequests() []entities.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.PendingRequests()
}

// ProcessRequests drains the queue and journals each processed request
// with the given trigger.
func (s *LibraryService) ProcessRequests(trigger string) []library.Processed {
	s.mu.Lock()
	processed := s.system.ProcessRequests()
	s.mu.Unlock()

	for _, p := range processed {
		s.record(audit.Event{
			Action:  audit.ActionProcess,
			UserID:  p.Request.UserID,
			BookID:  p.Request.BookID,
			Outcome: p.Outcome,
			Trigger: trigger,
		})
	}
	return processed
}

func (s *LibraryService) record(event audit.Event) {
	if s.journal == nil || !s.journal.Enabled() {
		return
	}
	if _, err := s.journal.Record(event); err != nil {
		log.Printf("Library service: failed to record %s event: %v", event.Action, err)
	}
}
