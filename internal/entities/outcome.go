package entities

import "errors"

// Outcome describes what a library operation did. Core operations never
// fail loudly; callers that care inspect the outcome instead.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeUserNotFound  Outcome = "user_not_found"
	OutcomeBookNotFound  Outcome = "book_not_found"
	OutcomeUnavailable   Outcome = "unavailable"
	OutcomeNotBorrowed   Outcome = "not_borrowed"
	OutcomeDuplicateUser Outcome = "duplicate_user"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrBookNotFound  = errors.New("book not found")
	ErrUnavailable   = errors.New("book is not available")
	ErrNotBorrowed   = errors.New("book is not borrowed by user")
	ErrDuplicateUser = errors.New("user id already exists")
)

// Err maps the outcome to its sentinel error, or nil for OutcomeOK.
func (o Outcome) Err() error {
	switch o {
	case OutcomeOK:
		return nil
	case OutcomeUserNotFound:
		return ErrUserNotFound
	case OutcomeBookNotFound:
		return ErrBookNotFound
	case OutcomeUnavailable:
		return ErrUnavailable
	case OutcomeNotBorrowed:
		return ErrNotBorrowed
	case OutcomeDuplicateUser:
		return ErrDuplicateUser
	}
	return errors.New("unknown outcome: " + string(o))
}
