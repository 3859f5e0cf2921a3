package services

import "github.com/mrlokans/library/internal/audit"

// Journal records library operations. *audit.Auditor implements it.
type Journal interface {
	Enabled() bool
	Record(event audit.Event) (string, error)
}
