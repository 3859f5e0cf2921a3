package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/library/internal/entities"
)

type Action string

const (
	ActionBorrow  Action = "borrow"
	ActionReturn  Action = "return"
	ActionRequest Action = "request"
	ActionProcess Action = "process"
)

// Event is one journal entry. Nothing reads the journal back.
type Event struct {
	ID         string           `json:"id"`
	Action     Action           `json:"action"`
	UserID     int              `json:"user_id"`
	BookID     int              `json:"book_id"`
	Outcome    entities.Outcome `json:"outcome,omitempty"`
	Trigger    string           `json:"trigger,omitempty"` // "api" or "scheduler"
	RecordedAt time.Time        `json:"recorded_at"`
}

type Auditor struct {
	AuditDir string
}

// NewAuditor returns an auditor writing to auditDir. An empty directory
// yields a disabled auditor.
func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

func (a *Auditor) Enabled() bool {
	return a != nil && a.AuditDir != ""
}

// Record saves the event as JSON to a file named after a fresh UUID and
// returns that filename.
func (a *Auditor) Record(event Event) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	auditID := uuid.New()
	event.ID = auditID.String()
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now().UTC()
	}
	filename := fmt.Sprintf("%s.json", event.ID)

	jsonData, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if err := os.WriteFile(filepath.Join(a.AuditDir, filename), jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	return filename, nil
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
