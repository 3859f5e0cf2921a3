package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func TestAuditor(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "audit")
	auditor := NewAuditor(tempDir)

	t.Run("Record creates audit directory and saves event", func(t *testing.T) {
		filename, err := auditor.Record(Event{
			Action:  ActionBorrow,
			UserID:  1,
			BookID:  2,
			Outcome: entities.OutcomeOK,
			Trigger: "api",
		})
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(filename, ".json"))

		_, err = uuid.Parse(strings.TrimSuffix(filename, ".json"))
		assert.NoError(t, err)

		fileContent, err := os.ReadFile(filepath.Join(tempDir, filename))
		require.NoError(t, err)

		var saved Event
		require.NoError(t, json.Unmarshal(fileContent, &saved))
		assert.Equal(t, strings.TrimSuffix(filename, ".json"), saved.ID)
		assert.Equal(t, ActionBorrow, saved.Action)
		assert.Equal(t, 1, saved.UserID)
		assert.Equal(t, 2, saved.BookID)
		assert.Equal(t, entities.OutcomeOK, saved.Outcome)
		assert.False(t, saved.RecordedAt.IsZero())
	})

	t.Run("Record generates unique filenames", func(t *testing.T) {
		filename1, err := auditor.Record(Event{Action: ActionProcess})
		require.NoError(t, err)

		filename2, err := auditor.Record(Event{Action: ActionProcess})
		require.NoError(t, err)

		assert.NotEqual(t, filename1, filename2)
	})

	t.Run("disabled auditor writes nothing", func(t *testing.T) {
		for _, a := range []*Auditor{nil, NewAuditor("")} {
			assert.False(t, a.Enabled())
			filename, err := a.Record(Event{Action: ActionReturn})
			assert.NoError(t, err)
			assert.Empty(t, filename)
		}
	})
}
