package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/library"
	"github.com/mrlokans/library/internal/services"
)

func setupProcessor(t *testing.T, schedule string) (*RequestProcessor, *services.LibraryService) {
	t.Helper()
	system := library.NewSystem(io.Discard)
	library.Seed(system)
	svc := services.NewLibraryService(system, nil)
	return NewRequestProcessor(svc, schedule), svc
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("* * * * *"))
	assert.NoError(t, ValidateCronSchedule("*/5 * * * *"))
	assert.Error(t, ValidateCronSchedule("not a schedule"))
	assert.Error(t, ValidateCronSchedule("0 0 * * * *"))
}

func TestGetNextRunTime(t *testing.T) {
	from := time.Date(2024, 3, 1, 10, 7, 30, 0, time.UTC)

	next, err := GetNextRunTime("*/15 * * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC), next)

	_, err = GetNextRunTime("bogus", from)
	assert.Error(t, err)
}

func TestRequestProcessor_RunNow(t *testing.T) {
	processor, svc := setupProcessor(t, "* * * * *")
	svc.Request(1, 2)
	svc.Request(2, 2)

	processed := processor.RunNow(services.TriggerAPI)

	require.Len(t, processed, 2)
	assert.Equal(t, entities.OutcomeOK, processed[0].Outcome)
	assert.Equal(t, entities.OutcomeUnavailable, processed[1].Outcome)
	assert.Empty(t, svc.PendingRequests())
	assert.Empty(t, processor.RunNow(services.TriggerAPI))
}

func TestRequestProcessor_StartStop(t *testing.T) {
	t.Run("rejects invalid schedule", func(t *testing.T) {
		processor, _ := setupProcessor(t, "every minute please")

		err := processor.Start(context.Background())

		assert.Error(t, err)
		assert.False(t, processor.IsRunning())
		assert.Nil(t, processor.NextRunTime())
	})

	t.Run("start is idempotent and stop halts", func(t *testing.T) {
		processor, _ := setupProcessor(t, "0 * * * *")

		require.NoError(t, processor.Start(context.Background()))
		require.NoError(t, processor.Start(context.Background()))
		assert.True(t, processor.IsRunning())
		assert.NotNil(t, processor.NextRunTime())

		processor.Stop()
		assert.False(t, processor.IsRunning())
		assert.Nil(t, processor.NextRunTime())

		processor.Stop()
	})

	t.Run("context cancellation stops the processor", func(t *testing.T) {
		processor, _ := setupProcessor(t, "0 * * * *")
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, processor.Start(ctx))
		cancel()

		assert.Eventually(t, func() bool {
			return !processor.IsRunning()
		}, time.Second, 10*time.Millisecond)
	})
}
