package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/library/internal/library"
	"github.com/mrlokans/library/internal/services"
)

// RequestDrainer is the part of the library service the processor needs.
type RequestDrainer interface {
	ProcessRequests(trigger string) []library.Processed
}

// RequestProcessor drains the borrow request queue on a cron schedule.
type RequestProcessor struct {
	drainer  RequestDrainer
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewRequestProcessor(drainer RequestDrainer, schedule string) *RequestProcessor {
	return &RequestProcessor{
		drainer:  drainer,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start schedules the drain job. It stops on its own when ctx is cancelled.
func (p *RequestProcessor) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(p.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", p.schedule, err)
	}

	entryID, err := p.cron.AddFunc(p.schedule, func() {
		p.run(services.TriggerScheduler)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule request processing: %w", err)
	}
	p.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, p.cancelFunc = context.WithCancel(ctx)

	p.cron.Start()
	p.isRunning = true

	nextRun, _ := GetNextRunTime(p.schedule, time.Now())
	log.Printf("Request processor: started with schedule '%s' (%s). Next run: %v",
		p.schedule, GetCronDescription(p.schedule), nextRun)

	go func() {
		<-cancelCtx.Done()
		p.Stop()
	}()

	return nil
}

// Stop waits for a running drain to finish before returning.
func (p *RequestProcessor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return
	}

	ctx := p.cron.Stop()
	<-ctx.Done()
	p.cron.Remove(p.entryID)

	if p.cancelFunc != nil {
		p.cancelFunc()
	}
	p.isRunning = false
	p.cancelFunc = nil

	log.Printf("Request processor: stopped")
}

// RunNow drains the queue synchronously and returns what was processed.
func (p *RequestProcessor) RunNow(trigger string) []library.Processed {
	return p.run(trigger)
}

func (p *RequestProcessor) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isRunning
}

// NextRunTime returns nil when the processor is stopped.
func (p *RequestProcessor) NextRunTime() *time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.isRunning {
		return nil
	}

	for _, entry := range p.cron.Entries() {
		if entry.ID == p.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (p *RequestProcessor) run(trigger string) []library.Processed {
	processed := p.drainer.ProcessRequests(trigger)
	if len(processed) == 0 {
		return processed
	}

	borrowed := 0
	for _, r := range processed {
		if r.Outcome.Err() == nil {
			borrowed++
		}
	}
	log.Printf("Request processor: processed %d requests (%d borrowed, %d skipped)",
		len(processed), borrowed, len(processed)-borrowed)
	return processed
}
