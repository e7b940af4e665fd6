package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

// Reindexer refreshes the vector index after artifacts change.
type Reindexer interface {
	Reindex(ctx context.Context) error
}

// Scheduler periodically refreshes weather artifacts for configured countries
// and re-indexes them into the vector store.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	reindexer Reindexer // optional
	countries []string
	interval  time.Duration
}

// New creates a new Scheduler. reindexer may be nil when no assistant is running.
func New(countries []string, interval time.Duration, service *weather.Service, reindexer Reindexer) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		reindexer: reindexer,
		countries: countries,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.countries) == 0 {
		log.Println("scheduler: no countries configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running weather refresh job")

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		updated := s.service.FetchAll(ctx, s.countries)
		log.Printf("scheduler: refreshed %d/%d countries", len(updated), len(s.countries))

		if s.reindexer != nil && len(updated) > 0 {
			if err := s.reindexer.Reindex(ctx); err != nil {
				log.Printf("scheduler: reindex failed: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
