package jobs

import (
	"context"

	"github.com/robfig/cron"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// Job is a scheduled unit of work. Run failures are logged, never retried
// here; the next scheduled tick is the retry.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	log  *logger.Logger
	cron *cron.Cron
}

func NewScheduler(baseLog *logger.Logger) *Scheduler {
	return &Scheduler{
		log:  baseLog.With("component", "Scheduler"),
		cron: cron.New(),
	}
}

func (s *Scheduler) Add(schedule string, job Job) error {
	return s.cron.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("Job panicked", "job", job.Name(), "panic", r)
			}
		}()
		if err := job.Run(context.Background()); err != nil {
			s.log.Warn("Job run failed", "job", job.Name(), "error", err)
		}
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
