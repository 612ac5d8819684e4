package scheduler

import (
	"context"
	"sync"
	"time"

	"agencyops/internal/infrastructure/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TaskFunc is one run of a scheduled job.
type TaskFunc func(ctx context.Context) error

// Scheduler runs background jobs on cron expressions or fixed intervals.
// A run that is still going when its next tick fires is skipped.
type Scheduler struct {
	cron    *cron.Cron
	log     *zap.Logger
	timeout time.Duration
	tasks   map[string]cron.EntryID
	mu      sync.Mutex
	running bool
}

// New creates a scheduler whose cron expressions carry a seconds field.
// Every run gets its own context bounded by timeout.
func New(timeout time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	log := logger.Named("scheduler")
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log:     log,
		timeout: timeout,
		tasks:   map[string]cron.EntryID{},
	}
}

// AddCronTask registers task under name, replacing any previous task with that name.
// Format: "second minute hour day-of-month month day-of-week".
func (s *Scheduler) AddCronTask(name, schedule string, task TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.tasks[name]; ok {
		s.cron.Remove(id)
		delete(s.tasks, name)
	}
	id, err := s.cron.AddFunc(schedule, func() { s.runTask(name, task) })
	if err != nil {
		return err
	}
	s.tasks[name] = id
	s.log.Info("cron task added", zap.String("name", name), zap.String("schedule", schedule))
	return nil
}

func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, task TaskFunc) error {
	return s.AddCronTask(name, "@every "+interval.String(), task)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", zap.Int("tasks", len(s.tasks)))
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	select {
	case <-s.cron.Stop().Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
	s.running = false
}

// Tasks returns the registered task names with their next run time.
func (s *Scheduler) Tasks() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.tasks))
	for name, id := range s.tasks {
		out[name] = s.cron.Entry(id).Next
	}
	return out
}

func (s *Scheduler) runTask(name string, task TaskFunc) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.JobRuns.WithLabelValues(name, metrics.OutcomeError).Inc()
			s.log.Error("scheduled task panicked", zap.String("name", name), zap.Any("panic", r))
		}
	}()

	err := task(ctx)
	metrics.JobRuns.WithLabelValues(name, metrics.Outcome(err)).Inc()
	metrics.JobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error("scheduled task failed", zap.String("name", name), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return
	}
	s.log.Debug("scheduled task completed", zap.String("name", name), zap.Duration("duration", time.Since(start)))
}
