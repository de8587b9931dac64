package rate

import (
	"context"
	"sync"
	"time"

	"ecbrates/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultUpdateInterval = time.Hour

type tableRefresher interface {
	Refresh(ctx context.Context, execID string) (domain.RateTable, error)
}

type Scheduler struct {
	refresher      tableRefresher
	updateInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, refreshErr := s.refresher.Refresh(jobCtx, execID); refreshErr != nil {
			logrus.WithField("exec_id", execID).Errorf("Refresh rates job failed: %v", refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.updateInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func NewScheduler(refresher tableRefresher, updateInterval time.Duration) *Scheduler {
	if updateInterval <= 0 {
		updateInterval = defaultUpdateInterval
	}
	return &Scheduler{refresher: refresher, updateInterval: updateInterval}
}
