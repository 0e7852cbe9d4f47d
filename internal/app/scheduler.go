package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/usecase"
)

const seedJobName = "seed-exports"

// Seeder is the job body run on every tick.
type Seeder interface {
	Seed(ctx context.Context) (usecase.SeedResult, error)
}

// SeedScheduler reloads the exports into the store on a fixed interval.
// Runs never overlap; a slow seed delays the next tick.
type SeedScheduler struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger
	stopOnce  sync.Once
	stopErr   error
}

func NewSeedScheduler(seeder Seeder, interval time.Duration, logger *logging.Logger) (*SeedScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("seed interval must be > 0")
	}
	if logger == nil {
		logger = logging.Default()
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	jobLogger := logger.With("job_name", seedJobName, "interval", interval.String())
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			jobLogger.Debug("scheduler job started")
			if _, err := seeder.Seed(context.Background()); err != nil {
				jobLogger.Error("scheduled seed failed", "error", err)
				return
			}
			jobLogger.Debug("scheduler job completed")
		}),
		gocron.WithName(seedJobName),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("register seed job: %w", err)
	}
	jobLogger.Info("scheduler job registered")

	return &SeedScheduler{scheduler: sched, logger: logger}, nil
}

func (s *SeedScheduler) Start() {
	s.logger.Info("scheduler starting")
	s.scheduler.Start()
}

// Stop is safe to call more than once.
func (s *SeedScheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
