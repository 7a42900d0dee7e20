package tracker

import (
	"context"
	"fleetd/internal/providers"
	"fleetd/internal/structures"
	"fleetd/internal/tracker/interfaces"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler owns the periodic refresh for the lifetime of the process.
// Stop cancels the cycle context, so in-flight requests of a torn-down
// cycle are discarded instead of being applied.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	tracker   TrackerInterface
	stateFile *StateFile
	cron      *gron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	interval := s.config.Tracker.Interval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if !s.tracker.TryRefresh(s.ctx) {
			return
		}
		if err := s.stateFile.SaveToFile(s.config.Tracker.StatePath); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting tracker state: %s", err)
		}
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Occupancy refresh scheduled every %s", interval)
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.stateFile.LoadFromFile(s.config.Tracker.StatePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting tracker state to file...")
	err := s.stateFile.SaveToFile(s.config.Tracker.StatePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting tracker state: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, tracker TrackerInterface, stateFile *StateFile) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		tracker:   tracker,
		stateFile: stateFile,
	}
}
