package tracker

import (
	"context"
	"fleetd/internal/models"
	"fleetd/internal/notify"
	"fleetd/internal/providers"
	"fleetd/internal/structures"
	"fleetd/internal/upstream"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
)

const (
	DefaultNoticeLimit = 3
	kickTimeout        = 30 * time.Second
)

type TrackerInterface interface {
	Refresh(ctx context.Context) error
	TryRefresh(ctx context.Context) bool
	TriggerRefresh()
	Counts() map[int64]int
	PutCounts(counts map[int64]int)
}

// Tracker polls the upstream for the vessels inside each of the owner's
// zones and reports entered/exited deltas against the previous cycle.
// The previous-count record is owned exclusively by the tracker; cycles
// are strictly sequential, only the per-zone queries inside one cycle run
// concurrently.
type Tracker struct {
	config   *structures.Config
	logger   providers.Logger
	client   upstream.ClientInterface
	notifier notify.NotifierInterface
	metrics  providers.MetricsProviderInterface

	prev    *models.OccupancyRecord
	cycleMu sync.Mutex

	noZonesReported  atomic.Bool
	baselineReported atomic.Bool
}

func NewTracker(config *structures.Config, logger providers.Logger, client upstream.ClientInterface, notifier notify.NotifierInterface, metrics providers.MetricsProviderInterface) TrackerInterface {
	return &Tracker{
		config:   config,
		logger:   logger,
		client:   client,
		notifier: notifier,
		metrics:  metrics,
		prev:     models.NewOccupancyRecord(),
	}
}

// Refresh runs one full occupancy cycle. It blocks until any cycle already
// in flight has finished applying its counts.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.cycleMu.Lock()
	defer t.cycleMu.Unlock()
	return t.cycle(ctx)
}

// TryRefresh runs a cycle unless one is already in flight, in which case
// the tick is skipped rather than queued behind stale previous-count state.
func (t *Tracker) TryRefresh(ctx context.Context) bool {
	if !t.cycleMu.TryLock() {
		t.logger.Warnf(providers.TypeApp, "Occupancy cycle still in flight, skipping tick")
		t.metrics.IncCyclesTotal(providers.CycleOutcomeSkipped)
		return false
	}
	defer t.cycleMu.Unlock()
	_ = t.cycle(ctx)
	return true
}

// TriggerRefresh kicks an opportunistic refresh, e.g. right after a zone
// was saved. Best effort: eventual consistency with persistence is fine.
func (t *Tracker) TriggerRefresh() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), kickTimeout)
		defer cancel()
		t.TryRefresh(ctx)
	}()
}

func (t *Tracker) Counts() map[int64]int {
	return t.prev.GetData()
}

// PutCounts replaces the previous-count baseline, used when restoring
// persisted state so a restart does not re-alert for unchanged zones.
func (t *Tracker) PutCounts(counts map[int64]int) {
	if counts == nil {
		counts = make(map[int64]int)
	}
	t.prev.PutData(counts)
}

func (t *Tracker) cycle(ctx context.Context) error {
	ownerID := t.config.Tracker.OwnerID
	if ownerID == "" {
		// session identity not configured yet, nothing to do
		t.metrics.IncCyclesTotal(providers.CycleOutcomeNoOwner)
		return nil
	}

	start := time.Now()

	zones, err := t.client.ListZones(ctx, ownerID, 0)
	if err != nil {
		t.logger.Errorf(providers.TypeApp, "Zone listing failed, cycle aborted: %s", err)
		t.metrics.IncCyclesTotal(providers.CycleOutcomeFailed)
		return fmt.Errorf("refresh occupancy: %w", err)
	}

	if len(zones) == 0 {
		if t.noZonesReported.CompareAndSwap(false, true) {
			t.notifier.Notify(models.ZoneAlert{
				Message:  "No alert zones configured",
				Severity: models.SeverityInfo,
				At:       time.Now(),
			})
		}
		t.metrics.IncCyclesTotal(providers.CycleOutcomeOK)
		return nil
	}

	counts := t.collectCounts(ctx, zones)
	if ctx.Err() != nil {
		// the owning session is tearing down, discard partial results
		t.logger.Warnf(providers.TypeApp, "Cycle cancelled, discarding results: %s", ctx.Err())
		t.metrics.IncCyclesTotal(providers.CycleOutcomeFailed)
		return ctx.Err()
	}

	t.report(zones, counts)
	t.prev.PutData(counts)

	t.metrics.IncCyclesTotal(providers.CycleOutcomeOK)
	t.metrics.ObserveCycleDuration(time.Since(start))
	return nil
}

// collectCounts fans the per-zone vessel queries out concurrently into a
// cycle-local map. A failing zone counts as zero vessels and never aborts
// the others.
func (t *Tracker) collectCounts(ctx context.Context, zones []models.Zone) map[int64]int {
	counts := make(map[int64]int, len(zones))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, zone := range zones {
		if len(zone.Polygon) == 0 {
			continue
		}
		wg.Add(1)
		go func(zone models.Zone) {
			defer wg.Done()

			n := 0
			vessels, err := t.client.VesselsInPolygon(ctx, zone.Polygon)
			if err != nil {
				t.logger.Errorf(providers.TypeApp, "Vessel query for zone %d failed: %s", zone.ID, err)
				t.metrics.IncZoneQueryErrors()
			} else {
				n = len(vessels)
			}

			mu.Lock()
			counts[zone.ID] = n
			mu.Unlock()
		}(zone)
	}
	wg.Wait()

	return counts
}

func (t *Tracker) report(zones []models.Zone, counts map[int64]int) {
	prevCounts := t.prev.GetData()
	firstCycle := t.baselineReported.CompareAndSwap(false, true)

	noticeLimit := t.config.Tracker.NoticeLimit
	if noticeLimit <= 0 {
		noticeLimit = DefaultNoticeLimit
	}
	notices := 0
	occupied := 0

	now := time.Now()
	for _, zone := range zones {
		if len(zone.Polygon) == 0 {
			continue
		}
		n := counts[zone.ID]
		p := prevCounts[zone.ID]
		entered := max(0, n-p)
		exited := max(0, p-n)

		name := zone.DisplayName()
		t.metrics.SetZoneOccupancy(name, n)
		if n > 0 {
			occupied++
		}

		switch {
		case entered > 0 || exited > 0:
			t.notifier.Notify(models.ZoneAlert{
				ZoneID:   zone.ID,
				ZoneName: name,
				Entered:  entered,
				Exited:   exited,
				Current:  n,
				Message:  fmt.Sprintf("Zone %q: %d vessels entered, %d exited, %d inside", name, entered, exited, n),
				Severity: models.SeverityWarn,
				At:       now,
			})
			t.metrics.IncAlertsEmitted(string(models.SeverityWarn))
		case firstCycle && n > 0 && notices < noticeLimit:
			// restored baseline matched: no movement, but tell the
			// user once which zones are occupied right now
			t.notifier.Notify(models.ZoneAlert{
				ZoneID:   zone.ID,
				ZoneName: name,
				Current:  n,
				Message:  fmt.Sprintf("Zone %q currently has %d vessels inside", name, n),
				Severity: models.SeverityInfo,
				At:       now,
			})
			t.metrics.IncAlertsEmitted(string(models.SeverityInfo))
			notices++
		}
	}

	if firstCycle && occupied == 0 {
		t.notifier.Notify(models.ZoneAlert{
			Message:  "No vessels inside any alert zone",
			Severity: models.SeverityInfo,
			At:       now,
		})
		t.metrics.IncAlertsEmitted(string(models.SeverityInfo))
	}
}
