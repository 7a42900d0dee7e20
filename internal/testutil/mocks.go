package testutil

import (
	"context"
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"fleetd/internal/upstream"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LevelCount returns how many entries were recorded at the given level.
func (m *MockLogger) LevelCount(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockClient implements upstream.ClientInterface with injectable behavior.
type MockClient struct {
	mu sync.Mutex

	ListZonesFn        func(ctx context.Context, ownerID string, page int) ([]models.Zone, error)
	VesselsInPolygonFn func(ctx context.Context, polygon models.Polygon) ([]models.VesselSnapshot, error)
	SaveZoneFn         func(ctx context.Context, zone *models.Zone) (*models.Zone, error)
	DeleteZoneFn       func(ctx context.Context, zoneID int64, ownerID string) error
	ListVesselsFn      func(ctx context.Context, filter upstream.VesselFilter) ([]models.VesselSnapshot, error)
	VesselRouteFn      func(ctx context.Context, mmsi int64) ([]models.TrackPoint, error)

	ListZonesCalls        int
	VesselsInPolygonCalls int
	SaveZoneCalls         []*models.Zone
	DeleteZoneCalls       []int64
}

func (m *MockClient) ListZones(ctx context.Context, ownerID string, page int) ([]models.Zone, error) {
	m.mu.Lock()
	m.ListZonesCalls++
	m.mu.Unlock()
	if m.ListZonesFn != nil {
		return m.ListZonesFn(ctx, ownerID, page)
	}
	return nil, nil
}

func (m *MockClient) VesselsInPolygon(ctx context.Context, polygon models.Polygon) ([]models.VesselSnapshot, error) {
	m.mu.Lock()
	m.VesselsInPolygonCalls++
	m.mu.Unlock()
	if m.VesselsInPolygonFn != nil {
		return m.VesselsInPolygonFn(ctx, polygon)
	}
	return nil, nil
}

func (m *MockClient) SaveZone(ctx context.Context, zone *models.Zone) (*models.Zone, error) {
	m.mu.Lock()
	m.SaveZoneCalls = append(m.SaveZoneCalls, zone)
	m.mu.Unlock()
	if m.SaveZoneFn != nil {
		return m.SaveZoneFn(ctx, zone)
	}
	saved := *zone
	if saved.ID == 0 {
		saved.ID = int64(len(m.SaveZoneCalls))
	}
	saved.UpdatedAt = time.Now()
	return &saved, nil
}

func (m *MockClient) DeleteZone(ctx context.Context, zoneID int64, ownerID string) error {
	m.mu.Lock()
	m.DeleteZoneCalls = append(m.DeleteZoneCalls, zoneID)
	m.mu.Unlock()
	if m.DeleteZoneFn != nil {
		return m.DeleteZoneFn(ctx, zoneID, ownerID)
	}
	return nil
}

func (m *MockClient) ListVessels(ctx context.Context, filter upstream.VesselFilter) ([]models.VesselSnapshot, error) {
	if m.ListVesselsFn != nil {
		return m.ListVesselsFn(ctx, filter)
	}
	return nil, nil
}

func (m *MockClient) VesselRoute(ctx context.Context, mmsi int64) ([]models.TrackPoint, error) {
	if m.VesselRouteFn != nil {
		return m.VesselRouteFn(ctx, mmsi)
	}
	return nil, nil
}

// MockNotifier implements notify.NotifierInterface and records alerts.
type MockNotifier struct {
	mu     sync.Mutex
	Alerts []models.ZoneAlert
}

func (m *MockNotifier) Notify(alert models.ZoneAlert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Alerts = append(m.Alerts, alert)
}

func (m *MockNotifier) Recorded() []models.ZoneAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ZoneAlert, len(m.Alerts))
	copy(out, m.Alerts)
	return out
}

// ForZone returns the recorded alerts carrying the given zone id.
func (m *MockNotifier) ForZone(zoneID int64) []models.ZoneAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ZoneAlert
	for _, a := range m.Alerts {
		if a.ZoneID == zoneID {
			out = append(out, a)
		}
	}
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu              sync.Mutex
	CycleOutcomes   map[string]int
	ZoneQueryErrors int
	Occupancy       map[string]int
	AlertsEmitted   map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		CycleOutcomes: make(map[string]int),
		Occupancy:     make(map[string]int),
		AlertsEmitted: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveCycleDuration(_ time.Duration)             {}

func (m *MockMetrics) IncCyclesTotal(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CycleOutcomes[outcome]++
}

func (m *MockMetrics) IncZoneQueryErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ZoneQueryErrors++
}

func (m *MockMetrics) SetZoneOccupancy(zone string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Occupancy[zone] = count
}

func (m *MockMetrics) IncAlertsEmitted(severity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AlertsEmitted[severity]++
}

func (m *MockMetrics) Outcome(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CycleOutcomes[outcome]
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
