package internal

import (
	"context"
	"fleetd/internal/controllers"
	"fleetd/internal/models"
	"fleetd/internal/notify"
	"fleetd/internal/providers"
	"fleetd/internal/services"
	"fleetd/internal/structures"
	"fleetd/internal/upstream"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestZones struct{}

func (m *routeTestZones) ListZones(context.Context) ([]models.Zone, error) { return nil, nil }
func (m *routeTestZones) SaveZone(context.Context, *services.ZoneInput) (*models.Zone, error) {
	return &models.Zone{}, nil
}
func (m *routeTestZones) DeleteZone(context.Context, int64) error { return nil }

type routeTestTracker struct{}

func (m *routeTestTracker) Refresh(context.Context) error   { return nil }
func (m *routeTestTracker) TryRefresh(context.Context) bool { return true }
func (m *routeTestTracker) TriggerRefresh()                 {}
func (m *routeTestTracker) Counts() map[int64]int           { return map[int64]int{} }
func (m *routeTestTracker) PutCounts(map[int64]int)         {}

type routeTestClient struct{}

func (m *routeTestClient) ListZones(context.Context, string, int) ([]models.Zone, error) {
	return nil, nil
}
func (m *routeTestClient) VesselsInPolygon(context.Context, models.Polygon) ([]models.VesselSnapshot, error) {
	return nil, nil
}
func (m *routeTestClient) SaveZone(context.Context, *models.Zone) (*models.Zone, error) {
	return nil, nil
}
func (m *routeTestClient) DeleteZone(context.Context, int64, string) error { return nil }
func (m *routeTestClient) ListVessels(context.Context, upstream.VesselFilter) ([]models.VesselSnapshot, error) {
	return nil, nil
}
func (m *routeTestClient) VesselRoute(context.Context, int64) ([]models.TrackPoint, error) {
	return nil, nil
}

func routeTestSetup() (*controllers.ApiController, *notify.Hub) {
	logger := &routeTestLogger{}
	zones := &routeTestZones{}
	draft := services.NewDraftWorkflow(logger, zones)
	alertLog := notify.NewAlertLog(&structures.Config{})
	hub := notify.NewHub(logger, alertLog)
	ac := controllers.NewApiController(logger, zones, draft, &routeTestTracker{}, &routeTestClient{}, alertLog, &routeTestCache{})
	return ac, hub
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	ac, hub := routeTestSetup()

	router := InitRoutes(ac, hub)
	routes := router.GetRoutes()
	require.Len(t, routes, 11)

	urls := make([]string, 0, len(routes))
	for _, route := range routes {
		urls = append(urls, route.Url)
	}
	assert.Contains(t, urls, "/zones")
	assert.Contains(t, urls, "/vessels")
	assert.Contains(t, urls, "/vessels/route")
	assert.Contains(t, urls, "/occupancy")
	assert.Contains(t, urls, "/alerts")
	assert.Contains(t, urls, "/ws")
	assert.Contains(t, urls, "/draft")
	assert.Contains(t, urls, "/draft/start")
	assert.Contains(t, urls, "/draft/complete")
	assert.Contains(t, urls, "/draft/confirm")
	assert.Contains(t, urls, "/draft/cancel")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	ac, hub := routeTestSetup()

	mux := http.NewServeMux()
	for _, route := range InitRoutes(ac, hub).GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}

	// write endpoints reject GET
	req := httptest.NewRequest(http.MethodGet, "/draft/start", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// read endpoints reject POST
	req = httptest.NewRequest(http.MethodPost, "/occupancy", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// matching method passes through
	req = httptest.NewRequest(http.MethodGet, "/occupancy", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
