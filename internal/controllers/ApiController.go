package controllers

import (
	"errors"
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"fleetd/internal/services"
	"fleetd/internal/tracker"
	"fleetd/internal/upstream"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger   providers.Logger
	zones    services.ZoneServiceInterface
	draft    services.DraftWorkflowInterface
	tracker  tracker.TrackerInterface
	client   upstream.ClientInterface
	alertLog *models.AlertLog
	cache    providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, zones services.ZoneServiceInterface, draft services.DraftWorkflowInterface, trk tracker.TrackerInterface, client upstream.ClientInterface, alertLog *models.AlertLog, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:   logger,
		zones:    zones,
		draft:    draft,
		tracker:  trk,
		client:   client,
		alertLog: alertLog,
		cache:    cache,
	}
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, err error) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, services.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrDraftActive), errors.Is(err, services.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &statusErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (ac *ApiController) decodeBody(w http.ResponseWriter, r *http.Request, payload any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// --- zones ---

func (ac *ApiController) GetZones(w http.ResponseWriter, r *http.Request) {
	zones, err := ac.zones.ListZones(r.Context())
	if err != nil {
		ac.writeError(w, err)
		return
	}
	ac.writeJSON(w, http.StatusOK, zones)
}

func (ac *ApiController) SaveZone(w http.ResponseWriter, r *http.Request) {
	var input services.ZoneInput
	if !ac.decodeBody(w, r, &input) {
		return
	}

	zone, err := ac.zones.SaveZone(r.Context(), &input)
	if err != nil {
		ac.writeError(w, err)
		return
	}

	status := http.StatusCreated
	if input.ID != 0 {
		status = http.StatusOK
	}
	ac.writeJSON(w, status, zone)
}

func (ac *ApiController) DeleteZone(w http.ResponseWriter, r *http.Request) {
	zoneID := cast.ToInt64(r.URL.Query().Get("id"))
	if zoneID == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.zones.DeleteZone(r.Context(), zoneID); err != nil {
		ac.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- vessels ---

func (ac *ApiController) GetVessels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := upstream.VesselFilter{
		MMSI:     cast.ToInt64(q.Get("mmsi")),
		Name:     q.Get("name"),
		ShipType: cast.ToInt(q.Get("type")),
		Page:     cast.ToInt(q.Get("page")),
	}

	key := fmt.Sprintf("vessels:%d:%s:%d:%d", filter.MMSI, filter.Name, filter.ShipType, filter.Page)
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.client.ListVessels(r.Context(), filter)
	})
}

func (ac *ApiController) GetVesselRoute(w http.ResponseWriter, r *http.Request) {
	mmsi := cast.ToInt64(r.URL.Query().Get("mmsi"))
	if mmsi == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.serveFromCacheOrCompute(w, fmt.Sprintf("route:%d", mmsi), func() (any, error) {
		return ac.client.VesselRoute(r.Context(), mmsi)
	})
}

// --- occupancy & alerts ---

func (ac *ApiController) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.tracker.Counts())
}

func (ac *ApiController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	ac.writeJSON(w, http.StatusOK, ac.alertLog.Recent(limit))
}

// --- draft workflow ---

type draftStartRequest struct {
	EditZoneID int64 `json:"edit_zone_id"`
}

type draftCompleteRequest struct {
	Vertices models.Polygon `json:"vertices"`
}

type draftConfirmRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type draftStatusResponse struct {
	State    string         `json:"state"`
	Vertices models.Polygon `json:"vertices,omitempty"`
}

func (ac *ApiController) draftStatus() draftStatusResponse {
	return draftStatusResponse{
		State:    ac.draft.State().String(),
		Vertices: ac.draft.Vertices(),
	}
}

func (ac *ApiController) GetDraft(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.draftStatus())
}

func (ac *ApiController) StartDraft(w http.ResponseWriter, r *http.Request) {
	var req draftStartRequest
	if !ac.decodeBody(w, r, &req) {
		return
	}

	if err := ac.draft.StartDrawing(req.EditZoneID); err != nil {
		ac.writeError(w, err)
		return
	}
	ac.writeJSON(w, http.StatusOK, ac.draftStatus())
}

func (ac *ApiController) CompleteDraft(w http.ResponseWriter, r *http.Request) {
	var req draftCompleteRequest
	if !ac.decodeBody(w, r, &req) {
		return
	}

	if err := ac.draft.CompleteDrawing(req.Vertices); err != nil {
		ac.writeError(w, err)
		return
	}
	ac.writeJSON(w, http.StatusOK, ac.draftStatus())
}

func (ac *ApiController) ConfirmDraft(w http.ResponseWriter, r *http.Request) {
	var req draftConfirmRequest
	if !ac.decodeBody(w, r, &req) {
		return
	}

	zone, err := ac.draft.ConfirmDraft(r.Context(), req.Name, req.Note)
	if err != nil {
		ac.writeError(w, err)
		return
	}
	ac.writeJSON(w, http.StatusCreated, zone)
}

func (ac *ApiController) CancelDraft(w http.ResponseWriter, r *http.Request) {
	ac.draft.CancelDraft()
	ac.writeJSON(w, http.StatusOK, ac.draftStatus())
}
