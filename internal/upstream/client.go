package upstream

import (
	"bytes"
	"context"
	"fleetd/internal/models"
	"fleetd/internal/structures"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const DefaultPageSize = 100

// StatusError is an upstream response outside the 2xx range.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: unexpected status %d", e.Op, e.Status)
}

// VesselFilter narrows a vessel search; zero fields are omitted.
type VesselFilter struct {
	MMSI     int64
	Name     string
	ShipType int
	Page     int
}

type ClientInterface interface {
	ListZones(ctx context.Context, ownerID string, page int) ([]models.Zone, error)
	VesselsInPolygon(ctx context.Context, polygon models.Polygon) ([]models.VesselSnapshot, error)
	SaveZone(ctx context.Context, zone *models.Zone) (*models.Zone, error)
	DeleteZone(ctx context.Context, zoneID int64, ownerID string) error
	ListVessels(ctx context.Context, filter VesselFilter) ([]models.VesselSnapshot, error)
	VesselRoute(ctx context.Context, mmsi int64) ([]models.TrackPoint, error)
}

type Client struct {
	baseURL  string
	token    string
	pageSize int
	http     *http.Client
}

func NewClient(conf *structures.Config) ClientInterface {
	pageSize := conf.Upstream.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		baseURL:  conf.Upstream.BaseURL,
		token:    conf.Upstream.Token,
		pageSize: pageSize,
		http: &http.Client{
			Timeout: conf.Upstream.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (c *Client) post(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("upstream %s: encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("upstream %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s: %w", op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream %s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) ListZones(ctx context.Context, ownerID string, page int) ([]models.Zone, error) {
	req := zoneSearchRequest{OwnerID: ownerID, PageSize: c.pageSize, PageIndex: page}
	var resp zoneSearchResponse
	if err := c.post(ctx, "list_zones", "/zones/search", req, &resp); err != nil {
		return nil, err
	}

	zones := make([]models.Zone, 0, len(resp.Zones))
	for _, rec := range resp.Zones {
		zone, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("list_zones: %w", err)
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func (c *Client) VesselsInPolygon(ctx context.Context, polygon models.Polygon) ([]models.VesselSnapshot, error) {
	req := vesselsInPolygonRequest{Polygon: polygon.WKT()}
	var resp vesselListResponse
	if err := c.post(ctx, "vessels_in_polygon", "/vessels/in-polygon", req, &resp); err != nil {
		return nil, err
	}

	vessels := make([]models.VesselSnapshot, 0, len(resp.Vessels))
	for _, rec := range resp.Vessels {
		vessels = append(vessels, rec.toModel())
	}
	return vessels, nil
}

func (c *Client) SaveZone(ctx context.Context, zone *models.Zone) (*models.Zone, error) {
	req := zoneSaveRequest{
		ID:      zone.ID,
		OwnerID: zone.OwnerID,
		Name:    zone.Name,
		Note:    zone.Note,
		Polygon: zone.Polygon.WKT(),
	}
	var resp zoneSaveResponse
	if err := c.post(ctx, "save_zone", "/zones/save", req, &resp); err != nil {
		return nil, err
	}

	saved, err := resp.Zone.toModel()
	if err != nil {
		return nil, fmt.Errorf("save_zone: %w", err)
	}
	return &saved, nil
}

func (c *Client) DeleteZone(ctx context.Context, zoneID int64, ownerID string) error {
	req := zoneDeleteRequest{ID: zoneID, OwnerID: ownerID}
	var resp zoneDeleteResponse
	if err := c.post(ctx, "delete_zone", "/zones/delete", req, &resp); err != nil {
		return err
	}
	if !resp.Deleted {
		return fmt.Errorf("upstream delete_zone: zone %d not deleted", zoneID)
	}
	return nil
}

func (c *Client) ListVessels(ctx context.Context, filter VesselFilter) ([]models.VesselSnapshot, error) {
	req := vesselSearchRequest{
		MMSI:      filter.MMSI,
		Name:      filter.Name,
		ShipType:  filter.ShipType,
		PageSize:  c.pageSize,
		PageIndex: filter.Page,
	}
	var resp vesselListResponse
	if err := c.post(ctx, "list_vessels", "/vessels/search", req, &resp); err != nil {
		return nil, err
	}

	vessels := make([]models.VesselSnapshot, 0, len(resp.Vessels))
	for _, rec := range resp.Vessels {
		vessels = append(vessels, rec.toModel())
	}
	return vessels, nil
}

func (c *Client) VesselRoute(ctx context.Context, mmsi int64) ([]models.TrackPoint, error) {
	req := routeSearchRequest{MMSI: mmsi}
	var resp routeSearchResponse
	if err := c.post(ctx, "vessel_route", "/vessels/route", req, &resp); err != nil {
		return nil, err
	}

	points := make([]models.TrackPoint, 0, len(resp.Points))
	for _, rec := range resp.Points {
		points = append(points, models.TrackPoint{
			Lat:        rec.Lat,
			Lon:        rec.Lon,
			SpeedGrnd:  rec.SOG,
			RecordedAt: rec.RecordedAt,
		})
	}
	return points, nil
}
