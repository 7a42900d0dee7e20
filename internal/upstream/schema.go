package upstream

import (
	"fleetd/internal/models"
	"fmt"
	"time"
)

// One request/response struct per operation. The upstream speaks WKT for
// polygons, so zone geometry crosses the wire as a string and is decoded
// into models.Polygon at this boundary, never guessed from response shape.

type zoneSearchRequest struct {
	OwnerID   string `json:"user_id"`
	PageSize  int    `json:"page_size"`
	PageIndex int    `json:"page_index"`
}

type zoneRecord struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"user_id"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	Polygon   string    `json:"polygon"`
	UpdatedAt time.Time `json:"updated_at"`
}

type zoneSearchResponse struct {
	Zones []zoneRecord `json:"zones"`
}

type zoneSaveRequest struct {
	ID      int64  `json:"id,omitempty"`
	OwnerID string `json:"user_id"`
	Name    string `json:"name"`
	Note    string `json:"note"`
	Polygon string `json:"polygon"`
}

type zoneSaveResponse struct {
	Zone zoneRecord `json:"zone"`
}

type zoneDeleteRequest struct {
	ID      int64  `json:"id"`
	OwnerID string `json:"user_id"`
}

type zoneDeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type vesselsInPolygonRequest struct {
	Polygon string `json:"polygon"`
}

type vesselRecord struct {
	MMSI       int64     `json:"mmsi"`
	Name       string    `json:"vessel_name"`
	Lat        float64   `json:"latitude"`
	Lon        float64   `json:"longitude"`
	COG        float64   `json:"cog"`
	SOG        float64   `json:"sog"`
	ReportedAt time.Time `json:"reported_at"`
	ShipType   int       `json:"ship_type"`
	AtoN       bool      `json:"aton"`
}

type vesselListResponse struct {
	Vessels []vesselRecord `json:"vessels"`
}

type vesselSearchRequest struct {
	MMSI      int64  `json:"mmsi,omitempty"`
	Name      string `json:"vessel_name,omitempty"`
	ShipType  int    `json:"ship_type,omitempty"`
	PageSize  int    `json:"page_size"`
	PageIndex int    `json:"page_index"`
}

type routeSearchRequest struct {
	MMSI int64 `json:"mmsi"`
}

type trackPointRecord struct {
	Lat        float64   `json:"latitude"`
	Lon        float64   `json:"longitude"`
	SOG        float64   `json:"sog"`
	RecordedAt time.Time `json:"recorded_at"`
}

type routeSearchResponse struct {
	Points []trackPointRecord `json:"points"`
}

func (r zoneRecord) toModel() (models.Zone, error) {
	poly, err := models.ParsePolygonWKT(r.Polygon)
	if err != nil {
		return models.Zone{}, fmt.Errorf("zone %d: %w", r.ID, err)
	}
	return models.Zone{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Note:      r.Note,
		Polygon:   poly,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r vesselRecord) toModel() models.VesselSnapshot {
	return models.VesselSnapshot{
		MMSI:            r.MMSI,
		Name:            r.Name,
		Lat:             r.Lat,
		Lon:             r.Lon,
		CourseOverGrnd:  r.COG,
		SpeedOverGrnd:   r.SOG,
		ReportedAt:      r.ReportedAt,
		ShipType:        r.ShipType,
		AidToNavigation: r.AtoN,
	}
}
