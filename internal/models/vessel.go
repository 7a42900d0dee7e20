package models

import "time"

// VesselSnapshot is one vessel's most recent report. Snapshots are ephemeral:
// every poll replaces them wholesale, nothing is merged incrementally.
type VesselSnapshot struct {
	MMSI            int64     `json:"mmsi"`
	Name            string    `json:"name"`
	Lat             float64   `json:"lat"`
	Lon             float64   `json:"lon"`
	CourseOverGrnd  float64   `json:"cog"`
	SpeedOverGrnd   float64   `json:"sog"`
	ReportedAt      time.Time `json:"reported_at"`
	ShipType        int       `json:"ship_type,omitempty"`
	AidToNavigation bool      `json:"aton,omitempty"`
}

// HasFix reports whether the snapshot carries a usable position.
// Zero lat and lon together mean "no fix" in the upstream feed.
func (v *VesselSnapshot) HasFix() bool {
	return v.Lat != 0 || v.Lon != 0
}

// TrackPoint is one sample of a vessel's historical route.
type TrackPoint struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	SpeedGrnd  float64   `json:"sog"`
	RecordedAt time.Time `json:"recorded_at"`
}
