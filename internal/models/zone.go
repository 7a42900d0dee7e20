package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Vertex is a single polygon corner in geographic degrees (WGS84 lon/lat).
type Vertex struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Polygon is an ordered open ring: the first and last vertex are implicitly
// connected. The closing vertex is added only on the wire (WKT).
type Polygon []Vertex

const MinPolygonVertices = 3

func (p Polygon) IsValid() bool {
	if len(p) < MinPolygonVertices {
		return false
	}
	seen := make(map[Vertex]struct{}, len(p))
	for _, v := range p {
		seen[v] = struct{}{}
	}
	return len(seen) >= MinPolygonVertices
}

// WKT encodes the ring as POLYGON((lon lat, ...)), repeating the first
// vertex at the end per the closed-ring convention the upstream expects.
func (p Polygon) WKT() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatCoord(v.Lon))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(v.Lat))
	}
	if p[0] != p[len(p)-1] {
		sb.WriteString(", ")
		sb.WriteString(formatCoord(p[0].Lon))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(p[0].Lat))
	}
	sb.WriteString("))")
	return sb.String()
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParsePolygonWKT decodes POLYGON((lon lat, lon lat, ...)). A duplicated
// closing vertex is dropped so the result is always an open ring.
func ParsePolygonWKT(wkt string) (Polygon, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "POLYGON((") || !strings.HasSuffix(s, "))") {
		return nil, fmt.Errorf("malformed polygon %q", wkt)
	}
	body := s[len("POLYGON((") : len(s)-2]
	pairs := strings.Split(body, ",")
	poly := make(Polygon, 0, len(pairs))
	for _, pair := range pairs {
		fields := strings.Fields(pair)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed coordinate pair %q in %q", pair, wkt)
		}
		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude %q: %w", fields[0], err)
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude %q: %w", fields[1], err)
		}
		poly = append(poly, Vertex{Lon: lon, Lat: lat})
	}
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	return poly, nil
}

// Zone is a user-owned polygonal geofence.
type Zone struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Polygon   Polygon   `json:"polygon,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName falls back to a synthesized name for zones saved without one.
func (z *Zone) DisplayName() string {
	if z.Name != "" {
		return z.Name
	}
	return fmt.Sprintf("zone #%d", z.ID)
}
