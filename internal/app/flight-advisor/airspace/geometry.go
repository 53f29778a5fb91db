package airspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

type Coordinate2D struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeometryType string

const (
	GeometryTypePoint   GeometryType = "point"
	GeometryTypePath    GeometryType = "path"
	GeometryTypePolygon GeometryType = "polygon"
)

// Geometry is the flight area a status check is scoped to. The geometry type
// determines which serialization form the upstream provider receives.
type Geometry interface {
	Type() GeometryType
	WKT() string
	Validate() error
}

type Point struct {
	Coordinate Coordinate2D
}

func (p Point) Type() GeometryType {
	return GeometryTypePoint
}

func (p Point) WKT() string {
	return fmt.Sprintf("POINT(%s)", wktCoordinate(p.Coordinate))
}

func (p Point) Validate() error {
	return validateCoordinate(p.Coordinate)
}

type Path struct {
	Coordinates []Coordinate2D
}

func (p Path) Type() GeometryType {
	return GeometryTypePath
}

func (p Path) WKT() string {
	return fmt.Sprintf("LINESTRING(%s)", wktCoordinates(p.Coordinates))
}

func (p Path) Validate() error {
	if len(p.Coordinates) < 2 {
		return fmt.Errorf("%w: a path needs at least two coordinates", ErrInvalidGeometry)
	}
	for _, c := range p.Coordinates {
		if err := validateCoordinate(c); err != nil {
			return err
		}
	}
	return nil
}

// Polygon rings are ordered sequences of coordinates where the first ring is
// the outer boundary. Every ring must be closed (first == last coordinate).
type Polygon struct {
	Rings [][]Coordinate2D
}

func (p Polygon) Type() GeometryType {
	return GeometryTypePolygon
}

func (p Polygon) WKT() string {
	rings := make([]string, 0, len(p.Rings))
	for _, ring := range p.Rings {
		rings = append(rings, fmt.Sprintf("(%s)", wktCoordinates(ring)))
	}
	return fmt.Sprintf("POLYGON(%s)", strings.Join(rings, ","))
}

func (p Polygon) Validate() error {
	if len(p.Rings) == 0 {
		return fmt.Errorf("%w: a polygon needs at least one ring", ErrInvalidGeometry)
	}
	for _, ring := range p.Rings {
		if len(ring) < 4 {
			return fmt.Errorf("%w: a polygon ring needs at least four coordinates", ErrInvalidGeometry)
		}
		first, last := ring[0], ring[len(ring)-1]
		if !coordinatesEqual(first, last, 1e-9) {
			return fmt.Errorf("%w: polygon ring is not closed", ErrInvalidGeometry)
		}
		for _, c := range ring {
			if err := validateCoordinate(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCoordinate(c Coordinate2D) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidGeometry, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidGeometry, c.Longitude)
	}
	return nil
}

func coordinatesEqual(a, b Coordinate2D, tolerance float64) bool {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	if dLat < 0 {
		dLat = -dLat
	}
	if dLon < 0 {
		dLon = -dLon
	}
	return dLat <= tolerance && dLon <= tolerance
}

func wktCoordinate(c Coordinate2D) string {
	return fmt.Sprintf("%s %s",
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
		strconv.FormatFloat(c.Latitude, 'f', -1, 64))
}

func wktCoordinates(coordinates []Coordinate2D) string {
	parts := make([]string, 0, len(coordinates))
	for _, c := range coordinates {
		parts = append(parts, wktCoordinate(c))
	}
	return strings.Join(parts, ",")
}

// ParseWKT parses the well known text forms produced by WKT. Only POINT,
// LINESTRING and POLYGON are recognized.
func ParseWKT(s string) (Geometry, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "POINT"):
		coords, err := parseWKTCoordinates(body(s, "POINT"))
		if err != nil {
			return nil, err
		}
		if len(coords) != 1 {
			return nil, fmt.Errorf("%w: a point holds exactly one coordinate", ErrInvalidGeometry)
		}
		return Point{Coordinate: coords[0]}, nil
	case strings.HasPrefix(s, "LINESTRING"):
		coords, err := parseWKTCoordinates(body(s, "LINESTRING"))
		if err != nil {
			return nil, err
		}
		p := Path{Coordinates: coords}
		return p, p.Validate()
	case strings.HasPrefix(s, "POLYGON"):
		rings, err := parseWKTRings(body(s, "POLYGON"))
		if err != nil {
			return nil, err
		}
		p := Polygon{Rings: rings}
		return p, p.Validate()
	default:
		return nil, fmt.Errorf("%w: unknown wkt form", ErrInvalidGeometry)
	}
}

func body(s, prefix string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	return s
}

func parseWKTCoordinates(s string) ([]Coordinate2D, error) {
	coords := make([]Coordinate2D, 0)

	for _, pair := range strings.Split(s, ",") {
		fields := strings.Fields(strings.TrimSpace(pair))
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: malformed coordinate pair %q", ErrInvalidGeometry, pair)
		}

		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
		}

		coords = append(coords, Coordinate2D{Latitude: lat, Longitude: lon})
	}

	return coords, nil
}

func parseWKTRings(s string) ([][]Coordinate2D, error) {
	rings := make([][]Coordinate2D, 0)

	for len(s) > 0 {
		s = strings.TrimSpace(strings.TrimPrefix(s, ","))
		if !strings.HasPrefix(s, "(") {
			return nil, fmt.Errorf("%w: malformed polygon ring", ErrInvalidGeometry)
		}
		end := strings.Index(s, ")")
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated polygon ring", ErrInvalidGeometry)
		}

		ring, err := parseWKTCoordinates(s[1:end])
		if err != nil {
			return nil, err
		}

		rings = append(rings, ring)
		s = strings.TrimSpace(s[end+1:])
	}

	return rings, nil
}
