package airspace

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestPointWKTRoundTrip(t *testing.T) {
	is := is.New(t)

	p := Point{Coordinate: Coordinate2D{Latitude: 62.390956, Longitude: 17.317279}}

	parsed, err := ParseWKT(p.WKT())
	is.NoErr(err)

	q, ok := parsed.(Point)
	is.True(ok)
	is.True(closeEnough(q.Coordinate, p.Coordinate))
}

func TestPathWKTRoundTrip(t *testing.T) {
	is := is.New(t)

	p := Path{Coordinates: []Coordinate2D{
		{Latitude: 62.39, Longitude: 17.31},
		{Latitude: 62.41, Longitude: 17.35},
		{Latitude: 62.42, Longitude: 17.4},
	}}

	is.Equal(p.WKT(), "LINESTRING(17.31 62.39,17.35 62.41,17.4 62.42)")

	parsed, err := ParseWKT(p.WKT())
	is.NoErr(err)

	q, ok := parsed.(Path)
	is.True(ok)
	is.Equal(len(q.Coordinates), 3)

	for i := range p.Coordinates {
		is.True(closeEnough(q.Coordinates[i], p.Coordinates[i]))
	}
}

func TestPolygonWKTRoundTrip(t *testing.T) {
	is := is.New(t)

	p := Polygon{Rings: [][]Coordinate2D{closedRing()}}

	parsed, err := ParseWKT(p.WKT())
	is.NoErr(err)

	q, ok := parsed.(Polygon)
	is.True(ok)
	is.Equal(len(q.Rings), 1)
	is.Equal(len(q.Rings[0]), 5)
}

func TestPathNeedsTwoCoordinates(t *testing.T) {
	is := is.New(t)

	p := Path{Coordinates: []Coordinate2D{{Latitude: 62, Longitude: 17}}}

	is.True(errors.Is(p.Validate(), ErrInvalidGeometry))
}

func TestPolygonRingMustBeClosed(t *testing.T) {
	is := is.New(t)

	ring := closedRing()
	ring[len(ring)-1] = Coordinate2D{Latitude: 63, Longitude: 18}

	p := Polygon{Rings: [][]Coordinate2D{ring}}

	is.True(errors.Is(p.Validate(), ErrInvalidGeometry))
}

func TestPolygonRingNeedsFourCoordinates(t *testing.T) {
	is := is.New(t)

	p := Polygon{Rings: [][]Coordinate2D{{
		{Latitude: 62, Longitude: 17},
		{Latitude: 62.1, Longitude: 17},
		{Latitude: 62, Longitude: 17},
	}}}

	is.True(errors.Is(p.Validate(), ErrInvalidGeometry))
}

func TestCoordinateRangeValidation(t *testing.T) {
	is := is.New(t)

	p := Point{Coordinate: Coordinate2D{Latitude: 91, Longitude: 17}}
	is.True(errors.Is(p.Validate(), ErrInvalidGeometry))

	p = Point{Coordinate: Coordinate2D{Latitude: 62, Longitude: -181}}
	is.True(errors.Is(p.Validate(), ErrInvalidGeometry))
}

func TestParseWKTRejectsUnknownForms(t *testing.T) {
	is := is.New(t)

	_, err := ParseWKT("CIRCLE(17 62, 500)")
	is.True(errors.Is(err, ErrInvalidGeometry))
}

func closedRing() []Coordinate2D {
	return []Coordinate2D{
		{Latitude: 62.39, Longitude: 17.31},
		{Latitude: 62.41, Longitude: 17.31},
		{Latitude: 62.41, Longitude: 17.35},
		{Latitude: 62.39, Longitude: 17.35},
		{Latitude: 62.39, Longitude: 17.31},
	}
}

func closeEnough(a, b Coordinate2D) bool {
	return math.Abs(a.Latitude-b.Latitude) <= 1e-6 && math.Abs(a.Longitude-b.Longitude) <= 1e-6
}
