package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/matryer/is"
)

func TestFetchAdvisories(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	var requestedURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedURL = r.URL.String()
		w.Write([]byte(`{"data":{"results":[{"id":"adv1","type":"airport","color":"orange"},{"id":"adv2","type":"park","color":"yellow"}]}}`))
	}))
	defer server.Close()

	c := New(server.URL, "")

	point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: 62.39, Longitude: 17.31}}

	advisories, err := c.FetchAdvisories(ctx, point, 100, []string{"r1", "r2"}, app.FetchOptions{})
	is.NoErr(err)

	is.Equal(len(advisories), 2)
	is.Equal(advisories[0].ID, "adv1")
	is.Equal(advisories[0].Color, airspace.ColorOrange)

	is.True(strings.Contains(requestedURL, "/v1/advisories"))
	is.True(strings.Contains(requestedURL, "rulesets=r1%2Cr2"))
	is.True(strings.Contains(requestedURL, "geometry=POINT"))
}

func TestFetchAdvisoriesWithWeatherAndStart(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"data":{"results":[]}}`))
	}))
	defer server.Close()

	c := New(server.URL, "")

	point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: 62.39, Longitude: 17.31}}
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	_, err := c.FetchAdvisories(ctx, point, 100, nil, app.FetchOptions{Weather: true, Start: &start})
	is.NoErr(err)

	is.Equal(query.Get("weather"), "true")
	is.Equal(query.Get("datetime"), "2026-09-01T10:00:00Z")
}

func TestFetchAdvisoriesRejectsBrokenRecords(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"results":[{"type":"airport","color":"orange"}]}}`))
	}))
	defer server.Close()

	c := New(server.URL, "")

	point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: 62.39, Longitude: 17.31}}

	_, err := c.FetchAdvisories(ctx, point, 100, nil, app.FetchOptions{})
	is.True(errors.Is(err, airspace.ErrDecode))
}

func TestFetchJurisdictionsPatchesRulesets(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"us","name":"United States","region":"federal","rulesets":[{"id":"r1","name":"Part 107","selection_type":"required"}]}]}`))
	}))
	defer server.Close()

	c := New(server.URL, "")

	point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: 62.39, Longitude: 17.31}}

	jurisdictions, err := c.FetchJurisdictions(ctx, point)
	is.NoErr(err)

	is.Equal(len(jurisdictions), 1)
	is.Equal(jurisdictions[0].Rulesets[0].JurisdictionID, "us")
	is.Equal(jurisdictions[0].Rulesets[0].JurisdictionRegion, airspace.RegionFederal)
}

func TestUnauthorizedResponses(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL, "bad-key")

	point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: 62.39, Longitude: 17.31}}

	_, err := c.FetchJurisdictions(ctx, point)
	is.True(errors.Is(err, app.ErrUnauthorized))
}

func TestSubmitPermitApplication(t *testing.T) {
	ctx, is := context.Background(), is.New(t)

	var apiKey string
	var posted []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("X-API-Key")
		posted, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"permit_id":"p1","status":"pending"}}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret")

	application := airspace.NewPermitApplication("p1").WithProperty("name", "Eva")

	permit, err := c.SubmitPermitApplication(ctx, application)
	is.NoErr(err)

	is.Equal(permit.PermitID, "p1")
	is.Equal(permit.Status, airspace.PilotPermitStatusPending)
	is.Equal(apiKey, "secret")

	body := struct {
		ID               string              `json:"id"`
		CustomProperties []map[string]string `json:"custom_properties"`
	}{}
	is.NoErr(json.Unmarshal(posted, &body))

	is.Equal(body.ID, "p1")
	is.Equal(body.CustomProperties, []map[string]string{{"id": "name", "value": "Eva"}})
}
