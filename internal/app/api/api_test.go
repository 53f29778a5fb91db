package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/matryer/is"
)

const policy string = `
package flightadvisor.authz

default allow := false

allow := {"tenants": input.claims.tenants} if {
	count(input.claims.tenants) > 0
}
`

func TestStatusEndpoint(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		CheckFlightFunc: func(ctx context.Context, g airspace.Geometry, buffer float64, cfg airspace.RulesetConfiguration, tenants []string, opts app.FetchOptions) (airspace.AirspaceStatus, error) {
			return airspace.AirspaceStatus{Color: airspace.ColorYellow}, nil
		},
		DefaultBufferFunc: func() float64 {
			return 100
		},
	}

	server := testServer(t, advisor)
	defer server.Close()

	body := `{"geometry":"POINT (17.317279 62.390956)","buffer":250}`
	resp := post(t, server, "/api/v0/airspace/status", body)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(advisor.CheckFlightCalls()), 1)
	is.Equal(advisor.CheckFlightCalls()[0].Buffer, 250.0)
	is.Equal(advisor.CheckFlightCalls()[0].Tenants, []string{"default"})

	response := struct {
		Data airspace.AirspaceStatus `json:"data"`
	}{}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&response))
	is.Equal(response.Data.Color, airspace.ColorYellow)
}

func TestStatusEndpointForwardsWeatherAndStart(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		CheckFlightFunc: func(ctx context.Context, g airspace.Geometry, buffer float64, cfg airspace.RulesetConfiguration, tenants []string, opts app.FetchOptions) (airspace.AirspaceStatus, error) {
			return airspace.AirspaceStatus{Color: airspace.ColorGreen}, nil
		},
		DefaultBufferFunc: func() float64 { return 100 },
	}

	server := testServer(t, advisor)
	defer server.Close()

	body := `{"geometry":"POINT (17.317279 62.390956)","weather":true,"start":"2026-09-01T10:00:00Z"}`
	resp := post(t, server, "/api/v0/airspace/status", body)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(advisor.CheckFlightCalls()), 1)

	opts := advisor.CheckFlightCalls()[0].Opts
	is.True(opts.Weather)
	is.True(opts.Start != nil)
	is.Equal(opts.Start.Format(time.RFC3339), "2026-09-01T10:00:00Z")
}

func TestStatusEndpointServesGeoJSON(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		CheckFlightFunc: func(ctx context.Context, g airspace.Geometry, buffer float64, cfg airspace.RulesetConfiguration, tenants []string, opts app.FetchOptions) (airspace.AirspaceStatus, error) {
			return airspace.AirspaceStatus{
				Color: airspace.ColorYellow,
				Advisories: []airspace.Advisory{
					{
						ID:         "adv1",
						Type:       airspace.AirspaceTypePark,
						Color:      airspace.ColorYellow,
						Name:       "City Park",
						Coordinate: airspace.Coordinate2D{Latitude: 62.390956, Longitude: 17.317279},
					},
				},
			}, nil
		},
		DefaultBufferFunc: func() float64 { return 100 },
	}

	server := testServer(t, advisor)
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v0/airspace/status", strings.NewReader(`{"geometry":"POINT (17.317279 62.390956)"}`))
	is.NoErr(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json")
	req.Header.Set("Authorization", "Bearer "+token(`{"tenants":["default"]}`))

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/geo+json")

	fc := FeatureCollection{}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&fc))
	is.Equal(fc.Type, "FeatureCollection")
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].ID, "adv1")
	is.Equal(fc.Features[0].Geometry.Type, "Point")
	is.Equal(fc.Features[0].Geometry.Coordinates, []float64{17.317279, 62.390956})
}

func TestStatusEndpointRejectsBrokenGeometry(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		DefaultBufferFunc: func() float64 { return 100 },
	}

	server := testServer(t, advisor)
	defer server.Close()

	resp := post(t, server, "/api/v0/airspace/status", `{"geometry":"CIRCLE (1 2)"}`)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(advisor.CheckFlightCalls()), 0)
}

func TestDecisionEndpoint(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		EvaluateDecisionFunc: func(firstQuestionID string, questions []airspace.DecisionQuestion, answerIDs []string) (app.DecisionOutcome, error) {
			return app.DecisionOutcome{PermitID: "p1"}, nil
		},
	}

	server := testServer(t, advisor)
	defer server.Close()

	body := `{"first_question_id":"q1","questions":[{"id":"q1","answers":[{"id":"a1","permit_id":"p1"}]}],"answers":["a1"]}`
	resp := post(t, server, "/api/v0/permits/decision", body)

	is.Equal(resp.StatusCode, http.StatusOK)

	response := struct {
		Data app.DecisionOutcome `json:"data"`
	}{}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&response))
	is.Equal(response.Data.PermitID, "p1")
}

func TestDecisionEndpointRejectsDanglingFlows(t *testing.T) {
	is := is.New(t)

	advisor := &app.AdvisorAppMock{
		EvaluateDecisionFunc: func(firstQuestionID string, questions []airspace.DecisionQuestion, answerIDs []string) (app.DecisionOutcome, error) {
			return app.DecisionOutcome{}, airspace.ErrDanglingQuestion
		},
	}

	server := testServer(t, advisor)
	defer server.Close()

	resp := post(t, server, "/api/v0/permits/decision", `{"first_question_id":"q1"}`)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	is := is.New(t)

	server := testServer(t, &app.AdvisorAppMock{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/v0/airspace/status", "application/json", strings.NewReader(`{}`))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)

	server := testServer(t, &app.AdvisorAppMock{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
}

func testServer(t *testing.T, advisor app.AdvisorApp) *httptest.Server {
	t.Helper()
	is := is.New(t)

	router, err := Register(context.Background(), advisor, strings.NewReader(policy))
	is.NoErr(err)

	return httptest.NewServer(router)
}

func post(t *testing.T, server *httptest.Server, path, body string) *http.Response {
	t.Helper()
	is := is.New(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewBufferString(body))
	is.NoErr(err)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(`{"tenants":["default"]}`))

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func token(claims string) string {
	segment := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	return segment(`{"alg":"none"}`) + "." + segment(claims) + ".x"
}
