package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("flight-advisor/client")

type airspaceClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New returns an AirspaceProvider backed by the upstream airspace data
// service at baseURL. Requests are authenticated with apiKey when set.
func New(baseURL, apiKey string) app.AirspaceProvider {
	return &airspaceClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *airspaceClient) FetchAdvisories(ctx context.Context, g airspace.Geometry, buffer float64, rulesetIDs []string, opts app.FetchOptions) ([]airspace.Advisory, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-advisories")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	query := url.Values{}
	query.Set("geometry", g.WKT())
	query.Set("buffer", strconv.FormatFloat(buffer, 'f', -1, 64))
	query.Set("rulesets", strings.Join(rulesetIDs, ","))

	if opts.Weather {
		query.Set("weather", "true")
	}
	if opts.Start != nil {
		query.Set("datetime", opts.Start.UTC().Format(time.RFC3339))
	}

	b, err := c.get(ctx, "/v1/advisories", query)
	if err != nil {
		return nil, err
	}

	envelope := struct {
		Data struct {
			Results json.RawMessage `json:"results"`
		} `json:"data"`
	}{}

	if err = json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", airspace.ErrDecode, err.Error())
	}

	advisories, err := airspace.UnmarshalAdvisories(envelope.Data.Results)
	if err != nil {
		return nil, err
	}

	return advisories, nil
}

func (c *airspaceClient) FetchJurisdictions(ctx context.Context, g airspace.Geometry) ([]airspace.Jurisdiction, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-jurisdictions")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	query := url.Values{}
	query.Set("geometry", g.WKT())

	b, err := c.get(ctx, "/v1/jurisdictions", query)
	if err != nil {
		return nil, err
	}

	envelope := struct {
		Data []json.RawMessage `json:"data"`
	}{}

	if err = json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", airspace.ErrDecode, err.Error())
	}

	jurisdictions := make([]airspace.Jurisdiction, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		j, err := airspace.UnmarshalJurisdiction(raw)
		if err != nil {
			return nil, err
		}
		jurisdictions = append(jurisdictions, j)
	}

	return jurisdictions, nil
}

func (c *airspaceClient) SubmitPermitApplication(ctx context.Context, application airspace.PermitApplication) (airspace.PilotPermit, error) {
	var err error

	ctx, span := tracer.Start(ctx, "submit-permit-application")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	properties := make([]map[string]string, 0)
	for _, p := range application.Properties() {
		properties = append(properties, map[string]string{"id": p.ID, "value": p.Value})
	}

	body, err := json.Marshal(map[string]any{
		"id":                application.PermitID(),
		"custom_properties": properties,
	})
	if err != nil {
		return airspace.PilotPermit{}, err
	}

	b, err := c.post(ctx, "/v1/permits/apply", body)
	if err != nil {
		return airspace.PilotPermit{}, err
	}

	envelope := struct {
		Data airspace.PilotPermit `json:"data"`
	}{}

	if err = json.Unmarshal(b, &envelope); err != nil {
		return airspace.PilotPermit{}, fmt.Errorf("%w: %s", airspace.ErrDecode, err.Error())
	}

	permit := envelope.Data
	if permit.PermitID == "" {
		permit.PermitID = application.PermitID()
	}
	if permit.Status == "" {
		permit.Status = airspace.PilotPermitStatusPending
	}

	return permit, nil
}

func (c *airspaceClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, req)
}

func (c *airspaceClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req)
}

func (c *airspaceClient) do(ctx context.Context, req *http.Request) ([]byte, error) {
	log := logging.GetFromContext(ctx)

	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airspace service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, app.ErrUnauthorized
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Debug("airspace service returned unexpected status", "url", req.URL.Path, "status", resp.StatusCode)
		return nil, fmt.Errorf("airspace service returned status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	return b, nil
}
