package flightadvisor

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/airnav/flight-advisor/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

var ErrUnauthorized = errors.New("unauthorized")

//go:generate moq -rm -out app_mock.go . AdvisorApp
type AdvisorApp interface {
	CheckFlight(ctx context.Context, g airspace.Geometry, buffer float64, cfg airspace.RulesetConfiguration, tenants []string, opts FetchOptions) (airspace.AirspaceStatus, error)
	ResolveRulesets(ctx context.Context, g airspace.Geometry, cfg airspace.RulesetConfiguration) ([]airspace.Ruleset, error)
	Jurisdictions(ctx context.Context, params map[string][]string) (QueryResult, error)

	ApplyForPermit(ctx context.Context, application airspace.PermitApplication, tenant string) (airspace.PilotPermit, error)
	PilotPermits(ctx context.Context, params map[string][]string, tenants []string) (QueryResult, error)
	EvaluateDecision(firstQuestionID string, questions []airspace.DecisionQuestion, answerIDs []string) (DecisionOutcome, error)

	LoadConfig(ctx context.Context, r io.Reader) error
	Seed(ctx context.Context, r io.Reader) error
	RefreshWatchAreas(ctx context.Context) error

	DefaultConfiguration() airspace.RulesetConfiguration
	DefaultBuffer() float64
}

//go:generate moq -rm -out reader_mock.go . AdvisorReader
type AdvisorReader interface {
	QueryJurisdictions(ctx context.Context, conditions ...ConditionFunc) (QueryResult, error)
	QueryPilotPermits(ctx context.Context, conditions ...ConditionFunc) (QueryResult, error)
}

//go:generate moq -rm -out writer_mock.go . AdvisorWriter
type AdvisorWriter interface {
	SaveJurisdiction(ctx context.Context, j airspace.Jurisdiction) error
	SavePilotPermit(ctx context.Context, p airspace.PilotPermit, tenant string) error
}

// AirspaceProvider is the upstream airspace data service this app consumes.
// Advisories and jurisdictions arrive as already decoded domain objects,
// retry and backoff policies belong to the provider implementation.
//
//go:generate moq -rm -out provider_mock.go . AirspaceProvider
type AirspaceProvider interface {
	FetchAdvisories(ctx context.Context, g airspace.Geometry, buffer float64, rulesetIDs []string, opts FetchOptions) ([]airspace.Advisory, error)
	FetchJurisdictions(ctx context.Context, g airspace.Geometry) ([]airspace.Jurisdiction, error)
	SubmitPermitApplication(ctx context.Context, application airspace.PermitApplication) (airspace.PilotPermit, error)
}

type FetchOptions struct {
	Weather bool
	Start   *time.Time
}

// DecisionOutcome is where a permit decision walk ended up: a recommended
// permit, an informational message, or the next question to answer.
type DecisionOutcome struct {
	PermitID string                     `json:"permit_id,omitempty"`
	Message  string                     `json:"message,omitempty"`
	Question *airspace.DecisionQuestion `json:"question,omitempty"`
}

type app struct {
	reader   AdvisorReader
	writer   AdvisorWriter
	provider AirspaceProvider
	msgCtx   messaging.MsgContext
	cfg      *config
}

type config struct {
	DefaultBuffer             float64     `yaml:"defaultBuffer"`
	PreferredRulesets         []string    `yaml:"preferredRulesets"`
	EnableRecommendedRulesets bool        `yaml:"enableRecommendedRulesets"`
	WatchAreas                []watchArea `yaml:"watchAreas"`
}

type watchArea struct {
	ID        string  `yaml:"id"`
	Tenant    string  `yaml:"tenant"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Buffer    float64 `yaml:"buffer"`
}

func New(r AdvisorReader, w AdvisorWriter, p AirspaceProvider, msgCtx messaging.MsgContext) AdvisorApp {
	return &app{
		reader:   r,
		writer:   w,
		provider: p,
		msgCtx:   msgCtx,
		cfg:      &config{DefaultBuffer: 100},
	}
}

func (a *app) LoadConfig(ctx context.Context, r io.Reader) error {
	c := config{}
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return err
	}

	if c.DefaultBuffer <= 0 {
		c.DefaultBuffer = 100
	}

	a.cfg = &c

	return nil
}

// DefaultConfiguration is the ruleset selection used when a caller does not
// supply one: dynamic with the configured preferences, or automatic when no
// preferences are configured.
func (a *app) DefaultConfiguration() airspace.RulesetConfiguration {
	if len(a.cfg.PreferredRulesets) == 0 && !a.cfg.EnableRecommendedRulesets {
		return airspace.AutomaticConfiguration()
	}
	return airspace.DynamicConfiguration(a.cfg.PreferredRulesets, a.cfg.EnableRecommendedRulesets)
}

func (a *app) DefaultBuffer() float64 {
	return a.cfg.DefaultBuffer
}

func (a *app) CheckFlight(ctx context.Context, g airspace.Geometry, buffer float64, cfg airspace.RulesetConfiguration, tenants []string, opts FetchOptions) (airspace.AirspaceStatus, error) {
	log := logging.GetFromContext(ctx)

	if err := g.Validate(); err != nil {
		return airspace.AirspaceStatus{}, err
	}

	jurisdictions, err := a.provider.FetchJurisdictions(ctx, g)
	if err != nil {
		return airspace.AirspaceStatus{}, err
	}

	for _, j := range jurisdictions {
		if err := a.writer.SaveJurisdiction(ctx, j); err != nil {
			log.Debug("could not cache jurisdiction", "id", j.ID, "err", err.Error())
		}
	}

	active := airspace.ResolveActiveRulesets(jurisdictions, cfg)
	if len(active) == 0 {
		return airspace.Evaluate(nil, nil, time.Now()), nil
	}

	advisories, err := a.provider.FetchAdvisories(ctx, g, buffer, rulesetIDs(active), opts)
	if err != nil {
		return airspace.AirspaceStatus{}, err
	}

	held, err := a.heldPermits(ctx, tenants)
	if err != nil {
		return airspace.AirspaceStatus{}, err
	}

	return airspace.Evaluate(advisories, held, time.Now()), nil
}

func (a *app) ResolveRulesets(ctx context.Context, g airspace.Geometry, cfg airspace.RulesetConfiguration) ([]airspace.Ruleset, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	jurisdictions, err := a.provider.FetchJurisdictions(ctx, g)
	if err != nil {
		return nil, err
	}

	return airspace.ResolveActiveRulesets(jurisdictions, cfg), nil
}

func (a *app) Jurisdictions(ctx context.Context, params map[string][]string) (QueryResult, error) {
	return a.reader.QueryJurisdictions(ctx, WithParams(params)...)
}

func (a *app) ApplyForPermit(ctx context.Context, application airspace.PermitApplication, tenant string) (airspace.PilotPermit, error) {
	if tenant == "" {
		return airspace.PilotPermit{}, ErrUnauthorized
	}
	if application.PermitID() == "" {
		return airspace.PilotPermit{}, errors.New("permit id must be provided")
	}

	permit, err := a.provider.SubmitPermitApplication(ctx, application)
	if err != nil {
		return airspace.PilotPermit{}, err
	}

	err = a.writer.SavePilotPermit(ctx, permit, tenant)
	if err != nil {
		return airspace.PilotPermit{}, err
	}

	err = a.msgCtx.PublishOnTopic(ctx, &types.PermitApplied{
		PermitID:  permit.PermitID,
		Status:    string(permit.Status),
		Tenant:    tenant,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish permit application", "err", err.Error())
	}

	return permit, nil
}

func (a *app) PilotPermits(ctx context.Context, params map[string][]string, tenants []string) (QueryResult, error) {
	if len(tenants) == 0 {
		return QueryResult{}, ErrUnauthorized
	}

	conditions := append(WithParams(params), WithTenants(tenants))

	return a.reader.QueryPilotPermits(ctx, conditions...)
}

func (a *app) EvaluateDecision(firstQuestionID string, questions []airspace.DecisionQuestion, answerIDs []string) (DecisionOutcome, error) {
	flow, err := airspace.NewDecisionFlow(firstQuestionID, questions)
	if err != nil {
		return DecisionOutcome{}, err
	}

	for _, answerID := range answerIDs {
		if flow.Terminal() {
			break
		}
		if err := flow.Answer(answerID); err != nil {
			return DecisionOutcome{}, err
		}
	}

	if permitID, ok := flow.Resolved(); ok {
		return DecisionOutcome{PermitID: permitID}, nil
	}
	if msg, ok := flow.Message(); ok {
		return DecisionOutcome{Message: msg}, nil
	}

	q, _ := flow.Current()
	return DecisionOutcome{Question: &q}, nil
}

func (a *app) RefreshWatchAreas(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	var errs []error

	for _, area := range a.cfg.WatchAreas {
		point := airspace.Point{Coordinate: airspace.Coordinate2D{Latitude: area.Latitude, Longitude: area.Longitude}}

		buffer := area.Buffer
		if buffer <= 0 {
			buffer = a.cfg.DefaultBuffer
		}

		tenant := area.Tenant
		if tenant == "" {
			tenant = "default"
		}

		status, err := a.CheckFlight(ctx, point, buffer, a.DefaultConfiguration(), []string{tenant}, FetchOptions{})
		if err != nil {
			log.Error("could not refresh watch area", "id", area.ID, "err", err.Error())
			errs = append(errs, err)
			continue
		}

		err = a.msgCtx.PublishOnTopic(ctx, &types.AirspaceStatusChanged{
			Subject:         area.ID,
			Color:           string(status.Color),
			Advisories:      len(status.Advisories),
			RequiresPermits: status.RequiresPermits,
			Tenant:          tenant,
			Timestamp:       time.Now().UTC(),
		})
		if err != nil {
			log.Error("could not publish watch area status", "id", area.ID, "err", err.Error())
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (a *app) heldPermits(ctx context.Context, tenants []string) ([]airspace.PilotPermit, error) {
	if len(tenants) == 0 {
		return nil, nil
	}

	result, err := a.reader.QueryPilotPermits(ctx, WithTenants(tenants))
	if err != nil {
		return nil, err
	}

	permits := make([]airspace.PilotPermit, 0, len(result.Data))

	for _, b := range result.Data {
		p := airspace.PilotPermit{}
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", airspace.ErrDecode, err.Error())
		}
		permits = append(permits, p)
	}

	return permits, nil
}

// Seed loads jurisdiction records into the cache from a semicolon separated
// file, one jurisdiction per row with its rulesets as a json array where
// single quotes stand in for double quotes.
func (a *app) Seed(ctx context.Context, r io.Reader) error {
	f := csv.NewReader(r)
	f.Comma = ';'
	rowNum := 0

	rulesets := func(s string) []airspace.Ruleset {
		if s == "" {
			return nil
		}
		s = strings.ReplaceAll(s, "'", "\"")
		rs := []airspace.Ruleset{}
		if err := json.Unmarshal([]byte(s), &rs); err != nil {
			return nil
		}
		return rs
	}

	for {
		record, err := f.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if rowNum == 0 {
			rowNum++
			continue
		}

		// 0    1     2       3
		// id, name, region, rulesets

		b, err := json.Marshal(map[string]any{
			"id":       record[0],
			"name":     record[1],
			"region":   record[2],
			"rulesets": rulesets(record[3]),
		})
		if err != nil {
			return err
		}

		j, err := airspace.UnmarshalJurisdiction(b)
		if err != nil {
			return err
		}

		if err := a.writer.SaveJurisdiction(ctx, j); err != nil {
			return err
		}
	}

	return nil
}

func rulesetIDs(rulesets []airspace.Ruleset) []string {
	ids := make([]string, 0, len(rulesets))
	for _, r := range rulesets {
		if !slices.Contains(ids, r.ID) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
