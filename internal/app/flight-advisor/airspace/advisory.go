package airspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrDecode is wrapped by all errors mapping upstream payloads to the domain
// model.
var ErrDecode = errors.New("could not decode payload")

func decodeErr(err error) error {
	return fmt.Errorf("%w: %s", ErrDecode, err.Error())
}

func decodeErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}

type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

var colorRanks = map[Color]int{
	ColorGreen:  0,
	ColorYellow: 1,
	ColorOrange: 2,
	ColorRed:    3,
}

// Rank returns the severity of the color, red highest. Unknown colors rank
// below green so they never win a max reduction.
func (c Color) Rank() int {
	if r, ok := colorRanks[c]; ok {
		return r
	}
	return -1
}

type AirspaceType string

const (
	AirspaceTypeAirport            AirspaceType = "airport"
	AirspaceTypeHeliport           AirspaceType = "heliport"
	AirspaceTypeControlledAirspace AirspaceType = "controlled_airspace"
	AirspaceTypeCity               AirspaceType = "city"
	AirspaceTypeCustom             AirspaceType = "custom"
	AirspaceTypeEmergency          AirspaceType = "emergency"
	AirspaceTypeFire               AirspaceType = "fire"
	AirspaceTypePark               AirspaceType = "park"
	AirspaceTypePowerPlant         AirspaceType = "power_plant"
	AirspaceTypeSchool             AirspaceType = "school"
	AirspaceTypeSpecialUse         AirspaceType = "special_use_airspace"
	AirspaceTypeTFR                AirspaceType = "tfr"
	AirspaceTypeUniversity         AirspaceType = "university"
	AirspaceTypeWildfire           AirspaceType = "wildfire"
)

// Advisory is a single airspace feature intersecting a flight area.
type Advisory struct {
	ID             string        `json:"id"`
	Type           AirspaceType  `json:"type"`
	Color          Color         `json:"color"`
	Name           string        `json:"name"`
	Coordinate     Coordinate2D  `json:"-"`
	City           string        `json:"city,omitempty"`
	State          string        `json:"state,omitempty"`
	Country        string        `json:"country,omitempty"`
	RuleID         string        `json:"rule_id,omitempty"`
	RulesetID      string        `json:"ruleset_id,omitempty"`
	OrganizationID string        `json:"organization_id,omitempty"`
	Requirements   *Requirements `json:"requirements,omitempty"`
	LastUpdated    time.Time     `json:"-"`
	Properties     Properties    `json:"-"`
}

// Requirements describes what an advisory demands of the pilot before flying.
type Requirements struct {
	Notice           *Notice           `json:"notice,omitempty"`
	PermitsAvailable []AvailablePermit `json:"permits_available,omitempty"`
}

type Notice struct {
	Digital     bool   `json:"digital"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Properties is the closed per-type variant carried by an advisory. An
// advisory whose properties fail to decode degrades to nil Properties rather
// than failing the whole batch.
type Properties interface {
	AirspaceType() AirspaceType
}

type AirportProperties struct {
	Identifier         string  `json:"identifier,omitempty"`
	PhoneNumber        string  `json:"phone,omitempty"`
	Tower              bool    `json:"tower"`
	Use                string  `json:"use,omitempty"`
	LongestRunway      float64 `json:"longest_runway,omitempty"`
	InstrumentApproach bool    `json:"instrument_approach_procedure"`
}

func (p AirportProperties) AirspaceType() AirspaceType { return AirspaceTypeAirport }

type HeliportProperties struct {
	Identifier  string `json:"identifier,omitempty"`
	PhoneNumber string `json:"phone,omitempty"`
	Use         string `json:"use,omitempty"`
}

func (p HeliportProperties) AirspaceType() AirspaceType { return AirspaceTypeHeliport }

type ControlledAirspaceProperties struct {
	Class                 string `json:"type,omitempty"`
	IsLaancProvider       bool   `json:"laanc"`
	SupportsAuthorization bool   `json:"authorization"`
}

func (p ControlledAirspaceProperties) AirspaceType() AirspaceType {
	return AirspaceTypeControlledAirspace
}

type ParkProperties struct {
	Kind string `json:"type,omitempty"`
}

func (p ParkProperties) AirspaceType() AirspaceType { return AirspaceTypePark }

type PowerPlantProperties struct {
	Technology    string `json:"tech,omitempty"`
	GeneratorType string `json:"generator_type,omitempty"`
	Output        int64  `json:"output,omitempty"`
}

func (p PowerPlantProperties) AirspaceType() AirspaceType { return AirspaceTypePowerPlant }

type SchoolProperties struct {
	NumberOfStudents int64 `json:"students,omitempty"`
}

func (p SchoolProperties) AirspaceType() AirspaceType { return AirspaceTypeSchool }

type SpecialUseProperties struct {
	Description string `json:"description,omitempty"`
}

func (p SpecialUseProperties) AirspaceType() AirspaceType { return AirspaceTypeSpecialUse }

type TFRProperties struct {
	URL       string     `json:"url,omitempty"`
	Body      string     `json:"body,omitempty"`
	StartTime *time.Time `json:"-"`
	EndTime   *time.Time `json:"-"`
}

func (p TFRProperties) AirspaceType() AirspaceType { return AirspaceTypeTFR }

type WildfireProperties struct {
	Effective string `json:"date_effective,omitempty"`
	Size      int64  `json:"size,omitempty"`
}

func (p WildfireProperties) AirspaceType() AirspaceType { return AirspaceTypeWildfire }

type EmergencyProperties struct {
	Effective string `json:"effective,omitempty"`
	Agency    string `json:"agency_id,omitempty"`
}

func (p EmergencyProperties) AirspaceType() AirspaceType { return AirspaceTypeEmergency }

// timestamp layouts accepted from the provider, offset with and without colon
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, decodeErr(err)
}

type advisoryRecord struct {
	ID             string          `json:"id"`
	Type           AirspaceType    `json:"type"`
	Color          Color           `json:"color"`
	Name           string          `json:"name"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Country        string          `json:"country"`
	RuleID         string          `json:"rule_id"`
	RulesetID      string          `json:"ruleset_id"`
	OrganizationID string          `json:"organization_id"`
	Requirements   *Requirements   `json:"requirements"`
	LastUpdated    string          `json:"last_updated"`
	Properties     json.RawMessage `json:"properties"`
}

// UnmarshalAdvisory decodes a single advisory record. Missing id or type is a
// decode error; a failure in the type specific properties is not, the
// advisory is kept with nil Properties instead.
func UnmarshalAdvisory(b []byte) (Advisory, error) {
	rec := advisoryRecord{}

	err := json.Unmarshal(b, &rec)
	if err != nil {
		return Advisory{}, decodeErr(err)
	}
	if rec.ID == "" {
		return Advisory{}, decodeErrf("advisory record contains no id")
	}
	if rec.Type == "" {
		return Advisory{}, decodeErrf("advisory record contains no type")
	}

	a := Advisory{
		ID:             rec.ID,
		Type:           rec.Type,
		Color:          rec.Color,
		Name:           rec.Name,
		Coordinate:     Coordinate2D{Latitude: rec.Latitude, Longitude: rec.Longitude},
		City:           rec.City,
		State:          rec.State,
		Country:        rec.Country,
		RuleID:         rec.RuleID,
		RulesetID:      rec.RulesetID,
		OrganizationID: rec.OrganizationID,
		Requirements:   rec.Requirements,
	}

	if rec.LastUpdated != "" {
		if ts, err := parseTimestamp(rec.LastUpdated); err == nil {
			a.LastUpdated = ts
		}
	}

	if len(rec.Properties) > 0 {
		// per advisory degradation, a broken properties object is dropped
		if p, err := convToProperties(rec.Type, rec.Properties); err == nil {
			a.Properties = p
		}
	}

	return a, nil
}

// UnmarshalAdvisories decodes a batch of advisory records. A record failing
// to decode at the record level fails the batch, that is an envelope error
// and not a per field degradation.
func UnmarshalAdvisories(b []byte) ([]Advisory, error) {
	raws := []json.RawMessage{}

	err := json.Unmarshal(b, &raws)
	if err != nil {
		return nil, decodeErr(err)
	}

	advisories := make([]Advisory, 0, len(raws))
	for _, raw := range raws {
		a, err := UnmarshalAdvisory(raw)
		if err != nil {
			return nil, err
		}
		advisories = append(advisories, a)
	}

	return advisories, nil
}

func convToProperties(t AirspaceType, b json.RawMessage) (Properties, error) {
	switch t {
	case AirspaceTypeAirport:
		return unmarshal[AirportProperties](b)
	case AirspaceTypeHeliport:
		return unmarshal[HeliportProperties](b)
	case AirspaceTypeControlledAirspace:
		return unmarshal[ControlledAirspaceProperties](b)
	case AirspaceTypePark:
		return unmarshal[ParkProperties](b)
	case AirspaceTypePowerPlant:
		return unmarshal[PowerPlantProperties](b)
	case AirspaceTypeSchool:
		return unmarshal[SchoolProperties](b)
	case AirspaceTypeSpecialUse:
		return unmarshal[SpecialUseProperties](b)
	case AirspaceTypeTFR:
		return unmarshalTFR(b)
	case AirspaceTypeWildfire:
		return unmarshal[WildfireProperties](b)
	case AirspaceTypeEmergency:
		return unmarshal[EmergencyProperties](b)
	default:
		return nil, nil
	}
}

func unmarshal[T Properties](b []byte) (Properties, error) {
	var p T
	err := json.Unmarshal(b, &p)
	if err != nil {
		return nil, decodeErr(err)
	}
	return p, nil
}

func unmarshalTFR(b []byte) (Properties, error) {
	rec := struct {
		URL       string `json:"url"`
		Body      string `json:"body"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}{}

	err := json.Unmarshal(b, &rec)
	if err != nil {
		return nil, decodeErr(err)
	}

	p := TFRProperties{URL: rec.URL, Body: rec.Body}

	if rec.StartTime != "" {
		ts, err := parseTimestamp(rec.StartTime)
		if err != nil {
			return nil, err
		}
		p.StartTime = &ts
	}
	if rec.EndTime != "" {
		ts, err := parseTimestamp(rec.EndTime)
		if err != nil {
			return nil, err
		}
		p.EndTime = &ts
	}

	return p, nil
}
