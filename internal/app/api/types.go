package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Geometry   Geometry `json:"geometry"`
	Properties map[string]any
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func newFeatureCollection(status airspace.AirspaceStatus) FeatureCollection {
	fc := FeatureCollection{
		Type: "FeatureCollection",
	}
	for _, a := range status.Advisories {
		fc.Features = append(fc.Features, Feature{
			ID:   a.ID,
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{a.Coordinate.Longitude, a.Coordinate.Latitude},
			},
			Properties: map[string]any{
				"name":  a.Name,
				"type":  string(a.Type),
				"color": string(a.Color),
			},
		})
	}
	return fc
}

type statusRequest struct {
	Geometry string           `json:"geometry"`
	Buffer   float64          `json:"buffer,omitempty"`
	Rulesets *rulesetSelector `json:"rulesets,omitempty"`
	Weather  bool             `json:"weather,omitempty"`
	Start    *time.Time       `json:"start,omitempty"`
}

type resolveRequest struct {
	Geometry string           `json:"geometry"`
	Rulesets *rulesetSelector `json:"rulesets,omitempty"`
}

// rulesetSelector is the wire form of a ruleset configuration. Mode is one of
// automatic, dynamic or manual; the other fields only apply to their mode.
type rulesetSelector struct {
	Mode              string             `json:"mode"`
	Preferred         []string           `json:"preferred,omitempty"`
	EnableRecommended bool               `json:"enable_recommended,omitempty"`
	Manual            []airspace.Ruleset `json:"manual,omitempty"`
}

func (s *rulesetSelector) toConfiguration() airspace.RulesetConfiguration {
	if s == nil {
		return airspace.AutomaticConfiguration()
	}

	switch s.Mode {
	case "dynamic":
		return airspace.DynamicConfiguration(s.Preferred, s.EnableRecommended)
	case "manual":
		return airspace.ManualConfiguration(s.Manual)
	default:
		return airspace.AutomaticConfiguration()
	}
}

type permitRequest struct {
	PermitID         string           `json:"permit_id"`
	CustomProperties []customProperty `json:"custom_properties,omitempty"`
}

type customProperty struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (p permitRequest) toApplication() airspace.PermitApplication {
	application := airspace.NewPermitApplication(p.PermitID)
	for _, prop := range p.CustomProperties {
		application = application.WithProperty(prop.ID, prop.Value)
	}
	return application
}

type decisionRequest struct {
	FirstQuestionID string                      `json:"first_question_id"`
	Questions       []airspace.DecisionQuestion `json:"questions"`
	Answers         []string                    `json:"answers"`
}

/* - - - - - - - - - - */

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        *uint64 `json:"count,omitempty"`
}

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

type ApiResponse struct {
	Meta  *meta  `json:"meta,omitempty"`
	Data  any    `json:"data"`
	Links *links `json:"links,omitempty"`
}

func NewApiResponse(r *http.Request, data any, count, total, offset, limit uint64) ApiResponse {
	meta := &meta{
		TotalRecords: total,
	}

	if offset > 0 {
		meta.Offset = &offset
	}

	if count != total {
		meta.Limit = &limit
		meta.Count = &count
	}

	links := createLinks(r.URL, meta)

	return ApiResponse{
		Meta:  meta,
		Data:  data,
		Links: links,
	}
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func createLinks(u *url.URL, m *meta) *links {
	if m == nil || m.TotalRecords == 0 || m.Count == nil || (*m.Count == m.TotalRecords) {
		return nil
	}

	query := u.Query()

	newUrl := func(offset int64) *string {
		query.Set("offset", strconv.Itoa(int(offset)))
		u.RawQuery = query.Encode()
		u_ := u.String()
		return &u_
	}

	var offset int64 = 0
	if m.Offset != nil {
		offset = int64(*m.Offset)
	}

	var limit int64 = 10
	if m.Limit != nil {
		limit = int64(*m.Limit)
	}

	first := int64(0)
	last := (int64(m.TotalRecords-1) / limit) * limit
	next := offset + limit
	prev := offset - limit

	links := &links{
		Self:  newUrl(offset),
		First: newUrl(first),
		Last:  newUrl(last),
	}

	if next < int64(m.TotalRecords) {
		links.Next = newUrl(next)
	}

	if prev >= 0 {
		links.Prev = newUrl(prev)
	}

	return links
}
