package airspace

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestUnmarshalAdvisory(t *testing.T) {
	is := is.New(t)

	a, err := UnmarshalAdvisory([]byte(advisoryJSON))
	is.NoErr(err)

	is.Equal(a.ID, "adv-1")
	is.Equal(a.Type, AirspaceTypeAirport)
	is.Equal(a.Color, ColorOrange)
	is.Equal(a.RuleID, "rule-1")
	is.Equal(a.RulesetID, "r1")
	is.Equal(a.OrganizationID, "org1")
	is.True(closeEnough(a.Coordinate, Coordinate2D{Latitude: 62.390956, Longitude: 17.317279}))
	is.Equal(a.LastUpdated.UTC().Format("2006-01-02 15:04:05.000"), "2026-08-30 12:34:56.789")

	is.True(a.Requirements != nil)
	is.True(a.Requirements.Notice.Digital)
	is.Equal(len(a.Requirements.PermitsAvailable), 1)
	is.Equal(a.Requirements.PermitsAvailable[0].ID, "p1")

	props, ok := a.Properties.(AirportProperties)
	is.True(ok)
	is.Equal(props.Identifier, "ESNN")
	is.True(props.Tower)
}

func TestUnmarshalAdvisoryDegradesBrokenProperties(t *testing.T) {
	is := is.New(t)

	a, err := UnmarshalAdvisory([]byte(`{
		"id": "adv-2",
		"type": "airport",
		"color": "yellow",
		"properties": {"tower": "not-a-bool"}
	}`))

	is.NoErr(err)
	is.Equal(a.ID, "adv-2")
	is.Equal(a.Properties, nil)
}

func TestUnmarshalAdvisoryMissingIDFails(t *testing.T) {
	is := is.New(t)

	_, err := UnmarshalAdvisory([]byte(`{"type": "airport", "color": "yellow"}`))
	is.True(errors.Is(err, ErrDecode))
}

func TestUnmarshalAdvisoriesEnvelopeFailureIsFatal(t *testing.T) {
	is := is.New(t)

	_, err := UnmarshalAdvisories([]byte(`{"not": "a list"}`))
	is.True(errors.Is(err, ErrDecode))
}

func TestUnmarshalTFRProperties(t *testing.T) {
	is := is.New(t)

	a, err := UnmarshalAdvisory([]byte(`{
		"id": "adv-3",
		"type": "tfr",
		"color": "red",
		"properties": {
			"url": "https://tfr.faa.gov/save_pages/detail_6_9442.html",
			"start_time": "2026-08-30T10:00:00.000+0000",
			"end_time": "2026-08-30T18:00:00.000+0000"
		}
	}`))
	is.NoErr(err)

	props, ok := a.Properties.(TFRProperties)
	is.True(ok)
	is.True(props.StartTime != nil)
	is.True(props.EndTime.After(*props.StartTime))
}

func TestUnmarshalJurisdictionPatchesRulesets(t *testing.T) {
	is := is.New(t)

	j, err := UnmarshalJurisdiction([]byte(`{
		"id": "us",
		"name": "United States",
		"region": "federal",
		"rulesets": [
			{"id": "r1", "name": "Part 107", "selection_type": "required"},
			{"id": "r2", "name": "Fly for Fun", "selection_type": "pick_one", "default": true}
		]
	}`))
	is.NoErr(err)

	is.Equal(j.Region, RegionFederal)
	is.Equal(len(j.Rulesets), 2)

	for _, r := range j.Rulesets {
		is.Equal(r.JurisdictionID, "us")
		is.Equal(r.JurisdictionName, "United States")
		is.Equal(r.JurisdictionRegion, RegionFederal)
	}
}

func TestUnmarshalJurisdictionMissingIDFails(t *testing.T) {
	is := is.New(t)

	_, err := UnmarshalJurisdiction([]byte(`{"name": "nameless"}`))
	is.True(errors.Is(err, ErrDecode))
}

func TestRegionPriorityOrder(t *testing.T) {
	is := is.New(t)

	is.True(RegionFederal.Priority() < RegionState.Priority())
	is.True(RegionState.Priority() < RegionCity.Priority())
	is.True(Region("unheard-of").Priority() > RegionLocal.Priority())
}

func TestColorRankOrder(t *testing.T) {
	is := is.New(t)

	is.True(ColorRed.Rank() > ColorOrange.Rank())
	is.True(ColorOrange.Rank() > ColorYellow.Rank())
	is.True(ColorYellow.Rank() > ColorGreen.Rank())
	is.True(Color("purple").Rank() < ColorGreen.Rank())
}

func TestPermitApplicationBuilderIsImmutable(t *testing.T) {
	is := is.New(t)

	draft := NewPermitApplication("p1")
	withName := draft.WithProperty("name", "Kalle")
	withBoth := withName.WithProperty("phone", "+46 70 000 00 00").WithProperty("name", "Eva")

	is.Equal(len(draft.Properties()), 0)
	is.Equal(len(withName.Properties()), 1)
	is.Equal(len(withBoth.Properties()), 2)
	is.Equal(withBoth.Properties()[0].Value, "Eva")
	is.Equal(withName.Properties()[0].Value, "Kalle")
}

const advisoryJSON = `{
	"id": "adv-1",
	"type": "airport",
	"color": "orange",
	"name": "Sundsvall-Timrå Airport",
	"latitude": 62.390956,
	"longitude": 17.317279,
	"city": "Sundsvall",
	"country": "SE",
	"rule_id": "rule-1",
	"ruleset_id": "r1",
	"organization_id": "org1",
	"last_updated": "2026-08-30T12:34:56.789+0000",
	"requirements": {
		"notice": {"digital": true, "phone_number": "+46 60 000 00 00"},
		"permits_available": [
			{"id": "p1", "name": "Airport Permit", "organization_id": "org1", "single_use": false}
		]
	},
	"properties": {
		"identifier": "ESNN",
		"tower": true,
		"use": "public"
	}
}`
