package airspace

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestEvaluateEmptyAdvisoryListIsGreen(t *testing.T) {
	is := is.New(t)

	status := Evaluate(nil, nil, time.Now())

	is.Equal(status.Color, ColorGreen)
	is.Equal(status.RequiresPermits, false)
	is.Equal(status.SupportsDigitalNotice, false)
	is.Equal(len(status.Advisories), 0)
}

func TestEvaluateColorIsMaxSeverity(t *testing.T) {
	is := is.New(t)

	advisories := []Advisory{
		{ID: "a", Type: AirspaceTypePark, Color: ColorYellow},
		{ID: "b", Type: AirspaceTypeTFR, Color: ColorRed},
		{ID: "c", Type: AirspaceTypeSchool, Color: ColorOrange},
	}

	status := Evaluate(advisories, nil, time.Now())

	is.Equal(status.Color, ColorRed)
}

func TestEvaluateRequiresPermits(t *testing.T) {
	is := is.New(t)

	advisories := []Advisory{permitAdvisory("adv1", "org1", permit("p1", "Permit One", "org1"))}

	status := Evaluate(advisories, nil, time.Now())

	is.Equal(status.RequiresPermits, true)
	is.Equal(status.Organizations, []string{"org1"})
	is.Equal(len(status.ApplicablePermits), 1)
	is.Equal(status.ApplicablePermits[0].ID, "p1")
}

func TestEvaluateHeldPermitSatisfiesAdvisory(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	future := now.Add(24 * time.Hour)

	advisories := []Advisory{
		{
			ID:             "adv1",
			Type:           AirspaceTypeControlledAirspace,
			Color:          ColorYellow,
			OrganizationID: "org1",
			Requirements: &Requirements{
				PermitsAvailable: []AvailablePermit{permit("p1", "Permit One", "org1")},
			},
		},
	}

	held := []PilotPermit{
		{PermitID: "p1", Status: PilotPermitStatusAccepted, ExpiresAt: &future},
	}

	status := Evaluate(advisories, held, now)

	is.Equal(status.RequiresPermits, false)
	is.Equal(len(status.ApplicablePermits), 1)
	is.Equal(status.ApplicablePermits[0].ID, "p1")
}

func TestEvaluateConflictingPermitRequirements(t *testing.T) {
	is := is.New(t)

	// two advisories from the same organization with disjoint permit sets,
	// only one permit may be selected per organization
	advisories := []Advisory{
		permitAdvisory("adv1", "org1", permit("p1", "Permit One", "org1")),
		permitAdvisory("adv2", "org1", permit("p2", "Permit Two", "org1")),
	}

	status := Evaluate(advisories, nil, time.Now())

	is.Equal(status.RequiresPermits, true)
	is.Equal(len(status.ApplicablePermits), 0)
}

func TestEvaluateOverlappingPermitRequirements(t *testing.T) {
	is := is.New(t)

	shared := permit("p1", "Permit One", "org1")

	advisories := []Advisory{
		permitAdvisory("adv1", "org1", shared, permit("p2", "Permit Two", "org1")),
		permitAdvisory("adv2", "org1", shared),
	}

	status := Evaluate(advisories, nil, time.Now())

	is.Equal(len(status.ApplicablePermits), 1)
	is.Equal(status.ApplicablePermits[0].ID, "p1")
}

func TestEvaluateRejectedOrExpiredPermitsDoNotSatisfy(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	past := now.Add(-time.Hour)

	advisories := []Advisory{permitAdvisory("adv1", "org1", permit("p1", "Permit One", "org1"))}

	rejected := []PilotPermit{{PermitID: "p1", Status: PilotPermitStatusRejected}}
	expired := []PilotPermit{{PermitID: "p1", Status: PilotPermitStatusAccepted, ExpiresAt: &past}}

	is.Equal(Evaluate(advisories, rejected, now).RequiresPermits, true)
	is.Equal(Evaluate(advisories, expired, now).RequiresPermits, true)
}

func TestEvaluateDigitalNotice(t *testing.T) {
	is := is.New(t)

	advisories := []Advisory{
		{
			ID:             "adv1",
			Type:           AirspaceTypeAirport,
			Color:          ColorOrange,
			OrganizationID: "org1",
			Requirements: &Requirements{
				Notice: &Notice{Digital: true, PhoneNumber: "+1 555 0100"},
			},
		},
		{
			ID:    "adv2",
			Type:  AirspaceTypePark,
			Color: ColorYellow,
		},
	}

	status := Evaluate(advisories, nil, time.Now())

	is.Equal(status.SupportsDigitalNotice, true)
	is.Equal(status.Organizations, []string{"org1"})
}

func TestAvailablePermitsForDeduplicatesAndSorts(t *testing.T) {
	is := is.New(t)

	b := permit("pb", "Bravo", "org1")
	a := permit("pa", "Alpha", "org1")

	advisories := []Advisory{
		permitAdvisory("adv1", "org1", b, a),
		permitAdvisory("adv2", "org1", a),
		permitAdvisory("adv3", "org2", permit("pc", "Charlie", "org2")),
	}

	permits := AvailablePermitsFor(advisories, "org1")

	is.Equal(len(permits), 2)
	is.Equal(permits[0].ID, "pa")
	is.Equal(permits[1].ID, "pb")
}

func TestApplicablePermitsForFiltersExpiredAndConsumed(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := permit("p-exp", "Expired", "org1")
	expired.ValidUntil = &past

	single := permit("p-single", "Single use", "org1")
	single.SingleUse = true

	open := permit("p-open", "Open", "org1")

	advisories := []Advisory{permitAdvisory("adv1", "org1", expired, single, open)}

	held := []PilotPermit{
		{PermitID: "p-single", Status: PilotPermitStatusAccepted, ExpiresAt: &future},
	}

	applicable := ApplicablePermitsFor(advisories, "org1", held, now)

	is.Equal(len(applicable), 1)
	is.Equal(applicable[0].ID, "p-open")
}

func permit(id, name, org string) AvailablePermit {
	return AvailablePermit{ID: id, Name: name, OrganizationID: org}
}

func permitAdvisory(id, org string, permits ...AvailablePermit) Advisory {
	return Advisory{
		ID:             id,
		Type:           AirspaceTypeControlledAirspace,
		Color:          ColorYellow,
		OrganizationID: org,
		Requirements:   &Requirements{PermitsAvailable: permits},
	}
}
