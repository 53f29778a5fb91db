package airspace

import (
	"slices"
	"strings"
	"time"
)

// AirspaceStatus is the evaluated result of an advisory query. It is derived
// from the advisory list and recomputed on every evaluation, never mutated in
// place.
type AirspaceStatus struct {
	Color                 Color             `json:"color"`
	Advisories            []Advisory        `json:"advisories"`
	Organizations         []string          `json:"organizations,omitempty"`
	ApplicablePermits     []AvailablePermit `json:"applicable_permits,omitempty"`
	RequiresPermits       bool              `json:"requires_permits"`
	SupportsDigitalNotice bool              `json:"supports_digital_notice"`
}

// Evaluate turns a raw advisory list into an AirspaceStatus, judged against
// the permits the pilot already holds.
//
// The status color is the maximum severity color present. An empty advisory
// list evaluates to green: no advisory means no known restriction.
//
// Only one permit may be selected per organization for a given flight, so a
// permit is applicable only when it would satisfy every permit requiring
// advisory of its organization. Two advisories of the same organization with
// disjoint permit sets therefore leave no applicable permits.
func Evaluate(advisories []Advisory, held []PilotPermit, now time.Time) AirspaceStatus {
	status := AirspaceStatus{
		Color:      ColorGreen,
		Advisories: slices.Clone(advisories),
	}

	for _, a := range advisories {
		if a.Color.Rank() > status.Color.Rank() {
			status.Color = a.Color
		}
		if a.Requirements == nil {
			continue
		}
		if a.Requirements.Notice != nil && a.Requirements.Notice.Digital {
			status.SupportsDigitalNotice = true
		}
		if a.OrganizationID != "" && !slices.Contains(status.Organizations, a.OrganizationID) {
			status.Organizations = append(status.Organizations, a.OrganizationID)
		}
	}

	slices.Sort(status.Organizations)

	for _, a := range advisories {
		if len(permitsOf(a)) == 0 {
			continue
		}
		if !advisoryCovered(a, held, now) {
			status.RequiresPermits = true
			break
		}
	}

	for _, org := range organizationsRequiringPermits(advisories) {
		status.ApplicablePermits = append(status.ApplicablePermits, ApplicablePermitsFor(advisories, org, held, now)...)
	}

	sortPermits(status.ApplicablePermits)

	return status
}

// AvailablePermitsFor returns every permit offered by the organization across
// the advisories, deduplicated by permit id and sorted by name ascending.
func AvailablePermitsFor(advisories []Advisory, organizationID string) []AvailablePermit {
	permits := make([]AvailablePermit, 0)
	seen := make(map[string]struct{})

	for _, a := range advisories {
		if a.OrganizationID != organizationID {
			continue
		}
		for _, p := range permitsOf(a) {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			permits = append(permits, p)
		}
	}

	sortPermits(permits)

	return permits
}

// ApplicablePermitsFor narrows AvailablePermitsFor down to permits that can
// actually be chosen for the flight: the permit must satisfy every permit
// requiring advisory of the organization, must not be expired and, when
// single use, must not already be consumed by a held permit.
//
// Note that this is stricter than a per advisory listing: a permit offered by
// one advisory is excluded when a sibling advisory of the same organization
// does not accept it, since only one permit per organization can back a
// flight.
func ApplicablePermitsFor(advisories []Advisory, organizationID string, held []PilotPermit, now time.Time) []AvailablePermit {
	applicable := make([]AvailablePermit, 0)

	for _, p := range AvailablePermitsFor(advisories, organizationID) {
		if p.Expired(now) {
			continue
		}
		if p.SingleUse && consumed(p, held, now) {
			continue
		}
		if !satisfiesAllAdvisories(p, advisories, organizationID) {
			continue
		}
		applicable = append(applicable, p)
	}

	return applicable
}

func satisfiesAllAdvisories(p AvailablePermit, advisories []Advisory, organizationID string) bool {
	for _, a := range advisories {
		if a.OrganizationID != organizationID {
			continue
		}
		permits := permitsOf(a)
		if len(permits) == 0 {
			continue
		}
		if !slices.ContainsFunc(permits, func(ap AvailablePermit) bool { return ap.ID == p.ID }) {
			return false
		}
	}
	return true
}

func consumed(p AvailablePermit, held []PilotPermit, now time.Time) bool {
	return slices.ContainsFunc(held, func(pp PilotPermit) bool {
		return pp.Satisfies(p, now)
	})
}

func advisoryCovered(a Advisory, held []PilotPermit, now time.Time) bool {
	for _, p := range permitsOf(a) {
		if consumed(p, held, now) {
			return true
		}
	}
	return false
}

func organizationsRequiringPermits(advisories []Advisory) []string {
	orgs := make([]string, 0)
	for _, a := range advisories {
		if len(permitsOf(a)) == 0 || a.OrganizationID == "" {
			continue
		}
		if !slices.Contains(orgs, a.OrganizationID) {
			orgs = append(orgs, a.OrganizationID)
		}
	}
	slices.Sort(orgs)
	return orgs
}

func permitsOf(a Advisory) []AvailablePermit {
	if a.Requirements == nil {
		return nil
	}
	return a.Requirements.PermitsAvailable
}

func sortPermits(permits []AvailablePermit) {
	slices.SortStableFunc(permits, func(a, b AvailablePermit) int {
		if d := strings.Compare(a.Name, b.Name); d != 0 {
			return d
		}
		return strings.Compare(a.ID, b.ID)
	})
}
