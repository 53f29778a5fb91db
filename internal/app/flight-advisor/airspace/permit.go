package airspace

import (
	"slices"
	"time"
)

// AvailablePermit is an authorization an organization offers for flight in a
// given advisory's airspace. Permits are matched by ID equality only.
type AvailablePermit struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Info             string           `json:"info,omitempty"`
	OrganizationID   string           `json:"organization_id"`
	SingleUse        bool             `json:"single_use"`
	ValidUntil       *time.Time       `json:"valid_until,omitempty"`
	CustomProperties []CustomProperty `json:"custom_properties,omitempty"`
}

// Expired reports whether the permit can no longer be applied for.
func (p AvailablePermit) Expired(now time.Time) bool {
	return p.ValidUntil != nil && !p.ValidUntil.After(now)
}

type CustomProperty struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
	Value    string `json:"value,omitempty"`
}

type PilotPermitStatus string

const (
	PilotPermitStatusPending  PilotPermitStatus = "pending"
	PilotPermitStatusAccepted PilotPermitStatus = "accepted"
	PilotPermitStatusRejected PilotPermitStatus = "rejected"
)

// PilotPermit is a permit a pilot has applied for. Status transitions happen
// on the issuing side, the record is read only once submitted.
type PilotPermit struct {
	PermitID         string            `json:"permit_id"`
	OrganizationID   string            `json:"organization_id,omitempty"`
	Status           PilotPermitStatus `json:"status"`
	ExpiresAt        *time.Time        `json:"expires_at,omitempty"`
	CustomProperties []CustomProperty  `json:"custom_properties,omitempty"`
}

func (p PilotPermit) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}

// Satisfies reports whether this held permit covers the given available
// permit: same permit id, not rejected and not expired.
func (p PilotPermit) Satisfies(ap AvailablePermit, now time.Time) bool {
	return p.PermitID == ap.ID && p.Status != PilotPermitStatusRejected && !p.Expired(now)
}

// PermitApplication is the draft a pilot composes before submitting an
// application for an available permit. The value is immutable, WithProperty
// returns a new draft.
type PermitApplication struct {
	permitID   string
	properties []CustomProperty
}

func NewPermitApplication(permitID string) PermitApplication {
	return PermitApplication{permitID: permitID}
}

func (a PermitApplication) WithProperty(id, value string) PermitApplication {
	properties := slices.Clone(a.properties)

	for i, p := range properties {
		if p.ID == id {
			properties[i].Value = value
			return PermitApplication{permitID: a.permitID, properties: properties}
		}
	}

	properties = append(properties, CustomProperty{ID: id, Value: value})
	return PermitApplication{permitID: a.permitID, properties: properties}
}

func (a PermitApplication) PermitID() string {
	return a.permitID
}

func (a PermitApplication) Properties() []CustomProperty {
	return slices.Clone(a.properties)
}
