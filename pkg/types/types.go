package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AirspaceStatusChanged is published whenever a status check for a tracked
// subject (a drone or a watch area) completes.
type AirspaceStatusChanged struct {
	Subject         string    `json:"subject"`
	Color           string    `json:"color"`
	Advisories      int       `json:"advisories"`
	RequiresPermits bool      `json:"requires_permits"`
	Tenant          string    `json:"tenant"`
	Timestamp       time.Time `json:"timestamp"`
}

func (a *AirspaceStatusChanged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
func (a *AirspaceStatusChanged) ContentType() string {
	return fmt.Sprintf("application/vnd.airnav.status.%s+json", strings.ToLower(a.Color))
}
func (a *AirspaceStatusChanged) TopicName() string {
	return "airspace.status.changed"
}

// PermitApplied is published when a pilot permit application has been
// submitted to the issuing organization.
type PermitApplied struct {
	PermitID  string    `json:"permit_id"`
	Status    string    `json:"status"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *PermitApplied) Body() []byte {
	b, _ := json.Marshal(p)
	return b
}
func (p *PermitApplied) ContentType() string {
	return "application/vnd.airnav.permit+json"
}
func (p *PermitApplied) TopicName() string {
	return "permit.applied"
}
