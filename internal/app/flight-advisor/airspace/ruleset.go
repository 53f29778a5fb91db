package airspace

import (
	"slices"
	"strings"
)

type SelectionType string

const (
	SelectionTypeRequired SelectionType = "required"
	SelectionTypePickOne  SelectionType = "pick_one"
	SelectionTypeOptional SelectionType = "optional"
)

var selectionTypePriorities = map[SelectionType]int{
	SelectionTypeRequired: 0,
	SelectionTypePickOne:  1,
	SelectionTypeOptional: 2,
}

// Priority returns the sort precedence of the selection type, required first.
func (t SelectionType) Priority() int {
	if p, ok := selectionTypePriorities[t]; ok {
		return p
	}
	return len(selectionTypePriorities)
}

// Ruleset is a selectable bundle of rules owned by exactly one jurisdiction.
// The jurisdiction fields are attached during jurisdiction decoding and are
// never present in the upstream ruleset payload itself.
type Ruleset struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	ShortName       string        `json:"short_name,omitempty"`
	Description     string        `json:"description,omitempty"`
	SelectionType   SelectionType `json:"selection_type"`
	Default         bool          `json:"default"`
	Recommended     bool          `json:"recommended"`
	AirspaceTypeIDs []string      `json:"airspace_types,omitempty"`

	JurisdictionID     string `json:"jurisdiction_id,omitempty"`
	JurisdictionName   string `json:"jurisdiction_name,omitempty"`
	JurisdictionRegion Region `json:"jurisdiction_region,omitempty"`
}

// IsRecommended reports whether the ruleset should be enabled when a caller
// asks for recommended rulesets. The flag is supplied by the server, it is
// never derived from the ruleset name.
func (r Ruleset) IsRecommended() bool {
	return r.Recommended || r.Default
}

func compareRulesets(a, b Ruleset) int {
	if d := a.SelectionType.Priority() - b.SelectionType.Priority(); d != 0 {
		return d
	}
	if d := strings.Compare(a.Name, b.Name); d != 0 {
		return d
	}
	return strings.Compare(a.ID, b.ID)
}

// SortRulesets orders rulesets by selection type (required first) and name
// ascending within the same type.
func SortRulesets(rulesets []Ruleset) {
	slices.SortStableFunc(rulesets, compareRulesets)
}
