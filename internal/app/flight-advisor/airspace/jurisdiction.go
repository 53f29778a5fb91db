package airspace

import (
	"encoding/json"
)

type Region string

const (
	RegionFederal                Region = "federal"
	RegionFederalBackup          Region = "federal_backup"
	RegionFederalStructureBackup Region = "federal_structure_backup"
	RegionState                  Region = "state"
	RegionCounty                 Region = "county"
	RegionCity                   Region = "city"
	RegionLocal                  Region = "local"
)

var regionPriorities = map[Region]int{
	RegionFederal:                0,
	RegionFederalBackup:          1,
	RegionFederalStructureBackup: 2,
	RegionState:                  3,
	RegionCounty:                 4,
	RegionCity:                   5,
	RegionLocal:                  6,
}

// Priority returns the sort precedence of the region, federal first. Unknown
// regions sort after all known ones.
func (r Region) Priority() int {
	if p, ok := regionPriorities[r]; ok {
		return p
	}
	return len(regionPriorities)
}

// Jurisdiction is a regulatory authority whose rulesets may apply to a flight
// area. Two jurisdictions are considered equal when their IDs are equal.
type Jurisdiction struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Region   Region    `json:"region"`
	Rulesets []Ruleset `json:"rulesets"`
}

// UnmarshalJurisdiction decodes a jurisdiction record and attaches the
// jurisdiction context to each embedded ruleset. The upstream payload does not
// repeat the owning jurisdiction per ruleset, so it is patched in here.
func UnmarshalJurisdiction(b []byte) (Jurisdiction, error) {
	j := Jurisdiction{}

	err := json.Unmarshal(b, &j)
	if err != nil {
		return Jurisdiction{}, decodeErr(err)
	}
	if j.ID == "" {
		return Jurisdiction{}, decodeErrf("jurisdiction record contains no id")
	}

	for i := range j.Rulesets {
		j.Rulesets[i].JurisdictionID = j.ID
		j.Rulesets[i].JurisdictionName = j.Name
		j.Rulesets[i].JurisdictionRegion = j.Region
	}

	return j, nil
}
