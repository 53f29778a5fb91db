package airspace

import (
	"slices"
)

type selectionMode string

const (
	modeAutomatic selectionMode = "automatic"
	modeDynamic   selectionMode = "dynamic"
	modeManual    selectionMode = "manual"
)

// RulesetConfiguration controls how ResolveActiveRulesets selects rulesets
// from the intersecting jurisdictions.
type RulesetConfiguration struct {
	mode              selectionMode
	preferredIDs      []string
	enableRecommended bool
	manual            []Ruleset
}

// AutomaticConfiguration enables every required ruleset, one pick-one ruleset
// per jurisdiction (the default, or the first in sort order when none is
// marked default) and only recommended optional rulesets.
func AutomaticConfiguration() RulesetConfiguration {
	return RulesetConfiguration{mode: modeAutomatic}
}

// DynamicConfiguration behaves like AutomaticConfiguration but prefers
// rulesets named in preferredRulesetIDs wherever a choice exists.
func DynamicConfiguration(preferredRulesetIDs []string, enableRecommended bool) RulesetConfiguration {
	return RulesetConfiguration{
		mode:              modeDynamic,
		preferredIDs:      slices.Clone(preferredRulesetIDs),
		enableRecommended: enableRecommended,
	}
}

// ManualConfiguration makes the caller supplied rulesets the definitive
// active set, no selection is performed.
func ManualConfiguration(rulesets []Ruleset) RulesetConfiguration {
	return RulesetConfiguration{mode: modeManual, manual: slices.Clone(rulesets)}
}

func (c RulesetConfiguration) prefers(id string) bool {
	return slices.Contains(c.preferredIDs, id)
}

// ResolveActiveRulesets computes the definitive set of active rulesets for
// the given jurisdictions. The function is pure: identical input always
// yields an identical, sorted result. Jurisdictions are deduplicated by id
// and jurisdictions without rulesets are excluded entirely.
func ResolveActiveRulesets(jurisdictions []Jurisdiction, cfg RulesetConfiguration) []Ruleset {
	if cfg.mode == modeManual {
		active := slices.Clone(cfg.manual)
		SortRulesets(active)
		return active
	}

	active := make([]Ruleset, 0)

	for _, j := range dedupJurisdictions(jurisdictions) {
		if len(j.Rulesets) == 0 {
			continue
		}
		active = append(active, resolveJurisdiction(j, cfg)...)
	}

	active = dedupRulesets(active)
	SortRulesets(active)

	return active
}

func resolveJurisdiction(j Jurisdiction, cfg RulesetConfiguration) []Ruleset {
	rulesets := slices.Clone(j.Rulesets)
	SortRulesets(rulesets)

	// a jurisdiction exposing a single ruleset is always enabled under
	// dynamic selection, regardless of its selection type
	if cfg.mode == modeDynamic && len(rulesets) == 1 {
		return rulesets
	}

	active := make([]Ruleset, 0, len(rulesets))
	pickOne := make([]Ruleset, 0)

	for _, r := range rulesets {
		switch r.SelectionType {
		case SelectionTypeRequired:
			active = append(active, r)
		case SelectionTypePickOne:
			pickOne = append(pickOne, r)
		case SelectionTypeOptional:
			if cfg.mode == modeDynamic && cfg.prefers(r.ID) {
				active = append(active, r)
			} else if r.IsRecommended() && (cfg.mode == modeAutomatic || cfg.enableRecommended) {
				active = append(active, r)
			}
		}
	}

	if winner, ok := pickOneWinner(pickOne, cfg); ok {
		active = append(active, winner)
	}

	return active
}

// pickOneWinner selects exactly one ruleset from a jurisdiction's pick-one
// group: a preferred id first (dynamic only, first match wins), then the
// jurisdiction default, then the first in sort order.
func pickOneWinner(pickOne []Ruleset, cfg RulesetConfiguration) (Ruleset, bool) {
	if len(pickOne) == 0 {
		return Ruleset{}, false
	}

	if cfg.mode == modeDynamic {
		for _, r := range pickOne {
			if cfg.prefers(r.ID) {
				return r, true
			}
		}
	}

	for _, r := range pickOne {
		if r.Default {
			return r, true
		}
	}

	return pickOne[0], true
}

func dedupJurisdictions(jurisdictions []Jurisdiction) []Jurisdiction {
	seen := make(map[string]struct{}, len(jurisdictions))
	result := make([]Jurisdiction, 0, len(jurisdictions))

	for _, j := range jurisdictions {
		if _, ok := seen[j.ID]; ok {
			continue
		}
		seen[j.ID] = struct{}{}
		result = append(result, j)
	}

	return result
}

func dedupRulesets(rulesets []Ruleset) []Ruleset {
	seen := make(map[string]struct{}, len(rulesets))
	result := make([]Ruleset, 0, len(rulesets))

	for _, r := range rulesets {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		result = append(result, r)
	}

	return result
}
