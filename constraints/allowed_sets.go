package constraints

import "github.com/lightninglabs/ironthrone/claim"

// PresentNotAllowedWeight is the per-entity penalty AllowedSets applies
// for every present entity that is not permitted by the chosen EntitySet.
const PresentNotAllowedWeight = 100.0

// EntitySet describes one allowed combination of entities: Penalty is
// the cost of choosing this set, NeedsOneOf is the set of entities at
// least one of which must be present for this set to be eligible, and
// AlsoAllowed is the additional entities this set permits without
// penalty once it is chosen.
type EntitySet struct {
	Penalty     float64
	NeedsOneOf  map[string]bool
	AlsoAllowed map[string]bool
}

// NewEntitySet builds an EntitySet from slices of entity names for
// convenience at call sites.
func NewEntitySet(penalty float64, needsOneOf, alsoAllowed []string) EntitySet {
	return EntitySet{
		Penalty:     penalty,
		NeedsOneOf:  toSet(needsOneOf),
		AlsoAllowed: toSet(alsoAllowed),
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// allows reports whether entity is permitted by s without penalty: it is
// a member of either NeedsOneOf or AlsoAllowed.
func (s EntitySet) allows(entity string) bool {
	return s.NeedsOneOf[entity] || s.AlsoAllowed[entity]
}

// eligible reports whether at least one entity in present is in
// s.NeedsOneOf.
func (s EntitySet) eligible(present map[string]bool) bool {
	for entity := range s.NeedsOneOf {
		if present[entity] {
			return true
		}
	}
	return false
}

// AllowedSets is a soft, priority-layered constraint: it picks the
// cheapest configured EntitySet that is eligible given the entities
// present in an assignment, then penalises any present entity that set
// does not allow.
type AllowedSets struct {
	Sets []EntitySet
}

// NewAllowedSets constructs an AllowedSets constraint from the given
// sets, in priority order.
func NewAllowedSets(sets ...EntitySet) *AllowedSets {
	return &AllowedSets{Sets: sets}
}

// Cleanup is a no-op: AllowedSets never removes Proofs.
func (*AllowedSets) Cleanup([]*claim.Word) {}

// EnergyBounds returns (0, maxPenalty + |words|*100). lo is 0: the
// all-empty assignment has no present entities, so Energy is always 0
// regardless of configured Sets. hi is the costliest configured Set's
// Penalty (0 if none are configured) plus the worst case of every
// present entity being disallowed.
func (as *AllowedSets) EnergyBounds(words []*claim.Word) (lo, hi float64) {
	maxPenalty := 0.0
	for _, s := range as.Sets {
		if s.Penalty > maxPenalty {
			maxPenalty = s.Penalty
		}
	}

	return 0, maxPenalty + float64(len(words))*PresentNotAllowedWeight
}

// present collects the distinct entity names referenced by assignment.
func present(assignment claim.Assignment) map[string]bool {
	entities := make(map[string]bool)
	for _, c := range assignment.Claims() {
		entities[c.Entity] = true
	}
	return entities
}

// chosenSet returns the eligible EntitySet with the lowest Penalty, and
// whether one was found.
func (as *AllowedSets) chosenSet(presentEntities map[string]bool) (EntitySet, bool) {
	var best EntitySet
	found := false

	for _, s := range as.Sets {
		if !s.eligible(presentEntities) {
			continue
		}
		if !found || s.Penalty < best.Penalty {
			best = s
			found = true
		}
	}

	return best, found
}

// Energy is (count of present entities not allowed by the chosen set) *
// 100, plus the chosen set's penalty (0 if no set is chosen).
func (as *AllowedSets) Energy(assignment claim.Assignment) float64 {
	presentEntities := present(assignment)
	set, ok := as.chosenSet(presentEntities)

	var penalty float64
	var disallowed int

	if ok {
		penalty = set.Penalty
		for entity := range presentEntities {
			if !set.allows(entity) {
				disallowed++
			}
		}
	} else {
		disallowed = len(presentEntities)
	}

	return float64(disallowed)*PresentNotAllowedWeight + penalty
}

// Score is 1 iff every present entity is allowed by the chosen set (or
// there are no present entities at all), else 0.
func (as *AllowedSets) Score(assignment claim.Assignment) float64 {
	presentEntities := present(assignment)
	set, ok := as.chosenSet(presentEntities)

	if !ok {
		if len(presentEntities) == 0 {
			return 1
		}
		return 0
	}

	for entity := range presentEntities {
		if !set.allows(entity) {
			return 0
		}
	}

	return 1
}
