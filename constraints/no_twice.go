package constraints

import "github.com/lightninglabs/ironthrone/claim"

// DuplicateEntityWeight is the per-repeated-run penalty NoTwice applies.
const DuplicateEntityWeight = 10.0

// NoTwice is a hard constraint: the same entity must not be chosen for
// two separate, non-adjacent runs of input words. It counts consecutive
// runs of the same entity among the chosen slots and penalises every run
// beyond the first occurrence of that entity.
type NoTwice struct{}

// Cleanup is a no-op: NoTwice never removes Proofs.
func (NoTwice) Cleanup([]*claim.Word) {}

// EnergyBounds returns (0, |words|*10): runs of equal entities are free,
// and there can be at most one extra run per chosen slot, e.g. when two
// entities alternate across every word.
func (NoTwice) EnergyBounds(words []*claim.Word) (lo, hi float64) {
	return 0, float64(len(words)) * DuplicateEntityWeight
}

// Energy drops empty slots, then run-length-encodes the remaining
// entity names: a multi-word Claim occupies a consecutive run of equal
// entities and collapses to a single run, so it is free. An entity that
// reappears in a separate run — anywhere later in the assignment, not
// just adjacently — adds DuplicateEntityWeight per extra run.
func (NoTwice) Energy(assignment claim.Assignment) float64 {
	runs, unique := entityRuns(assignment)
	return float64(runs-unique) * DuplicateEntityWeight
}

// entityRuns returns the number of runs of consecutive equal entity
// names among assignment's non-empty slots, and the number of distinct
// entity names among those runs.
func entityRuns(assignment claim.Assignment) (runs, unique int) {
	seen := make(map[string]bool)
	last := ""
	haveLast := false

	for _, p := range assignment {
		if p == nil {
			continue
		}

		entity := p.Claim.Entity
		if haveLast && entity == last {
			continue
		}

		runs++
		if !seen[entity] {
			seen[entity] = true
			unique++
		}

		last = entity
		haveLast = true
	}

	return runs, unique
}

// Score is 1 iff Energy is 0.
func (nt NoTwice) Score(assignment claim.Assignment) float64 {
	if nt.Energy(assignment) == 0 {
		return 1
	}
	return 0
}
