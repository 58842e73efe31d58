package constraints

import "github.com/lightninglabs/ironthrone/claim"

// ClaimScoreWeight scales the quality penalty ClaimScores applies per
// slot, whether chosen (by how far the Claim's score falls short of 1)
// or empty (a flat penalty).
const ClaimScoreWeight = 50.0

// ClaimScores is a soft constraint that prefers assignments built from
// higher-confidence Claims.
type ClaimScores struct{}

// Cleanup is a no-op: ClaimScores never removes Proofs.
func (ClaimScores) Cleanup([]*claim.Word) {}

// EnergyBounds returns the constant (|words|*50, |words|*50). This bound
// is loose as a *lower* bound — an assignment of all-perfect-score Claims
// has energy 0, which is below |words|*50 — but it is carried through
// unchanged rather than silently tightened, since downstream callers may
// already be calibrated against it.
func (ClaimScores) EnergyBounds(words []*claim.Word) (lo, hi float64) {
	bound := float64(len(words)) * ClaimScoreWeight
	return bound, bound
}

// Energy sums (1-score)*50 for every chosen slot and 50 for every empty
// slot.
func (ClaimScores) Energy(assignment claim.Assignment) float64 {
	var energy float64

	for _, p := range assignment {
		if p == nil {
			energy += ClaimScoreWeight
			continue
		}

		energy += (1 - p.Claim.Score) * ClaimScoreWeight
	}

	return energy
}

// Score returns the mean score of the Claims chosen in assignment, or 0
// if none are chosen.
func (ClaimScores) Score(assignment claim.Assignment) float64 {
	var total float64
	var n int

	for _, p := range assignment {
		if p == nil {
			continue
		}

		total += p.Claim.Score
		n++
	}

	if n == 0 {
		return 0
	}

	return total / float64(n)
}
