package constraints

import "github.com/lightninglabs/ironthrone/claim"

// LargestClaimWeight is the per-slot penalty LargestClaim applies to an
// empty slot or to a slot whose chosen Claim is not the longest one
// available on that Word.
const LargestClaimWeight = 5.0

// LargestClaim is a soft preference constraint: it nudges the solver
// toward choosing longer multi-word expressions over shorter single-word
// ones whenever both are candidates for the same Word. It never reports
// dissatisfaction through Score — it is a pure preference, not a
// pass/fail condition.
type LargestClaim struct{}

// Cleanup is a no-op: LargestClaim never removes Proofs.
func (LargestClaim) Cleanup([]*claim.Word) {}

// EnergyBounds is the constant (|words|*5, |words|*5): the energy this
// constraint contributes is always exactly |words|*5 minus 5 for every
// slot that picked its Word's longest available Claim. This
// is documented as a constant bound rather than a tight range.
func (LargestClaim) EnergyBounds(words []*claim.Word) (lo, hi float64) {
	bound := float64(len(words)) * LargestClaimWeight
	return bound, bound
}

// Energy adds LargestClaimWeight for every empty slot, and again for
// every slot whose chosen Claim is shorter than the longest Claim among
// all Proofs attached to that slot's Word.
func (LargestClaim) Energy(assignment claim.Assignment) float64 {
	var energy float64

	for _, p := range assignment {
		if p == nil {
			energy += LargestClaimWeight
			continue
		}

		if p.Claim.Length < longestClaimLength(p.Word) {
			energy += LargestClaimWeight
		}
	}

	return energy
}

// Score is always 1: LargestClaim is a pure preference, never a failure.
func (LargestClaim) Score(claim.Assignment) float64 {
	return 1
}

// longestClaimLength returns the greatest Length among every Claim that
// has a Proof attached to w.
func longestClaimLength(w *claim.Word) int {
	longest := 0
	for _, p := range w.Proofs {
		if p.Claim.Length > longest {
			longest = p.Claim.Length
		}
	}

	return longest
}
