package constraints

import "github.com/lightninglabs/ironthrone/claim"

// WrongClaimWeight is the per-inconsistent-claim energy penalty applied
// by FullMatches.
const WrongClaimWeight = 10.0

// FullMatches is a hard constraint: every Claim referenced by an
// assignment must have all of its chosen Proofs occupy contiguous input
// positions in strictly increasing order, starting with the Proof whose
// Order is 0 and ending with the Proof whose Order is Length-1.
type FullMatches struct{}

// Cleanup prunes Proofs that can never complete a full expression match.
// For every Word position and every Proof there with Order 0, it follows
// consecutive Words looking for the next Proof of the same Claim whose
// Order is exactly one greater than the last one kept, stopping at the
// first gap. If the resulting chain reaches the Claim's final Order, every
// Proof in the chain is kept; otherwise it is discarded. This shrinks the
// search space the solver has to explore: trigram matching on short
// common words otherwise generates enormous numbers of stray Proofs.
func (FullMatches) Cleanup(words []*claim.Word) {
	keep := make(map[*claim.Proof]bool)

	for i, w := range words {
		for _, p := range w.Proofs {
			if p.Order != 0 {
				continue
			}

			chain := followChain(words, i, p)
			if chain[len(chain)-1].Order == p.Claim.Length-1 {
				for _, cp := range chain {
					keep[cp] = true
				}
			}
		}
	}

	for _, w := range words {
		kept := w.Proofs[:0:0]
		for _, p := range w.Proofs {
			if keep[p] {
				kept = append(kept, p)
			} else {
				p.Claim.RemoveProof(p)
			}
		}
		w.Proofs = kept
	}
}

// followChain walks words starting at start+1, accepting the next Proof
// of first.Claim whose Order is exactly one greater than the last
// accepted Proof's Order, and returns the chain beginning with first.
func followChain(words []*claim.Word, start int, first *claim.Proof) []*claim.Proof {
	chain := []*claim.Proof{first}
	lastOrder := first.Order

	for j := start + 1; j < len(words); j++ {
		next := proofAt(words[j], first.Claim, lastOrder+1)
		if next == nil {
			break
		}

		chain = append(chain, next)
		lastOrder = next.Order
	}

	return chain
}

// proofAt returns the Proof on w that belongs to c with the given order,
// or nil if there is none.
func proofAt(w *claim.Word, c *claim.Claim, order int) *claim.Proof {
	for _, p := range w.Proofs {
		if p.Claim == c && p.Order == order {
			return p
		}
	}

	return nil
}

// EnergyBounds returns (0, |words|*WrongClaimWeight): every Claim could in
// principle be inconsistent, but energy can never be negative.
func (FullMatches) EnergyBounds(words []*claim.Word) (lo, hi float64) {
	return 0, float64(len(words)) * WrongClaimWeight
}

// Energy returns WrongClaimWeight times the number of Claims referenced by
// assignment that are not consistent.
func (FullMatches) Energy(assignment claim.Assignment) float64 {
	inconsistent := 0
	for _, c := range assignment.Claims() {
		if !claimConsistent(assignment, c) {
			inconsistent++
		}
	}

	return float64(inconsistent) * WrongClaimWeight
}

// Score is 1 iff Energy is 0.
func (fm FullMatches) Score(assignment claim.Assignment) float64 {
	if fm.Energy(assignment) == 0 {
		return 1
	}

	return 0
}

// claimConsistent reports whether every Proof chosen for c in assignment
// occupies a contiguous run of word positions, in strictly increasing
// Proof.Order, starting at 0 and ending at c.Length-1.
func claimConsistent(assignment claim.Assignment, c *claim.Claim) bool {
	var positions, orders []int

	for i, p := range assignment {
		if p != nil && p.Claim == c {
			positions = append(positions, i)
			orders = append(orders, p.Order)
		}
	}

	if len(orders) == 0 {
		return true
	}

	return IsContiguous(positions) &&
		IsContiguous(orders) &&
		orders[0] == 0 &&
		orders[len(orders)-1] == c.Length-1
}
