// Package constraints implements the pluggable constraint framework: each
// Constraint contributes an energy term (to be summed and minimised by
// the solver) and a [0,1] satisfaction score, and may optionally prune
// Proofs that can never participate in a feasible assignment.
package constraints

import "github.com/lightninglabs/ironthrone/claim"

// Constraint is a single component of the energy landscape the solver
// minimises. Implementations must keep Energy and Score mutually
// consistent: for binary (hard) constraints, Energy == 0 must imply
// Score == 1, and EnergyBounds must genuinely bound every value Energy
// can return over any assignment built from words.
type Constraint interface {
	// Cleanup prunes Proofs that cannot participate in any feasible
	// assignment. It must only remove Proofs; Words and Claims
	// themselves are never removed. Constraints with nothing to prune
	// implement this as a no-op.
	Cleanup(words []*claim.Word)

	// EnergyBounds returns the (lo, hi) bounds on the value Energy can
	// return for any assignment over words. Used by the solver to
	// calibrate its annealing schedule.
	EnergyBounds(words []*claim.Word) (lo, hi float64)

	// Energy returns this constraint's non-negative contribution to
	// the total energy of assignment. Zero means perfect satisfaction
	// for soft constraints.
	Energy(assignment claim.Assignment) float64

	// Score returns how well assignment satisfies this constraint, in
	// [0,1]: 1 when fully satisfied, 0 when violated.
	Score(assignment claim.Assignment) float64
}
