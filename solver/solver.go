// Package solver implements the simulated-annealing search over Word/Proof
// assignments: a state assigns each Word either no Proof or one of its
// candidate Proofs, and the solver searches for the assignment minimising
// the sum of the configured Constraints' energies.
package solver

import (
	"math"

	"github.com/lightninglabs/ironthrone/claim"
	"github.com/lightninglabs/ironthrone/constraints"
)

// DefaultSteps is the number of annealing iterations run when Steps is
// left at its zero value.
const DefaultSteps = 10000

// coolingAttenuation scales the calibrated upper-bound sum down to
// Tmax, so the initial acceptance temperature sits comfortably above
// the energy the solver can actually realise.
const coolingAttenuation = 0.9

// Solver runs simulated annealing over a fixed set of Words and
// Constraints to find a low-energy Assignment.
type Solver struct {
	Words       []*claim.Word
	Constraints []constraints.Constraint
	Steps       int
	RNG         RNG
}

// New builds a Solver for words under the given constraints, applying
// DefaultSteps and a fresh CSPRNG unless overridden on the returned
// value before Run is called.
func New(words []*claim.Word, cs []constraints.Constraint) *Solver {
	return &Solver{
		Words:       words,
		Constraints: cs,
		Steps:       DefaultSteps,
		RNG:         NewCSPRNG(),
	}
}

// state is the index-based annealing state: one entry per Word, holding
// either -1 (no Proof chosen) or the index into that Word's Proofs.
type state []int

func newState(n int) state {
	s := make(state, n)
	for i := range s {
		s[i] = -1
	}
	return s
}

func (s state) clone() state {
	out := make(state, len(s))
	copy(out, s)
	return out
}

// assignment resolves s into a claim.Assignment against words.
func (s state) assignment(words []*claim.Word) claim.Assignment {
	out := make(claim.Assignment, len(s))
	for i, idx := range s {
		if idx < 0 {
			continue
		}
		out[i] = words[i].Proofs[idx]
	}
	return out
}

// Run executes the configured number of annealing steps and returns the
// best-energy Assignment observed.
func (sv *Solver) Run() claim.Assignment {
	steps := sv.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}

	tmin, tmax := sv.calibrate()

	current := newState(len(sv.Words))
	currentEnergy := sv.energy(current, tmin)

	best := current.clone()
	bestEnergy := currentEnergy

	for step := 0; step < steps; step++ {
		t := coolingTemperature(tmax, tmin, step, steps)

		next := sv.move(current)
		nextEnergy := sv.energy(next, tmin)

		if sv.accept(currentEnergy, nextEnergy, t) {
			current = next
			currentEnergy = nextEnergy

			if currentEnergy < bestEnergy {
				best = current.clone()
				bestEnergy = currentEnergy
			}
		}
	}

	return best.assignment(sv.Words)
}

// coolingTemperature implements geometric cooling from tmax down to tmin
// across steps iterations.
func coolingTemperature(tmax, tmin float64, step, steps int) float64 {
	if steps <= 1 {
		return tmin
	}
	if tmax <= tmin || tmin <= 0 {
		return tmax
	}

	fraction := float64(step) / float64(steps-1)
	return tmax * math.Pow(tmin/tmax, fraction)
}

// accept implements the Metropolis acceptance criterion: unconditional
// if the move improves energy, otherwise probabilistic based on the
// current temperature.
func (sv *Solver) accept(currentEnergy, nextEnergy, t float64) bool {
	delta := nextEnergy - currentEnergy
	if delta < 0 {
		return true
	}
	if t <= 0 {
		return false
	}

	return sv.RNG.Float64() < math.Exp(-delta/t)
}

// move picks uniformly at random a Word that has at least one Proof,
// then chooses a new slot value uniformly from {none} ∪ {0..n-1} minus
// the current value. Words with no Proofs are skipped; if none have
// Proofs the move is a no-op.
func (sv *Solver) move(current state) state {
	candidates := wordsWithProofs(sv.Words)
	if len(candidates) == 0 {
		return current.clone()
	}

	next := current.clone()
	wordIdx := candidates[sv.RNG.Intn(len(candidates))]
	n := len(sv.Words[wordIdx].Proofs)

	options := make([]int, 0, n)
	for v := -1; v < n; v++ {
		if v != next[wordIdx] {
			options = append(options, v)
		}
	}
	if len(options) == 0 {
		return next
	}

	next[wordIdx] = options[sv.RNG.Intn(len(options))]
	return next
}

func wordsWithProofs(words []*claim.Word) []int {
	var idxs []int
	for i, w := range words {
		if len(w.Proofs) > 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// energy sums every constraint's Energy over the resolved assignment,
// adding a Tmin penalty for every constraint whose own energy is at or
// above its lower bound (e >= lo, so a constraint sitting exactly on its
// lower bound is penalised too). For constraints whose bounds coincide
// this comparison direction is kept as is (see DESIGN.md).
func (sv *Solver) energy(s state, tmin float64) float64 {
	assignment := s.assignment(sv.Words)

	var total float64
	for _, c := range sv.Constraints {
		e := c.Energy(assignment)
		constraints.CheckBounds(c, sv.Words, e)
		total += e

		lo, _ := c.EnergyBounds(sv.Words)
		if e >= lo {
			total += tmin
		}
	}

	return total
}

// calibrate computes Tmin (sum of constraint lower bounds) and Tmax
// (0.9 times the sum of constraint upper bounds).
func (sv *Solver) calibrate() (tmin, tmax float64) {
	var loSum, hiSum float64
	for _, c := range sv.Constraints {
		lo, hi := c.EnergyBounds(sv.Words)
		loSum += lo
		hiSum += hi
	}

	return loSum, hiSum * coolingAttenuation
}
