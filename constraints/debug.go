package constraints

import (
	"errors"
	"fmt"

	"github.com/lightninglabs/ironthrone/claim"
)

// Debug gates the runtime consistency checks in CheckBounds and
// CheckScore. It defaults to false so production solver runs pay no
// extra cost per step; set it from a test's init or a debug build to
// catch a malformed Constraint implementation as soon as it misbehaves,
// rather than as a subtly miscalibrated annealing schedule.
var Debug = false

// ErrConstraintBounds indicates a Constraint's Energy returned a value
// outside the (lo, hi) range its own EnergyBounds declared for the same
// words.
var ErrConstraintBounds = errors.New("constraints: energy outside declared bounds")

// ErrConstraintScore indicates a Constraint's Score is inconsistent with
// its Energy: Energy reported 0 (full satisfaction) but Score did not
// report 1.
var ErrConstraintScore = errors.New("constraints: score inconsistent with energy")

// assertInDebug panics with err when Debug is enabled. A malformed
// Constraint is a bug in that Constraint's implementation, not a
// condition callers can recover from, so this asserts rather than
// returning an error — and only when Debug opts into paying for it.
func assertInDebug(err error) {
	if Debug && err != nil {
		panic(err)
	}
}

// CheckBounds asserts, when Debug is enabled, that energy falls within
// the (lo, hi) bounds c.EnergyBounds(words) declares. A violation wraps
// ErrConstraintBounds, checkable with errors.Is.
func CheckBounds(c Constraint, words []*claim.Word, energy float64) {
	if !Debug {
		return
	}

	lo, hi := c.EnergyBounds(words)
	if energy < lo || energy > hi {
		assertInDebug(fmt.Errorf("%w: %T energy %v outside [%v, %v]", ErrConstraintBounds, c, energy, lo, hi))
	}
}

// CheckScore asserts, when Debug is enabled, that a zero-energy
// Constraint reports Score 1. A violation wraps ErrConstraintScore,
// checkable with errors.Is.
func CheckScore(c Constraint, energy, score float64) {
	if !Debug {
		return
	}

	if energy == 0 && score != 1 {
		assertInDebug(fmt.Errorf("%w: %T energy 0 but score %v", ErrConstraintScore, c, score))
	}
}
