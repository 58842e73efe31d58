package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightninglabs/ironthrone/claim"
)

// fakeConstraint lets tests control Energy/EnergyBounds/Score directly
// to exercise CheckBounds/CheckScore's failure paths.
type fakeConstraint struct {
	lo, hi float64
}

func (fakeConstraint) Cleanup([]*claim.Word) {}

func (f fakeConstraint) EnergyBounds([]*claim.Word) (lo, hi float64) {
	return f.lo, f.hi
}

func (fakeConstraint) Energy(claim.Assignment) float64 { return 0 }
func (fakeConstraint) Score(claim.Assignment) float64  { return 0 }

func withDebug(t *testing.T, enabled bool) {
	t.Helper()
	prev := Debug
	Debug = enabled
	t.Cleanup(func() { Debug = prev })
}

func recoverPanic(f func()) (recovered any) {
	defer func() { recovered = recover() }()
	f()
	return nil
}

func TestCheckBoundsNoopWhenDebugDisabled(t *testing.T) {
	withDebug(t, false)
	c := fakeConstraint{lo: 0, hi: 10}

	assert.Nil(t, recoverPanic(func() { CheckBounds(c, nil, 999) }))
}

func TestCheckBoundsPanicsOnOutOfRangeEnergy(t *testing.T) {
	withDebug(t, true)
	c := fakeConstraint{lo: 0, hi: 10}

	recovered := recoverPanic(func() { CheckBounds(c, nil, 999) })
	require.NotNil(t, recovered)

	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error, got %T", recovered)
	assert.ErrorIs(t, err, ErrConstraintBounds)
}

func TestCheckBoundsWithinRangeDoesNotPanic(t *testing.T) {
	withDebug(t, true)
	c := fakeConstraint{lo: 0, hi: 10}

	assert.Nil(t, recoverPanic(func() { CheckBounds(c, nil, 5) }))
}

func TestCheckScoreNoopWhenDebugDisabled(t *testing.T) {
	withDebug(t, false)
	c := fakeConstraint{}

	assert.Nil(t, recoverPanic(func() { CheckScore(c, 0, 0.5) }))
}

func TestCheckScorePanicsOnInconsistentScore(t *testing.T) {
	withDebug(t, true)
	c := fakeConstraint{}

	recovered := recoverPanic(func() { CheckScore(c, 0, 0.5) })
	require.NotNil(t, recovered)

	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error, got %T", recovered)
	assert.ErrorIs(t, err, ErrConstraintScore)
}

func TestCheckScoreConsistentDoesNotPanic(t *testing.T) {
	withDebug(t, true)
	c := fakeConstraint{}

	assert.Nil(t, recoverPanic(func() { CheckScore(c, 0, 1) }))
	assert.Nil(t, recoverPanic(func() { CheckScore(c, 5, 0) }))
}
