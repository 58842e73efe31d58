package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightninglabs/ironthrone/claim"
	"github.com/lightninglabs/ironthrone/words"
)

func newFullMatchWord(text string, order int) *claim.Word {
	return claim.NewWord(words.NewToken(text, order))
}

// potatoSaladWords builds three Words ("potato", "salad", "please") and
// a two-word "potato salad" Claim with Proofs attached at positions 0
// and 1 (Order 0 and 1 respectively), matching spec §8 scenario 5's
// "potato salad" expression.
func potatoSaladWords() (ws []*claim.Word, c *claim.Claim, potatoProof, saladProof *claim.Proof) {
	c = claim.NewClaim("food", "potato-salad", 1, 2, 0)
	w1 := newFullMatchWord("potato", 0)
	w2 := newFullMatchWord("salad", 1)
	w3 := newFullMatchWord("please", 2)

	potatoProof = claim.Attach(0, c, w1, 1.0)
	saladProof = claim.Attach(1, c, w2, 1.0)

	return []*claim.Word{w1, w2, w3}, c, potatoProof, saladProof
}

func TestFullMatchesCleanupKeepsCompleteChain(t *testing.T) {
	ws, _, potatoProof, saladProof := potatoSaladWords()

	FullMatches{}.Cleanup(ws)

	assert.Equal(t, []*claim.Proof{potatoProof}, ws[0].Proofs)
	assert.Equal(t, []*claim.Proof{saladProof}, ws[1].Proofs)
}

// TestFullMatchesCleanupPrunesIncompleteChain checks that a Proof whose
// chain never reaches the Claim's final Order is discarded: the lone
// "salad" Proof (Order 1) has no preceding "potato" Proof (Order 0) to
// complete the two-word Claim, so Cleanup removes it from both sides.
func TestFullMatchesCleanupPrunesIncompleteChain(t *testing.T) {
	c := claim.NewClaim("food", "potato-salad", 1, 2, 0)
	w1 := newFullMatchWord("please", 0)
	w2 := newFullMatchWord("salad", 1)

	saladProof := claim.Attach(1, c, w2, 1.0)
	ws := []*claim.Word{w1, w2}

	FullMatches{}.Cleanup(ws)

	assert.Empty(t, w2.Proofs)
	assert.Empty(t, c.Proofs)
	assert.NotContains(t, w2.Proofs, saladProof)
}

// TestFullMatchesCleanupIdempotent checks spec §8's "Idempotent
// cleanup" property: calling Cleanup twice equals calling it once.
func TestFullMatchesCleanupIdempotent(t *testing.T) {
	ws, _, potatoProof, saladProof := potatoSaladWords()

	FullMatches{}.Cleanup(ws)
	first := append([]*claim.Proof{}, ws[0].Proofs...)
	first = append(first, ws[1].Proofs...)

	FullMatches{}.Cleanup(ws)
	second := append([]*claim.Proof{}, ws[0].Proofs...)
	second = append(second, ws[1].Proofs...)

	assert.Equal(t, first, second)
	assert.Equal(t, []*claim.Proof{potatoProof}, ws[0].Proofs)
	assert.Equal(t, []*claim.Proof{saladProof}, ws[1].Proofs)
}

// TestFullMatchesEnergyIsolatedProof mirrors spec §8 scenario 5: an
// assignment containing an isolated "salad" Proof (Order 1) of
// "potato salad" without the "potato" Proof (Order 0) yields energy 10
// (one inconsistent Claim x WrongClaimWeight).
func TestFullMatchesEnergyIsolatedProof(t *testing.T) {
	_, _, _, saladProof := potatoSaladWords()

	assignment := claim.Assignment{nil, saladProof}

	fm := FullMatches{}
	assert.Equal(t, WrongClaimWeight, fm.Energy(assignment))
	assert.Equal(t, 0.0, fm.Score(assignment))
}

func TestFullMatchesEnergyConsistentChainIsFree(t *testing.T) {
	_, _, potatoProof, saladProof := potatoSaladWords()

	assignment := claim.Assignment{potatoProof, saladProof}

	fm := FullMatches{}
	assert.Equal(t, 0.0, fm.Energy(assignment))
	assert.Equal(t, 1.0, fm.Score(assignment))
}

func TestFullMatchesEnergyBounds(t *testing.T) {
	ws := []*claim.Word{newFullMatchWord("a", 0), newFullMatchWord("b", 1), newFullMatchWord("c", 2)}

	lo, hi := FullMatches{}.EnergyBounds(ws)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3*WrongClaimWeight, hi)
}

func TestFullMatchesCleanupDiscardsUnreachedFinalOrder(t *testing.T) {
	c := claim.NewClaim("food", "potato-salad-special", 1, 3, 0)
	w1 := newFullMatchWord("potato", 0)
	w2 := newFullMatchWord("salad", 1)

	p0 := claim.Attach(0, c, w1, 1.0)
	p1 := claim.Attach(1, c, w2, 1.0)
	ws := []*claim.Word{w1, w2}

	FullMatches{}.Cleanup(ws)

	require.Empty(t, w1.Proofs)
	require.Empty(t, w2.Proofs)
	assert.NotContains(t, c.Proofs, p0)
	assert.NotContains(t, c.Proofs, p1)
}
