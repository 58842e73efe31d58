package pretenders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightninglabs/ironthrone/catalog"
	"github.com/lightninglabs/ironthrone/claim"
	"github.com/lightninglabs/ironthrone/words"
)

func testExpressions() []*catalog.Expression {
	return []*catalog.Expression{
		catalog.New("salad", "food", "salad"),
		catalog.New("potato salad", "food", "potato-salad"),
		catalog.New("cheese", "food", "cheese"),
		catalog.New("ham", "food", "ham"),
		catalog.New("turtle", "animal", "turtle"),
		catalog.New("fox", "animal", "fox"),
		catalog.New("elephant", "animal", "elephant"),
	}
}

func newTestWord(text string, order int) *claim.Word {
	return claim.NewWord(words.NewToken(text, order))
}

func TestExpressionPretenderIndexContainsCatalogWord(t *testing.T) {
	ep := New(testExpressions(), 0)

	matches := ep.Index()[" ch"]
	require.Len(t, matches, 1)
	assert.Equal(t, "cheese", matches[0].Expression.Text)
	assert.Equal(t, 2, matches[0].Seq)
	assert.Equal(t, 0, matches[0].Order)
}

func TestExpressionPretenderSeqBase(t *testing.T) {
	ep := New(testExpressions(), 100)

	matches := ep.Index()[" ch"]
	require.Len(t, matches, 1)
	assert.Equal(t, 102, matches[0].Seq)
}

func TestExpressionPretenderClaimWords(t *testing.T) {
	ws := []*claim.Word{
		newTestWord("elephant", 0),
		newTestWord("eats", 1),
		newTestWord("potato", 2),
		newTestWord("salad", 3),
	}

	ep := New(testExpressions(), 0)
	ep.Claim(ws)

	elephant, eats, potato, salad := ws[0], ws[1], ws[2], ws[3]

	require.Len(t, elephant.Proofs, 1)
	assert.Equal(t, "animal", elephant.Proofs[0].Claim.Entity)
	assert.Equal(t, "elephant", elephant.Proofs[0].Claim.Value)
	assert.Equal(t, 1.0, elephant.Proofs[0].Claim.Score)
	assert.Equal(t, 0, elephant.Proofs[0].Order)

	assert.Empty(t, eats.Proofs)

	require.Len(t, potato.Proofs, 1)
	assert.Equal(t, "potato-salad", potato.Proofs[0].Claim.Value)
	assert.Equal(t, 0, potato.Proofs[0].Order)

	require.Len(t, salad.Proofs, 2)
	values := map[any]int{}
	for _, p := range salad.Proofs {
		values[p.Claim.Value] = p.Order
	}
	assert.Equal(t, 0, values["salad"])
	assert.Equal(t, 1, values["potato-salad"])
}

func TestExpressionPretenderEmptyCatalogAttachesNoProofs(t *testing.T) {
	ep := New(nil, 0)
	ws := []*claim.Word{newTestWord("salad", 0)}

	ep.Claim(ws)
	assert.Empty(t, ws[0].Proofs)
}

func TestExpressionPretenderEmptyWordHasNoCandidates(t *testing.T) {
	ep := New(testExpressions(), 0)
	ws := []*claim.Word{newTestWord("", 0)}

	ep.Claim(ws)
	assert.Empty(t, ws[0].Proofs)
}

// TestExpressionPretenderDeterministicIndex checks that building two
// indexes from the same catalog yields the same contents, modulo
// iteration order.
func TestExpressionPretenderDeterministicIndex(t *testing.T) {
	a := New(testExpressions(), 0)
	b := New(testExpressions(), 0)

	assert.Equal(t, len(a.Index()), len(b.Index()))
	for k, matchesA := range a.Index() {
		matchesB, ok := b.Index()[k]
		require.True(t, ok, "missing trigram key %q", k)
		require.Len(t, matchesB, len(matchesA))

		for i := range matchesA {
			assert.Equal(t, matchesA[i].Seq, matchesB[i].Seq)
			assert.Equal(t, matchesA[i].Order, matchesB[i].Order)
			assert.True(t, matchesA[i].Expression.Equal(matchesB[i].Expression))
		}
	}
}
