package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightninglabs/ironthrone/catalog"
	"github.com/lightninglabs/ironthrone/constraints"
	"github.com/lightninglabs/ironthrone/ironthrone"
	"github.com/lightninglabs/ironthrone/pretenders"
)

func TestParseUtteranceReturnsClaimsAndTier(t *testing.T) {
	catalogEntries := []*catalog.Expression{
		catalog.New("salad", "food", "salad"),
		catalog.New("potato salad", "food", "potato-salad"),
	}
	ep := pretenders.New(catalogEntries, 0)
	engine := ironthrone.New(
		[]pretenders.Pretender{ep},
		[]constraints.Constraint{constraints.FullMatches{}, constraints.LargestClaim{}, constraints.ClaimScores{}},
		ironthrone.WithSteps(4000),
	)

	h := NewHandler(engine, nil)

	_, out, err := h.ParseUtterance(context.Background(), nil, ParseUtteranceInput{
		Text: "I like potato salad",
	})
	require.NoError(t, err)

	require.Len(t, out.Claims, 1)
	assert.Equal(t, "food", out.Claims[0].Entity)
	assert.Equal(t, "potato-salad", out.Claims[0].Value)
	assert.Equal(t, "strong", out.Tier)
}

func TestParseUtteranceEmptyTextYieldsNoSignal(t *testing.T) {
	engine := ironthrone.New(nil, nil)
	h := NewHandler(engine, nil)

	_, out, err := h.ParseUtterance(context.Background(), nil, ParseUtteranceInput{Text: ""})
	require.NoError(t, err)

	assert.Empty(t, out.Claims)
	assert.Equal(t, "no_signal", out.Tier)
}
