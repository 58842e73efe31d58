package pretenders

import (
	"github.com/lightninglabs/ironthrone/catalog"
	"github.com/lightninglabs/ironthrone/claim"
)

// MinScore is the strict similarity threshold a catalog word must clear
// against an input word for a Proof to be attached. The threshold is
// strict (>), so a similarity of exactly 0.6 does not match.
const MinScore = 0.6

// ExpressionMatch records one catalog word's potential to match an input
// word: which Expression it belongs to, the catalog Word itself, the
// Claim-level sequence number assigned to that Expression, and the
// catalog word's position (order) within the Expression.
type ExpressionMatch struct {
	Expression *catalog.Expression
	Word       *claim.Word
	Seq        int
	Order      int
}

// trigramIndex maps a trigram key to every ExpressionMatch whose catalog
// word contains that trigram.
type trigramIndex map[string][]ExpressionMatch

// ExpressionPretender is the trigram-based fuzzy matcher. It is built once
// over a catalog and is immutable thereafter, so a single instance can be
// shared safely across concurrent calls that write to disjoint Word lists.
type ExpressionPretender struct {
	expressions []*catalog.Expression
	seqBase     int
	index       trigramIndex
}

// New builds an ExpressionPretender over expressions, numbering Claims
// sequentially starting from seqBase. Building the index iterates the
// catalog in order exactly once; the index itself never changes again.
func New(expressions []*catalog.Expression, seqBase int) *ExpressionPretender {
	ep := &ExpressionPretender{
		expressions: expressions,
		seqBase:     seqBase,
	}
	ep.index = ep.buildIndex()

	return ep
}

// Index exposes the built trigram index read-only, mainly for tests that
// assert on its shape.
func (ep *ExpressionPretender) Index() map[string][]ExpressionMatch {
	return ep.index
}

func (ep *ExpressionPretender) buildIndex() trigramIndex {
	index := make(trigramIndex)

	for i, expression := range ep.expressions {
		for order, word := range expression.Words() {
			for _, t := range word.Trigrams {
				index[t] = append(index[t], ExpressionMatch{
					Expression: expression,
					Word:       word,
					Seq:        ep.seqBase + i,
					Order:      order,
				})
			}
		}
	}

	return index
}

// Claim scans words in order, attaching a Proof to each Word for every
// catalog word whose similarity exceeds MinScore. Claims are created
// lazily, on first match, and rescored to the mean of their Proofs' scores
// once every Word has been scanned.
func (ep *ExpressionPretender) Claim(words []*claim.Word) {
	claims := make(map[*catalog.Expression]*claim.Claim)

	for _, w := range words {
		ep.claimWord(w, claims)
	}

	for _, c := range claims {
		c.RescoreFromProofs()
	}
}

// claimWord attaches Proofs to a single Word for every ExpressionMatch
// whose similarity exceeds MinScore. Co-occurrence counts are accumulated
// per ExpressionMatch (not per expression), since the same expression can
// contribute more than one candidate catalog word/position. A trigram
// repeated in both words counts min(occurrences in w, occurrences in the
// catalog word) times, i.e. multiset intersection.
func (ep *ExpressionPretender) claimWord(w *claim.Word, claims map[*catalog.Expression]*claim.Claim) {
	if len(w.Trigrams) == 0 {
		return
	}

	wordCounts := make(map[string]int)
	for _, t := range w.Trigrams {
		wordCounts[t]++
	}

	counts := make(map[ExpressionMatch]int)
	for t, cw := range wordCounts {
		perMatch := make(map[ExpressionMatch]int)
		for _, m := range ep.index[t] {
			perMatch[m]++
		}
		for m, cm := range perMatch {
			counts[m] += min(cw, cm)
		}
	}

	wordTrigramLen := float64(len(w.Trigrams))

	for m, count := range counts {
		matchTrigramLen := float64(len(m.Word.Trigrams))
		co := float64(count)

		s := co / (matchTrigramLen + wordTrigramLen - co)
		if s <= MinScore {
			continue
		}

		c := ep.claimFor(claims, m)
		claim.Attach(m.Order, c, w, s)
	}
}

// claimFor returns the Claim tracking m.Expression, creating it with a
// placeholder score of 0 on first use.
func (ep *ExpressionPretender) claimFor(claims map[*catalog.Expression]*claim.Claim, m ExpressionMatch) *claim.Claim {
	c, ok := claims[m.Expression]
	if ok {
		return c
	}

	c = claim.NewClaim(
		m.Expression.Entity,
		m.Expression.Value,
		0,
		len(m.Expression.Words()),
		m.Seq,
	)
	claims[m.Expression] = c

	return c
}
