package claim

import "fmt"

// Claim is a hypothesis, made by a pretender, that a specific expression
// (entity/value pair) is present in the utterance. A Claim's Length
// equals the number of words in the underlying Expression, and every
// Proof attached to it has an Order in [0, Length-1]. Identity is
// entity#seq (see ID).
type Claim struct {
	// Entity is the claimed entity type, e.g. "food".
	Entity string

	// Value is the canonical identifier claimed, e.g. "potato-salad".
	Value any

	// Score is the confidence of this claim in [0,1], the mean of its
	// Proofs' scores once the pretender phase completes.
	Score float64

	// Length is the number of words in the underlying Expression.
	Length int

	// Seq is a sequence number unique per claim instance, assigned by
	// the pretender that created it.
	Seq int

	// Proofs is the back-list of Proofs supporting this Claim, in
	// attachment order.
	Proofs []*Proof
}

// NewClaim constructs a Claim with no Proofs yet attached.
func NewClaim(entity string, value any, score float64, length, seq int) *Claim {
	return &Claim{
		Entity: entity,
		Value:  value,
		Score:  score,
		Length: length,
		Seq:    seq,
	}
}

// ID returns the Claim's identity string, entity#seq.
func (c *Claim) ID() string {
	return fmt.Sprintf("%s#%d", c.Entity, c.Seq)
}

// Equal reports whether two Claims are equal: identity is entity#seq, and
// two Claims with the same id necessarily share every other field since
// seq is assigned once at construction, so comparing the id is
// sufficient and avoids recursing into Proofs (which point back at the
// Claim itself).
func (c *Claim) Equal(other *Claim) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.ID() == other.ID()
}

// RescoreFromProofs sets Score to the mean of the Claim's Proofs' scores.
// A Claim with no Proofs is left at a score of 0.
func (c *Claim) RescoreFromProofs() {
	if len(c.Proofs) == 0 {
		c.Score = 0
		return
	}

	var total float64
	for _, p := range c.Proofs {
		total += p.Score
	}

	c.Score = total / float64(len(c.Proofs))
}

// RemoveProof removes a single Proof from this Claim's proof list, by
// pointer identity. Used by constraint cleanup passes; it does not touch
// the Proof's Word side, which the caller is expected to prune in lock
// step (see constraints.FullMatches.Cleanup).
func (c *Claim) RemoveProof(p *Proof) {
	for i, cp := range c.Proofs {
		if cp == p {
			c.Proofs = append(c.Proofs[:i], c.Proofs[i+1:]...)
			return
		}
	}
}
