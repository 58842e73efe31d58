package claim

// Proof binds one Word to one Claim at one position. It is referenced
// from both its Claim's Proofs list and its Word's Proofs list — the
// bidirectional association kept in sync by Attach and Detach.
type Proof struct {
	// Order is this Proof's position within its Claim's expression,
	// 0-based.
	Order int

	// Claim is the Claim this Proof supports.
	Claim *Claim

	// Word is the input Word this Proof binds.
	Word *Word

	// Score is the per-word match quality in [0,1].
	Score float64
}

// Attach constructs a Proof and appends it to both claim.Proofs and
// word.Proofs, establishing the bidirectional association in one step so
// the two lists can never drift out of sync.
func Attach(order int, c *Claim, w *Word, score float64) *Proof {
	p := &Proof{
		Order: order,
		Claim: c,
		Word:  w,
		Score: score,
	}

	c.Proofs = append(c.Proofs, p)
	w.Proofs = append(w.Proofs, p)

	return p
}

// Detach removes a Proof from both its Claim's and its Word's proof
// lists. Used by constraint cleanup passes that prune Proofs which
// cannot participate in any feasible assignment.
func Detach(p *Proof) {
	p.Claim.RemoveProof(p)

	for i, wp := range p.Word.Proofs {
		if wp == p {
			p.Word.Proofs = append(p.Word.Proofs[:i], p.Word.Proofs[i+1:]...)
			return
		}
	}
}

// Equal reports whether two Proofs are equal: same order, same Claim (by
// id), same Word (by text), same score.
func (p *Proof) Equal(other *Proof) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.Order == other.Order &&
		p.Claim.Equal(other.Claim) &&
		p.Word.Equal(other.Word) &&
		p.Score == other.Score
}
