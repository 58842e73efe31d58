// Package claim holds the core data model of Iron Throne: Word, Claim, and
// Proof. These three types form a deliberate cycle of back-references
// (a Word lists the Proofs attached to it, a Claim lists the Proofs that
// support it, and a Proof points back to both its Word and its Claim) so
// they live in a single package rather than being split across package
// boundaries the way the tokeniser (package words) and the catalog
// (package catalog) are. The pointer-cycle shape is kept rather than an
// integer-arena, since Go's garbage collector handles reference cycles
// natively and the pointer shape is the more direct, idiomatic
// translation.
package claim

import "github.com/lightninglabs/ironthrone/words"

// Word wraps an immutable Token with the mutable list of Proofs that
// pretenders attach to it. Token is embedded so Word.Text, Word.Order,
// Word.Normalized, and Word.Trigrams read through directly; Proofs is the
// one field a pretender is allowed to mutate, and only during the
// pretender phase.
type Word struct {
	words.Token

	// Proofs is the list of Proofs attached to this Word by pretenders,
	// in attachment order. The Solver indexes into this slice; it never
	// mutates it.
	Proofs []*Proof
}

// NewWord wraps a Token into a fresh Word with no attached Proofs.
func NewWord(t words.Token) *Word {
	return &Word{Token: t}
}

// NewWords wraps every Token produced by words.Tokenize into a Word,
// preserving order.
func NewWords(tokens []words.Token) []*Word {
	out := make([]*Word, len(tokens))
	for i, t := range tokens {
		out[i] = NewWord(t)
	}

	return out
}

// Equal reports whether two Words are equal: two Words are equal iff
// their text is equal.
func (w *Word) Equal(other *Word) bool {
	if w == nil || other == nil {
		return w == other
	}

	return w.Text == other.Text
}
