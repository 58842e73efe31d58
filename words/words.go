// Package words implements the tokeniser: splitting free text into an
// ordered sequence of normalised tokens and their trigram multisets. It has
// no notion of claims, proofs, or expressions — those live one layer up in
// package claim, which wraps a Token into a mutable Word. Keeping the split
// this way avoids an import cycle between the (immutable) tokeniser output
// and the (mutable, back-referencing) claim/proof graph built on top of it.
package words

import (
	"regexp"
)

// nonWord matches runs of characters that are neither letters nor digits,
// Unicode-aware, used to split an utterance into tokens.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Token is the immutable output of tokenisation for a single position in
// the utterance: the original text, its 0-based order, its normalised
// (lower-cased, diacritic-stripped) form, and the trigram multiset derived
// from the padded normalised form.
type Token struct {
	// Text is the original, unmodified slice of the input.
	Text string

	// Order is the 0-based position of this token in the utterance.
	Order int

	// Normalized is the lower-cased, diacritic-stripped form of Text.
	Normalized string

	// Trigrams is the padded 3-character-window decomposition of
	// Normalized, with multiplicities preserved.
	Trigrams []string
}

// NewToken builds a Token from raw text at the given order, computing its
// normalised form and trigrams eagerly so that every Token carries a fully
// materialised, read-only view from the moment it is constructed.
func NewToken(text string, order int) Token {
	normalized := normalize(text)

	return Token{
		Text:       text,
		Order:      order,
		Normalized: normalized,
		Trigrams:   trigrams(normalized),
	}
}

// Tokenize splits text on runs of non-word characters into an ordered
// sequence of Tokens. Leading/trailing separators produce empty-text
// tokens; these carry no trigrams and therefore never match anything in
// the pretender phase, but their position is preserved so that downstream
// consumers keep a monotonic, gap-free Order sequence aligned with the
// literal split.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	parts := nonWord.Split(text, -1)

	tokens := make([]Token, len(parts))
	for i, part := range parts {
		tokens[i] = NewToken(part, i)
	}

	return tokens
}
