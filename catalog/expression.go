// Package catalog holds Expression, the catalog entry type that maps a
// piece of raw text to a typed, valued entity. Loading a catalog from an
// external source (JSON file, database, generated alias list) is the
// caller's responsibility; package catalogio provides one concrete way to
// discharge that responsibility, but catalog itself knows nothing about
// file formats.
package catalog

import (
	"reflect"

	"github.com/lightninglabs/ironthrone/claim"
	"github.com/lightninglabs/ironthrone/words"
)

// Expression is a catalog entry: several words that come together, such
// as a dish name or a multi-word city name, tagged with an entity type
// and a canonical value.
type Expression struct {
	// Text is the raw, catalog-authored text of the expression.
	Text string

	// Entity is the entity type name, e.g. "food".
	Entity string

	// Value is the canonical identifier, e.g. "potato-salad".
	Value any

	wordList []*claim.Word
}

// New constructs an Expression, tokenising text into its own private
// Word list immediately. An Expression's Words are fixed at construction
// and exposed read-only thereafter.
func New(text, entity string, value any) *Expression {
	return &Expression{
		Text:     text,
		Entity:   entity,
		Value:    value,
		wordList: claim.NewWords(words.Tokenize(text)),
	}
}

// Words provides read-only access to the Expression's tokenised word
// list; it is generated once at construction and never mutated.
func (e *Expression) Words() []*claim.Word {
	return e.wordList
}

// Equal reports whether two Expressions are equal: two Expressions are
// equal iff all three attributes (text, entity, value) are equal.
func (e *Expression) Equal(other *Expression) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.Text == other.Text &&
		e.Entity == other.Entity &&
		reflect.DeepEqual(e.Value, other.Value)
}
