// Package pretenders implements candidate extractors: components that scan
// a tokenised utterance and attach Proofs to Words, grouping them under
// Claims. ExpressionPretender, the trigram fuzzy matcher, is the only
// pretender this package ships.
package pretenders

import "github.com/lightninglabs/ironthrone/claim"

// Pretender scans a list of Words in order, attaching Proofs to the Words
// it recognises. Implementations must assign monotonically-increasing,
// unique seq numbers to the Claims they create.
type Pretender interface {
	Claim(words []*claim.Word)
}
