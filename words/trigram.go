package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pad is the sentinel prepended and appended to a normalised word before
// its trigrams are taken, so that the first and last characters of a word
// participate in a trigram of their own.
const pad = " "

// stripDiacritics removes Unicode combining marks after NFD
// decomposition, so that (after normalize's lower-casing) "rochelle"
// and "Rochelle" collapse together with accented variants such as
// "Ŕochelle" or "Róchelle".
var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalize lower-cases text and strips diacritics via canonical
// decomposition followed by combining-mark removal.
func normalize(text string) string {
	folded := strings.ToLower(text)

	out, _, err := transform.String(stripDiacritics, folded)
	if err != nil {
		// transform.String only fails on malformed input transforms;
		// norm/runes never return an error, but guard defensively by
		// falling back to the un-stripped, lower-cased form.
		return folded
	}

	return out
}

// trigrams returns the padded 3-character-window decomposition of the
// normalised text, with multiplicities preserved (multiset semantics).
// An empty normalised string yields no trigrams.
func trigrams(normalized string) []string {
	if normalized == "" {
		return nil
	}

	padded := []rune(pad + normalized + pad)
	if len(padded) < 3 {
		return nil
	}

	out := make([]string, 0, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		out = append(out, string(padded[i:i+3]))
	}

	return out
}

// trigramCounts turns a trigram multiset into a key->count map, which is
// how Similarity wants it.
func trigramCounts(tris []string) map[string]int {
	counts := make(map[string]int, len(tris))
	for _, t := range tris {
		counts[t]++
	}

	return counts
}

// Similarity computes the Jaccard-like multiset similarity between two
// trigram multisets:
//
//	s(a, b) = |T(a) ∩ T(b)| / (|T(a)| + |T(b)| - |T(a) ∩ T(b)|)
//
// where the intersection is counted with multiplicity. Similarity is
// symmetric and Similarity(a, a) == 1 for any non-empty a.
func Similarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	countsA := trigramCounts(a)
	countsB := trigramCounts(b)

	intersection := 0
	for t, ca := range countsA {
		cb := countsB[t]
		if cb < ca {
			intersection += cb
		} else {
			intersection += ca
		}
	}

	union := len(a) + len(b) - intersection
	if union <= 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
