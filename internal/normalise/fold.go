package normalise

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritical marks from text: each character is decomposed
// to NFD form and combining marks (category Mn) are removed, leaving the
// base letter. The result is not recomposed; for Latin text the output
// is plain base letters either way.
//
// Fold is idempotent and deterministic. It does not change case.
func Fold(text string) string {
	// transform.Chain transformers carry state, so build one per call
	// rather than sharing a package-level instance across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, text)
	if err != nil {
		// Only malformed UTF-8 can get here; fall back to the input so a
		// single bad byte sequence never loses a document's text.
		return text
	}
	return folded
}
