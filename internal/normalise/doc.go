// Package normalise implements the text normalisation used by both sides
// of the search pipeline: accent folding and word tokenisation.
//
// The corpus is folded once at index time; queries are folded per call.
// Both sides must apply the identical rules or matching silently breaks,
// so every transformation lives here and nowhere else.
//
// Folding uses NFD canonical decomposition and strips combining marks
// (Unicode category Mn). For Spanish this maps á→a, é→e, ü→u and also
// ñ→n, because the tilde decomposes to a combining mark. ñ is a distinct
// letter in Spanish, not an accented n, but the merge is kept: searches
// for "ano"/"año" finding both is the accepted trade-off of reusing
// generic diacritic stripping.
package normalise
