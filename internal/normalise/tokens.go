package normalise

import (
	"strings"
	"unicode"
)

// IsWordChar reports whether r belongs to a token: Unicode letters,
// digits and underscore. Everything else separates tokens.
func IsWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokens splits text into lowercase word tokens. Punctuation and
// whitespace are discarded, not preserved.
func Tokens(text string) []string {
	return Fields(strings.ToLower(text))
}

// QueryTokens splits query text into lowercase tokens, keeping the *
// wildcard as part of a token so "liber*" stays whole.
func QueryTokens(text string) []string {
	return fieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == '*' || IsWordChar(r)
	})
}

// Fields splits already-lowercased text into word tokens without copying:
// each token is a substring of text. The corpus scanner calls this on
// pre-folded, pre-lowercased text for every document of every query, so
// it must not allocate beyond the result slice.
func Fields(text string) []string {
	return fieldsFunc(text, IsWordChar)
}

// fieldsFunc extracts maximal runs of runes satisfying keep.
func fieldsFunc(text string, keep func(rune) bool) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		if keep(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
