package services

import (
	"strings"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/normalise"
)

// compiledQuery is a search term after normalisation: the query tokens
// and the matcher that scans corpus tokens for them. An empty query
// (no tokens survive normalisation) is a valid zero-result query, not
// an error.
type compiledQuery struct {
	tokens  []string
	matcher phraseMatcher
	empty   bool
}

// compileQuery normalises a raw search term and builds its matcher.
// The term is folded (unless accent-sensitive) and lowercased before
// tokenisation, mirroring what the index builder did to the corpus, so
// the matcher only ever compares normalised text with normalised text.
func compileQuery(term string, accentSensitive bool) (*compiledQuery, error) {
	normalised := term
	if !accentSensitive {
		normalised = normalise.Fold(term)
	}

	tokens := normalise.QueryTokens(normalised)
	if len(tokens) == 0 {
		return &compiledQuery{empty: true}, nil
	}

	matcher, err := newPhraseMatcher(tokens)
	if err != nil {
		return nil, err
	}

	return &compiledQuery{tokens: tokens, matcher: matcher}, nil
}

// phraseMatcher matches a sequence of query tokens against consecutive
// corpus tokens. Tokenisation already reduced "separated by non-word
// characters" to plain adjacency, and whole-token comparison gives the
// word-boundary anchoring: partial-word matches only happen where a
// wildcard asks for them.
type phraseMatcher []tokenMatcher

// tokenMatcher matches one query token against one corpus token: either
// an exact literal, or a wildcard pattern whose fragments (split on *)
// must appear in order within the token, first anchored at the start
// and last at the end.
type tokenMatcher struct {
	literal string
	parts   []string // nil unless the token carries a wildcard
}

func newPhraseMatcher(tokens []string) (phraseMatcher, error) {
	m := make(phraseMatcher, 0, len(tokens))
	for _, tok := range tokens {
		if !strings.Contains(tok, "*") {
			m = append(m, tokenMatcher{literal: tok})
			continue
		}
		if strings.ReplaceAll(tok, "*", "") == "" {
			return nil, domain.ErrBareWildcard
		}
		m = append(m, tokenMatcher{parts: strings.Split(tok, "*")})
	}
	return m, nil
}

// Count returns the number of non-overlapping phrase matches in the
// corpus token sequence. Scanning is left-to-right and greedy: after a
// match at window [i, i+n), scanning resumes at i+n, so overlapping
// candidates are never double-counted.
func (m phraseMatcher) Count(tokens []string) int {
	n := len(m)
	if n == 0 {
		return 0
	}
	count := 0
	for i := 0; i+n <= len(tokens); {
		if m.matchAt(tokens, i) {
			count++
			i += n
		} else {
			i++
		}
	}
	return count
}

func (m phraseMatcher) matchAt(tokens []string, i int) bool {
	for j := range m {
		if !m[j].match(tokens[i+j]) {
			return false
		}
	}
	return true
}

func (t tokenMatcher) match(tok string) bool {
	if t.parts == nil {
		return tok == t.literal
	}

	// First fragment anchors the token start.
	if !strings.HasPrefix(tok, t.parts[0]) {
		return false
	}
	rest := tok[len(t.parts[0]):]

	// Middle fragments consume the earliest occurrence in order. Taking
	// the earliest match leaves the longest remainder for the fragments
	// after it, so this never misses a valid placement.
	for _, mid := range t.parts[1 : len(t.parts)-1] {
		idx := strings.Index(rest, mid)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(mid):]
	}

	// Last fragment anchors the token end, within what remains.
	return strings.HasSuffix(rest, t.parts[len(t.parts)-1])
}
