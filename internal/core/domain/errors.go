package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLanguage indicates a language code outside es/en.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrBareWildcard rejects query tokens that are only * characters.
	// A bare wildcard would match every word in the corpus, turning the
	// query into "count all words", which is never what the user meant.
	ErrBareWildcard = errors.New("wildcard * must be combined with letters (e.g. liber*)")

	// ErrEmptyCorpus indicates no homilies are stored at all.
	ErrEmptyCorpus = errors.New("corpus is empty")
)
