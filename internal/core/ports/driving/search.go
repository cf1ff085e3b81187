package driving

import (
	"context"

	"github.com/romero-archive/concordia/internal/core/domain"
)

// Searcher runs word/phrase frequency searches over the corpus.
type Searcher interface {
	// Search scans the indexed corpus for a word or phrase and returns
	// the monthly frequency report. A term that normalises to no tokens
	// yields an empty report and no error; a bare-wildcard token yields
	// domain.ErrBareWildcard without scanning; an indexed corpus with
	// nothing to scan yields domain.ErrEmptyCorpus.
	Search(ctx context.Context, term string, opts domain.SearchOptions) (*domain.Report, error)
}

// Indexer maintains the derived index fields searches depend on.
type Indexer interface {
	// Build computes folded text and word counts for every homily that
	// has raw text but no index for the language. Idempotent: homilies
	// already carrying both fields are left untouched.
	Build(ctx context.Context, lang domain.Language) (*domain.IndexStats, error)

	// Verify re-derives the index of every indexed homily and reports
	// stored fields a fresh normaliser run does not reproduce. This is
	// the offline consistency checker; query-time code trusts the
	// stored fields unconditionally.
	Verify(ctx context.Context, lang domain.Language) ([]domain.IndexFault, error)
}
