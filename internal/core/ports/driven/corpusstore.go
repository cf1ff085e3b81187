package driven

import (
	"context"

	"github.com/romero-archive/concordia/internal/core/domain"
)

// CorpusStore persists homilies and their derived index fields.
// Backed by SQLite; a memory implementation covers tests and callers
// that inject an already-materialised corpus.
type CorpusStore interface {
	// SaveHomily stores or updates a homily record.
	SaveHomily(ctx context.Context, h *domain.Homily) error

	// GetHomily retrieves a homily by ID.
	// Returns domain.ErrNotFound when it does not exist.
	GetHomily(ctx context.Context, id string) (*domain.Homily, error)

	// ListIndexed returns the homilies with folded text for the
	// language, ascending by date. This is the corpus view a search
	// scans; homilies without an index for the language are absent so
	// they contribute to neither match counts nor word totals.
	ListIndexed(ctx context.Context, lang domain.Language) ([]domain.Homily, error)

	// ListUnindexed returns the homilies with non-empty raw text for
	// the language but missing derived index fields, ascending by date.
	ListUnindexed(ctx context.Context, lang domain.Language) ([]domain.Homily, error)

	// SaveIndex writes both derived fields for one homily and language
	// as a single atomic update, so a concurrent reader never observes
	// folded text without its word count.
	SaveIndex(ctx context.Context, id string, lang domain.Language, folded string, wordCount int) error

	// Stats reports corpus size, date range and per-language coverage.
	Stats(ctx context.Context) (*domain.CorpusStats, error)
}
