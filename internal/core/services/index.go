package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/core/ports/driven"
	"github.com/romero-archive/concordia/internal/core/ports/driving"
	"github.com/romero-archive/concordia/internal/logger"
	"github.com/romero-archive/concordia/internal/normalise"
)

// Ensure IndexService implements the interface.
var _ driving.Indexer = (*IndexService)(nil)

// IndexService builds and verifies the derived index fields (folded
// text, word count) the search engine scans. It is the only writer of
// those fields and expects to run exclusively: not concurrently with
// another build, nor with searches that would observe half-built rows.
type IndexService struct {
	corpus driven.CorpusStore
}

// NewIndexService creates a new index service over a corpus store.
func NewIndexService(corpus driven.CorpusStore) *IndexService {
	return &IndexService{corpus: corpus}
}

// deriveIndex computes both derived fields from raw text. Folding
// happens before lowercasing; the word count comes from the same
// tokeniser the matcher uses, counted on raw text. Folding substitutes
// characters within tokens without splitting or merging them, so raw
// and folded counts agree.
func deriveIndex(raw string) (folded string, wordCount int) {
	return strings.ToLower(normalise.Fold(raw)), len(normalise.Tokens(raw))
}

// Build computes and persists the index for every homily with raw text
// for the language but missing derived fields. Idempotent and safe to
// re-run: rows already carrying both fields are never touched, and each
// row's two fields are written as one atomic update.
func (s *IndexService) Build(ctx context.Context, lang domain.Language) (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{Language: lang}

	before, err := s.corpus.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading corpus stats: %w", err)
	}
	stats.UpToDate = coverage(before, lang).Indexed

	pending, err := s.corpus.ListUnindexed(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("listing unindexed homilies: %w", err)
	}

	logger.Section("Index build")
	logger.Debug("index: %s corpus, %d homilies up to date, %d pending",
		lang.Name(), stats.UpToDate, len(pending))

	for i := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h := &pending[i]
		text := h.Text(lang)
		if !text.HasRaw() {
			continue
		}

		folded, wordCount := deriveIndex(*text.Raw)
		if err := s.corpus.SaveIndex(ctx, h.ID, lang, folded, wordCount); err != nil {
			return nil, fmt.Errorf("saving index for homily %s: %w", h.ID, err)
		}
		stats.Indexed++
	}

	stats.ElapsedSeconds = time.Since(start).Seconds()
	logger.Debug("index: built %d homilies in %.3fs", stats.Indexed, stats.ElapsedSeconds)
	return stats, nil
}

// Verify re-derives the index of every indexed homily and reports
// stored fields that a fresh normaliser run does not reproduce. Query
// code trusts the stored fields, so this is where drift between index
// and normaliser versions surfaces.
func (s *IndexService) Verify(ctx context.Context, lang domain.Language) ([]domain.IndexFault, error) {
	indexed, err := s.corpus.ListIndexed(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("listing indexed corpus: %w", err)
	}

	logger.Section("Index verify")
	logger.Debug("verify: %s corpus, %d indexed homilies", lang.Name(), len(indexed))

	var faults []domain.IndexFault
	for i := range indexed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The scan projection omits raw text; verification needs the
		// full row.
		h, err := s.corpus.GetHomily(ctx, indexed[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loading homily %s: %w", indexed[i].ID, err)
		}
		text := h.Text(lang)

		if !text.HasRaw() {
			faults = append(faults, domain.IndexFault{
				HomilyID: h.ID,
				Field:    "folded_text",
				Detail:   "derived fields present but raw text is missing or empty",
			})
			continue
		}

		folded, wordCount := deriveIndex(*text.Raw)
		if text.Folded == nil || *text.Folded != folded {
			faults = append(faults, domain.IndexFault{
				HomilyID: h.ID,
				Field:    "folded_text",
				Detail:   "stored folded text does not match a fresh fold of the raw text",
			})
		}
		if text.WordCount == nil {
			faults = append(faults, domain.IndexFault{
				HomilyID: h.ID,
				Field:    "word_count",
				Detail:   fmt.Sprintf("stored none, recomputed %d", wordCount),
			})
		} else if *text.WordCount != wordCount {
			faults = append(faults, domain.IndexFault{
				HomilyID: h.ID,
				Field:    "word_count",
				Detail:   fmt.Sprintf("stored %d, recomputed %d", *text.WordCount, wordCount),
			})
		}
	}

	if len(faults) > 0 {
		logger.Warn("verify: %d inconsistencies found", len(faults))
	}
	return faults, nil
}

// coverage picks the language side of corpus stats.
func coverage(stats *domain.CorpusStats, lang domain.Language) domain.LanguageCoverage {
	if lang == domain.English {
		return stats.English
	}
	return stats.Spanish
}
