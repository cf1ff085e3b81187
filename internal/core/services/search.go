package services

import (
	"context"
	"fmt"
	"time"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/core/ports/driven"
	"github.com/romero-archive/concordia/internal/core/ports/driving"
	"github.com/romero-archive/concordia/internal/logger"
	"github.com/romero-archive/concordia/internal/normalise"
)

// Ensure SearchService implements the interface.
var _ driving.Searcher = (*SearchService)(nil)

// SearchService implements word/phrase frequency search with monthly
// aggregation over a pre-folded corpus.
type SearchService struct {
	corpus driven.CorpusStore
}

// NewSearchService creates a new search service over a corpus store.
func NewSearchService(corpus driven.CorpusStore) *SearchService {
	return &SearchService{corpus: corpus}
}

// Search scans the indexed corpus for a word or phrase and aggregates
// matches by calendar month. The scan is a pure read: it builds its own
// local aggregation state and touches no shared mutable state, so
// concurrent calls need no locking.
func (s *SearchService) Search(ctx context.Context, term string, opts domain.SearchOptions) (*domain.Report, error) {
	start := time.Now()

	lang := opts.Language
	if lang == "" {
		lang = domain.Spanish
	}

	q, err := compileQuery(term, opts.AccentSensitive)
	if err != nil {
		return nil, err
	}

	report := domain.NewReport(term, q.tokens)
	if q.empty {
		logger.Debug("search: %q normalises to no tokens, empty report", term)
		return report, nil
	}

	logger.Section("Corpus scan")
	logger.Debug("search: tokens=%v lang=%s accent_sensitive=%v", q.tokens, lang, opts.AccentSensitive)

	homilies, err := s.corpus.ListIndexed(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("listing indexed corpus: %w", err)
	}
	if len(homilies) == 0 {
		return nil, fmt.Errorf("%w: no indexed %s homilies to search", domain.ErrEmptyCorpus, lang.Name())
	}

	for i := range homilies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h := &homilies[i]
		text := h.Text(lang)
		if !text.Indexed() {
			// A half-built row never fails the whole query; it stays
			// invisible until the index builder processes it.
			continue
		}

		// Word totals and homily counts cover the month's whole corpus,
		// matched or not. Homilies without text for the language were
		// never listed, so they contribute to neither side of the rates.
		bucket := report.Months.Bucket(h.Month())
		bucket.TotalWords += *text.WordCount
		bucket.NumHomilies++

		count := q.matcher.Count(normalise.Fields(*text.Folded))
		if count == 0 {
			continue
		}

		bucket.Count += count
		bucket.Homilies = append(bucket.Homilies, domain.HomilyHit{
			ID:        h.ID,
			Date:      h.Date,
			Title:     h.DisplayTitle(lang),
			DetailURL: h.DetailURL,
			Count:     count,
		})
		report.TotalCount += count
		report.TotalHomilies++
	}

	report.Months.ComputeRates()
	report.ElapsedSeconds = time.Since(start).Seconds()

	logger.Debug("search: %d occurrences in %d homilies across %d months (%.3fs)",
		report.TotalCount, report.TotalHomilies, report.Months.Len(), report.ElapsedSeconds)

	return report, nil
}
