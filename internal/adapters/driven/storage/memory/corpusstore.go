// Package memory provides an in-memory CorpusStore. It backs service
// tests and callers that already hold a materialised corpus and want to
// search it without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
type CorpusStore struct {
	mu       sync.RWMutex
	homilies map[string]domain.Homily
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{homilies: make(map[string]domain.Homily)}
}

// SaveHomily stores or updates a homily record.
func (s *CorpusStore) SaveHomily(_ context.Context, h *domain.Homily) error {
	if h.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homilies[h.ID] = *h
	return nil
}

// GetHomily retrieves a homily by ID.
func (s *CorpusStore) GetHomily(_ context.Context, id string) (*domain.Homily, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.homilies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &h, nil
}

// ListIndexed returns homilies with an index for the language,
// ascending by date.
func (s *CorpusStore) ListIndexed(_ context.Context, lang domain.Language) ([]domain.Homily, error) {
	return s.list(func(h *domain.Homily) bool {
		return h.Text(lang).Indexed()
	}), nil
}

// ListUnindexed returns homilies with non-empty raw text for the
// language but no index yet, ascending by date.
func (s *CorpusStore) ListUnindexed(_ context.Context, lang domain.Language) ([]domain.Homily, error) {
	return s.list(func(h *domain.Homily) bool {
		text := h.Text(lang)
		return text.HasRaw() && !text.Indexed()
	}), nil
}

// SaveIndex writes both derived fields for one homily and language.
func (s *CorpusStore) SaveIndex(_ context.Context, id string, lang domain.Language, folded string, wordCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.homilies[id]
	if !ok {
		return domain.ErrNotFound
	}
	text := h.Text(lang)
	text.Folded = &folded
	text.WordCount = &wordCount
	s.homilies[id] = h
	return nil
}

// Stats reports corpus size, date range and per-language coverage.
func (s *CorpusStore) Stats(_ context.Context) (*domain.CorpusStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.CorpusStats{Total: len(s.homilies)}
	for id := range s.homilies {
		h := s.homilies[id]
		if stats.FirstDate == "" || h.Date < stats.FirstDate {
			stats.FirstDate = h.Date
		}
		if h.Date > stats.LastDate {
			stats.LastDate = h.Date
		}
		countCoverage(&stats.Spanish, h.Spanish)
		countCoverage(&stats.English, h.English)
	}
	return stats, nil
}

func countCoverage(cov *domain.LanguageCoverage, text domain.Text) {
	if text.HasRaw() {
		cov.WithText++
	}
	if text.Indexed() {
		cov.Indexed++
	}
}

// list returns copies of the homilies satisfying keep, date-ascending.
// Ties on date break by ID so the scan order is deterministic.
func (s *CorpusStore) list(keep func(*domain.Homily) bool) []domain.Homily {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var homilies []domain.Homily
	for id := range s.homilies {
		h := s.homilies[id]
		if keep(&h) {
			homilies = append(homilies, h)
		}
	}
	sort.Slice(homilies, func(i, j int) bool {
		if homilies[i].Date != homilies[j].Date {
			return homilies[i].Date < homilies[j].Date
		}
		return homilies[i].ID < homilies[j].ID
	})
	return homilies
}
