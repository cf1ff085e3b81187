package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romero-archive/concordia/internal/adapters/driven/storage/memory"
	"github.com/romero-archive/concordia/internal/core/domain"
)

func strPtr(s string) *string { return &s }

// seedCorpus stores homilies with raw Spanish text and runs the index
// builder over them, so searches exercise the same derived fields a
// real corpus carries.
func seedCorpus(t *testing.T, homilies ...domain.Homily) *memory.CorpusStore {
	t.Helper()
	ctx := context.Background()
	store := memory.NewCorpusStore()
	for i := range homilies {
		require.NoError(t, store.SaveHomily(ctx, &homilies[i]))
	}
	_, err := NewIndexService(store).Build(ctx, domain.Spanish)
	require.NoError(t, err)
	return store
}

func spanishHomily(id, date, title, text string) domain.Homily {
	return domain.Homily{
		ID:        id,
		Date:      date,
		DetailURL: "https://example.org/homilies/" + id,
		Spanish:   domain.Text{Title: strPtr(title), Raw: strPtr(text)},
	}
}

func TestSearch_MonthlyAggregation(t *testing.T) {
	// Two March homilies mention the term, the April one does not; the
	// April month must still appear with its word totals.
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios escucha al pueblo"),
		spanishHomily("h2", "1977-03-20", "Segunda", "un pueblo que camina"),
		spanishHomily("h3", "1977-04-07", "Tercera", "la palabra del senor"),
	)

	report, err := NewSearchService(store).Search(context.Background(), "pueblo", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, "pueblo", report.Term)
	assert.Equal(t, []string{"pueblo"}, report.Tokens)
	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, 2, report.TotalHomilies)
	assert.GreaterOrEqual(t, report.ElapsedSeconds, 0.0)

	require.Equal(t, []string{"1977-03", "1977-04"}, report.Months.Keys())

	march, ok := report.Months.Get("1977-03")
	require.True(t, ok)
	assert.Equal(t, 3, march.Count)
	assert.Equal(t, 11, march.TotalWords)
	assert.Equal(t, 2, march.NumHomilies)
	require.Len(t, march.Homilies, 2)
	assert.Equal(t, "h1", march.Homilies[0].ID)
	assert.Equal(t, 2, march.Homilies[0].Count)
	assert.Equal(t, "Primera", march.Homilies[0].Title)
	assert.Equal(t, "h2", march.Homilies[1].ID)

	april, ok := report.Months.Get("1977-04")
	require.True(t, ok)
	assert.Equal(t, 0, april.Count)
	assert.Equal(t, 4, april.TotalWords)
	assert.Equal(t, 1, april.NumHomilies)
	assert.Empty(t, april.Homilies)
	assert.Equal(t, 0.0, april.Per10kWords)
}

func TestSearch_RatesComputed(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera",
			"pueblo pueblo pueblo pueblo uno dos tres cuatro cinco seis"),
	)

	report, err := NewSearchService(store).Search(context.Background(), "pueblo", domain.SearchOptions{})
	require.NoError(t, err)

	march, ok := report.Months.Get("1977-03")
	require.True(t, ok)
	assert.Equal(t, 4, march.Count)
	assert.Equal(t, 10, march.TotalWords)
	assert.Equal(t, 4000.0, march.Per10kWords)
	assert.Equal(t, 4.0, march.PerHomily)
}

func TestSearch_NoMatchesKeepsMonths(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "la palabra del senor"),
	)

	report, err := NewSearchService(store).Search(context.Background(), "ausente", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 0, report.TotalHomilies)
	require.Equal(t, []string{"1977-03"}, report.Months.Keys())

	march, _ := report.Months.Get("1977-03")
	assert.Equal(t, 4, march.TotalWords)
	assert.Equal(t, 1, march.NumHomilies)
}

func TestSearch_AccentInsensitiveByDefault(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "la liberación del señor"),
	)
	svc := NewSearchService(store)
	ctx := context.Background()

	// Accented and unaccented queries hit the same folded corpus.
	for _, term := range []string{"liberación", "liberacion", "LIBERACIÓN"} {
		report, err := svc.Search(ctx, term, domain.SearchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, report.TotalCount, "term %q", term)
	}
}

func TestSearch_AccentSensitiveQueryKeepsAccents(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "la liberación del señor"),
	)
	svc := NewSearchService(store)
	ctx := context.Background()

	// The corpus side is folded at index time regardless of mode, so an
	// accent-sensitive query only matches text that folding left alone.
	report, err := svc.Search(ctx, "liberación", domain.SearchOptions{AccentSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"liberación"}, report.Tokens)
	assert.Equal(t, 0, report.TotalCount)

	report, err = svc.Search(ctx, "liberacion", domain.SearchOptions{AccentSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCount)
}

func TestSearch_PhraseAcrossCorpus(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios"),
		spanishHomily("h2", "1977-03-20", "Segunda", "el pueblo fiel de nuestro dios"),
	)
	svc := NewSearchService(store)
	ctx := context.Background()

	report, err := svc.Search(ctx, "pueblo de dios", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCount)
	assert.Equal(t, 1, report.TotalHomilies)

	// Non-adjacent tokens never phrase-match.
	report, err = svc.Search(ctx, "pueblo dios", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalCount)
}

func TestSearch_EmptyQueryReturnsEmptyReport(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios"),
	)

	report, err := NewSearchService(store).Search(context.Background(), "  ¡¿  ", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, report.Tokens)
	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 0, report.Months.Len())
}

func TestSearch_EmptyCorpusIsFatal(t *testing.T) {
	store := memory.NewCorpusStore()

	_, err := NewSearchService(store).Search(context.Background(), "pueblo", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestSearch_BareWildcardIsValidationError(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios"),
	)

	report, err := NewSearchService(store).Search(context.Background(), "*", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrBareWildcard)
	assert.Nil(t, report)
}

func TestSearch_UnindexedHomilyExcludedFromDenominator(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCorpusStore()

	indexed := spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios")
	require.NoError(t, store.SaveHomily(ctx, &indexed))
	_, err := NewIndexService(store).Build(ctx, domain.Spanish)
	require.NoError(t, err)

	// Same month, raw text present, but the builder has not run since:
	// it must contribute to neither matches nor word totals.
	pending := spanishHomily("h2", "1977-03-20", "Segunda", "pueblo pueblo pueblo")
	require.NoError(t, store.SaveHomily(ctx, &pending))

	report, err := NewSearchService(store).Search(ctx, "pueblo", domain.SearchOptions{})
	require.NoError(t, err)

	march, ok := report.Months.Get("1977-03")
	require.True(t, ok)
	assert.Equal(t, 1, march.Count)
	assert.Equal(t, 4, march.TotalWords)
	assert.Equal(t, 1, march.NumHomilies)
}

func TestSearch_LanguageSelectsCorpusSide(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCorpusStore()

	h := spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios")
	h.English = domain.Text{Title: strPtr("First"), Raw: strPtr("the people of god")}
	require.NoError(t, store.SaveHomily(ctx, &h))

	indexer := NewIndexService(store)
	_, err := indexer.Build(ctx, domain.Spanish)
	require.NoError(t, err)
	_, err = indexer.Build(ctx, domain.English)
	require.NoError(t, err)

	svc := NewSearchService(store)

	report, err := svc.Search(ctx, "people", domain.SearchOptions{Language: domain.English})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCount)
	require.Len(t, report.Months.Keys(), 1)
	english, _ := report.Months.Get("1977-03")
	require.Len(t, english.Homilies, 1)
	assert.Equal(t, "First", english.Homilies[0].Title)

	report, err = svc.Search(ctx, "people", domain.SearchOptions{Language: domain.Spanish})
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalCount)
}

func TestSearch_CancelledContext(t *testing.T) {
	store := seedCorpus(t,
		spanishHomily("h1", "1977-03-14", "Primera", "el pueblo de dios"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSearchService(store).Search(ctx, "pueblo", domain.SearchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
