package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romero-archive/concordia/internal/adapters/driven/storage/memory"
	"github.com/romero-archive/concordia/internal/core/domain"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "homilies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCmd_Use(t *testing.T) {
	assert.Equal(t, "import FILE", importCmd.Use)
}

func TestImportCmd_ImportsRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `[
		{
			"id": "h-new",
			"date": "1979-02-18",
			"occasion": "Sexto domingo",
			"detail_url": "https://example.org/h-new",
			"spanish": {"title": "El grito de la tierra", "text": "la tierra clama"}
		}
	]`)

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 homilies")

	h, err := corpus.GetHomily(context.Background(), "h-new")
	require.NoError(t, err)
	assert.Equal(t, "1979-02-18", h.Date)
	assert.Equal(t, "El grito de la tierra", *h.Spanish.Title)
	assert.True(t, h.Spanish.HasRaw())
	assert.False(t, h.Spanish.Indexed(), "import must not populate index columns")
}

func TestImportCmd_AssignsIDWhenMissing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `[
		{"date": "1980-03-23", "spanish": {"text": "cese la represion"}}
	]`)

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 homilies")

	store := corpus.(*memory.CorpusStore)
	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}

func TestImportCmd_RejectsNonISODate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `[
		{"id": "h-bad", "date": "23/03/1980", "spanish": {"text": "x"}}
	]`)

	_, err := execute(t, "import", path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "record 0")
}

func TestImportCmd_RejectsMalformedJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeImportFile(t, `{"not": "an array"`)

	_, err := execute(t, "import", path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

func TestImportCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading import file")
}
