package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/logger"
)

// homilyRecord is the JSON shape accepted by the import command. It
// mirrors the scraper output: one object per homily, texts nested per
// language.
type homilyRecord struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Occasion  string      `json:"occasion"`
	DetailURL string      `json:"detail_url"`
	Spanish   *textRecord `json:"spanish"`
	English   *textRecord `json:"english"`
}

type textRecord struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import homilies from a JSON file",
	Long: `Import homilies from a JSON file into the local database.

The file holds an array of homily objects with a date, occasion and
per-language title/text pairs. Records without an id are assigned one.
Existing records with the same id are overwritten and their index
columns cleared, so run 'concordia index build' after importing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var records []homilyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	imported := 0
	for i, rec := range records {
		homily, err := rec.toDomain()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := corpus.SaveHomily(cmd.Context(), homily); err != nil {
			return fmt.Errorf("saving homily %s: %w", homily.ID, err)
		}
		logger.Debug("imported homily %s (%s)", homily.ID, homily.Date)
		imported++
	}

	cmd.Printf("imported %d homilies\n", imported)
	return nil
}

func (r homilyRecord) toDomain() (*domain.Homily, error) {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not ISO (YYYY-MM-DD)", domain.ErrInvalidInput, r.Date)
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	h := &domain.Homily{
		ID:        id,
		Date:      r.Date,
		Occasion:  r.Occasion,
		DetailURL: r.DetailURL,
	}
	if r.Spanish != nil {
		h.Spanish = domain.Text{Title: &r.Spanish.Title, Raw: &r.Spanish.Text}
	}
	if r.English != nil {
		h.English = domain.Text{Title: &r.English.Title, Raw: &r.English.Text}
	}
	return h, nil
}
