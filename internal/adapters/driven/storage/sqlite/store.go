// Package sqlite implements the corpus store on SQLite. The homilies
// table mirrors the external document table the ingestion pipeline
// produces: one row per homily, per-language text columns, and the
// derived index columns the search engine scans.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/romero-archive/concordia/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/romero-archive/concordia/internal/core/domain"
	"github.com/romero-archive/concordia/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is a SQLite-backed corpus store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the corpus database at dbPath.
// If dbPath is empty, defaults to ~/.concordia/concordia.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".concordia", "concordia.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_create_homilies.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// langCols maps a language to its column names. Identifiers are fixed
// at compile time, never user input.
type langCols struct {
	title  string
	text   string
	folded string
	count  string
}

func colsFor(lang domain.Language) langCols {
	prefix := "spanish"
	if lang == domain.English {
		prefix = "english"
	}
	return langCols{
		title:  prefix + "_title",
		text:   prefix + "_text",
		folded: prefix + "_text_folded",
		count:  prefix + "_word_count",
	}
}

// SaveHomily stores or updates a homily record.
func (s *Store) SaveHomily(ctx context.Context, h *domain.Homily) error {
	if h.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO homilies (
			id, date, occasion, detail_url,
			spanish_title, spanish_text, spanish_text_folded, spanish_word_count,
			english_title, english_text, english_text_folded, english_word_count
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			occasion = excluded.occasion,
			detail_url = excluded.detail_url,
			spanish_title = excluded.spanish_title,
			spanish_text = excluded.spanish_text,
			spanish_text_folded = excluded.spanish_text_folded,
			spanish_word_count = excluded.spanish_word_count,
			english_title = excluded.english_title,
			english_text = excluded.english_text,
			english_text_folded = excluded.english_text_folded,
			english_word_count = excluded.english_word_count
	`, h.ID, h.Date, h.Occasion, h.DetailURL,
		h.Spanish.Title, h.Spanish.Raw, h.Spanish.Folded, h.Spanish.WordCount,
		h.English.Title, h.English.Raw, h.English.Folded, h.English.WordCount)

	if err != nil {
		return fmt.Errorf("saving homily: %w", err)
	}
	return nil
}

// GetHomily retrieves a full homily row by ID.
func (s *Store) GetHomily(ctx context.Context, id string) (*domain.Homily, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, occasion, detail_url,
			spanish_title, spanish_text, spanish_text_folded, spanish_word_count,
			english_title, english_text, english_text_folded, english_word_count
		FROM homilies WHERE id = ?
	`, id)

	var h domain.Homily
	var occasion, detailURL sql.NullString
	err := row.Scan(&h.ID, &h.Date, &occasion, &detailURL,
		&h.Spanish.Title, &h.Spanish.Raw, &h.Spanish.Folded, &h.Spanish.WordCount,
		&h.English.Title, &h.English.Raw, &h.English.Folded, &h.English.WordCount)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning homily: %w", err)
	}
	h.Occasion = occasion.String
	h.DetailURL = detailURL.String
	return &h, nil
}

// ListIndexed returns the scan projection of every homily with an index
// for the language, ascending by date. Raw text is deliberately not
// selected: the scanner reads only derived fields.
func (s *Store) ListIndexed(ctx context.Context, lang domain.Language) ([]domain.Homily, error) {
	c := colsFor(lang)
	query := fmt.Sprintf(`
		SELECT id, date, occasion, detail_url, %s, %s, %s
		FROM homilies
		WHERE %s IS NOT NULL AND %s IS NOT NULL
		ORDER BY date, id
	`, c.title, c.folded, c.count, c.folded, c.count)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying indexed homilies: %w", err)
	}
	defer rows.Close()

	var homilies []domain.Homily //nolint:prealloc // size unknown from query
	for rows.Next() {
		var h domain.Homily
		var occasion, detailURL sql.NullString
		text := h.Text(lang)
		if err := rows.Scan(&h.ID, &h.Date, &occasion, &detailURL,
			&text.Title, &text.Folded, &text.WordCount); err != nil {
			return nil, fmt.Errorf("scanning homily: %w", err)
		}
		h.Occasion = occasion.String
		h.DetailURL = detailURL.String
		homilies = append(homilies, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating homilies: %w", err)
	}
	return homilies, nil
}

// ListUnindexed returns homilies with non-empty raw text for the
// language but missing derived fields, ascending by date.
func (s *Store) ListUnindexed(ctx context.Context, lang domain.Language) ([]domain.Homily, error) {
	c := colsFor(lang)
	query := fmt.Sprintf(`
		SELECT id, date, occasion, detail_url, %s, %s
		FROM homilies
		WHERE %s IS NOT NULL AND %s != ''
			AND (%s IS NULL OR %s IS NULL)
		ORDER BY date, id
	`, c.title, c.text, c.text, c.text, c.folded, c.count)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying unindexed homilies: %w", err)
	}
	defer rows.Close()

	var homilies []domain.Homily //nolint:prealloc // size unknown from query
	for rows.Next() {
		var h domain.Homily
		var occasion, detailURL sql.NullString
		text := h.Text(lang)
		if err := rows.Scan(&h.ID, &h.Date, &occasion, &detailURL,
			&text.Title, &text.Raw); err != nil {
			return nil, fmt.Errorf("scanning homily: %w", err)
		}
		h.Occasion = occasion.String
		h.DetailURL = detailURL.String
		homilies = append(homilies, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating homilies: %w", err)
	}
	return homilies, nil
}

// SaveIndex writes both derived fields for one homily and language in a
// single UPDATE, so readers never observe one without the other.
func (s *Store) SaveIndex(ctx context.Context, id string, lang domain.Language, folded string, wordCount int) error {
	c := colsFor(lang)
	query := fmt.Sprintf("UPDATE homilies SET %s = ?, %s = ? WHERE id = ?", c.folded, c.count)

	res, err := s.db.ExecContext(ctx, query, folded, wordCount, id)
	if err != nil {
		return fmt.Errorf("saving index: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking index update: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats reports corpus size, date range and per-language coverage.
func (s *Store) Stats(ctx context.Context) (*domain.CorpusStats, error) {
	stats := &domain.CorpusStats{}

	var first, last sql.NullString
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*), MIN(date), MAX(date) FROM homilies")
	if err := row.Scan(&stats.Total, &first, &last); err != nil {
		return nil, fmt.Errorf("counting homilies: %w", err)
	}
	stats.FirstDate = first.String
	stats.LastDate = last.String

	for _, lang := range []domain.Language{domain.Spanish, domain.English} {
		c := colsFor(lang)
		query := fmt.Sprintf(`
			SELECT
				COUNT(CASE WHEN %s IS NOT NULL AND %s != '' THEN 1 END),
				COUNT(CASE WHEN %s IS NOT NULL AND %s IS NOT NULL THEN 1 END)
			FROM homilies
		`, c.text, c.text, c.folded, c.count)

		var cov domain.LanguageCoverage
		row := s.db.QueryRowContext(ctx, query)
		if err := row.Scan(&cov.WithText, &cov.Indexed); err != nil {
			return nil, fmt.Errorf("counting %s coverage: %w", lang.Name(), err)
		}
		if lang == domain.English {
			stats.English = cov
		} else {
			stats.Spanish = cov
		}
	}

	return stats, nil
}
